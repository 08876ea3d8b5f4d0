package arena

import (
	"fmt"
	"math"
)

type GameStatistics struct {
	winningFraction float64
	eloDifference   float64
	los             float64
}

// https://www.chessprogramming.org/Match_Statistics
func computeStat(wins, losses, draws int) GameStatistics {
	var games = wins + losses + draws
	if games == 0 {
		return GameStatistics{}
	}
	var winningFraction = (float64(wins) + 0.5*float64(draws)) / float64(games)
	var eloDifference = 400 * math.Log10(winningFraction/(1-winningFraction))
	var los = 0.5
	if wins+losses > 0 {
		los = 0.5 + 0.5*math.Erf(float64(wins-losses)/math.Sqrt(2*float64(wins+losses)))
	}
	return GameStatistics{
		winningFraction: winningFraction,
		eloDifference:   eloDifference,
		los:             los,
	}
}

func FormatSummary(s Summary) string {
	var stat = computeStat(s.Wins, s.Losses, s.Draws)
	return fmt.Sprintf("+%v -%v =%v score %.1f%% elo %v los %.1f%%",
		s.Wins, s.Losses, s.Draws,
		100*stat.winningFraction, formatElo(stat.eloDifference), 100*stat.los)
}

// formatElo prints n/a when one side scored every point.
func formatElo(elo float64) string {
	if math.IsInf(elo, 0) || math.IsNaN(elo) {
		return "n/a"
	}
	return fmt.Sprintf("%.1f", elo)
}
