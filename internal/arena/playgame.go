package arena

import (
	"fmt"

	"github.com/notnil/chess"

	"github.com/walrusbot/walrus/pkg/board"
)

type gameInfo struct {
	opening        string
	engineAIsWhite bool
	gameNumber     int
}

type GameResult struct {
	GameNumber     int
	EngineAIsWhite bool
	Outcome        chess.Outcome
	Comment        string
	Plies          int
	PGN            string
}

// PlayGame plays one game from opening. Games longer than maxPlies are
// adjudicated as draws.
func PlayGame(white, black Player, opening string, maxPlies int) (GameResult, error) {
	var opt, err = chess.FEN(opening)
	if err != nil {
		return GameResult{}, err
	}
	var game = chess.NewGame(opt)
	game.AddTagPair("White", white.Name())
	game.AddTagPair("Black", black.Name())

	var comment string
	for game.Outcome() == chess.NoOutcome {
		if len(game.Moves()) >= maxPlies {
			comment = "max plies"
			if err := game.Draw(chess.DrawOffer); err != nil {
				return GameResult{}, err
			}
			break
		}
		var pos = board.FromChess(game.Position())
		var player = black
		if pos.WhiteToMove() {
			player = white
		}
		var move, err = player.ChooseMove(pos)
		if err != nil {
			return GameResult{}, fmt.Errorf("%v: %w", player.Name(), err)
		}
		if err := game.Move(move.(*board.Move).Chess()); err != nil {
			return GameResult{}, fmt.Errorf("%v: bad move %v: %w", player.Name(), move, err)
		}
		// claimable draws are claimed at once
		for _, method := range game.EligibleDraws() {
			if method != chess.DrawOffer {
				if err := game.Draw(method); err != nil {
					return GameResult{}, err
				}
				break
			}
		}
	}
	if comment == "" {
		comment = game.Method().String()
	}
	return GameResult{
		Outcome: game.Outcome(),
		Comment: comment,
		Plies:   len(game.Moves()),
		PGN:     game.String(),
	}, nil
}
