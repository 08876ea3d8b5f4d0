package engine

import (
	"time"

	. "github.com/walrusbot/walrus/pkg/common"
)

// Result is the outcome of searching one node. Score is relative to the side
// to move at that node. MatePlies is 0 unless a forced mate was found below.
type Result struct {
	Line      []Move
	Score     int
	MatePlies int
	Nodes     int64
}

func (r Result) PV() string {
	return LineString(r.Line)
}

type searcher struct {
	maxDepth  int
	evaluator IEvaluator
	reporter  Reporter
	start     time.Time
	// visit, if set, sees the window of every node entered
	visit func(alpha, beta, depth int)
}

// search is fail-hard negamax with alpha-beta pruning. Moves are tried in
// generator order.
func (s *searcher) search(p Position, alpha, beta, depth int) Result {
	if s.visit != nil {
		s.visit(alpha, beta, depth)
	}
	if depth == s.maxDepth {
		return Result{Score: s.evaluator.Evaluate(p), Nodes: 1}
	}

	var ml = p.GenerateMoves()
	if len(ml) == 0 {
		if p.IsCheck() {
			return Result{Score: -Checkmate, MatePlies: 1, Nodes: 1}
		}
		return Result{Score: valueDraw, Nodes: 1}
	}

	var rootNode = depth == 0
	var (
		nodes    int64
		bestLine []Move
		bestMate int
	)

	for i, move := range ml {
		if rootNode {
			s.reporter.CurrentMove(i, move)
		}
		var child = s.search(p.MakeMove(move), -beta, -alpha, depth+1)
		nodes += child.Nodes
		var score = -child.Score

		if score >= beta {
			return Result{
				Line:      prependMove(move, child.Line),
				Score:     beta,
				MatePlies: nextPly(bestMate),
				Nodes:     nodes,
			}
		}

		// an equal mate score still wins if it mates sooner
		var shorterMate = child.Score == -Checkmate &&
			bestMate != 0 && child.MatePlies != 0 &&
			child.MatePlies < bestMate

		if score > alpha || shorterMate {
			alpha = score
			bestMate = child.MatePlies
			bestLine = prependMove(move, child.Line)
			if rootNode {
				s.reporter.BestLine(SearchInfo{
					Depth:    s.maxDepth,
					Score:    newUciScore(score, bestMate),
					Nodes:    nodes,
					Time:     time.Since(s.start),
					MainLine: bestLine,
				})
			}
		}
	}

	return Result{
		Line:      bestLine,
		Score:     alpha,
		MatePlies: nextPly(bestMate),
		Nodes:     nodes,
	}
}
