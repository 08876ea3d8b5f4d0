package engine

import (
	"time"

	. "github.com/walrusbot/walrus/pkg/common"
	"github.com/walrusbot/walrus/pkg/eval/pesto"
)

type IEvaluator interface {
	Evaluate(p Position) int
}

// Engine runs fixed-depth searches. Options may be changed between searches,
// each search works on its own copy.
type Engine struct {
	Options   Options
	evaluator IEvaluator
}

func NewEngine(options Options) *Engine {
	return NewEngineWithEvaluator(options, pesto.NewEvaluationService())
}

func NewEngineWithEvaluator(options Options, evaluator IEvaluator) *Engine {
	return &Engine{
		Options:   options,
		evaluator: evaluator,
	}
}

func (e *Engine) Evaluate(p Position) int {
	return e.evaluator.Evaluate(p)
}

// SearchWindow searches p, found depth plies below the root, within the
// window (alpha, beta). The reporter only sees events when depth is 0.
func (e *Engine) SearchWindow(p Position, alpha, beta, depth int, reporter Reporter) Result {
	var s = e.newSearcher(e.Options.depth(0), reporter)
	return s.search(p, alpha, beta, depth)
}

func (e *Engine) Search(searchParams SearchParams) SearchInfo {
	var s = e.newSearcher(e.Options.depth(searchParams.Depth), searchParams.Reporter)
	var r = s.search(searchParams.Position, -valueInfinity, valueInfinity, 0)
	return SearchInfo{
		Depth: s.maxDepth,
		// the root's own move is not part of the reported distance
		Score:    newUciScore(r.Score, r.MatePlies-1),
		Nodes:    r.Nodes,
		Time:     time.Since(s.start),
		MainLine: r.Line,
	}
}

func (e *Engine) newSearcher(depth int, reporter Reporter) *searcher {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &searcher{
		maxDepth:  depth,
		evaluator: e.evaluator,
		reporter:  reporter,
		start:     time.Now(),
	}
}
