package arena

import (
	"errors"
	"fmt"

	"lukechampine.com/frand"

	"github.com/walrusbot/walrus/pkg/board"
	"github.com/walrusbot/walrus/pkg/common"
	"github.com/walrusbot/walrus/pkg/engine"
)

var errNoMoves = errors.New("no legal moves")

type Player interface {
	Name() string
	ChooseMove(p *board.Position) (common.Move, error)
}

type EnginePlayer struct {
	engine *engine.Engine
}

func NewEnginePlayer(depth int) *EnginePlayer {
	return &EnginePlayer{
		engine: engine.NewEngine(engine.Options{Depth: depth}),
	}
}

func (pl *EnginePlayer) Name() string {
	return fmt.Sprintf("Walrus depth %v", pl.engine.Options.Depth)
}

func (pl *EnginePlayer) ChooseMove(p *board.Position) (common.Move, error) {
	var si = pl.engine.Search(common.SearchParams{Position: p})
	if len(si.MainLine) == 0 {
		return nil, errNoMoves
	}
	return si.MainLine[0], nil
}

// RandomPlayer picks a legal move uniformly at random.
type RandomPlayer struct{}

func (RandomPlayer) Name() string {
	return "Random"
}

func (RandomPlayer) ChooseMove(p *board.Position) (common.Move, error) {
	var ml = p.GenerateMoves()
	if len(ml) == 0 {
		return nil, errNoMoves
	}
	return ml[frand.Intn(len(ml))], nil
}
