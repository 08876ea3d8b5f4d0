package engine

import (
	. "github.com/walrusbot/walrus/pkg/common"
)

// treeNode is a hand-built game tree used as a Position in tests.
type treeNode struct {
	name     string
	value    int
	check    bool
	children []*treeNode
	counter  *treeCounter
}

type treeCounter struct {
	evaluations int
	terminals   int
}

type treeMove struct {
	child *treeNode
}

func (m treeMove) String() string    { return m.child.name }
func (m treeMove) IsCapture() bool   { return false }
func (m treeMove) IsCastle() bool    { return false }
func (m treeMove) GivesCheck() bool  { return m.child.check }
func (m treeMove) IsPromotion() bool { return false }

func (n *treeNode) GenerateMoves() []Move {
	var ml = make([]Move, len(n.children))
	for i, child := range n.children {
		ml[i] = treeMove{child: child}
	}
	return ml
}

func (n *treeNode) MakeMove(m Move) Position {
	return m.(treeMove).child
}

func (n *treeNode) IsCheck() bool {
	n.counter.terminals++
	return n.check
}

func (n *treeNode) WhiteToMove() bool    { return true }
func (n *treeNode) PieceOn(sq int) Piece { return PieceNone }

// treeEvaluator returns the stored value of a tree node.
type treeEvaluator struct{}

func (treeEvaluator) Evaluate(p Position) int {
	var n = p.(*treeNode)
	n.counter.evaluations++
	return n.value
}

// buildTree makes a uniform tree. Leaves get distinct values from leafValue.
func buildTree(branching, depth int, counter *treeCounter) *treeNode {
	var leaf = 0
	var build func(name string, d int) *treeNode
	build = func(name string, d int) *treeNode {
		var n = &treeNode{name: name, counter: counter}
		if d == depth {
			n.value = leafValue(leaf)
			leaf++
			return n
		}
		for i := 0; i < branching; i++ {
			n.children = append(n.children, build(name+string(rune('a'+i)), d+1))
		}
		return n
	}
	return build("", 0)
}

func leafValue(i int) int {
	return (i*37)%101 - 50
}

// fullWidth is plain negamax without pruning. Ties keep the first move.
func fullWidth(n *treeNode, depth, maxDepth int) (int, []string) {
	if depth == maxDepth {
		return n.value, nil
	}
	if len(n.children) == 0 {
		if n.check {
			return -Checkmate, nil
		}
		return 0, nil
	}
	var best = -valueInfinity
	var line []string
	for _, child := range n.children {
		var score, childLine = fullWidth(child, depth+1, maxDepth)
		score = -score
		if score > best {
			best = score
			line = append([]string{child.name}, childLine...)
		}
	}
	return best, line
}

func lineNames(line []Move) []string {
	var result []string
	for _, m := range line {
		result = append(result, m.String())
	}
	return result
}
