package index

import (
	"sort"

	"github.com/tml-format/go-tml/ast"
	"github.com/tml-format/go-tml/debug"
	"github.com/tml-format/go-tml/token"
)

type entry struct {
	node *ast.Node
	pos  token.Position
	size int
	ord  int
}

// Index answers "smallest node containing this point" queries over a
// parsed tree in near-constant time per line. It is built once per parse
// result and read-only thereafter; independent instances may be queried
// concurrently without coordination.
type Index struct {
	byLine   map[int][]entry
	comments []entry
}

// Build walks the tree once and registers every positioned node under each
// line its range spans. Comments additionally land in a separate list that
// queries check first. Attribute and Value nodes register twice when the
// contained value's span differs from the node's own, so queries landing
// inside the inner literal still resolve to the outer semantic node.
func Build(nodes []*ast.Node) *Index {
	ix := &Index{byLine: map[int][]entry{}}
	ord := 0
	for _, n := range nodes {
		ix.add(n, &ord)
	}
	for line := range ix.byLine {
		es := ix.byLine[line]
		sort.SliceStable(es, func(i, j int) bool {
			return es[i].size < es[j].size
		})
	}
	if debug.Index() {
		debug.Logf("index: %d lines, %d comments\n", len(ix.byLine), len(ix.comments))
	}
	return ix
}

func (ix *Index) add(n *ast.Node, ord *int) {
	if !n.Pos.IsZero() {
		e := entry{node: n, pos: n.Pos, size: n.Pos.Size(), ord: *ord}
		*ord++
		ix.register(e)
		if n.Kind == ast.CommentKind {
			ix.comments = append(ix.comments, e)
		}
	}
	if (n.Kind == ast.AttrKind || n.Kind == ast.ValueKind) &&
		n.Value != nil && !n.Value.Pos.IsZero() && n.Value.Pos != n.Pos {
		e := entry{node: n, pos: n.Value.Pos, size: n.Value.Pos.Size(), ord: *ord}
		*ord++
		ix.register(e)
	}
	for _, c := range n.Children {
		ix.add(c, ord)
	}
}

func (ix *Index) register(e entry) {
	for line := e.pos.Start.Line; line <= e.pos.End.Line; line++ {
		ix.byLine[line] = append(ix.byLine[line], e)
	}
}

// At returns the node under pt. A comment whose range contains pt wins
// outright; otherwise the smallest containing range on pt's line wins,
// ties broken by first-registered order. Nil when nothing contains pt.
func (ix *Index) At(pt token.Point) *ast.Node {
	for _, e := range ix.comments {
		if e.pos.Contains(pt) {
			return e.node
		}
	}
	var best *entry
	for i := range ix.byLine[pt.Line] {
		e := &ix.byLine[pt.Line][i]
		if !e.pos.Contains(pt) {
			continue
		}
		if best == nil || e.size < best.size ||
			(e.size == best.size && e.ord < best.ord) {
			best = e
		}
	}
	if best == nil {
		return nil
	}
	return best.node
}

// Find is the naive form of the positional query: a full traversal with
// the same comment-priority and smallest-range semantics as At. Both
// agree on output for the same input.
func Find(nodes []*ast.Node, pt token.Point) *ast.Node {
	var (
		comment *ast.Node
		best    *ast.Node
		bestSz  int
	)
	consider := func(n *ast.Node, pos token.Position) {
		if pos.IsZero() || !pos.Contains(pt) {
			return
		}
		if n.Kind == ast.CommentKind && comment == nil {
			comment = n
		}
		if sz := pos.Size(); best == nil || sz < bestSz {
			best = n
			bestSz = sz
		}
	}
	var walk func(n *ast.Node)
	walk = func(n *ast.Node) {
		consider(n, n.Pos)
		if (n.Kind == ast.AttrKind || n.Kind == ast.ValueKind) &&
			n.Value != nil && n.Value.Pos != n.Pos {
			consider(n, n.Value.Pos)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	if comment != nil {
		return comment
	}
	return best
}
