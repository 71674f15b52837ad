package index

import (
	"testing"

	"github.com/tml-format/go-tml/ast"
	"github.com/tml-format/go-tml/parse"
	"github.com/tml-format/go-tml/token"
)

func TestAtSmallestRange(t *testing.T) {
	// columns:  0123456789...
	src := "server port=8080\n"
	nodes := parse.Parse(src)
	ix := Build(nodes)

	if got := ix.At(token.Point{Line: 1, Col: 2}); got == nil || got.Name != "server" {
		t.Errorf("At(name) = %+v", got)
	}
	got := ix.At(token.Point{Line: 1, Col: 8})
	if got == nil || got.Kind != ast.AttrKind || got.Key != "port" {
		t.Errorf("At(attr) = %+v", got)
	}
	if got := ix.At(token.Point{Line: 1, Col: 40}); got != nil {
		t.Errorf("At(past end) = %+v", got)
	}
	if got := ix.At(token.Point{Line: 9, Col: 0}); got != nil {
		t.Errorf("At(no line) = %+v", got)
	}
}

func TestAtCommentPriority(t *testing.T) {
	src := `outer
  /* spans
     lines */
  inner
`
	nodes := parse.Parse(src)
	ix := Build(nodes)

	got := ix.At(token.Point{Line: 2, Col: 5})
	if got == nil || got.Kind != ast.CommentKind {
		t.Fatalf("At(comment body) = %+v", got)
	}
	if got := ix.At(token.Point{Line: 3, Col: 6}); got == nil || got.Kind != ast.CommentKind {
		t.Errorf("At(comment second line) = %+v", got)
	}
	if got := ix.At(token.Point{Line: 4, Col: 3}); got == nil || got.Name != "inner" {
		t.Errorf("At(inner) = %+v", got)
	}
}

func TestAtInnerValue(t *testing.T) {
	src := "cfg: {a: 1, b: 2}\n"
	nodes := parse.Parse(src)
	ix := Build(nodes)

	// a point inside the literal resolves to the value node, not the block
	got := ix.At(token.Point{Line: 1, Col: 7})
	if got == nil || got.Kind != ast.ValueKind {
		t.Errorf("At(inside literal) = %+v", got)
	}
	if got := ix.At(token.Point{Line: 1, Col: 1}); got == nil || got.Name != "cfg" {
		t.Errorf("At(name) = %+v", got)
	}
}

func TestFindAgreesWithAt(t *testing.T) {
	src := `server port=8080 // listener
  limits: { cpu: 2 }
  /* block
     comment */
  name=backend
`
	nodes := parse.Parse(src)
	ix := Build(nodes)
	for line := 1; line <= 6; line++ {
		for col := 0; col <= 30; col++ {
			pt := token.Point{Line: line, Col: col}
			a := ix.At(pt)
			f := Find(nodes, pt)
			if a != f {
				t.Errorf("At(%v) = %+v, Find = %+v", pt, a, f)
			}
		}
	}
}
