package ast

import (
	"testing"

	"github.com/tml-format/go-tml/token"
)

func testTree() *Node {
	root := NewBlock("server", token.At(1, 0, 6))
	root.Append(NewAttr("port", FromNumber(8080), token.At(1, 7, 16)))
	root.Append(NewAttr("port", FromNumber(9090), token.At(1, 17, 26)))
	inner := NewBlock("tls", token.At(2, 2, 5))
	inner.Append(NewAttr("on", FromBool(true), token.At(2, 6, 9)))
	root.Append(inner)
	root.Append(NewValue(FromString("fallback"), token.At(3, 2, 12)))
	root.Append(NewComment("note", true, token.At(4, 2, 9)))
	Hydrate([]*Node{root})
	return root
}

func TestAttrFirstWins(t *testing.T) {
	root := testTree()
	a := root.Attr("port")
	if a == nil || a.Value.Number != 8080 {
		t.Errorf("Attr(port) = %+v", a)
	}
	if root.Attr("missing") != nil {
		t.Error("Attr(missing) != nil")
	}
}

func TestBlocksAndValue(t *testing.T) {
	root := testTree()
	bs := root.Blocks()
	if len(bs) != 1 || bs[0].Name != "tls" {
		t.Errorf("Blocks = %+v", bs)
	}
	v := root.BlockValue()
	if v == nil || v.Value.String != "fallback" {
		t.Errorf("BlockValue = %+v", v)
	}
}

func TestHydrateAndRoot(t *testing.T) {
	root := testTree()
	tls := root.Blocks()[0]
	on := tls.Attr("on")
	if on.Parent != tls || tls.Parent != root {
		t.Error("parent links wrong")
	}
	if on.Value.Parent != on {
		t.Error("value parent link wrong")
	}
	if on.Root() != root || root.Root() != root {
		t.Error("Root() wrong")
	}
}

func TestVisitOrder(t *testing.T) {
	root := testTree()
	var pre, post []string
	err := root.Visit(func(n *Node, isPost bool) (bool, error) {
		label := n.Kind.String()
		if n.Kind == BlockKind {
			label = n.Name
		}
		if isPost {
			post = append(post, label)
		} else {
			pre = append(pre, label)
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(pre) != 7 || len(post) != 7 {
		t.Fatalf("pre %d post %d visits", len(pre), len(post))
	}
	if pre[0] != "server" || pre[3] != "tls" {
		t.Errorf("pre order = %v", pre)
	}
	if post[len(post)-1] != "server" {
		t.Errorf("post order = %v", post)
	}
}

func TestVisitSkip(t *testing.T) {
	root := testTree()
	count := 0
	err := root.Visit(func(n *Node, isPost bool) (bool, error) {
		if !isPost {
			count++
		}
		// don't dive below the root
		return n == root, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if count != 6 {
		t.Errorf("visited %d nodes, want 6", count)
	}
}
