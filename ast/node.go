package ast

import (
	"github.com/tml-format/go-tml/token"
)

// Node is one entry in a parsed document tree. It is a tagged union over
// the four syntactic forms, discriminated by Kind; values are placed in
// fields depending on the kind.
type Node struct {
	Kind Kind
	Pos  token.Position

	// Parent is a lookup-only back-reference to the enclosing Block,
	// populated by Hydrate. It is never required for parsing or
	// encoding and nil for roots.
	Parent *Node `json:"-"`

	// BlockKind: the block name and its children, in source order.
	// Children interleaves attributes, nested blocks, at most one value
	// node and comments. Duplicate attribute keys are preserved.
	Name     string
	Children []*Node

	// AttrKind: key of a `key=value` or `key!` attribute.
	Key string

	// AttrKind and ValueKind: the held value.
	Value *Value

	// ValueKind: whether the value was collected from indented lines
	// following a bare trailing colon.
	Multiline bool

	// CommentKind: comment text without its delimiters. LineComment
	// distinguishes `//` comments from `/* */` comments.
	Text        string
	LineComment bool
}

// NewBlock returns a BlockKind node with no children.
func NewBlock(name string, pos token.Position) *Node {
	return &Node{Kind: BlockKind, Name: name, Pos: pos}
}

// NewAttr returns an AttrKind node holding v.
func NewAttr(key string, v *Value, pos token.Position) *Node {
	return &Node{Kind: AttrKind, Key: key, Value: v, Pos: pos}
}

// NewValue returns a ValueKind node holding v.
func NewValue(v *Value, pos token.Position) *Node {
	return &Node{Kind: ValueKind, Value: v, Pos: pos}
}

// NewComment returns a CommentKind node. line marks a `//` comment.
func NewComment(text string, line bool, pos token.Position) *Node {
	return &Node{Kind: CommentKind, Text: text, LineComment: line, Pos: pos}
}

// Append adds child to n's children, preserving source order.
func (n *Node) Append(child *Node) {
	n.Children = append(n.Children, child)
}

// BlockValue returns the first ValueKind child of a block, or nil.
func (n *Node) BlockValue() *Node {
	for _, c := range n.Children {
		if c.Kind == ValueKind {
			return c
		}
	}
	return nil
}

// Attr returns the first AttrKind child keyed key, or nil. Duplicate keys
// are legal; later duplicates are reachable through Children.
func (n *Node) Attr(key string) *Node {
	for _, c := range n.Children {
		if c.Kind == AttrKind && c.Key == key {
			return c
		}
	}
	return nil
}

// Blocks returns the BlockKind children of n in source order.
func (n *Node) Blocks() []*Node {
	var res []*Node
	for _, c := range n.Children {
		if c.Kind == BlockKind {
			res = append(res, c)
		}
	}
	return res
}

// Visit walks n and its descendants pre- and post-order. f is called with
// isPost=false before children and isPost=true after; returning false from
// the pre call skips the children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// Root follows Parent links to the tree root. It requires hydration and
// returns n itself for roots or unhydrated nodes.
func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
