package ast

// Hydrate decorates a parsed tree with lookup-only parent back-references:
// each node's Parent becomes its enclosing Block, and the Value held by an
// Attribute or Value node points back at that node. Hydration never
// changes structure and parsing and encoding do not depend on it.
func Hydrate(roots []*Node) {
	for _, root := range roots {
		hydrate(root, nil)
	}
}

func hydrate(n *Node, parent *Node) {
	n.Parent = parent
	if n.Value != nil {
		n.Value.Parent = n
	}
	for _, c := range n.Children {
		hydrate(c, n)
	}
}
