package parse

type parseOpts struct {
	parents  bool
	maxDepth int
}

func defaultOpts() *parseOpts {
	return &parseOpts{
		parents:  true,
		maxDepth: 64,
	}
}

type ParseOption func(*parseOpts)

// ParseParents controls whether parent back-references are hydrated after
// parsing. On by default.
func ParseParents(v bool) ParseOption {
	return func(o *parseOpts) { o.parents = v }
}

// ParseMaxDepth bounds structured-value recursion; literals nested deeper
// fall back to String values. The source grammar imposes no limit of its
// own.
func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
