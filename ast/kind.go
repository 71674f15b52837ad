package ast

import "fmt"

// Kind discriminates the syntactic forms a Node can take.
type Kind int

const (
	BlockKind Kind = iota
	AttrKind
	ValueKind
	CommentKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		BlockKind:   "Block",
		AttrKind:    "Attribute",
		ValueKind:   "Value",
		CommentKind: "Comment",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Block":     BlockKind,
		"Attribute": AttrKind,
		"Value":     ValueKind,
		"Comment":   CommentKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{BlockKind, AttrKind, ValueKind, CommentKind}
}
