package ast

import (
	"fmt"
	"strconv"

	"github.com/tml-format/go-tml/token"
)

// Type discriminates the value forms.
type Type int

const (
	StringType Type = iota
	NumberType
	BoolType
	ObjectType
	ArrayType
	// CommentType marks comment entries interleaved among object fields
	// and array elements, preserving round-trippable layout.
	CommentType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		StringType:  "String",
		NumberType:  "Number",
		BoolType:    "Bool",
		ObjectType:  "Object",
		ArrayType:   "Array",
		CommentType: "Comment",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"String":  StringType,
		"Number":  NumberType,
		"Bool":    BoolType,
		"Object":  ObjectType,
		"Array":   ArrayType,
		"Comment": CommentType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{StringType, NumberType, BoolType, ObjectType, ArrayType, CommentType}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}

// Value is a typed literal: a scalar, or an object/array of nested values.
type Value struct {
	Type Type
	Pos  token.Position

	// Parent is a lookup-only back-reference to the Attribute or Value
	// node holding this value, populated by Hydrate. Nil for values
	// nested inside other values.
	Parent *Node `json:"-"`

	String string // StringType text; CommentType comment text
	Number float64
	Bool   bool

	// ObjectType entries in source order. A comment entry is a Field
	// with an empty key and a CommentType value.
	Fields []*Field
	// ArrayType elements in source order; CommentType values are
	// interleaved comments.
	Elements []*Value
}

// Field is one `key: value` pair of an object literal.
type Field struct {
	Key   string         `json:"key,omitempty"`
	Value *Value         `json:"value,omitempty"`
	Pos   token.Position `json:"position"`
}

// IsComment reports whether f is an interleaved comment entry.
func (f *Field) IsComment() bool {
	return f.Value != nil && f.Value.Type == CommentType
}

func FromString(v string) *Value {
	return &Value{Type: StringType, String: v}
}

func FromNumber(f float64) *Value {
	return &Value{Type: NumberType, Number: f}
}

func FromBool(b bool) *Value {
	return &Value{Type: BoolType, Bool: b}
}

func CommentValue(text string) *Value {
	return &Value{Type: CommentType, String: text}
}

// Get returns the value of the first field keyed key, or nil.
func (v *Value) Get(key string) *Value {
	if v.Type != ObjectType {
		return nil
	}
	for _, f := range v.Fields {
		if !f.IsComment() && f.Key == key {
			return f.Value
		}
	}
	return nil
}

// Text renders a scalar value as source-shaped text. Composite values
// report their arity.
func (v *Value) Text() string {
	switch v.Type {
	case StringType, CommentType:
		return v.String
	case NumberType:
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	case BoolType:
		return strconv.FormatBool(v.Bool)
	case ObjectType:
		return fmt.Sprintf("{%d fields}", len(v.Fields))
	case ArrayType:
		return fmt.Sprintf("[%d elements]", len(v.Elements))
	}
	return ""
}
