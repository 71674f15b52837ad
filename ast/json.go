package ast

import (
	"encoding/json"

	"github.com/tml-format/go-tml/token"
)

// The JSON projection is the interchange form of the tree, consumed by the
// convert and patch tooling. Projected trees re-parse back to structurally
// equal trees; Parent links are rebuilt by Hydrate, never serialized.

type nodeBase struct {
	Kind     Kind           `json:"kind"`
	Pos      *jsonPos       `json:"position,omitempty"`
	Name     string         `json:"name,omitempty"`
	Children []*Node        `json:"children,omitempty"`
	Key      string         `json:"key,omitempty"`
	Value    *Value         `json:"value,omitempty"`
	Multi    bool           `json:"multiline,omitempty"`
	Text     string         `json:"text,omitempty"`
	Line     bool           `json:"lineComment,omitempty"`
}

type valueBase struct {
	Type     Type     `json:"type"`
	Pos      *jsonPos `json:"position,omitempty"`
	String   *string  `json:"string,omitempty"`
	Number   *float64 `json:"number,omitempty"`
	Bool     *bool    `json:"bool,omitempty"`
	Fields   []*Field `json:"fields,omitempty"`
	Elements []*Value `json:"elements,omitempty"`
}

type jsonPos struct {
	StartLine int `json:"startLine"`
	StartCol  int `json:"startCol"`
	EndLine   int `json:"endLine"`
	EndCol    int `json:"endCol"`
}

func posOut(p token.Position) *jsonPos {
	if p.IsZero() {
		return nil
	}
	return &jsonPos{
		StartLine: p.Start.Line,
		StartCol:  p.Start.Col,
		EndLine:   p.End.Line,
		EndCol:    p.End.Col,
	}
}

func posIn(jp *jsonPos) token.Position {
	if jp == nil {
		return token.Position{}
	}
	var p token.Position
	p.Start.Line = jp.StartLine
	p.Start.Col = jp.StartCol
	p.End.Line = jp.EndLine
	p.End.Col = jp.EndCol
	return p
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(&nodeBase{
		Kind:     n.Kind,
		Pos:      posOut(n.Pos),
		Name:     n.Name,
		Children: n.Children,
		Key:      n.Key,
		Value:    n.Value,
		Multi:    n.Multiline,
		Text:     n.Text,
		Line:     n.LineComment,
	})
}

func (n *Node) UnmarshalJSON(d []byte) error {
	tmp := &nodeBase{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	n.Kind = tmp.Kind
	n.Pos = posIn(tmp.Pos)
	n.Name = tmp.Name
	n.Children = tmp.Children
	n.Key = tmp.Key
	n.Value = tmp.Value
	n.Multiline = tmp.Multi
	n.Text = tmp.Text
	n.LineComment = tmp.Line
	for _, c := range n.Children {
		c.Parent = n
	}
	if n.Value != nil {
		n.Value.Parent = n
	}
	return nil
}

func (v *Value) MarshalJSON() ([]byte, error) {
	base := &valueBase{
		Type:     v.Type,
		Pos:      posOut(v.Pos),
		Fields:   v.Fields,
		Elements: v.Elements,
	}
	switch v.Type {
	case StringType, CommentType:
		base.String = &v.String
	case NumberType:
		base.Number = &v.Number
	case BoolType:
		base.Bool = &v.Bool
	}
	return json.Marshal(base)
}

func (v *Value) UnmarshalJSON(d []byte) error {
	tmp := &valueBase{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	v.Type = tmp.Type
	v.Pos = posIn(tmp.Pos)
	v.Fields = tmp.Fields
	v.Elements = tmp.Elements
	if tmp.String != nil {
		v.String = *tmp.String
	}
	if tmp.Number != nil {
		v.Number = *tmp.Number
	}
	if tmp.Bool != nil {
		v.Bool = *tmp.Bool
	}
	return nil
}
