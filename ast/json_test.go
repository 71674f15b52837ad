package ast

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestJSONRoundTrip(t *testing.T) {
	root := testTree()
	obj := &Value{Type: ObjectType, Fields: []*Field{
		{Key: "a", Value: FromNumber(1)},
		{Value: CommentValue("gap")},
		{Key: "b", Value: &Value{Type: ArrayType, Elements: []*Value{
			FromString("x"), FromBool(false),
		}}},
	}}
	root.Append(NewValue(obj, root.Pos))

	d, err := json.Marshal([]*Node{root})
	if err != nil {
		t.Fatal(err)
	}
	var back []*Node
	if err := json.Unmarshal(d, &back); err != nil {
		t.Fatal(err)
	}
	opts := []cmp.Option{
		cmpopts.IgnoreFields(Node{}, "Parent"),
		cmpopts.IgnoreFields(Value{}, "Parent"),
		cmpopts.EquateEmpty(),
	}
	if diff := cmp.Diff([]*Node{root}, back, opts...); diff != "" {
		t.Errorf("round trip (-orig +back):\n%s", diff)
	}
	// parent links are rebuilt, not serialized
	if back[0].Children[0].Parent != back[0] {
		t.Error("child parent not rebuilt")
	}
}

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Kind
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != k {
			t.Errorf("kind %s round-tripped to %s", k, back)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("bogus")); err == nil {
		t.Error("bogus kind accepted")
	}
}

func TestTypeText(t *testing.T) {
	for _, ty := range Types() {
		d, err := ty.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != ty {
			t.Errorf("type %s round-tripped to %s", ty, back)
		}
	}
}
