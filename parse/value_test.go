package parse

import (
	"testing"

	"github.com/tml-format/go-tml/ast"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var valueCmpOpts = []cmp.Option{
	cmpopts.IgnoreFields(ast.Value{}, "Pos", "Parent"),
	cmpopts.IgnoreFields(ast.Field{}, "Pos"),
	cmpopts.EquateEmpty(),
}

func obj(fields ...*ast.Field) *ast.Value {
	return &ast.Value{Type: ast.ObjectType, Fields: fields}
}

func arr(elems ...*ast.Value) *ast.Value {
	return &ast.Value{Type: ast.ArrayType, Elements: elems}
}

func field(k string, v *ast.Value) *ast.Field {
	return &ast.Field{Key: k, Value: v}
}

func str(s string) *ast.Value  { return ast.FromString(s) }
func num(f float64) *ast.Value { return ast.FromNumber(f) }

func TestValueScalars(t *testing.T) {
	tests := []struct {
		in   string
		want *ast.Value
	}{
		{"true", ast.FromBool(true)},
		{"false", ast.FromBool(false)},
		{"42", num(42)},
		{"-2.5e3", num(-2500)},
		{"hello", str("hello")},
		{`"quoted text"`, str("quoted text")},
		{"True", str("True")},
		{"1.2.3", str("1.2.3")},
	}
	for _, tc := range tests {
		got := ParseValueText(tc.in)
		if d := cmp.Diff(tc.want, got, valueCmpOpts...); d != "" {
			t.Errorf("ParseValueText(%q): (-want +got):\n%s", tc.in, d)
		}
	}
}

func TestValueObjects(t *testing.T) {
	tests := []struct {
		in   string
		want *ast.Value
	}{
		{
			in:   "{}",
			want: obj(),
		},
		{
			in:   "{a: 1, b: two}",
			want: obj(field("a", num(1)), field("b", str("two"))),
		},
		{
			// commas are optional
			in:   "{a: 1 b: 2}",
			want: obj(field("a", num(1)), field("b", num(2))),
		},
		{
			in:   `{"quoted key": x}`,
			want: obj(field("quoted key", str("x"))),
		},
		{
			in:   "{outer: {inner: [1, 2]}}",
			want: obj(field("outer", obj(field("inner", arr(num(1), num(2)))))),
		},
		{
			// value containing a colon stays one value
			in:   `{url: "http://x/y", n: 1}`,
			want: obj(field("url", str("http://x/y")), field("n", num(1))),
		},
		{
			// dangling key gets an empty string value
			in:   "{a: 1, b}",
			want: obj(field("a", num(1)), field("b", str(""))),
		},
		{
			in: "{a: 1 /* note */ b: 2}",
			want: obj(
				field("a", num(1)),
				&ast.Field{Value: ast.CommentValue("note")},
				field("b", num(2)),
			),
		},
		{
			in: "{a: 1 // trailing\n b: 2}",
			want: obj(
				field("a", num(1)),
				&ast.Field{Value: ast.CommentValue("trailing")},
				field("b", num(2)),
			),
		},
	}
	for _, tc := range tests {
		got := ParseValueText(tc.in)
		if d := cmp.Diff(tc.want, got, valueCmpOpts...); d != "" {
			t.Errorf("ParseValueText(%q): (-want +got):\n%s", tc.in, d)
		}
	}
}

func TestValueArrays(t *testing.T) {
	tests := []struct {
		in   string
		want *ast.Value
	}{
		{
			in:   "[]",
			want: arr(),
		},
		{
			in:   "[1, 2, 3]",
			want: arr(num(1), num(2), num(3)),
		},
		{
			// spaces separate too
			in:   "[1 2 3]",
			want: arr(num(1), num(2), num(3)),
		},
		{
			in:   "[a, [b, c], {k: v}]",
			want: arr(str("a"), arr(str("b"), str("c")), obj(field("k", str("v")))),
		},
		{
			in:   `["two words", plain]`,
			want: arr(str("two words"), str("plain")),
		},
		{
			in:   "[1, /* gap */ 2]",
			want: arr(num(1), ast.CommentValue("gap"), num(2)),
		},
	}
	for _, tc := range tests {
		got := ParseValueText(tc.in)
		if d := cmp.Diff(tc.want, got, valueCmpOpts...); d != "" {
			t.Errorf("ParseValueText(%q): (-want +got):\n%s", tc.in, d)
		}
	}
}

func TestValueUnterminatedComment(t *testing.T) {
	tests := []struct {
		in   string
		want *ast.Value
	}{
		{
			// a `/*` with no `*/` is ordinary value text
			in:   "{a: b /* c}",
			want: obj(field("a", str("b /* c"))),
		},
		{
			in:   "{a: b /* c, d: 1}",
			want: obj(field("a", str("b /* c")), field("d", num(1))),
		},
		{
			in:   "[x /*y]",
			want: arr(str("x"), str("/*y")),
		},
	}
	for _, tc := range tests {
		got := ParseValueText(tc.in)
		if d := cmp.Diff(tc.want, got, valueCmpOpts...); d != "" {
			t.Errorf("ParseValueText(%q): (-want +got):\n%s", tc.in, d)
		}
	}
}

func TestValuePositions(t *testing.T) {
	roots := Parse("cfg: {a: 1}\n")
	vn := roots[0].BlockValue()
	v := vn.Value
	if v.Pos.Start.Line != 1 {
		t.Errorf("object line = %d", v.Pos.Start.Line)
	}
	if v.Pos.Start.Col != 5 {
		t.Errorf("object col = %d, want 5", v.Pos.Start.Col)
	}
	f := v.Fields[0]
	if f.Pos.Start.Col != 6 {
		t.Errorf("field col = %d, want 6", f.Pos.Start.Col)
	}
}

func TestValueMultilinePositions(t *testing.T) {
	src := `cfg:
  {
    a: 1
  }
`
	v := Parse(src)[0].BlockValue().Value
	if v.Type != ast.ObjectType {
		t.Fatalf("v = %+v", v)
	}
	f := v.Fields[0]
	if f.Pos.Start.Line != 3 {
		t.Errorf("field line = %d, want 3", f.Pos.Start.Line)
	}
	if f.Pos.Start.Col != 4 {
		t.Errorf("field col = %d, want 4", f.Pos.Start.Col)
	}
}
