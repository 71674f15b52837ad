package parse

import (
	"testing"

	"github.com/tml-format/go-tml/ast"
)

func TestParseEmpty(t *testing.T) {
	for _, src := range []string{"", "\n", "  \n\t\n"} {
		if roots := Parse(src); len(roots) != 0 {
			t.Errorf("Parse(%q) = %d roots, want 0", src, len(roots))
		}
	}
}

func TestParseNesting(t *testing.T) {
	src := `server
  listener
    port=8080
  tls
sibling
`
	roots := Parse(src)
	if len(roots) != 2 {
		t.Fatalf("got %d roots, want 2", len(roots))
	}
	server := roots[0]
	if server.Name != "server" || len(server.Children) != 2 {
		t.Fatalf("server = %s with %d children", server.Name, len(server.Children))
	}
	listener := server.Children[0]
	if listener.Name != "listener" || len(listener.Children) != 1 {
		t.Fatalf("listener = %s with %d children", listener.Name, len(listener.Children))
	}
	port := listener.Children[0]
	if port.Kind != ast.AttrKind || port.Key != "port" || port.Value.Number != 8080 {
		t.Errorf("port = %+v", port)
	}
	if server.Children[1].Name != "tls" {
		t.Errorf("second child = %s, want tls", server.Children[1].Name)
	}
	if roots[1].Name != "sibling" {
		t.Errorf("roots[1] = %s, want sibling", roots[1].Name)
	}
	if listener.Parent != server || server.Parent != nil {
		t.Error("parent links not hydrated")
	}
}

func TestParseHeaderLine(t *testing.T) {
	roots := Parse("db host=localhost ro! :fallback // primary\n")
	if len(roots) != 1 {
		t.Fatalf("got %d roots", len(roots))
	}
	db := roots[0]
	if db.Name != "db" || len(db.Children) != 4 {
		t.Fatalf("db = %s with %d children", db.Name, len(db.Children))
	}
	host := db.Children[0]
	if host.Kind != ast.AttrKind || host.Key != "host" || host.Value.String != "localhost" {
		t.Errorf("host = %+v", host)
	}
	ro := db.Children[1]
	if ro.Kind != ast.AttrKind || ro.Key != "ro" || !ro.Value.Bool {
		t.Errorf("ro = %+v", ro)
	}
	val := db.Children[2]
	if val.Kind != ast.ValueKind || val.Value.String != "fallback" {
		t.Errorf("value = %+v", val)
	}
	com := db.Children[3]
	if com.Kind != ast.CommentKind || !com.LineComment || com.Text != "primary" {
		t.Errorf("comment = %+v", com)
	}
}

func TestParseDuplicateAttrs(t *testing.T) {
	roots := Parse("env set=a set=b\n")
	env := roots[0]
	if len(env.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(env.Children))
	}
	if env.Children[0].Value.String != "a" || env.Children[1].Value.String != "b" {
		t.Errorf("duplicate attrs not preserved in order: %+v", env.Children)
	}
}

func TestParseDollarHeader(t *testing.T) {
	roots := Parse("$replicas=3 env=prod\n")
	b := roots[0]
	if b.Name != "$replicas" {
		t.Fatalf("name = %q, want $replicas", b.Name)
	}
	if len(b.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(b.Children))
	}
	lead := b.Children[0]
	if lead.Kind != ast.AttrKind || lead.Key != "replicas" || lead.Value.Number != 3 {
		t.Errorf("leading attr = %+v", lead)
	}
	if b.Children[1].Key != "env" {
		t.Errorf("second attr = %+v", b.Children[1])
	}

	// a lone $name=value line is the same header shape
	roots = Parse("$replicas=3\n")
	if roots[0].Name != "$replicas" || roots[0].Children[0].Key != "replicas" {
		t.Errorf("lone $ header = %+v", roots[0])
	}
}

func TestParseInlineValue(t *testing.T) {
	roots := Parse("limits: { cpu: 2, mem: 512 }\n")
	limits := roots[0]
	if limits.Name != "limits" {
		t.Fatalf("name = %q", limits.Name)
	}
	vn := limits.BlockValue()
	if vn == nil || vn.Value.Type != ast.ObjectType {
		t.Fatalf("value = %+v", vn)
	}
	if got := vn.Value.Get("cpu"); got == nil || got.Number != 2 {
		t.Errorf("cpu = %+v", got)
	}
	if got := vn.Value.Get("mem"); got == nil || got.Number != 512 {
		t.Errorf("mem = %+v", got)
	}
}

func TestParseStandaloneValue(t *testing.T) {
	roots := Parse("steps\n  : build\n  : test\n")
	steps := roots[0]
	if len(steps.Children) != 2 {
		t.Fatalf("got %d children", len(steps.Children))
	}
	for i, want := range []string{"build", "test"} {
		c := steps.Children[i]
		if c.Kind != ast.ValueKind || c.Value.String != want {
			t.Errorf("child %d = %+v, want %q", i, c, want)
		}
	}
}

func TestParseMultilineValue(t *testing.T) {
	src := `text:
  line1
  line2
after
`
	roots := Parse(src)
	if len(roots) != 2 {
		t.Fatalf("got %d roots, want 2", len(roots))
	}
	text := roots[0]
	vn := text.BlockValue()
	if vn == nil || !vn.Multiline {
		t.Fatalf("value = %+v", vn)
	}
	if vn.Value.String != "line1\nline2" {
		t.Errorf("value = %q, want %q", vn.Value.String, "line1\nline2")
	}
	if roots[1].Name != "after" {
		t.Errorf("roots[1] = %s", roots[1].Name)
	}
}

func TestParseMultilineValueWithAttrs(t *testing.T) {
	src := `server host=x :
  line1
  line2
`
	roots := Parse(src)
	if len(roots) != 1 {
		t.Fatalf("got %d roots", len(roots))
	}
	server := roots[0]
	if len(server.Children) != 2 {
		t.Fatalf("got %d children", len(server.Children))
	}
	host := server.Children[0]
	if host.Kind != ast.AttrKind || host.Key != "host" || host.Value.String != "x" {
		t.Errorf("host = %+v", host)
	}
	vn := server.BlockValue()
	if vn == nil || !vn.Multiline {
		t.Fatalf("value = %+v", vn)
	}
	if vn.Value.String != "line1\nline2" {
		t.Errorf("value = %q, want %q", vn.Value.String, "line1\nline2")
	}
}

func TestParseValueAbsorption(t *testing.T) {
	// a `:value` token absorbs following bare tokens until an attribute
	// or comment token ends it
	roots := Parse("b :v w k=1\n")
	b := roots[0]
	if len(b.Children) != 2 {
		t.Fatalf("got %d children", len(b.Children))
	}
	vn := b.Children[0]
	if vn.Kind != ast.ValueKind || vn.Value.String != "v w" {
		t.Errorf("value = %+v", vn)
	}
	k := b.Children[1]
	if k.Kind != ast.AttrKind || k.Key != "k" || k.Value.Number != 1 {
		t.Errorf("attr = %+v", k)
	}
}

func TestParseMultilineObjectValue(t *testing.T) {
	src := `cfg:
  {
    a: 1,
    b: [1, 2]
  }
`
	vn := Parse(src)[0].BlockValue()
	if vn == nil || vn.Value.Type != ast.ObjectType {
		t.Fatalf("value = %+v", vn)
	}
	if got := vn.Value.Get("a"); got == nil || got.Number != 1 {
		t.Errorf("a = %+v", got)
	}
	b := vn.Value.Get("b")
	if b == nil || b.Type != ast.ArrayType || len(b.Elements) != 2 {
		t.Errorf("b = %+v", b)
	}
}

func TestParseBlockComment(t *testing.T) {
	src := `server
  /* multi
     line note */
  port=8080
`
	server := Parse(src)[0]
	if len(server.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(server.Children))
	}
	com := server.Children[0]
	if com.Kind != ast.CommentKind || com.LineComment {
		t.Fatalf("comment = %+v", com)
	}
	if com.Text != "multi\n     line note" {
		t.Errorf("text = %q", com.Text)
	}
	if com.Pos.Start.Line != 2 || com.Pos.End.Line != 3 {
		t.Errorf("span = %v", com.Pos)
	}
	if server.Children[1].Key != "port" {
		t.Errorf("attr lost after comment: %+v", server.Children[1])
	}
}

func TestParseUnterminatedBlockComment(t *testing.T) {
	src := "note /* never\ncloses\n"
	roots := Parse(src)
	// content before the opener parses first; the comment opens past the
	// block's column, so it nests under it
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(roots))
	}
	note := roots[0]
	if note.Name != "note" || len(note.Children) != 1 {
		t.Fatalf("note = %+v", note)
	}
	com := note.Children[0]
	if com.Kind != ast.CommentKind || com.Text != "never\ncloses" {
		t.Errorf("comment = %+v", com)
	}
}

func TestParseCommentAfterTerminator(t *testing.T) {
	src := `/* head
*/ tail: 7
`
	roots := Parse(src)
	if len(roots) != 2 {
		t.Fatalf("got %d roots, want 2", len(roots))
	}
	if roots[0].Kind != ast.CommentKind || roots[0].Text != "head" {
		t.Errorf("comment = %+v", roots[0])
	}
	tail := roots[1]
	if tail.Name != "tail" || tail.BlockValue().Value.Number != 7 {
		t.Errorf("tail = %+v", tail)
	}
}

func TestParseRepairBrace(t *testing.T) {
	src := "server port=8080\nbroken: { a: 1\n"
	roots := Parse(src)
	if len(roots) != 2 {
		t.Fatalf("got %d roots, want 2", len(roots))
	}
	if roots[0].Name != "server" {
		t.Errorf("roots[0] = %s", roots[0].Name)
	}
	vn := roots[1].BlockValue()
	if vn == nil || vn.Value.Type != ast.ObjectType {
		t.Fatalf("repaired value = %+v", vn)
	}
	if got := vn.Value.Get("a"); got == nil || got.Number != 1 {
		t.Errorf("a = %+v", got)
	}
}

func TestParseRepairQuote(t *testing.T) {
	roots := Parse(`name: "unterminated`)
	vn := roots[0].BlockValue()
	if vn == nil || vn.Value.Type != ast.StringType {
		t.Fatalf("repaired value = %+v", vn)
	}
	if vn.Value.String != "unterminated" {
		t.Errorf("value = %q", vn.Value.String)
	}
}

func TestParseSingleLineLiteralDoc(t *testing.T) {
	roots := Parse("{a: 1, b: two}")
	if len(roots) != 1 || roots[0].Kind != ast.ValueKind {
		t.Fatalf("roots = %+v", roots)
	}
	v := roots[0].Value
	if v.Type != ast.ObjectType || len(v.Fields) != 2 {
		t.Fatalf("value = %+v", v)
	}
}

func TestParseMaxDepth(t *testing.T) {
	src := "deep: [[[x]]]\n"
	vn := Parse(src, ParseMaxDepth(1))[0].BlockValue()
	arr := vn.Value
	if arr.Type != ast.ArrayType {
		t.Fatalf("outer = %+v", arr)
	}
	inner := arr.Elements[0]
	if inner.Type != ast.ArrayType {
		t.Fatalf("second level = %+v", inner)
	}
	// past the depth limit the text is kept as a string
	if got := inner.Elements[0]; got.Type != ast.StringType || got.String != "[x]" {
		t.Errorf("third level = %+v", got)
	}
}

func TestParseNoParents(t *testing.T) {
	roots := Parse("a\n  b\n", ParseParents(false))
	if roots[0].Children[0].Parent != nil {
		t.Error("parent set despite ParseParents(false)")
	}
}

func TestParseValueText(t *testing.T) {
	v := ParseValueText("\n  hello\n  world\n")
	if v.Type != ast.StringType || v.String != "hello\nworld" {
		t.Errorf("v = %+v", v)
	}
	v = ParseValueText("{n: 1}")
	if v.Type != ast.ObjectType {
		t.Errorf("v = %+v", v)
	}
	v = ParseValueText("")
	if v.Type != ast.StringType || v.String != "" {
		t.Errorf("v = %+v", v)
	}
}
