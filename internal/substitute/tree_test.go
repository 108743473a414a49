package substitute_test

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"decoder/internal/domain"
	"decoder/internal/substitute"
)

var treeDict = domain.Mapping{"亜": "a", "伊": "i"}

func parse(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func render(t *testing.T, n *html.Node) string {
	t.Helper()
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestDocument_TextAndAttributes(t *testing.T) {
	doc := parse(t, `<html><head><title>亜</title></head><body>
<p title="亜伊">亜 text</p>
<img alt="伊" src="亜.png">
<input placeholder="亜" value="亜">
</body></html>`)

	changed := substitute.Document(doc, treeDict)
	out := render(t, doc)

	for _, want := range []string{
		`<p title="ai">a text</p>`,
		`alt="i"`,
		`src="亜.png"`,
		`placeholder="a"`,
		`value="亜"`,
		`<title>亜</title>`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if changed != 4 {
		t.Fatalf("changed = %d, want 4", changed)
	}
}

func TestDocument_ExcludedSubtrees(t *testing.T) {
	doc := parse(t, `<body>
<script>var s = "亜";</script>
<style>.亜 { content: "伊"; }</style>
<noscript><img alt="亜" title="伊">亜</noscript>
<div>亜</div>
</body>`)

	substitute.Document(doc, treeDict)
	out := render(t, doc)

	for _, want := range []string{
		`var s = "亜";`,
		`.亜 { content: "伊"; }`,
		`<div>a</div>`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, `alt="a"`) || strings.Contains(out, `title="i"`) {
		t.Fatalf("noscript subtree was rewritten:\n%s", out)
	}
}

func TestTree_ExcludedElementAttributesUntouched(t *testing.T) {
	n := &html.Node{
		Type: html.ElementNode,
		Data: "NOSCRIPT",
		Attr: []html.Attribute{{Key: "title", Val: "亜"}},
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: "亜"})

	if got := substitute.Tree(n, treeDict); got != 0 {
		t.Fatalf("changed = %d, want 0", got)
	}
	if n.Attr[0].Val != "亜" || n.FirstChild.Data != "亜" {
		t.Fatal("excluded element was rewritten")
	}
}

func TestTree_UnchangedNodesKeepTheirStrings(t *testing.T) {
	n := &html.Node{Type: html.TextNode, Data: "nothing to do"}
	if got := substitute.Tree(n, treeDict); got != 0 {
		t.Fatalf("changed = %d, want 0", got)
	}
}

func TestTree_OtherNodesIgnored(t *testing.T) {
	n := &html.Node{Type: html.CommentNode, Data: "亜"}
	if got := substitute.Tree(n, treeDict); got != 0 || n.Data != "亜" {
		t.Fatalf("comment node rewritten: %q", n.Data)
	}
}

func TestDocument_Deterministic(t *testing.T) {
	src := `<body><ul title="亜"><li alt="伊">亜</li><li>伊</li></ul></body>`
	a := parse(t, src)
	b := parse(t, src)
	substitute.Document(a, treeDict)
	substitute.Document(b, treeDict)
	if render(t, a) != render(t, b) {
		t.Fatal("two runs over the same input differ")
	}
}

func TestProgram_Native(t *testing.T) {
	p := substitute.Program()
	if p.Name != substitute.ProgramName || p.JS == "" || p.Native == nil {
		t.Fatalf("incomplete program: %+v", p.Name)
	}

	doc := parse(t, `<body><p>亜</p></body>`)
	if err := p.Native(doc, []any{treeDict}); err != nil {
		t.Fatalf("native: %v", err)
	}
	if out := render(t, doc); !strings.Contains(out, "<p>a</p>") {
		t.Fatalf("native run did not substitute:\n%s", out)
	}

	if err := p.Native(doc, nil); err == nil {
		t.Fatal("expected error without dictionary")
	}
	if err := p.Native(doc, []any{42}); err == nil {
		t.Fatal("expected error for wrong argument type")
	}
}
