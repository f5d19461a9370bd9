package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/lazydocs/lazydocs/internal/pymodel"
)

func simpleModule() *pymodel.Module {
	return &pymodel.Module{
		Name: "example",
		Classes: []*pymodel.Class{
			{
				Name: "Foo",
				Methods: []*pymodel.Method{
					{Name: "bar", Params: []string{"x: int"}, Returns: "str", Doc: "Adds one to x."},
				},
			},
		},
	}
}

func TestMarkdownRendersClassAndMethod(t *testing.T) {
	out := Export([]*pymodel.Module{simpleModule()}, nil, NewMarkdown())

	wantOrder := []string{"# Foo", "doc: None", "## bar(x: int) -> str", "Adds one to x."}
	last := -1
	for _, want := range wantOrder {
		idx := indexAfter(out, want, last)
		require.GreaterOrEqual(t, idx, 0, "missing %q in:\n%s", want, out)
		last = idx
	}
}

func TestMarkdownInheritanceLine(t *testing.T) {
	mod := simpleModule()
	mod.Classes[0].Ancestors = []string{"Base", "object"}

	out := Export([]*pymodel.Module{mod}, nil, NewMarkdown())
	assert.Contains(t, out, "Inherits from `Base`")
	assert.NotContains(t, out, "object")
}

func TestMarkdownIgnoresMarkers(t *testing.T) {
	out := Export([]*pymodel.Module{simpleModule()}, map[string]string{"Foo": "Section One"}, NewMarkdown())
	assert.NotContains(t, out, "Section One")
}

// TestMarkdownHeadingStructure parses the emitted document and checks the
// heading hierarchy survives a real Markdown parser.
func TestMarkdownHeadingStructure(t *testing.T) {
	out := Export([]*pymodel.Module{simpleModule()}, nil, NewMarkdown())

	src := []byte(out)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	type heading struct {
		level int
		text  string
	}
	var headings []heading
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok {
			headings = append(headings, heading{h.Level, string(h.Text(src))})
		}
	}

	require.Len(t, headings, 2)
	assert.Equal(t, heading{1, "Foo"}, headings[0])
	assert.Equal(t, 2, headings[1].level)
	assert.Contains(t, headings[1].text, "bar(x: int) -> str")
}

func indexAfter(s, sub string, after int) int {
	for i := after + 1; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
