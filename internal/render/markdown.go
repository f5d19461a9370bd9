package render

import (
	"strings"

	"github.com/lazydocs/lazydocs/internal/markup"
	"github.com/lazydocs/lazydocs/internal/pymodel"
)

// Markdown renders the Markdown document: `#` headers for classes, `##`
// for method signatures, docstrings passed through as written.
type Markdown struct {
	body []string
}

func NewMarkdown() *Markdown { return &Markdown{} }

// Marker is a no-op: section markers only make sense in the LaTeX output,
// where the surrounding document has sectioning.
func (md *Markdown) Marker(string) {}

func (md *Markdown) Class(c *pymodel.Class) {
	md.body = append(md.body, "# "+c.Name)
	if len(c.Ancestors) > 0 {
		md.body = append(md.body, "Inherits from `"+c.Ancestors[0]+"`")
	}
	md.body = append(md.body, "doc: "+orNone(c.Doc))
}

func (md *Markdown) Method(m *pymodel.Method) {
	md.body = append(md.body,
		"## "+Signature(m, markup.StripPrefixes),
		orNone(m.Doc),
		"",
	)
}

func (md *Markdown) String() string { return strings.Join(md.body, "\n") }

// orNone substitutes the canonical absent-docstring text.
func orNone(doc string) string {
	if doc == "" {
		return "None"
	}
	return doc
}
