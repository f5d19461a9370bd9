package render

import (
	"strings"

	"github.com/lazydocs/lazydocs/internal/docstring"
	"github.com/lazydocs/lazydocs/internal/markup"
	"github.com/lazydocs/lazydocs/internal/pymodel"
)

// Latex renders the LaTeX document fragment. The output relies on the
// surrounding document defining \classname, \methodname and the example
// environment.
type Latex struct {
	body []string
}

func NewLatex() *Latex { return &Latex{} }

func (l *Latex) Marker(title string) {
	l.body = append(l.body,
		`\vspace{10mm}`,
		`\subsection{`+title+`}`,
		"\n",
		`\vspace{-12mm}`,
	)
}

func (l *Latex) Class(c *pymodel.Class) {
	l.body = append(l.body,
		`\vspace{15mm}`,
		`\classname{`+c.Name+`}\vspace{3mm}\newline`,
	)
	if len(c.Ancestors) > 0 {
		l.body = append(l.body, `\textbf{Inherits from `+markup.ToLatex(c.Ancestors[0])+`}\newline`)
	}
	l.body = append(l.body, docToLatex(c.Doc))
}

func (l *Latex) Method(m *pymodel.Method) {
	l.body = append(l.body,
		`\vspace{8mm}`,
		`\methodname{`+Signature(m, markup.Latex)+`}\vspace{2mm}\newline`,
		docToLatex(m.Doc),
		"\n",
	)
}

func (l *Latex) String() string { return strings.Join(l.body, "\n") }

// docToLatex runs the full docstring pipeline for one class or method:
// canonicalize, structurally parse, then translate each part to LaTeX.
func docToLatex(raw string) string {
	canon := docstring.Canonicalize(raw, docstring.LatexList)
	doc := docstring.Parse(canon)

	description := doc.Short
	if description != "" && doc.Long != "" {
		description += "\n\n" + doc.Long
	}

	var b strings.Builder
	b.WriteString(markup.ToLatex(description))
	b.WriteString("\n")
	b.WriteString(markup.ToLatex(paramsToLatex(doc.Params)))
	b.WriteString("\n\n")
	b.WriteString(metaToLatex(doc.Meta))
	return b.String()
}

func paramsToLatex(params []docstring.Param) string {
	if len(params) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\\begin{itemize}\n")
	for _, p := range params {
		b.WriteString(`\item \texttt{` + p.Name + `}: ` + p.Desc + "\n")
	}
	b.WriteString("\\end{itemize}\n")
	return b.String()
}

func metaToLatex(meta []docstring.MetaBlock) string {
	var b strings.Builder
	for _, m := range meta {
		if m.Tag != "examples" {
			continue
		}
		b.WriteString("\\textbf{Examples}\n")
		b.WriteString("\\begin{example}\n")
		b.WriteString(markup.EscapeExample(m.Text))
		b.WriteString("\n\\end{example}\n")
	}
	return b.String()
}
