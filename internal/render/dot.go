package render

import (
	"fmt"
	"strings"

	"github.com/lazydocs/lazydocs/internal/pymodel"
)

// Dot renders the Graphviz class-relationship graph. Nodes, inheritance
// edges, and ancestor-less root classes accumulate in three ordered
// containers; final assembly is nodes, then edges, then one rank-alignment
// line for the roots, all in traversal order.
type Dot struct {
	nodes []string
	edges []string
	roots []string
}

func NewDot() *Dot { return &Dot{} }

func (d *Dot) Marker(string) {}

func (d *Dot) Class(c *pymodel.Class) {
	d.nodes = append(d.nodes, fmt.Sprintf(`"%s" [color=cyan3, label="%s", shape="box"];`, c.Name, c.Name))
	if len(c.Ancestors) > 0 {
		d.edges = append(d.edges, fmt.Sprintf(`"%s" -> "%s" [arrowhead="empty", arrowtail="none"];`, c.Name, c.Ancestors[0]))
		return
	}
	d.roots = append(d.roots, c.Name)
}

func (d *Dot) Method(*pymodel.Method) {}

func (d *Dot) String() string {
	var b strings.Builder
	b.WriteString("digraph \"classes\" {\ncharset=\"utf-8\"\nrankdir=BT\n")
	b.WriteString(strings.Join(d.nodes, "\n"))
	if len(d.edges) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(d.edges, "\n"))
	}
	quoted := make([]string, len(d.roots))
	for i, name := range d.roots {
		quoted[i] = `"` + name + `"`
	}
	b.WriteString("\n{ rank=same; " + strings.Join(quoted, ", ") + " }\n")
	b.WriteString("}")
	return b.String()
}
