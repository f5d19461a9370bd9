// Package render turns the class descriptor stream into output documents.
// One traversal function drives all formats; each format supplies a
// Renderer that receives marker, class, and method events and accumulates
// its own fragments.
package render

import "github.com/lazydocs/lazydocs/internal/pymodel"

// Renderer receives traversal events for one output format.
type Renderer interface {
	Marker(title string)
	Class(c *pymodel.Class)
	Method(m *pymodel.Method)
}

// Document is a Renderer that can assemble its accumulated fragments into
// the final output text.
type Document interface {
	Renderer
	String() string
}

// Walk traverses modules pre-order (a module's classes, then its submodules
// in declared order), visiting classes and their directly declared methods
// in declaration order. When a class name is a key in markers, a marker
// event fires immediately before that class — once per distinct name, at
// its first visit.
func Walk(mods []*pymodel.Module, markers map[string]string, r Renderer) {
	emitted := make(map[string]bool)
	var visit func(m *pymodel.Module)
	visit = func(m *pymodel.Module) {
		for _, c := range m.Classes {
			if title, ok := markers[c.Name]; ok && !emitted[c.Name] {
				r.Marker(title)
				emitted[c.Name] = true
			}
			r.Class(c)
			for _, method := range c.Methods {
				r.Method(method)
			}
		}
		for _, sub := range m.Submodules {
			visit(sub)
		}
	}
	for _, m := range mods {
		visit(m)
	}
}

// Export runs one full pass over the modules and returns the assembled
// document. Each call uses the document's own fresh accumulator; documents
// are not reused across passes.
func Export(mods []*pymodel.Module, markers map[string]string, doc Document) string {
	Walk(mods, markers, doc)
	return doc.String()
}
