package render

import (
	"strings"

	"github.com/lazydocs/lazydocs/internal/markup"
	"github.com/lazydocs/lazydocs/internal/pymodel"
)

const (
	constructorName  = "__init__"
	constructorLabel = "Constructor"
)

// Signature builds the one-line method signature for one format's
// sanitizer: sanitized name, comma-joined parameters and return type with
// optional-wrapper simplification applied. A constructor collapses to a
// fixed label regardless of its parameters.
func Signature(m *pymodel.Method, san markup.Sanitizer) string {
	name := san(m.Name)
	if name == san(constructorName) {
		return constructorLabel
	}
	params := markup.SimplifyType(strings.Join(m.Params, ", "), san)
	returns := markup.SimplifyType(m.Returns, san)
	return name + "(" + params + ") -> " + returns
}
