// Package docstring normalizes raw docstrings into a markup-ready form and
// parses that form into its structured parts (descriptions, parameters,
// trailing sections).
package docstring

import "strings"

// ListMarkup holds the delimiters the canonicalizer inserts around bullet
// runs. Each output format supplies its own set.
type ListMarkup struct {
	Open  string
	Item  string
	Close string
}

// LatexList is the list markup used by the LaTeX pipeline.
var LatexList = ListMarkup{
	Open:  `\begin{itemize}`,
	Item:  `\item`,
	Close: `\end{itemize}`,
}

// stopMarkers switch canonicalization from grouped to verbatim mode. The
// transition is one-way: everything after the first marker passes through
// untouched.
var stopMarkers = map[string]bool{
	"Parameters:": true,
	"Examples:":   true,
	"Raises:":     true,
}

// Canonicalize converts a raw docstring into a markup-ready text block.
// Narrative lines are folded into running paragraphs separated by double
// newlines, contiguous `*` bullets become a single list, and everything from
// the first stop-marker on is copied verbatim. An empty docstring is treated
// as the literal text "None".
//
// A docstring that ends mid-list leaves the list unterminated.
func Canonicalize(doc string, list ListMarkup) string {
	if doc == "" {
		doc = "None"
	}
	var b strings.Builder
	grouped := true
	inList := false
	for _, line := range strings.Split(doc, "\n") {
		if stopMarkers[strings.TrimSpace(line)] {
			grouped = false
		}
		if !grouped {
			b.WriteString(line)
			b.WriteString("\n")
			continue
		}
		switch {
		case line == "":
			if inList {
				b.WriteString("\n" + list.Close)
				inList = false
			}
			b.WriteString("\n\n")
		case strings.HasPrefix(strings.TrimSpace(line), "*"):
			if !inList {
				b.WriteString(list.Open)
				inList = true
			}
			b.WriteString("\n" + list.Item + strings.TrimRight(strings.Replace(line, "*", "", 1), " \t\r"))
		default:
			b.WriteString(" " + strings.TrimRight(line, " \t\r"))
		}
	}
	return b.String()
}
