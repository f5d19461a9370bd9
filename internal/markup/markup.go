// Package markup translates the lightweight inline markup used in
// docstrings (code spans, emphasis, quotes) into target-format text and
// handles identifier sanitization and type simplification.
package markup

import (
	"regexp"
	"strings"
)

// internalPrefixes are module prefixes hidden from rendered signatures and
// docs in every output format.
var internalPrefixes = []string{"a2_support.", "a2_solution."}

// Sanitizer rewrites identifier text for one output format.
type Sanitizer func(string) string

var latexEscaper = strings.NewReplacer("_", `\_`, "#", `\#`)

// StripPrefixes removes the internal module prefixes. It is the sanitizer
// for Markdown and graph output, which need no character escaping.
func StripPrefixes(s string) string {
	for _, prefix := range internalPrefixes {
		s = strings.ReplaceAll(s, prefix, "")
	}
	return s
}

// Latex strips the internal prefixes and escapes the characters LaTeX
// treats specially in identifiers.
func Latex(s string) string {
	return latexEscaper.Replace(StripPrefixes(s))
}

var (
	codeSpan  = regexp.MustCompile("`(.*)`")
	emphSpan  = regexp.MustCompile(`_(.*)_`)
	quoteSpan = regexp.MustCompile(`'(.*)'`)
	optional  = regexp.MustCompile(`Union\[([^,]+?), NoneType\]`)
)

// ToLatex converts a canonicalized text fragment into LaTeX. The
// substitution order is fixed: code spans, emphasis, smart quotes, then
// sanitization. Later passes must not re-match text produced by earlier
// ones, so each is a single non-overlapping substitution.
func ToLatex(s string) string {
	s = codeSpan.ReplaceAllString(s, `\texttt{$1}`)
	s = emphSpan.ReplaceAllString(s, `\textsl{$1}`)
	s = quoteSpan.ReplaceAllString(s, "`$1'")
	return Latex(s)
}

// SimplifyType sanitizes a type string and rewrites the optional-wrapper
// form: a two-argument Union whose second member is exactly NoneType becomes
// Optional of the first member; any remaining NoneType token becomes None.
// Unions of three or more members are otherwise left alone.
func SimplifyType(typeRep string, san Sanitizer) string {
	s := san(typeRep)
	s = optional.ReplaceAllString(s, "Optional[$1]")
	return strings.ReplaceAll(s, "NoneType", "None")
}

// EscapeExample prepares an Examples block body for the LaTeX example
// environment: braces are escaped first, then single-quoted spans get
// explicit textquotesingle glyphs.
func EscapeExample(s string) string {
	s = strings.ReplaceAll(s, "{", `\{`)
	s = strings.ReplaceAll(s, "}", `\}`)
	return quoteSpan.ReplaceAllString(s, `{\textquotesingle}$1{\textquotesingle}`)
}
