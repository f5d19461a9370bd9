package docstring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeFoldsParagraphs(t *testing.T) {
	doc := "First line\nof one paragraph.\n\nSecond paragraph."
	got := Canonicalize(doc, LatexList)

	assert.Contains(t, got, " First line of one paragraph.")
	assert.Contains(t, got, "\n\n Second paragraph.")
	assert.NotContains(t, got, `\begin{itemize}`)
}

func TestCanonicalizeWrapsBulletRun(t *testing.T) {
	doc := "Supports:\n* first\n* second\n\nDone."
	got := Canonicalize(doc, LatexList)

	require.Equal(t, 1, strings.Count(got, `\begin{itemize}`))
	require.Equal(t, 1, strings.Count(got, `\end{itemize}`))
	assert.Contains(t, got, "\\item first\n\\item second")
	assert.Less(t, strings.Index(got, "first"), strings.Index(got, "second"))
}

func TestCanonicalizeStopMarkerSwitchesToVerbatim(t *testing.T) {
	doc := "Narrative   \nParameters:\n    x: something   \n\n    y: other"
	got := Canonicalize(doc, LatexList)

	// Narrative is folded and right-trimmed; the tail keeps every line,
	// blank lines and trailing spaces included.
	assert.Contains(t, got, " Narrative")
	assert.Contains(t, got, "Parameters:\n    x: something   \n\n    y: other\n")
}

func TestCanonicalizeStopMarkerIsPermanent(t *testing.T) {
	doc := "Examples:\n    demo\nBack to prose\n* not a bullet"
	got := Canonicalize(doc, LatexList)

	assert.NotContains(t, got, `\begin{itemize}`)
	assert.Contains(t, got, "Back to prose\n* not a bullet\n")
}

func TestCanonicalizeUnterminatedListStaysOpen(t *testing.T) {
	doc := "Heading:\n* only item"
	got := Canonicalize(doc, LatexList)

	assert.Contains(t, got, `\begin{itemize}`)
	assert.NotContains(t, got, `\end{itemize}`)
}

func TestCanonicalizeEmptyDocstringBecomesNone(t *testing.T) {
	assert.Equal(t, " None", Canonicalize("", LatexList))
}

func TestCanonicalizeBulletKeepsOrderAndTrims(t *testing.T) {
	doc := "* alpha  \n  * beta\t"
	got := Canonicalize(doc, LatexList)

	assert.Contains(t, got, "\\item alpha\n\\item   beta")
}
