package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazydocs/lazydocs/internal/pymodel"
)

func TestLatexClassBlock(t *testing.T) {
	mod := &pymodel.Module{
		Name: "game",
		Classes: []*pymodel.Class{
			{
				Name:      "Player",
				Doc:       "A controllable entity.",
				Ancestors: []string{"Entity"},
			},
		},
	}
	out := Export([]*pymodel.Module{mod}, nil, NewLatex())

	assert.Contains(t, out, `\vspace{15mm}`)
	assert.Contains(t, out, `\classname{Player}\vspace{3mm}\newline`)
	assert.Contains(t, out, `\textbf{Inherits from Entity}\newline`)
	assert.Contains(t, out, "A controllable entity.")
}

func TestLatexMethodBlock(t *testing.T) {
	mod := &pymodel.Module{
		Name: "game",
		Classes: []*pymodel.Class{
			{
				Name: "Player",
				Methods: []*pymodel.Method{
					{
						Name:    "move",
						Params:  []string{"dx: int"},
						Returns: "Union[Position, NoneType]",
						Doc:     "Moves the player.\n\nParameters:\n    dx: Horizontal offset.",
					},
				},
			},
		},
	}
	out := Export([]*pymodel.Module{mod}, nil, NewLatex())

	assert.Contains(t, out, `\methodname{move(dx: int) -> Optional[Position]}\vspace{2mm}\newline`)
	assert.Contains(t, out, "Moves the player.")
	assert.Contains(t, out, `\item \texttt{dx}: Horizontal offset.`)
}

func TestLatexMissingDocstringRendersNone(t *testing.T) {
	mod := &pymodel.Module{
		Name:    "game",
		Classes: []*pymodel.Class{{Name: "Empty"}},
	}
	out := Export([]*pymodel.Module{mod}, nil, NewLatex())
	assert.Contains(t, out, "None")
}

func TestLatexExamplesBlock(t *testing.T) {
	mod := &pymodel.Module{
		Name: "game",
		Classes: []*pymodel.Class{
			{
				Name: "Dice",
				Methods: []*pymodel.Method{
					{
						Name:    "roll",
						Returns: "int",
						Doc:     "Rolls the dice.\n\nExamples:\n    >>> d.roll()\n    4",
					},
				},
			},
		},
	}
	out := Export([]*pymodel.Module{mod}, nil, NewLatex())

	assert.Contains(t, out, "\\textbf{Examples}\n\\begin{example}")
	assert.Contains(t, out, ">>> d.roll()")
	assert.Contains(t, out, `\end{example}`)
}

func TestLatexMarkerPrecedesClass(t *testing.T) {
	mod := &pymodel.Module{
		Name: "game",
		Classes: []*pymodel.Class{
			{Name: "Entity"},
			{Name: "Player", Ancestors: []string{"Entity"}},
		},
	}
	markers := map[string]string{"Player": "Gameplay"}
	out := Export([]*pymodel.Module{mod}, markers, NewLatex())

	sub := strings.Index(out, `\subsection{Gameplay}`)
	cls := strings.Index(out, `\classname{Player}`)
	require.GreaterOrEqual(t, sub, 0)
	require.Greater(t, cls, sub)
	assert.Equal(t, 1, strings.Count(out, `\subsection{Gameplay}`))
}

func TestWalkEmitsMarkerOnlyAtFirstVisit(t *testing.T) {
	// The same class name in two modules gets one marker, at first visit.
	mods := []*pymodel.Module{
		{Name: "a", Classes: []*pymodel.Class{{Name: "Shared"}}},
		{Name: "b", Classes: []*pymodel.Class{{Name: "Shared"}}},
	}
	out := Export(mods, map[string]string{"Shared": "Once"}, NewLatex())
	assert.Equal(t, 1, strings.Count(out, `\subsection{Once}`))
}

func TestWalkVisitsSubmodulesAfterParent(t *testing.T) {
	mods := []*pymodel.Module{
		{
			Name:    "root",
			Classes: []*pymodel.Class{{Name: "RootClass"}},
			Submodules: []*pymodel.Module{
				{Name: "sub", Classes: []*pymodel.Class{{Name: "SubClass"}}},
			},
		},
	}
	out := Export(mods, nil, NewLatex())
	assert.Less(t, strings.Index(out, "RootClass"), strings.Index(out, "SubClass"))
}
