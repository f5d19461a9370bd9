// # lazydocs
//
// `lazydocs` converts a docstring-annotated Python source module into
// rendered documentation. One invocation produces three files in the output
// folder:
//
//   - `docs.tex` — a LaTeX fragment built around `\classname` and
//     `\methodname` commands, ready for inclusion in a larger document.
//   - `docs.md` — a Markdown rendering of the same classes and methods.
//   - `classes.dot` — a Graphviz digraph showing one inheritance edge per
//     class (to its first ancestor only; deeper ancestry is ignored).
//
// ## Usage
//
//	lazydocs [flags] <file.py>
//
// The output folder (`-o`, default: current directory) must already exist,
// and the input must be a `.py` file; either violation prints a one-line
// diagnostic and writes nothing.
//
// Public sibling modules imported by the file are documented too, in import
// order, after the file's own classes.
//
// ## Docstring grammar
//
// Docstrings mix narrative paragraphs, `*`-prefixed bullet lists, and the
// named sections `Parameters:`, `Examples:` and `Raises:`. Narrative lines
// are folded into paragraphs and translated into the target markup (code
// spans, emphasis, smart quotes, escaping). Everything from the first named
// section on is passed through verbatim and parsed structurally: parameter
// entries become an itemized list, and `Examples:` blocks render inside a
// LaTeX example environment. Missing docstrings render as the literal text
// "None" rather than failing the run.
//
// Method signatures render as `name(params) -> returntype`, with
// `Union[X, NoneType]` simplified to `Optional[X]` and `__init__`
// collapsed to the label "Constructor".
//
// ## Section markers
//
// `--markers FILE` supplies a YAML map from class name to section title.
// When a mapped class is first visited, the LaTeX output gets a
// `\subsection` break immediately before it. Markdown and Graphviz output
// ignore markers.
//
// ## Preview server
//
// `lazydocs serve -d DIR` serves a generated folder over HTTP: `/` renders
// `docs.md` as HTML, and `/docs.md`, `/docs.tex`, `/classes.dot` return the
// raw files.
//
// ## Shell completion and CLI docs
//
//	lazydocs completion bash        # also: zsh, fish, powershell
//	lazydocs gen-docs ./docs/cli    # one Markdown file per command
package main
