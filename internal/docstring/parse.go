package docstring

import (
	"regexp"
	"strings"
)

// Param is one entry from a "Parameters:" section.
type Param struct {
	Name string
	Desc string
}

// MetaBlock is a named trailing section with its raw text.
type MetaBlock struct {
	Tag  string
	Text string
}

// Parsed is the structured form of a canonicalized docstring.
type Parsed struct {
	Short  string
	Long   string
	Params []Param
	Meta   []MetaBlock
}

var sectionTags = map[string]string{
	"Parameters:": "params",
	"Examples:":   "examples",
	"Raises:":     "raises",
}

var paramLine = regexp.MustCompile(`^\s*(\*{0,2}\w+)(?:\s*\([^)]*\))?:\s*(.*)$`)

// Parse splits a canonicalized docstring into a short description, a long
// description, parameter records, and trailing metadata blocks. Input is the
// output of Canonicalize, not the raw docstring.
func Parse(text string) Parsed {
	var doc Parsed
	lines := strings.Split(text, "\n")

	i := 0
	var narrative []string
	for ; i < len(lines); i++ {
		if _, ok := sectionTags[strings.TrimSpace(lines[i])]; ok {
			break
		}
		narrative = append(narrative, lines[i])
	}
	doc.Short, doc.Long = splitDescription(strings.Join(narrative, "\n"))

	for i < len(lines) {
		tag := sectionTags[strings.TrimSpace(lines[i])]
		i++
		start := i
		for i < len(lines) {
			if _, ok := sectionTags[strings.TrimSpace(lines[i])]; ok {
				break
			}
			i++
		}
		body := lines[start:i]
		if tag == "params" {
			doc.Params = append(doc.Params, parseParams(body)...)
			continue
		}
		doc.Meta = append(doc.Meta, MetaBlock{
			Tag:  tag,
			Text: strings.TrimRight(strings.Join(body, "\n"), "\n"),
		})
	}
	return doc
}

func splitDescription(narrative string) (short, long string) {
	paragraphs := []string{}
	for _, p := range strings.Split(narrative, "\n\n") {
		if t := strings.TrimSpace(p); t != "" {
			paragraphs = append(paragraphs, t)
		}
	}
	if len(paragraphs) == 0 {
		return "", ""
	}
	return paragraphs[0], strings.Join(paragraphs[1:], "\n\n")
}

// parseParams reads indented "name: description" entries. Continuation
// lines extend the previous entry's description.
func parseParams(body []string) []Param {
	var params []Param
	for _, line := range body {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if m := paramLine.FindStringSubmatch(line); m != nil {
			params = append(params, Param{Name: m[1], Desc: m[2]})
			continue
		}
		if len(params) > 0 {
			last := &params[len(params)-1]
			last.Desc = strings.TrimSpace(last.Desc + " " + strings.TrimSpace(line))
		}
	}
	return params
}
