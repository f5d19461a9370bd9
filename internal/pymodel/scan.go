package pymodel

import (
	"regexp"
	"strings"
)

var (
	classDecl  = regexp.MustCompile(`^class\s+(\w+)\s*(?:\(([^)]*)\))?\s*:`)
	defDecl    = regexp.MustCompile(`^(\s+)def\s+(\w+)\s*\(`)
	importDecl = regexp.MustCompile(`^(?:import|from)\s+([A-Za-z_]\w*)`)
)

// parseSource scans one module's source, returning its descriptor and the
// names of top-level imports in declaration order.
func parseSource(name, src string) (*Module, []string) {
	lines := strings.Split(src, "\n")
	mod := &Module{Name: name}
	var imports []string

	i := skipBlank(lines, 0)
	if doc, next, ok := readDocstring(lines, i); ok {
		mod.Doc = doc
		i = next
	}

	for ; i < len(lines); i++ {
		line := lines[i]
		if m := importDecl.FindStringSubmatch(line); m != nil {
			imports = append(imports, m[1])
			continue
		}
		if m := classDecl.FindStringSubmatch(line); m != nil {
			cls, next := parseClass(lines, i+1, m)
			if !strings.HasPrefix(cls.Name, "_") {
				mod.Classes = append(mod.Classes, cls)
			}
			i = next - 1
		}
	}
	return mod, imports
}

// parseClass consumes a class body starting at the line after the header.
// Only methods declared directly in the body are collected; nested
// definitions below method level are skipped.
func parseClass(lines []string, i int, header []string) (*Class, int) {
	cls := &Class{Name: header[1], Ancestors: baseList(header[2])}

	if doc, next, ok := readDocstring(lines, skipBlank(lines, i)); ok {
		cls.Doc = doc
		i = next
	}

	methodIndent := -1
	for ; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "@") {
			continue
		}
		indent := indentOf(line)
		if indent == 0 {
			break
		}
		m := defDecl.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if methodIndent == -1 {
			methodIndent = indent
		}
		if indent != methodIndent {
			continue
		}
		method, next := parseMethod(lines, i)
		i = next - 1
		if exported(method.Name) {
			cls.Methods = append(cls.Methods, method)
		}
	}
	return cls, i
}

// parseMethod reads a def statement (which may span lines until the closing
// parenthesis) and its docstring.
func parseMethod(lines []string, i int) (*Method, int) {
	stmt := strings.TrimSpace(lines[i])
	for !strings.HasSuffix(stmt, ":") && i+1 < len(lines) {
		i++
		stmt += " " + strings.TrimSpace(lines[i])
	}
	i++

	method := &Method{}
	open := strings.Index(stmt, "(")
	closing := matchParen(stmt, open)
	if open == -1 || closing == -1 {
		return method, i
	}
	nameField := strings.TrimSpace(strings.TrimPrefix(stmt[:open], "def"))
	method.Name = nameField
	method.Params = paramList(stmt[open+1 : closing])

	rest := strings.TrimSuffix(strings.TrimSpace(stmt[closing+1:]), ":")
	if after, ok := strings.CutPrefix(strings.TrimSpace(rest), "->"); ok {
		method.Returns = strings.TrimSpace(after)
	}

	if doc, next, ok := readDocstring(lines, skipBlank(lines, i)); ok {
		method.Doc = doc
		i = next
	}
	return method, i
}

// baseList splits a class header's base clause, dropping keyword arguments
// and the implicit object root.
func baseList(clause string) []string {
	var bases []string
	for _, b := range strings.Split(clause, ",") {
		b = strings.TrimSpace(b)
		if b == "" || b == "object" || strings.Contains(b, "=") {
			continue
		}
		bases = append(bases, b)
	}
	return bases
}

// paramList splits a parameter clause on top-level commas, normalizes each
// entry to "name: type" (or a bare name), and drops receivers and defaults.
func paramList(clause string) []string {
	var params []string
	for _, raw := range splitTopLevel(clause) {
		p := strings.TrimSpace(raw)
		if eq := topLevelIndex(p, '='); eq != -1 {
			p = strings.TrimSpace(p[:eq])
		}
		if p == "" || p == "self" || p == "cls" || p == "/" {
			continue
		}
		if colon := topLevelIndex(p, ':'); colon != -1 {
			name := strings.TrimSpace(p[:colon])
			typ := strings.TrimSpace(p[colon+1:])
			params = append(params, name+": "+typ)
			continue
		}
		params = append(params, p)
	}
	return params
}

func splitTopLevel(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '[', '(', '{':
			depth++
		case ']', ')', '}':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

func topLevelIndex(s string, target byte) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[', '(', '{':
			depth++
		case ']', ')', '}':
			depth--
		default:
			if s[i] == target && depth == 0 {
				return i
			}
		}
	}
	return -1
}

func matchParen(s string, open int) int {
	if open == -1 {
		return -1
	}
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// exported reports whether a method is part of the documented surface:
// public names and dunders, but not single-underscore names.
func exported(name string) bool {
	if !strings.HasPrefix(name, "_") {
		return true
	}
	return strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__")
}

func indentOf(line string) int {
	n := 0
	for _, r := range line {
		if r != ' ' && r != '\t' {
			break
		}
		n++
	}
	return n
}

func skipBlank(lines []string, i int) int {
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	return i
}

// readDocstring reads a triple-quoted string starting at line i, returning
// the cleaned text and the index of the line after it.
func readDocstring(lines []string, i int) (string, int, bool) {
	if i >= len(lines) {
		return "", i, false
	}
	trimmed := strings.TrimSpace(lines[i])
	delim := ""
	for _, d := range []string{`"""`, "'''"} {
		if strings.HasPrefix(trimmed, d) {
			delim = d
			break
		}
	}
	if delim == "" {
		return "", i, false
	}

	rest := trimmed[len(delim):]
	if idx := strings.Index(rest, delim); idx != -1 {
		return cleandoc(rest[:idx]), i + 1, true
	}

	body := []string{rest}
	for j := i + 1; j < len(lines); j++ {
		line := lines[j]
		if idx := strings.Index(line, delim); idx != -1 {
			body = append(body, line[:idx])
			return cleandoc(strings.Join(body, "\n")), j + 1, true
		}
		body = append(body, line)
	}
	return cleandoc(strings.Join(body, "\n")), len(lines), true
}

// cleandoc normalizes a docstring the way inspect.cleandoc does: the first
// line loses its leading whitespace, the rest lose their common margin, and
// leading/trailing blank lines are dropped.
func cleandoc(s string) string {
	lines := strings.Split(s, "\n")
	margin := -1
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := indentOf(line)
		if margin == -1 || indent < margin {
			margin = indent
		}
	}
	lines[0] = strings.TrimLeft(lines[0], " \t")
	if margin > 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) >= margin {
				lines[i] = lines[i][margin:]
			} else {
				lines[i] = strings.TrimLeft(lines[i], " \t")
			}
		}
	}
	for i := 1; i < len(lines); i++ {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}
	out := strings.Join(lines, "\n")
	return strings.Trim(out, "\n")
}
