// Package pymodel builds read-only descriptors for the classes and methods
// of a Python source module. Given a file path it scans the source and any
// public sibling modules it imports, producing the ordered descriptor
// stream the renderers consume.
package pymodel

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Module describes one source file: its docstring, declared classes in
// order, and the public submodules it imports.
type Module struct {
	Name       string
	Path       string
	Doc        string
	Classes    []*Class
	Submodules []*Module
}

// Class describes one class declaration. Ancestors is the declared base
// list, most-derived-first; only the first entry is ever displayed.
type Class struct {
	Name      string
	Doc       string
	Ancestors []string
	Methods   []*Method
}

// Method describes one method declared directly on a class. Params hold
// "identifier: type" strings, or a bare identifier when untyped.
type Method struct {
	Name    string
	Params  []string
	Returns string
	Doc     string
}

// Load parses the module at path plus any public sibling modules it
// imports, in declaration order, skipping modules already visited.
func Load(path string) (*Module, error) {
	mod, err := load(path, map[string]bool{})
	if err != nil {
		return nil, err
	}
	if mod == nil {
		return nil, fmt.Errorf("module %s imports itself", path)
	}
	return mod, nil
}

func load(path string, seen map[string]bool) (*Module, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if seen[abs] {
		return nil, nil
	}
	seen[abs] = true

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(path), ".py")
	mod, imports := parseSource(name, string(src))
	mod.Path = path

	dir := filepath.Dir(abs)
	for _, imp := range imports {
		if strings.HasPrefix(imp, "_") {
			continue
		}
		sibling := filepath.Join(dir, imp+".py")
		if info, err := os.Stat(sibling); err != nil || info.IsDir() {
			continue
		}
		sub, err := load(sibling, seen)
		if err != nil {
			return nil, err
		}
		if sub != nil {
			mod.Submodules = append(mod.Submodules, sub)
		}
	}
	return mod, nil
}
