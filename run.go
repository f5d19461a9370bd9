package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lazydocs/lazydocs/internal/pymodel"
	"github.com/lazydocs/lazydocs/internal/render"
)

// Fixed output names, one file per format.
const (
	latexFile    = "docs.tex"
	markdownFile = "docs.md"
	dotFile      = "classes.dot"
)

type options struct {
	outDir      string
	markersPath string
	verbose     bool
}

type cliApp struct {
	stdout io.Writer
	opts   options
}

func run(argv []string, stdout io.Writer) error {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(argv)
	return cmd.Execute()
}

// execute validates the arguments, loads the module descriptors, and runs
// one export pass per format. Each pass accumulates the whole document in
// memory and writes its file once at the end, so a failing pass never
// leaves interleaved partial output.
func (app *cliApp) execute(file string) error {
	opts := app.opts
	out := opts.outDir
	if out == "" {
		out = "."
	}
	if info, err := os.Stat(out); err != nil || !info.IsDir() {
		return fmt.Errorf("not a valid output folder: %s", out)
	}
	if !strings.HasSuffix(file, ".py") {
		return fmt.Errorf("not a valid python file: %s", file)
	}

	markers, err := loadMarkers(opts.markersPath)
	if err != nil {
		return err
	}

	logger := newLogger(opts.verbose)
	logger.Debug("loading module", "file", file)
	mod, err := pymodel.Load(file)
	if err != nil {
		return err
	}
	mods := []*pymodel.Module{mod}

	exports := []struct {
		name string
		doc  render.Document
	}{
		{latexFile, render.NewLatex()},
		{dotFile, render.NewDot()},
		{markdownFile, render.NewMarkdown()},
	}
	for _, e := range exports {
		content := render.Export(mods, markers, e.doc)
		target := filepath.Join(out, e.name)
		if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
			return err
		}
		logger.Debug("wrote output", "file", target)
	}
	return nil
}

// loadMarkers reads the optional class-name → section-title map. The map is
// empty when no file is given; the emitters honor whatever it contains.
func loadMarkers(path string) (map[string]string, error) {
	markers := map[string]string{}
	if path == "" {
		return markers, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, &markers); err != nil {
		return nil, fmt.Errorf("parse markers %s: %w", path, err)
	}
	return markers, nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
