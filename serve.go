package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"
)

func newServeCmd() *cobra.Command {
	var dir string
	var addr string
	var verbose bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview generated documentation over HTTP",
		Long: `Serve a generated output folder: / renders docs.md as HTML, and
/docs.md, /docs.tex and /classes.dot return the raw files.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := cmd.Flags()
	flags.StringVarP(&dir, "dir", "d", ".", "folder containing generated documentation")
	flags.StringVar(&addr, "addr", "localhost:8080", "listen address")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return fmt.Errorf("not a valid documentation folder: %s", dir)
		}
		srv := &docServer{dir: dir, log: newLogger(verbose)}
		fmt.Fprintf(cmd.OutOrStdout(), "serving %s on http://%s\n", dir, addr)
		return http.ListenAndServe(addr, srv.routes())
	}
	return cmd
}

// docServer serves one generated output folder.
type docServer struct {
	dir string
	log *slog.Logger
}

func (s *docServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.log))

	r.Get("/", s.handleIndex)
	r.Get("/"+markdownFile, s.handleRaw(markdownFile, "text/markdown; charset=utf-8"))
	r.Get("/"+latexFile, s.handleRaw(latexFile, "application/x-tex"))
	r.Get("/"+dotFile, s.handleRaw(dotFile, "text/vnd.graphviz"))
	return r
}

func (s *docServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	src, err := os.ReadFile(filepath.Join(s.dir, markdownFile))
	if err != nil {
		http.Error(w, "docs.md not found; generate documentation first", http.StatusNotFound)
		return
	}
	var body bytes.Buffer
	if err := goldmark.Convert(src, &body); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<!DOCTYPE html>\n<html><head><title>lazydocs</title></head><body>\n%s</body></html>\n", body.String())
}

func (s *docServer) handleRaw(name, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			http.Error(w, name+" not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Write(data)
	}
}

// requestLogger logs one line per request.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			log.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
