// Package dev implements the `mlbind dev` preview server: it serves
// translated bindings for the declaration trees in a directory so editor
// tooling can preview output without writing files.
package dev

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"

	"github.com/mlbind/mlbind"
	"github.com/mlbind/mlbind/sink"
)

var (
	validate      = validator.New()
	schemaDecoder = schema.NewDecoder()
)

func init() {
	schemaDecoder.IgnoreUnknownKeys(true)
}

// Cmd starts the preview server.
type Cmd struct {
	TreeDir string `help:"Directory containing declaration tree JSON files." default:"." name:"tree-dir"`
	Port    int    `help:"Port to listen on." default:"9000" short:"p"`
}

func (c *Cmd) Run() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	srv := &Server{treeDir: c.TreeDir, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /bindings", srv.handleBindings)

	addr := fmt.Sprintf("localhost:%d", c.Port)
	fmt.Printf("mlbind dev listening on http://%s\n", addr)
	return http.ListenAndServe(addr, mux)
}

// Server serves binding previews over HTTP.
type Server struct {
	treeDir string
	logger  *slog.Logger
}

// BindingsRequest is the query for GET /bindings.
type BindingsRequest struct {
	// Module is the declaration tree file name without the .json suffix.
	Module string `schema:"module" validate:"required"`

	// Hoist enables return-position union hoisting for the preview.
	Hoist bool `schema:"hoist"`
}

func (s *Server) handleBindings(w http.ResponseWriter, r *http.Request) {
	var req BindingsRequest
	if err := schemaDecoder.Decode(&req, r.URL.Query()); err != nil {
		http.Error(w, "malformed query: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(&req); err != nil {
		http.Error(w, "invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}

	path := filepath.Join(s.treeDir, req.Module+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			http.Error(w, "no declaration tree for module "+req.Module, http.StatusNotFound)
			return
		}
		s.logger.Error("failed to read tree", "path", path, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	out := sink.NewMemorySink()
	g := mlbind.FromJSON(data)
	if req.Hoist {
		g = g.HoistReturnUnions()
	}
	result, err := g.ToSink(r.Context(), out)
	if err != nil {
		s.logger.Error("translation failed", "module", req.Module, "error", err)
		http.Error(w, "translation failed: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if len(result.Files) == 0 {
		// Unsupported top-level shape: a legitimate empty outcome.
		w.WriteHeader(http.StatusNoContent)
		return
	}
	for _, f := range result.Files {
		w.Write(out.Get(f.Path))
	}
	s.logger.Info("served bindings", "module", req.Module, "files", len(result.Files))
}
