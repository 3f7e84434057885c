package dev

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	tree := `{"kind": "module", "name": "\"my-mod\"", "statements": [
		{"kind": "var", "name": "count", "type": {"kind": "number"}}
	]}`
	if err := os.WriteFile(filepath.Join(dir, "my-mod.json"), []byte(tree), 0644); err != nil {
		t.Fatal(err)
	}
	return &Server{
		treeDir: dir,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestHandleBindings(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/bindings?module=my-mod", nil)
	rec := httptest.NewRecorder()
	srv.handleBindings(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `external count: float = "count";`) {
		t.Errorf("body missing binding:\n%s", rec.Body.String())
	}
}

func TestHandleBindingsMissingModuleParam(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/bindings", nil)
	rec := httptest.NewRecorder()
	srv.handleBindings(rec, req)

	if rec.Code != 400 {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleBindingsUnknownModule(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/bindings?module=nope", nil)
	rec := httptest.NewRecorder()
	srv.handleBindings(rec, req)

	if rec.Code != 404 {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
