package mlbind

import (
	"context"
	"fmt"

	"github.com/mlbind/mlbind/ir"
	"github.com/mlbind/mlbind/sink"
)

// Generator provides a fluent API for binding generation.
// Create with FromDecls() or FromJSON() and configure with method chaining.
//
// Example:
//
//	mlbind.FromJSON(treeBytes).
//	    HoistReturnUnions().
//	    ToDir("./bindings")
type Generator struct {
	decls []ir.Decl
	cfg   Config
	err   error // first decode error, surfaced at the terminal call
}

// FromDecls creates a Generator for already-decoded declaration trees.
func FromDecls(decls ...ir.Decl) *Generator {
	return &Generator{decls: decls}
}

// FromJSON creates a Generator from one or more JSON declaration documents
// produced by the upstream parser. Decode errors are deferred to the
// terminal ToDir/ToSink call.
func FromJSON(documents ...[]byte) *Generator {
	g := &Generator{}
	for i, doc := range documents {
		decl, err := ir.DecodeDecl(doc)
		if err != nil {
			g.err = fmt.Errorf("document %d: %w", i, err)
			return g
		}
		g.decls = append(g.decls, decl)
	}
	return g
}

// HoistReturnUnions enables hoisting of return-position unions.
func (g *Generator) HoistReturnUnions() *Generator {
	g.cfg.HoistReturnUnions = true
	return g
}

// Extension sets the generated file extension (default ".re").
func (g *Generator) Extension(ext string) *Generator {
	g.cfg.Extension = ext
	return g
}

// ToDir generates files into the specified directory.
// This is a terminal operation that writes files to disk.
func (g *Generator) ToDir(dir string) (*Result, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.cfg.OutDir = dir
	return Generate(g.decls, &g.cfg)
}

// ToSink generates files into the provided sink without touching disk
// unless the sink does.
func (g *Generator) ToSink(ctx context.Context, out sink.Sink) (*Result, error) {
	if g.err != nil {
		return nil, g.err
	}
	return GenerateTo(ctx, g.decls, &g.cfg, out)
}
