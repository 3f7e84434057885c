// Package translate turns declaration trees from the upstream parser into
// Reason binding source text. Translation is a pure, synchronous tree
// transform: every call builds fresh strings and the translator itself holds
// no mutable state.
//
// Emission is two-phase. A precode pass hoists one type alias per distinct
// union shape (plus aliases for declared types) ahead of the bodies, then the
// emitter renders each declaration against those aliases by name.
package translate

import (
	"errors"
	"strings"

	"github.com/mlbind/mlbind/ir"
)

// ErrUnnameable is returned when a name is requested for a class type.
// Classes are only nameable through their owning declaration's identifier.
var ErrUnnameable = errors.New("type has no structural name")

// ErrNotAClass is returned when constructor resolution is attempted on a
// non-class type.
var ErrNotAClass = errors.New("constructor target is not a class type")

// Options configures translation behavior.
type Options struct {
	// HoistReturnUnions also hoists unions that appear only in function
	// return positions. Historical output never hoisted these, leaving the
	// generated code referencing an alias that was never declared; enable
	// this to declare them.
	HoistReturnUnions bool
}

// Translator translates declaration trees. The zero value is ready to use
// and produces the historical output shape.
type Translator struct {
	opts Options
}

// New returns a Translator with the given options.
func New(opts Options) *Translator {
	return &Translator{opts: opts}
}

// Artifact is the output produced for one top-level declaration.
type Artifact struct {
	// Name is the artifact's identifier, derived from the module name.
	// Empty for bare type declarations.
	Name string

	// Source is the rendered binding source text.
	Source string
}

// Translate translates a top-level declaration into an artifact.
//
// Only module and type declarations produce output; any other top-level
// shape yields (nil, nil), which callers must treat as a legitimate
// terminal outcome rather than a failure.
func (tr *Translator) Translate(root ir.Decl) (*Artifact, error) {
	switch d := root.(type) {
	case *ir.ModuleDecl:
		precode, err := tr.declPrecode(d)
		if err != nil {
			return nil, err
		}
		name := normalizeIdent(d.Name)

		bodies := make([]string, 0, len(d.Statements))
		for _, stmt := range d.Statements {
			body, err := tr.emitDecl(stmt, name)
			if err != nil {
				return nil, err
			}
			bodies = append(bodies, body)
		}

		source := strings.Join(dedup(precode), "\n") + "\n" + strings.Join(bodies, "\n")
		return &Artifact{Name: name, Source: source}, nil

	case *ir.TypeDecl:
		precode, err := tr.declPrecode(d)
		if err != nil {
			return nil, err
		}
		body, err := tr.emitDecl(d, "")
		if err != nil {
			return nil, err
		}
		return &Artifact{Name: "", Source: strings.Join(dedup(precode), "\n") + body}, nil

	default:
		return nil, nil
	}
}

// Translate translates a top-level declaration with default options.
func Translate(root ir.Decl) (*Artifact, error) {
	return New(Options{}).Translate(root)
}
