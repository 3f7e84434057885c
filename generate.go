// Package mlbind generates Reason binding source from JavaScript module
// declaration trees. The trees come from an upstream declaration parser as
// kind-discriminated JSON; this package decodes them, runs the translate
// engine, and writes the resulting artifacts to a sink.
package mlbind

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/mlbind/mlbind/ir"
	"github.com/mlbind/mlbind/sink"
	"github.com/mlbind/mlbind/translate"
)

var validate = validator.New()

// Config holds the configuration for binding generation.
type Config struct {
	// OutDir is the directory where generated files will be written.
	// Required by Generate; ignored when writing to an explicit sink.
	OutDir string

	// Extension is the file extension for generated artifacts.
	// Default: ".re"
	Extension string `validate:"omitempty,startswith=."`

	// HoistReturnUnions also hoists unions appearing only in function
	// return positions. Off by default to preserve historical output.
	HoistReturnUnions bool
}

// OutputFile describes one generated file.
type OutputFile struct {
	// Path is the relative path of the generated file.
	Path string

	// Size is the number of bytes written.
	Size int64
}

// Result contains generation output metadata.
type Result struct {
	// Files lists all files that were written.
	Files []OutputFile

	// Skipped counts top-level declarations that produced no artifact
	// (unsupported top-level shapes).
	Skipped int
}

// Generate translates the given declaration trees and writes the artifacts
// under cfg.OutDir.
func Generate(decls []ir.Decl, cfg *Config) (*Result, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.OutDir == "" {
		return nil, fmt.Errorf("OutDir is required")
	}
	return GenerateTo(context.Background(), decls, cfg, sink.NewFilesystemSink(cfg.OutDir))
}

// GenerateTo translates the given declaration trees and writes the artifacts
// to the provided sink.
func GenerateTo(ctx context.Context, decls []ir.Decl, cfg *Config, out sink.Sink) (*Result, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	cfg = applyConfigDefaults(cfg)
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	tr := translate.New(translate.Options{HoistReturnUnions: cfg.HoistReturnUnions})

	result := &Result{}
	for _, decl := range decls {
		artifact, err := tr.Translate(decl)
		if err != nil {
			return nil, fmt.Errorf("failed to translate declaration: %w", err)
		}
		if artifact == nil {
			result.Skipped++
			continue
		}

		name := artifact.Name
		if name == "" {
			// Bare type declarations have no module name of their own.
			name = "types"
		}
		path := name + cfg.Extension
		content := []byte(artifact.Source)
		if len(content) == 0 || content[len(content)-1] != '\n' {
			content = append(content, '\n')
		}

		if err := out.WriteFile(ctx, path, content); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		result.Files = append(result.Files, OutputFile{Path: path, Size: int64(len(content))})
	}
	return result, nil
}

// applyConfigDefaults applies default values to Config on a copy.
func applyConfigDefaults(cfg *Config) *Config {
	result := *cfg
	if result.Extension == "" {
		result.Extension = ".re"
	}
	return &result
}
