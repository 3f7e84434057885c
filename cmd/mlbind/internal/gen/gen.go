// Package gen implements the `mlbind gen` and `mlbind check` commands.
package gen

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mlbind/mlbind"
	"github.com/mlbind/mlbind/ir"
	"github.com/mlbind/mlbind/translate"
)

// Cmd generates Reason bindings from declaration tree files.
type Cmd struct {
	Out               string   `arg:"" help:"Output directory for generated files."`
	Inputs            []string `arg:"" help:"Declaration tree JSON files." type:"existingfile"`
	Extension         string   `help:"Generated file extension." default:".re"`
	HoistReturnUnions bool     `help:"Also hoist unions appearing only in return positions." name:"hoist-return-unions"`
	Verbose           bool     `help:"Log each generated file." short:"v"`
}

func (c *Cmd) Run() error {
	decls, err := loadTrees(c.Inputs)
	if err != nil {
		return err
	}

	cfg := &mlbind.Config{
		OutDir:            c.Out,
		Extension:         c.Extension,
		HoistReturnUnions: c.HoistReturnUnions,
	}
	result, err := mlbind.Generate(decls, cfg)
	if err != nil {
		return err
	}

	if c.Verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		for _, f := range result.Files {
			logger.Info("generated", "path", f.Path, "bytes", f.Size)
		}
		if result.Skipped > 0 {
			logger.Warn("skipped top-level declarations with no artifact", "count", result.Skipped)
		}
	}
	fmt.Fprintf(os.Stderr, "mlbind gen: wrote %d file(s) to %s\n", len(result.Files), c.Out)
	return nil
}

// Check translates every input without writing anything.
func Check(inputs []string) error {
	decls, err := loadTrees(inputs)
	if err != nil {
		return err
	}
	for i, decl := range decls {
		if _, err := translate.Translate(decl); err != nil {
			return fmt.Errorf("%s: %w", inputs[i], err)
		}
	}
	return nil
}

func loadTrees(paths []string) ([]ir.Decl, error) {
	decls := make([]ir.Decl, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		decl, err := ir.DecodeDecl(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		decls = append(decls, decl)
	}
	return decls, nil
}
