// Command mlbind translates declaration trees produced by the upstream
// parser into Reason binding files.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/mlbind/mlbind/cmd/mlbind/internal/dev"
	"github.com/mlbind/mlbind/cmd/mlbind/internal/gen"
)

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     gen.Cmd    `cmd:"" help:"Generate Reason bindings from declaration tree files."`
	Check   CheckCmd   `cmd:"" help:"Translate declaration trees without writing files."`
	Dev     dev.Cmd    `cmd:"" help:"Start the binding preview server."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

type CheckCmd struct {
	Inputs []string `arg:"" help:"Declaration tree JSON files to check." type:"existingfile"`
}

func (c *CheckCmd) Run() error {
	if err := gen.Check(c.Inputs); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "mlbind check: %d file(s) ok\n", len(c.Inputs))
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("mlbind"),
		kong.Description("Generate Reason bindings for JavaScript modules."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
