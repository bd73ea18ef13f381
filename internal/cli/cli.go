// Package cli implements the rimealogy command-line interface.
//
// This package provides commands for converting colony save files into
// genealogy graphs and rendering those graphs as images. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - tree: Convert a save file into a DOT (or JSON, SVG, PNG, JPG) genealogy graph
//   - render: Render an existing DOT or JSON graph with the embedded Graphviz engine
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Progress
// messages are written to stderr; status lines are written to stdout.
//
// # Example
//
//	c := cli.New(os.Stderr, cli.LogInfo)
//	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	    os.Exit(1)
//	}
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/rimealogy/pkg/buildinfo"
	apperr "github.com/matzehuels/rimealogy/pkg/errors"
	"github.com/matzehuels/rimealogy/pkg/pipeline"
)

// appName is the application name used for display and completion scripts.
const appName = "rimealogy"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Rimealogy draws the family trees of a colony save",
		Long:         `Rimealogy reads a colony simulation save file and writes a Graphviz DOT genealogy graph of the colonists, their families and the people they know.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.treeCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// usageArgs turns positional argument failures into usage errors that
// carry the command's usage line.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return apperr.Wrap(apperr.ErrCodeInvalidInput, err, "usage: %s", cmd.UseLine())
		}
		return nil
	}
}
