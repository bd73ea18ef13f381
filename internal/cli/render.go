package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	apperr "github.com/matzehuels/rimealogy/pkg/errors"
	gio "github.com/matzehuels/rimealogy/pkg/io"
	"github.com/matzehuels/rimealogy/pkg/pipeline"
	"github.com/matzehuels/rimealogy/pkg/render/genealogy"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string // output file path (default: input with the format's extension)
	format string // image format: svg, png, jpg
	escape bool   // escape DOT values when re-emitting a JSON diagram
}

// renderCommand creates the render command for turning a genealogy graph into an image.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: pipeline.FormatSVG}

	cmd := &cobra.Command{
		Use:   "render <tree.dot|tree.json>",
		Short: "Render a genealogy graph to SVG, PNG or JPG",
		Long: `Render a genealogy graph to SVG, PNG or JPG.

The input is a DOT file produced by 'tree', or a JSON diagram produced by
'tree --format json'. Rendering uses an embedded Graphviz engine, so the
dot tool does not need to be installed.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with the format's extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "image format: svg (default), png, jpg")
	cmd.Flags().BoolVar(&opts.escape, "escape", false, "escape quotes and backslashes when rendering a JSON diagram")

	return cmd
}

// runRender loads the graph and renders it.
func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	dot, err := loadDOT(input, opts.escape)
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}
	if err := apperr.ValidateOutputPath(output); err != nil {
		return err
	}

	c.Logger.Infof("Rendering %s", input)
	prog := newProgress(c.Logger)
	spinner := newSpinner(ctx, fmt.Sprintf("Rendering %s...", opts.format))
	spinner.Start()

	data, err := pipeline.RenderDOT(ctx, dot, opts.format)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if err := pipeline.WriteFile(output, data); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s", opts.format))

	printSuccess("Rendered %s", opts.format)
	printFile(output)
	return nil
}

// loadDOT reads DOT source from path. JSON diagrams are re-emitted as DOT.
func loadDOT(path string, escape bool) ([]byte, error) {
	if err := apperr.ValidateInputFile(path); err != nil {
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		d, err := gio.ImportJSON(path)
		if err != nil {
			return nil, apperr.Wrap(apperr.ErrCodeInvalidInput, err, "load diagram %s", path)
		}
		return []byte(genealogy.ToDOT(d, genealogy.Options{Escape: escape})), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidInput, err, "read %s", path)
	}
	return data, nil
}
