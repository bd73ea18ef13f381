package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/rimealogy/pkg/pipeline"
	"github.com/matzehuels/rimealogy/pkg/visibility"
)

// treeFlags holds the command-line flags for the tree command.
type treeFlags struct {
	draw   string // draw-set mode: colony, seen, all
	named  string // named-set mode: seen, related, all
	all    bool   // legacy switch: seed the draw set from every observed person
	format string // output format: dot, json, svg, png, jpg
	escape bool   // escape quotes and backslashes in DOT values
	config string // optional TOML or YAML configuration file
}

// treeCommand creates the tree command that converts a save into a genealogy graph.
func (c *CLI) treeCommand() *cobra.Command {
	var flags treeFlags

	cmd := &cobra.Command{
		Use:   "tree <save> [output] [draw-mode] [named-mode]",
		Short: "Convert a save file into a genealogy graph",
		Long: fmt.Sprintf(`Convert a save file into a Graphviz genealogy graph.

The draw mode selects who appears in the graph:
  colony   colonists, the people they relate to and their families (default)
  seen     everyone the player has seen, plus their families
  all      every person in the save

The named mode selects who is shown with a real name; everyone else drawn
becomes an anonymous "???" box:
  seen     persons the player has seen (default)
  related  seen persons plus the parents and relations of colonists
  all      everyone

Positional modes take precedence over --draw and --named, which take
precedence over the --config file.

Valid draw modes: %s
Valid named modes: %s`, modeList(visibility.DrawModes), modeList(visibility.NamedModes)),
		Args: usageArgs(cobra.RangeArgs(1, 4)),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd, args)
			if err != nil {
				return err
			}
			return c.runTree(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&flags.draw, "draw", pipeline.DefaultDrawMode, "draw mode: colony, seen, all")
	cmd.Flags().StringVar(&flags.named, "named", pipeline.DefaultNamedMode, "named mode: seen, related, all")
	cmd.Flags().BoolVar(&flags.all, "all", false, "draw everyone the player has seen (same as --draw seen)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", pipeline.DefaultFormat, "output format: dot (default), json, svg, png, jpg")
	cmd.Flags().BoolVar(&flags.escape, "escape", false, "escape quotes and backslashes in names")
	cmd.Flags().StringVar(&flags.config, "config", "", "TOML or YAML configuration file")
	cmd.MarkFlagsMutuallyExclusive("all", "draw")

	return cmd
}

// options builds pipeline options from the config file, explicitly set
// flags and positional arguments, in increasing order of precedence.
func (f *treeFlags) options(cmd *cobra.Command, args []string) (pipeline.Options, error) {
	var opts pipeline.Options

	if f.config != "" {
		cfg, err := pipeline.LoadConfig(f.config)
		if err != nil {
			return opts, err
		}
		cfg.Apply(&opts)
	}

	set := cmd.Flags().Changed
	if set("draw") {
		opts.DrawMode = f.draw
	}
	if set("all") && f.all {
		opts.DrawMode = string(visibility.DrawSeen)
	}
	if set("named") {
		opts.NamedMode = f.named
	}
	if set("format") {
		opts.Format = f.format
	}
	if set("escape") {
		opts.Escape = f.escape
	}

	opts.Input = args[0]
	if len(args) > 1 {
		opts.Output = args[1]
	}
	if len(args) > 2 {
		opts.DrawMode = args[2]
	}
	if len(args) > 3 {
		opts.NamedMode = args[3]
	}
	return opts, nil
}

// runTree executes the pipeline and prints a summary.
func (c *CLI) runTree(ctx context.Context, opts pipeline.Options) error {
	opts.Logger = c.Logger
	prog := newProgress(c.Logger)

	result, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		return err
	}
	prog.done("Genealogy complete")

	printSuccess("Genealogy graph written")
	printFile(result.Output)
	printStats(result.Stats)
	if opts.Format == "" || opts.Format == pipeline.FormatDOT {
		printNextStep("Render it with", svgCommand(result.Output))
	}
	return nil
}

// svgCommand returns the Graphviz command line that renders a DOT file to SVG.
func svgCommand(dotPath string) string {
	svg := strings.TrimSuffix(dotPath, filepath.Ext(dotPath)) + ".svg"
	return fmt.Sprintf("dot -Tsvg %s > %s", dotPath, svg)
}

func modeList[M ~string](modes []M) string {
	parts := make([]string, len(modes))
	for i, m := range modes {
		parts[i] = string(m)
	}
	return strings.Join(parts, ", ")
}
