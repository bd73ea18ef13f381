package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/rimealogy/pkg/observability"
)

// Runner executes the conversion pipeline and reports each stage to the
// logger and the registered observability hooks.
//
// The Runner is stateless except for the logger. Multiple goroutines can
// safely use the same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner that logs to logger.
// If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete parse → extract → filter → write pipeline and
// writes the output file. Nothing is written when any stage fails.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	hooks := observability.Pipeline()
	result := &Result{Output: opts.Output}

	// Stage 1: Parse
	logger.Infof("Parsing file %s", opts.Input)
	start := time.Now()
	hooks.OnParseStart(ctx, opts.Input)
	doc, err := Parse(ctx, opts.Input)
	result.Stats.ParseTime = time.Since(start)
	hooks.OnParseComplete(ctx, opts.Input, result.Stats.ParseTime, err)
	if err != nil {
		return nil, err
	}
	logger.Debug("parsed save", "duration", result.Stats.ParseTime)

	// Stage 2: Extract
	logger.Info("Retrieving game data")
	start = time.Now()
	hooks.OnExtractStart(ctx)
	w, err := Extract(ctx, doc, logger)
	result.Stats.ExtractTime = time.Since(start)
	if err != nil {
		hooks.OnExtractComplete(ctx, 0, 0, result.Stats.ExtractTime, err)
		return nil, err
	}
	result.World = w
	result.Stats.Factions = w.FactionCount()
	result.Stats.Persons = w.PersonCount()
	hooks.OnExtractComplete(ctx, result.Stats.Factions, result.Stats.Persons, result.Stats.ExtractTime, nil)
	logger.Debug("extracted records",
		"factions", result.Stats.Factions,
		"persons", result.Stats.Persons,
		"player", w.PlayerKey(),
		"duration", result.Stats.ExtractTime)

	// Stage 3: Filter
	start = time.Now()
	hooks.OnFilterStart(ctx, opts.DrawMode, opts.NamedMode)
	vis, diagram, err := Layout(ctx, w, opts)
	result.Stats.FilterTime = time.Since(start)
	if err != nil {
		hooks.OnFilterComplete(ctx, 0, 0, result.Stats.FilterTime, err)
		return nil, err
	}
	result.Visibility = vis
	result.Diagram = diagram
	result.Stats.Drawn = vis.Drawn.Len()
	result.Stats.Named = vis.Named.Len()
	result.Stats.Relations = len(diagram.Relations)
	result.Stats.Couples = len(diagram.Couples)
	hooks.OnFilterComplete(ctx, result.Stats.Drawn, result.Stats.Named, result.Stats.FilterTime, nil)
	logger.Infof("Filtering persons to show ... %d selected", result.Stats.Drawn)

	// Stage 4: Write
	logger.Infof("Writing to file %s", opts.Output)
	start = time.Now()
	hooks.OnWriteStart(ctx, opts.Output, opts.Format)
	data, err := Encode(ctx, diagram, opts)
	if err == nil {
		err = WriteFile(opts.Output, data)
	}
	result.Stats.WriteTime = time.Since(start)
	result.Stats.Bytes = len(data)
	hooks.OnWriteComplete(ctx, opts.Output, opts.Format, result.Stats.Bytes, result.Stats.WriteTime, err)
	if err != nil {
		return nil, err
	}

	logger.Debug("wrote output",
		"format", opts.Format,
		"bytes", result.Stats.Bytes,
		"nodes", diagram.NodeCount(),
		"edges", diagram.EdgeCount(),
		"duration", result.Stats.WriteTime)
	logger.Info(result.Stats.String())

	return result, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
