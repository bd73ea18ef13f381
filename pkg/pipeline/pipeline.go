// Package pipeline provides the conversion pipeline for rimealogy.
//
// This package implements the complete parse → extract → filter → write
// pipeline used by the CLI. Each stage can also be run on its own.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Parse: Read the save document and locate its game element
//  2. Extract: Convert faction and person records and build the world model
//  3. Filter: Resolve the draw and named sets and lay out the diagram
//  4. Write: Encode the diagram as DOT, JSON or a rendered image
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Input:     "Colony.rws",
//	    DrawMode:  "colony",
//	    NamedMode: "seen",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Stats.Drawn, "persons drawn")
//
// Run individual stages:
//
//	doc, err := pipeline.Parse(ctx, "Colony.rws")
//	w, err := pipeline.Extract(ctx, doc, logger)
//	vis, diagram, err := pipeline.Layout(ctx, w, opts)
//	data, err := pipeline.Encode(ctx, diagram, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	apperr "github.com/matzehuels/rimealogy/pkg/errors"
	"github.com/matzehuels/rimealogy/pkg/render/genealogy"
	"github.com/matzehuels/rimealogy/pkg/visibility"
	"github.com/matzehuels/rimealogy/pkg/world"
)

const (
	// DefaultOutput is the output path used when none is given.
	DefaultOutput = "./tree.dot"

	// DefaultDrawMode is the default draw-set selection.
	DefaultDrawMode = string(visibility.DrawColony)

	// DefaultNamedMode is the default named-set selection.
	DefaultNamedMode = string(visibility.NamedSeen)

	// DefaultFormat is the default output format.
	DefaultFormat = FormatDOT
)

// Format constants for output formats.
const (
	FormatDOT  = "dot"
	FormatJSON = "json"
	FormatSVG  = string(genealogy.FormatSVG)
	FormatPNG  = string(genealogy.FormatPNG)
	FormatJPG  = string(genealogy.FormatJPG)
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatDOT:  true,
	FormatJSON: true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJPG:  true,
}

// Options contains all configuration for a conversion run.
type Options struct {
	Input     string            `json:"input"`
	Output    string            `json:"output,omitempty"`
	DrawMode  string            `json:"draw,omitempty"`
	NamedMode string            `json:"named,omitempty"`
	Format    string            `json:"format,omitempty"`
	Escape    bool              `json:"escape,omitempty"` // Escape quotes and backslashes in DOT values
	Palette   genealogy.Palette `json:"palette,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	draw      visibility.DrawMode
	named     visibility.NamedMode
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// World is the extracted world model.
	World *world.World

	// Visibility holds the resolved draw and named sets.
	Visibility *visibility.Result

	// Diagram is the laid out genealogy graph.
	Diagram *genealogy.Diagram

	// Output is the path written to.
	Output string

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Factions  int
	Persons   int
	Drawn     int
	Named     int
	Relations int
	Couples   int
	Bytes     int

	ParseTime   time.Duration
	ExtractTime time.Duration
	FilterTime  time.Duration
	WriteTime   time.Duration
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return apperr.New(apperr.ErrCodeInvalidFormat, "invalid format: %q (must be one of: dot, json, svg, png, jpg)", format)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Input == "" {
		return apperr.New(apperr.ErrCodeInvalidInput, "input save file is required")
	}
	if err := apperr.ValidatePath(o.Input); err != nil {
		return err
	}

	if err := o.ValidateModes(); err != nil {
		return err
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if o.Output == "" {
		o.Output = DefaultOutputFor(o.Format)
	}
	if err := apperr.ValidateOutputPath(o.Output); err != nil {
		return err
	}

	o.Palette = o.Palette.WithDefaults()
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// DefaultOutputFor returns the default output path for format, e.g.
// "./tree.json" for JSON. DOT output defaults to [DefaultOutput].
func DefaultOutputFor(format string) string {
	if format == "" || format == FormatDOT {
		return DefaultOutput
	}
	return "./tree." + format
}

// ValidateModes applies mode defaults and parses both selection modes.
func (o *Options) ValidateModes() error {
	if o.DrawMode == "" {
		o.DrawMode = DefaultDrawMode
	}
	if o.NamedMode == "" {
		o.NamedMode = DefaultNamedMode
	}

	draw, err := visibility.ParseDrawMode(o.DrawMode)
	if err != nil {
		return apperr.Wrap(apperr.ErrCodeInvalidMode, err, "invalid options")
	}
	named, err := visibility.ParseNamedMode(o.NamedMode)
	if err != nil {
		return apperr.Wrap(apperr.ErrCodeInvalidMode, err, "invalid options")
	}
	o.draw, o.named = draw, named
	return nil
}

// Modes returns the parsed selection modes. It is only meaningful after
// ValidateModes or ValidateAndSetDefaults succeeded.
func (o *Options) Modes() (visibility.DrawMode, visibility.NamedMode) {
	return o.draw, o.named
}

// RenderOptions returns the diagram options derived from o.
func (o *Options) RenderOptions() genealogy.Options {
	return genealogy.Options{Palette: o.Palette, Escape: o.Escape}
}

// IsImage reports whether the output format is rendered through Graphviz.
func (o *Options) IsImage() bool {
	switch o.Format {
	case FormatSVG, FormatPNG, FormatJPG:
		return true
	}
	return false
}

func (s Stats) String() string {
	return fmt.Sprintf("%d persons, %d drawn, %d named, %d relationship edges, %d couples",
		s.Persons, s.Drawn, s.Named, s.Relations, s.Couples)
}
