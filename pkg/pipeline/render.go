package pipeline

import (
	"bytes"
	"context"
	"os"

	apperr "github.com/matzehuels/rimealogy/pkg/errors"
	gio "github.com/matzehuels/rimealogy/pkg/io"
	"github.com/matzehuels/rimealogy/pkg/render/genealogy"
)

// Encode returns the diagram encoded in opts.Format.
// Image formats render the DOT output with the embedded Graphviz engine.
func Encode(ctx context.Context, d *genealogy.Diagram, opts Options) ([]byte, error) {
	if opts.Format == "" {
		opts.Format = DefaultFormat
	}
	if err := ValidateFormat(opts.Format); err != nil {
		return nil, err
	}

	switch opts.Format {
	case FormatJSON:
		var buf bytes.Buffer
		if err := gio.WriteJSON(d, &buf); err != nil {
			return nil, apperr.Wrap(apperr.ErrCodeInternal, err, "encode json")
		}
		return buf.Bytes(), nil
	case FormatDOT:
		return []byte(genealogy.ToDOT(d, opts.RenderOptions())), nil
	default:
		return RenderDOT(ctx, []byte(genealogy.ToDOT(d, opts.RenderOptions())), opts.Format)
	}
}

// RenderDOT lays out existing DOT source as an image.
func RenderDOT(ctx context.Context, dot []byte, format string) ([]byte, error) {
	switch format {
	case FormatSVG, FormatPNG, FormatJPG:
	default:
		return nil, apperr.New(apperr.ErrCodeInvalidFormat, "invalid image format: %q (must be one of: svg, png, jpg)", format)
	}
	data, err := genealogy.Render(ctx, dot, genealogy.Format(format))
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInternal, err, "render %s", format)
	}
	return data, nil
}

// WriteFile writes data to path, replacing any existing file.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperr.Wrap(apperr.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}
