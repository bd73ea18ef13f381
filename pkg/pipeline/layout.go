package pipeline

import (
	"context"

	"github.com/matzehuels/rimealogy/pkg/render/genealogy"
	"github.com/matzehuels/rimealogy/pkg/visibility"
	"github.com/matzehuels/rimealogy/pkg/world"
)

// Layout resolves the draw and named sets for w and builds the diagram.
func Layout(ctx context.Context, w *world.World, opts Options) (*visibility.Result, *genealogy.Diagram, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if err := opts.ValidateModes(); err != nil {
		return nil, nil, err
	}

	draw, named := opts.Modes()
	vis, err := visibility.Resolve(w, draw, named)
	if err != nil {
		return nil, nil, err
	}
	return vis, genealogy.Build(w, vis, opts.RenderOptions()), nil
}
