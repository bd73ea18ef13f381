// Package render groups the visualization backends of rimealogy.
//
// # Genealogy
//
// The [genealogy] subpackage lays out a family tree from a world model and
// its visibility sets, writes it as Graphviz DOT and renders DOT to SVG,
// PNG or JPG with an embedded Graphviz engine:
//
//	d := genealogy.Build(w, vis, genealogy.Options{})
//	dot := genealogy.ToDOT(d, genealogy.Options{})
//	svg, err := genealogy.Render(ctx, []byte(dot), genealogy.FormatSVG)
//
// [genealogy]: github.com/matzehuels/rimealogy/pkg/render/genealogy
package render
