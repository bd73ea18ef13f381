// Package genealogy renders a colony's family and relationship graph as a
// Graphviz directed graph.
//
// # Overview
//
// [Build] turns a [world.World] and its [visibility.Result] into a
// [Diagram]: person nodes, relationship edges, couple groupings and
// parent-to-child descent edges, each in a fixed, reproducible order.
// [WriteDOT] and [ToDOT] serialize the diagram:
//
//	d := genealogy.Build(w, res, genealogy.Options{})
//	dot := genealogy.ToDOT(d, genealogy.Options{})
//	svg, err := genealogy.Render(context.Background(), []byte(dot), genealogy.FormatSVG)
//
// # Layout
//
// The graph is laid out left to right with parents before children.
// Relationship edges between colonists and other persons must not disturb
// that ranking, so each is marked constraint=false and paired with an
// invisible helper node linked to both endpoints. Parents sharing children
// meet at a point-shaped couple node from which descent edges leave.
//
// # Styling
//
// Person nodes are filled by the standing of their faction toward the
// player (see [Palette]); redacted persons get a neutral placeholder.
// Relationship edges are bold for spouses, dashed for fiancés and dotted
// otherwise; former relationships are brown and relationships involving a
// deceased person are translucent.
//
// # Escaping
//
// Values are substituted into quoted attributes as-is unless
// [Options.Escape] is set, matching the output of earlier releases. Labels
// holding double quotes or backslashes need Escape to produce valid DOT.
//
// [world.World]: github.com/matzehuels/rimealogy/pkg/world.World
// [visibility.Result]: github.com/matzehuels/rimealogy/pkg/visibility.Result
package genealogy
