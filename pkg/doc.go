// Package pkg provides the core libraries for rimealogy genealogy graphs.
//
// # Overview
//
// Rimealogy turns a colony simulation save into a family tree: colonists,
// the people they relate to, their parents and children. The pkg directory
// is organized by pipeline stage:
//
//  1. [save] - Save document loading and record extraction
//  2. [world] - Factions, persons and names with symmetric parent links
//  3. [visibility] - Draw-set and named-set resolution
//  4. [render/genealogy] - Diagram layout, DOT output and Graphviz rendering
//  5. [io] - JSON export and import of diagrams
//  6. [pipeline] - Orchestration (parse → extract → filter → write)
//
// Supporting packages:
//
//   - [errors] - Coded errors and path validation
//   - [observability] - Pipeline hooks for metrics and tracing
//   - [buildinfo] - Version information injected at build time
//
// # Architecture
//
// The typical data flow through rimealogy:
//
//	Save file (XML)
//	     ↓
//	[save] package (etree document → faction and person records)
//	     ↓
//	[world] package (lookup tables, player faction, parent/child links)
//	     ↓
//	[visibility] package (who is drawn, who is named)
//	     ↓
//	[render/genealogy] package (nodes, couples, relationship edges)
//	     ↓
//	DOT/JSON/SVG/PNG/JPG output
//
// # Quick Start
//
//	doc, err := save.Load("Colony.rws")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	recs, err := save.Extract(doc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	w, err := world.New(recs.Factions, recs.Persons)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	vis, err := visibility.Resolve(w, visibility.DrawColony, visibility.NamedSeen)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(genealogy.ToDOT(genealogy.Build(w, vis, genealogy.Options{}), genealogy.Options{}))
//
// Or run every stage at once with [pipeline.Runner].
//
// [save]: github.com/matzehuels/rimealogy/pkg/save
// [world]: github.com/matzehuels/rimealogy/pkg/world
// [visibility]: github.com/matzehuels/rimealogy/pkg/visibility
// [render/genealogy]: github.com/matzehuels/rimealogy/pkg/render/genealogy
// [io]: github.com/matzehuels/rimealogy/pkg/io
// [pipeline]: github.com/matzehuels/rimealogy/pkg/pipeline
// [pipeline.Runner]: github.com/matzehuels/rimealogy/pkg/pipeline.Runner
// [errors]: github.com/matzehuels/rimealogy/pkg/errors
// [observability]: github.com/matzehuels/rimealogy/pkg/observability
// [buildinfo]: github.com/matzehuels/rimealogy/pkg/buildinfo
package pkg
