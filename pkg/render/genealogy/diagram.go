package genealogy

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/matzehuels/rimealogy/pkg/visibility"
	"github.com/matzehuels/rimealogy/pkg/world"
)

// Options configures diagram building and DOT output.
type Options struct {
	// Palette holds node fill colors. Empty entries use DefaultPalette.
	Palette Palette

	// Escape escapes double quotes and backslashes inside quoted values.
	Escape bool
}

// PersonNode is a drawn person.
type PersonNode struct {
	ID        string
	Label     string
	FillColor string
	Named     bool
	Alive     bool
	Standing  world.Standing
}

// RelationEdge is a non-parent relationship between a colonist and another
// drawn person. Helper is the invisible node anchoring it.
type RelationEdge struct {
	From    string
	To      string
	Type    string
	Style   string
	Color   string
	Tooltip string
	Helper  string
}

// Couple groups the parents of one or more drawn children.
type Couple struct {
	ID      string
	Parents []string // drawn parents, sorted
}

// Descent links a couple to one of its children.
type Descent struct {
	Couple string
	Child  string
}

// Diagram is a genealogy graph in emission order.
type Diagram struct {
	Persons   []PersonNode
	Relations []RelationEdge
	Couples   []Couple
	Descents  []Descent
}

// NodeCount returns the number of declared nodes, synthetic ones included.
func (d *Diagram) NodeCount() int {
	return len(d.Persons) + len(d.Relations) + len(d.Couples)
}

// EdgeCount returns the number of declared edges, invisible ones included.
func (d *Diagram) EdgeCount() int {
	n := 3*len(d.Relations) + len(d.Descents)
	for _, c := range d.Couples {
		n += len(c.Parents)
	}
	return n
}

// CoupleID returns the id of the couple node for a set of parent ids.
func CoupleID(parents []string) string {
	sorted := slices.Clone(parents)
	slices.Sort(sorted)
	return "Couple_" + strings.Join(sorted, "_")
}

// HelperID returns the id of the n-th invisible helper node.
func HelperID(n int) string {
	return fmt.Sprintf("Virtual_%d", n)
}

// Build lays out the drawn persons of w and their relationships.
// Iteration follows ascending person ids, so equal inputs give equal diagrams.
func Build(w *world.World, vis *visibility.Result, opts Options) *Diagram {
	palette := opts.Palette.WithDefaults()
	d := &Diagram{}

	for _, p := range w.Persons() {
		if vis.Drawn.Has(p.ID) {
			d.Persons = append(d.Persons, personNode(w, p, vis.Named.Has(p.ID), palette))
		}
	}

	for _, p := range w.Colonists() {
		if !vis.Drawn.Has(p.ID) {
			continue
		}
		for _, r := range p.SortedRelations() {
			other, ok := w.Person(r.Other)
			if !ok || !vis.Drawn.Has(other.ID) {
				continue
			}
			// Colonist pairs are emitted once, from the smaller id.
			if w.IsColonist(other) && p.ID >= other.ID {
				continue
			}
			d.Relations = append(d.Relations, relationEdge(p, other, r.Type, vis.Named, HelperID(len(d.Relations))))
		}
	}

	couples := make(map[string]Couple)
	for _, p := range w.Persons() {
		if !vis.Drawn.Has(p.ID) || len(p.Parents) == 0 {
			continue
		}
		id := CoupleID(p.Parents)
		if _, seen := couples[id]; seen {
			continue
		}
		var drawn []string
		for _, parent := range p.Parents {
			if vis.Drawn.Has(parent) {
				drawn = append(drawn, parent)
			}
		}
		if len(drawn) > 0 {
			couples[id] = Couple{ID: id, Parents: drawn}
		}
	}
	for _, id := range slices.Sorted(maps.Keys(couples)) {
		d.Couples = append(d.Couples, couples[id])
	}

	for _, p := range w.Persons() {
		if !vis.Drawn.Has(p.ID) || len(p.Parents) == 0 {
			continue
		}
		if id := CoupleID(p.Parents); hasCouple(couples, id) {
			d.Descents = append(d.Descents, Descent{Couple: id, Child: p.ID})
		}
	}
	return d
}

func hasCouple(couples map[string]Couple, id string) bool {
	_, ok := couples[id]
	return ok
}

func personNode(w *world.World, p *world.Person, named bool, palette Palette) PersonNode {
	n := PersonNode{
		ID:       p.ID,
		Named:    named,
		Alive:    p.Alive,
		Standing: w.Standing(p.Faction),
	}
	if !named {
		n.Label = world.Placeholder
		n.FillColor = palette.Anonymous
		return n
	}
	n.Label = p.Name.Full()
	if !p.Alive {
		n.Label += DeceasedMarker
	}
	n.FillColor = palette.Fill(n.Standing)
	return n
}

func relationEdge(from, to *world.Person, typ string, named visibility.Set, helper string) RelationEdge {
	tooltip := fmt.Sprintf("%s <%s> %s", nick(from, named), typ, nick(to, named))
	return RelationEdge{
		From:    from.ID,
		To:      to.ID,
		Type:    typ,
		Style:   relationStyle(typ),
		Color:   relationColor(typ, from.Alive && to.Alive),
		Tooltip: tooltip,
		Helper:  helper,
	}
}

// nick returns the short name of p, or the placeholder when p is redacted.
func nick(p *world.Person, named visibility.Set) string {
	if !named.Has(p.ID) {
		return world.Placeholder
	}
	return p.Name.Nick()
}

func relationStyle(typ string) string {
	switch {
	case strings.Contains(typ, "Spouse"):
		return "bold"
	case strings.Contains(typ, "Fiance"):
		return "dashed"
	default:
		return "dotted"
	}
}

func relationColor(typ string, bothAlive bool) string {
	switch {
	case strings.Contains(typ, "Ex"):
		return colorFormer
	case !bothAlive:
		return colorDeath
	default:
		return colorDefault
	}
}
