package genealogy

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/rimealogy/pkg/visibility"
	"github.com/matzehuels/rimealogy/pkg/world"
)

func mustWorld(t *testing.T, factions []*world.Faction, persons []*world.Person) *world.World {
	t.Helper()
	w, err := world.New(factions, persons)
	if err != nil {
		t.Fatalf("world.New() error: %v", err)
	}
	return w
}

func mustResolve(t *testing.T, w *world.World, draw visibility.DrawMode, named visibility.NamedMode) *visibility.Result {
	t.Helper()
	res, err := visibility.Resolve(w, draw, named)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	return res
}

// spouses is a colonist married to a deceased member of a hostile faction.
func spouses(t *testing.T) *world.World {
	factions := []*world.Faction{
		{ID: 1, Def: world.PlayerFactionDef, Relations: map[string]int{}},
		{ID: 2, Def: "OutlanderCivil", Relations: map[string]int{"Faction_1": -10}},
	}
	persons := []*world.Person{
		{
			ID: "Human1", Alive: true, Name: world.TripleName("Adam", "Ace", "Reed"),
			Faction: "Faction_1", Seen: true,
			Relations: []world.Relation{{Type: "Spouse", Other: "Human2"}},
		},
		{
			ID: "Human2", Alive: false, Name: world.TripleName("Bea", "Bea", "Stone"),
			Faction: "Faction_2", Seen: true,
		},
	}
	return mustWorld(t, factions, persons)
}

func TestToDOTSpouses(t *testing.T) {
	w := spouses(t)
	res := mustResolve(t, w, visibility.DrawColony, visibility.NamedSeen)

	got := ToDOT(Build(w, res, Options{}), Options{})
	want := `digraph Genealogy {
	graph [overlap=prism,rankdir=LR,splines=line,outputorder=edgesfirst];
	node [label="",shape=box,style=filled];
	Human1 [label="Adam 'Ace' Reed",fillcolor="#DDDDFF"];
	Human2 [label="'Bea' Stone💀",fillcolor="#FFDDDD"];
	Human1 -> Human2 [xlabel="Spouse",constraint=false,dir=both,style=bold,color="#80800080",tooltip="Ace <Spouse> Bea",labeltooltip="Ace <Spouse> Bea"];
	Virtual_0 [style=invis];
	Virtual_0 -> Human1 [style=invis];
	Virtual_0 -> Human2 [style=invis];
}
`
	if got != want {
		t.Errorf("ToDOT() =\n%s\nwant\n%s", got, want)
	}
}

// household has two colonists (Human1, Human2) in a relationship, Human1's
// parents Human3 (seen) and Human4 (unseen), Human1's ex-spouse Human5 and a
// colonist Human6 whose only parent is not in the save.
func household(t *testing.T) *world.World {
	mk := func(id, faction string, seen bool, rels []world.Relation, parents ...string) *world.Person {
		p := &world.Person{
			ID: id, Alive: true, Name: world.SingleName(strings.ToLower(id)),
			Faction: faction, Seen: seen, Relations: rels,
		}
		for _, parent := range parents {
			p.AddParent(parent)
		}
		return p
	}
	factions := []*world.Faction{
		{ID: 1, Def: world.PlayerFactionDef, Relations: map[string]int{"Faction_3": 5}},
		{ID: 3, Def: "TribeCivil"},
	}
	persons := []*world.Person{
		mk("Human1", "Faction_1", true, []world.Relation{
			{Type: "ExSpouse", Other: "Human5"},
			{Type: "Lover", Other: "Human2"},
		}, "Human3", "Human4"),
		mk("Human2", "Faction_1", true, []world.Relation{{Type: "Lover", Other: "Human1"}}),
		mk("Human3", "Faction_3", true, nil),
		mk("Human4", "Faction_3", false, nil),
		mk("Human5", "Faction_3", true, nil),
		mk("Human6", "Faction_1", true, nil, "Human99"),
	}
	return mustWorld(t, factions, persons)
}

func TestBuildHousehold(t *testing.T) {
	w := household(t)
	res := mustResolve(t, w, visibility.DrawColony, visibility.NamedSeen)
	d := Build(w, res, Options{})

	if len(d.Persons) != 6 {
		t.Fatalf("len(Persons) = %d, want 6", len(d.Persons))
	}
	for i := 1; i < len(d.Persons); i++ {
		if d.Persons[i-1].ID >= d.Persons[i].ID {
			t.Errorf("Persons not in ascending order: %s before %s", d.Persons[i-1].ID, d.Persons[i].ID)
		}
	}

	anon := d.Persons[3]
	if anon.ID != "Human4" || anon.Named || anon.Label != world.Placeholder || anon.FillColor != "#EEEEEE" {
		t.Errorf("Human4 = %+v, want anonymous placeholder", anon)
	}
	if d.Persons[2].FillColor != "#DDFFDD" {
		t.Errorf("Human3 fill = %q, want friendly", d.Persons[2].FillColor)
	}

	if len(d.Relations) != 2 {
		t.Fatalf("Relations = %+v, want 2 edges", d.Relations)
	}
	lover, ex := d.Relations[0], d.Relations[1]
	if lover.From != "Human1" || lover.To != "Human2" || lover.Style != "dotted" || lover.Color != "black" || lover.Helper != "Virtual_0" {
		t.Errorf("lover edge = %+v", lover)
	}
	if ex.To != "Human5" || ex.Style != "bold" || ex.Color != "brown" || ex.Helper != "Virtual_1" {
		t.Errorf("ex-spouse edge = %+v", ex)
	}

	if len(d.Couples) != 1 || d.Couples[0].ID != "Couple_Human3_Human4" {
		t.Fatalf("Couples = %+v, want [Couple_Human3_Human4]", d.Couples)
	}
	if len(d.Descents) != 1 || d.Descents[0] != (Descent{Couple: "Couple_Human3_Human4", Child: "Human1"}) {
		t.Errorf("Descents = %+v", d.Descents)
	}
	if d.NodeCount() != 9 || d.EdgeCount() != 9 {
		t.Errorf("NodeCount, EdgeCount = %d, %d, want 9, 9", d.NodeCount(), d.EdgeCount())
	}
}

func TestToDOTHousehold(t *testing.T) {
	w := household(t)
	res := mustResolve(t, w, visibility.DrawColony, visibility.NamedSeen)
	dot := ToDOT(Build(w, res, Options{}), Options{})

	for _, want := range []string{
		"\tHuman4 [label=\"???\",fillcolor=\"#EEEEEE\"];\n",
		"\tHuman1 -> Human2 [xlabel=\"Lover\",",
		"\tHuman1 -> Human5 [xlabel=\"ExSpouse\",constraint=false,dir=both,style=bold,color=\"brown\",",
		"\tCouple_Human3_Human4 [label=\"\",shape=point];\n",
		"\tHuman3 -> Couple_Human3_Human4 [arrowhead=none];\n",
		"\tHuman4 -> Couple_Human3_Human4 [arrowhead=none];\n",
		"\tCouple_Human3_Human4 -> Human1;\n",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q", want)
		}
	}
	for _, unwanted := range []string{"Human2 -> Human1", "Couple_Human99", "-> Human6;"} {
		if strings.Contains(dot, unwanted) {
			t.Errorf("ToDOT() should not contain %q", unwanted)
		}
	}
	if strings.Count(dot, "[style=invis];") != 6 {
		t.Errorf("want 2 helper nodes with 4 invisible edges, got %d invisible declarations", strings.Count(dot, "[style=invis];"))
	}
}

func TestToDOTDeterministic(t *testing.T) {
	w := household(t)
	first := ToDOT(Build(w, mustResolve(t, w, visibility.DrawSeen, visibility.NamedRelated), Options{}), Options{})
	for i := 0; i < 5; i++ {
		again := ToDOT(Build(w, mustResolve(t, w, visibility.DrawSeen, visibility.NamedRelated), Options{}), Options{})
		if again != first {
			t.Fatal("ToDOT() output differs between runs")
		}
	}
}

func TestBuildOffsaveParent(t *testing.T) {
	w := household(t)
	res := mustResolve(t, w, visibility.DrawAll, visibility.NamedAll)
	d := Build(w, res, Options{})

	orphan, _ := w.Person("Human6")
	if len(orphan.Parents) == 0 {
		t.Fatal("Human6 should keep its off-save parent")
	}
	for _, c := range d.Couples {
		if c.ID == "Couple_Human99" {
			t.Error("off-save parent should not produce a couple")
		}
	}
	for _, e := range d.Descents {
		if e.Child == "Human6" {
			t.Error("off-save parent should not produce a descent edge")
		}
	}
}

func TestRelationStyle(t *testing.T) {
	tests := []struct {
		typ       string
		bothAlive bool
		style     string
		color     string
	}{
		{"Spouse", true, "bold", "black"},
		{"Spouse", false, "bold", "#80800080"},
		{"ExSpouse", false, "bold", "brown"},
		{"Fiance", true, "dashed", "black"},
		{"ExLover", true, "dotted", "brown"},
		{"Sibling", false, "dotted", "#80800080"},
	}
	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			if got := relationStyle(tt.typ); got != tt.style {
				t.Errorf("relationStyle(%q) = %q, want %q", tt.typ, got, tt.style)
			}
			if got := relationColor(tt.typ, tt.bothAlive); got != tt.color {
				t.Errorf("relationColor(%q, %v) = %q, want %q", tt.typ, tt.bothAlive, got, tt.color)
			}
		})
	}
}

func TestRedactedTooltip(t *testing.T) {
	w := spouses(t)
	res := &visibility.Result{
		Drawn: visibility.NewSet("Human1", "Human2"),
		Named: visibility.NewSet("Human1"),
	}
	d := Build(w, res, Options{})
	if got := d.Relations[0].Tooltip; got != "Ace <Spouse> ???" {
		t.Errorf("Tooltip = %q, want %q", got, "Ace <Spouse> ???")
	}
	if d.Persons[1].Label != world.Placeholder {
		t.Errorf("redacted label = %q, want placeholder without marker", d.Persons[1].Label)
	}
}

func TestEscape(t *testing.T) {
	d := &Diagram{Persons: []PersonNode{{ID: "Human1", Label: `'Big "Q"' \o/`, FillColor: "#DDDDFF"}}}

	raw := ToDOT(d, Options{})
	if !strings.Contains(raw, `[label="'Big "Q"' \o/",`) {
		t.Errorf("unescaped output should substitute labels as-is:\n%s", raw)
	}
	escaped := ToDOT(d, Options{Escape: true})
	if !strings.Contains(escaped, `[label="'Big \"Q\"' \\o/",`) {
		t.Errorf("escaped output missing escaped label:\n%s", escaped)
	}
}

func TestCustomPalette(t *testing.T) {
	w := spouses(t)
	res := mustResolve(t, w, visibility.DrawColony, visibility.NamedSeen)
	d := Build(w, res, Options{Palette: Palette{Player: "gold"}})
	if d.Persons[0].FillColor != "gold" {
		t.Errorf("player fill = %q, want gold", d.Persons[0].FillColor)
	}
	if d.Persons[1].FillColor != DefaultPalette().Hostile {
		t.Errorf("hostile fill = %q, want default", d.Persons[1].FillColor)
	}
}

func TestWriteDOTMatchesToDOT(t *testing.T) {
	w := household(t)
	d := Build(w, mustResolve(t, w, visibility.DrawColony, visibility.NamedSeen), Options{})
	var buf bytes.Buffer
	if err := WriteDOT(&buf, d, Options{}); err != nil {
		t.Fatalf("WriteDOT() error: %v", err)
	}
	if buf.String() != ToDOT(d, Options{}) {
		t.Error("WriteDOT() and ToDOT() disagree")
	}
}

func TestRenderSVG(t *testing.T) {
	w := spouses(t)
	dot := ToDOT(Build(w, mustResolve(t, w, visibility.DrawColony, visibility.NamedSeen), Options{}), Options{})
	svg, err := Render(context.Background(), []byte(dot), FormatSVG)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Error("Render() output missing <svg> tag")
	}
}

func TestRenderUnsupportedFormat(t *testing.T) {
	if _, err := Render(context.Background(), []byte("digraph G {}"), Format("gif")); err == nil {
		t.Error("Render() should reject unsupported formats")
	}
}
