package world

import (
	"errors"
	"slices"
	"testing"
)

func colony(id int) *Faction {
	return &Faction{ID: id, Def: PlayerFactionDef, Name: "Colony", Relations: map[string]int{}}
}

func outlander(id int, goodwill map[string]int) *Faction {
	return &Faction{ID: id, Def: "OutlanderCivil", Name: "Outlanders", Relations: goodwill}
}

func person(id, faction string, parents ...string) *Person {
	p := &Person{ID: id, Alive: true, Gender: DefaultGender, Faction: faction, Seen: true}
	for _, parent := range parents {
		p.AddParent(parent)
	}
	return p
}

func TestNewPlayerFaction(t *testing.T) {
	tests := []struct {
		name     string
		factions []*Faction
		wantErr  error
	}{
		{"single player faction", []*Faction{colony(1), outlander(2, nil)}, nil},
		{"no player faction", []*Faction{outlander(2, nil)}, ErrNoPlayerFaction},
		{"no factions at all", nil, ErrNoPlayerFaction},
		{"two player factions", []*Faction{colony(1), colony(3)}, ErrAmbiguousPlayerFaction},
		{"duplicate faction id", []*Faction{colony(1), outlander(1, nil)}, ErrDuplicateFaction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := New(tt.factions, nil)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && w.PlayerKey() != "Faction_1" {
				t.Errorf("PlayerKey() = %q, want %q", w.PlayerKey(), "Faction_1")
			}
		})
	}
}

func TestNewDuplicatePerson(t *testing.T) {
	_, err := New([]*Faction{colony(1)}, []*Person{person("Human1", "Faction_1"), person("Human1", "Faction_1")})
	if !errors.Is(err, ErrDuplicatePerson) {
		t.Fatalf("New() error = %v, want %v", err, ErrDuplicatePerson)
	}
}

func TestNewBackEdges(t *testing.T) {
	persons := []*Person{
		person("Human1", "Faction_1"),
		person("Human2", "Faction_1"),
		person("Human3", "Faction_1", "Human1", "Human2"),
		person("Human4", "Faction_1", "Human1", "Human99"),
	}
	w, err := New([]*Faction{colony(1)}, persons)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	for _, p := range w.Persons() {
		for _, parentID := range p.Parents {
			parent, ok := w.Person(parentID)
			if !ok {
				continue
			}
			if !parent.HasChild(p.ID) {
				t.Errorf("%s.Children = %v, missing %s", parentID, parent.Children, p.ID)
			}
		}
	}

	h1, _ := w.Person("Human1")
	if want := []string{"Human3", "Human4"}; !slices.Equal(h1.Children, want) {
		t.Errorf("Human1.Children = %v, want %v", h1.Children, want)
	}

	h4, _ := w.Person("Human4")
	if !h4.HasParent("Human99") {
		t.Error("off-save parent should stay in Parents")
	}
	if w.Has("Human99") {
		t.Error("off-save parent should not be added to the person table")
	}
}

func TestPersonIDsSorted(t *testing.T) {
	w, err := New([]*Faction{colony(1)}, []*Person{
		person("Human3", "Faction_1"),
		person("Human1", "Faction_1"),
		person("Human20", "Faction_1"),
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	want := []string{"Human1", "Human20", "Human3"}
	if got := w.PersonIDs(); !slices.Equal(got, want) {
		t.Errorf("PersonIDs() = %v, want %v", got, want)
	}
}

func TestColonists(t *testing.T) {
	w, err := New([]*Faction{colony(1), outlander(2, nil)}, []*Person{
		person("Human2", "Faction_2"),
		person("Human1", "Faction_1"),
		person("Human3", NoFaction),
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	got := w.Colonists()
	if len(got) != 1 || got[0].ID != "Human1" {
		t.Errorf("Colonists() = %v, want [Human1]", got)
	}
}

func TestStanding(t *testing.T) {
	player := colony(1)
	player.Relations["Faction_4"] = 50
	factions := []*Faction{
		player,
		outlander(2, map[string]int{"Faction_1": -10}),
		outlander(3, map[string]int{"Faction_1": 25}),
		outlander(4, map[string]int{"Faction_1": -80}),
		outlander(5, nil),
	}
	w, err := New(factions, nil)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	tests := []struct {
		key  string
		want Standing
	}{
		{"Faction_1", StandingPlayer},
		{"Faction_2", StandingHostile},
		{"Faction_3", StandingFriendly},
		{"Faction_4", StandingFriendly}, // player's own score wins
		{"Faction_5", StandingNeutral},
		{NoFaction, StandingNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := w.Standing(tt.key); got != tt.want {
				t.Errorf("Standing(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestSortedRelations(t *testing.T) {
	p := &Person{Relations: []Relation{
		{Type: "Lover", Other: "Human9"},
		{Type: "Sibling", Other: "Human2"},
		{Type: "ExLover", Other: "Human9"},
	}}
	got := p.SortedRelations()
	want := []Relation{
		{Type: "Sibling", Other: "Human2"},
		{Type: "Lover", Other: "Human9"},
		{Type: "ExLover", Other: "Human9"},
	}
	if !slices.Equal(got, want) {
		t.Errorf("SortedRelations() = %v, want %v", got, want)
	}
	if p.Relations[0].Other != "Human9" {
		t.Error("SortedRelations() should not reorder the person's relations")
	}
}

func TestFactionKey(t *testing.T) {
	if got := FactionKey(12); got != "Faction_12" {
		t.Errorf("FactionKey(12) = %q, want %q", got, "Faction_12")
	}
}
