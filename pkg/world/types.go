package world

import (
	"fmt"
	"slices"
	"strings"
)

const (
	// PlayerFactionDef is the faction definition type owned by the player.
	PlayerFactionDef = "PlayerColony"

	// NoFaction is the faction reference of persons without a faction.
	NoFaction = "None"

	// DefaultGender is assumed when a person record carries no gender.
	DefaultGender = "Male"

	// ParentRelation is the relationship type that encodes parenthood.
	// Relations of this type become [Person.Parents] instead of [Person.Relations].
	ParentRelation = "Parent"
)

// FactionKey returns the lookup key for a faction id, as used by person
// faction references and goodwill tables (e.g. "Faction_3").
func FactionKey(id int) string {
	return fmt.Sprintf("Faction_%d", id)
}

// Faction is a group of persons with diplomatic standing toward other factions.
type Faction struct {
	ID     int    // Stored integer id (loadID)
	Def    string // Definition type, e.g. "PlayerColony"
	Name   string // Display name
	Leader string // Leader person id, "" when the faction has none

	// Relations maps other faction keys to goodwill scores.
	// Absent keys mean a goodwill of 0.
	Relations map[string]int
}

// Key returns the faction's lookup key.
func (f *Faction) Key() string { return FactionKey(f.ID) }

// IsPlayer reports whether the faction is the player's own colony.
func (f *Faction) IsPlayer() bool { return f.Def == PlayerFactionDef }

// HasLeader reports whether a leader is recorded.
func (f *Faction) HasLeader() bool { return f.Leader != "" }

// Goodwill returns the goodwill toward the faction with the given key and
// whether a score was recorded.
func (f *Faction) Goodwill(key string) (int, bool) {
	g, ok := f.Relations[key]
	return g, ok
}

// Relation is a typed relationship from one person to another.
type Relation struct {
	Type  string // Relationship label, e.g. "Spouse", "ExLover"
	Other string // Target person id
}

// Person is an individual from the save.
type Person struct {
	ID      string // Unique id, e.g. "Human12"
	Def     string // Thing definition
	KindDef string // Pawn kind definition
	Alive   bool
	Name    Name
	Gender  string
	Faction string // Faction key or NoFaction
	Seen    bool   // Ever observed by the player

	// Relations holds non-parent relationships in save order.
	Relations []Relation

	// Parents holds the ids of recorded parents, sorted. Parents may
	// reference persons absent from the save.
	Parents []string

	// Children holds the ids of persons listing this person as a parent,
	// sorted. It is filled by [New].
	Children []string
}

// HasParent reports whether id is one of the person's parents.
func (p *Person) HasParent(id string) bool {
	_, found := slices.BinarySearch(p.Parents, id)
	return found
}

// HasChild reports whether id is one of the person's children.
func (p *Person) HasChild(id string) bool {
	_, found := slices.BinarySearch(p.Children, id)
	return found
}

// SortedRelations returns the relationships ordered by target id.
// Relations sharing a target keep their save order.
func (p *Person) SortedRelations() []Relation {
	rels := slices.Clone(p.Relations)
	slices.SortStableFunc(rels, func(a, b Relation) int {
		return strings.Compare(a.Other, b.Other)
	})
	return rels
}

// AddParent records id as a parent, keeping Parents sorted and unique.
func (p *Person) AddParent(id string) {
	p.Parents = insertSorted(p.Parents, id)
}

func (p *Person) addChild(id string) {
	p.Children = insertSorted(p.Children, id)
}

func insertSorted(ids []string, id string) []string {
	i, found := slices.BinarySearch(ids, id)
	if found {
		return ids
	}
	return slices.Insert(ids, i, id)
}
