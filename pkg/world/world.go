package world

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	// ErrNoPlayerFaction is returned by [New] when no faction has the
	// player colony definition.
	ErrNoPlayerFaction = errors.New("no player faction")

	// ErrAmbiguousPlayerFaction is returned by [New] when more than one
	// faction has the player colony definition.
	ErrAmbiguousPlayerFaction = errors.New("multiple player factions")

	// ErrDuplicateFaction is returned by [New] when two factions share an id.
	ErrDuplicateFaction = errors.New("duplicate faction id")

	// ErrDuplicatePerson is returned by [New] when two persons share an id.
	ErrDuplicatePerson = errors.New("duplicate person id")
)

// Standing classifies a faction's diplomatic relation to the player.
type Standing int

const (
	// StandingNeutral is zero or unknown goodwill.
	StandingNeutral Standing = iota
	// StandingPlayer is the player faction itself.
	StandingPlayer
	// StandingFriendly is positive goodwill.
	StandingFriendly
	// StandingHostile is negative goodwill.
	StandingHostile
)

func (s Standing) String() string {
	switch s {
	case StandingPlayer:
		return "player"
	case StandingFriendly:
		return "friendly"
	case StandingHostile:
		return "hostile"
	default:
		return "neutral"
	}
}

// World is the read-only relationship graph of a save.
//
// The zero value is not usable - use New.
type World struct {
	factions map[string]*Faction
	persons  map[string]*Person
	ids      []string // sorted person ids
	player   *Faction
}

// New builds a World from extracted entities.
//
// It fails with ErrNoPlayerFaction or ErrAmbiguousPlayerFaction unless
// exactly one faction is the player's colony. Every person's Children are
// back-populated from the Parents of the others; parents absent from
// persons are kept in Parents but produce no back-edge.
//
// New takes ownership of the entities: callers must not modify them afterward.
func New(factions []*Faction, persons []*Person) (*World, error) {
	w := &World{
		factions: make(map[string]*Faction, len(factions)),
		persons:  make(map[string]*Person, len(persons)),
	}

	var players []*Faction
	for _, f := range factions {
		key := f.Key()
		if _, exists := w.factions[key]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateFaction, f.ID)
		}
		w.factions[key] = f
		if f.IsPlayer() {
			players = append(players, f)
		}
	}
	switch len(players) {
	case 0:
		return nil, ErrNoPlayerFaction
	case 1:
		w.player = players[0]
	default:
		return nil, fmt.Errorf("%w: %s and %s", ErrAmbiguousPlayerFaction, players[0].Key(), players[1].Key())
	}

	for _, p := range persons {
		if _, exists := w.persons[p.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePerson, p.ID)
		}
		w.persons[p.ID] = p
	}
	w.ids = slices.Sorted(maps.Keys(w.persons))

	for _, id := range w.ids {
		for _, parentID := range w.persons[id].Parents {
			if parent, ok := w.persons[parentID]; ok {
				parent.addChild(id)
			}
		}
	}
	return w, nil
}

// Player returns the player faction.
func (w *World) Player() *Faction { return w.player }

// PlayerKey returns the player faction's lookup key.
func (w *World) PlayerKey() string { return w.player.Key() }

// Faction returns the faction with the given key.
func (w *World) Faction(key string) (*Faction, bool) {
	f, ok := w.factions[key]
	return f, ok
}

// FactionCount returns the number of factions.
func (w *World) FactionCount() int { return len(w.factions) }

// Person returns the person with the given id.
func (w *World) Person(id string) (*Person, bool) {
	p, ok := w.persons[id]
	return p, ok
}

// Has reports whether a person with the given id is in the save.
func (w *World) Has(id string) bool {
	_, ok := w.persons[id]
	return ok
}

// PersonIDs returns all person ids in ascending order.
// The returned slice must not be modified.
func (w *World) PersonIDs() []string { return w.ids }

// Persons returns all persons ordered by ascending id.
func (w *World) Persons() []*Person {
	out := make([]*Person, len(w.ids))
	for i, id := range w.ids {
		out[i] = w.persons[id]
	}
	return out
}

// PersonCount returns the number of persons.
func (w *World) PersonCount() int { return len(w.ids) }

// IsColonist reports whether p belongs to the player faction.
func (w *World) IsColonist(p *Person) bool {
	return p.Faction == w.PlayerKey()
}

// Colonists returns the player faction's members ordered by id.
func (w *World) Colonists() []*Person {
	var out []*Person
	for _, id := range w.ids {
		if p := w.persons[id]; w.IsColonist(p) {
			out = append(out, p)
		}
	}
	return out
}

// Standing classifies the faction with the given key relative to the player.
//
// Goodwill is read from the player faction's relations first and falls back
// to the other faction's score toward the player. Unknown factions and
// missing scores are neutral.
func (w *World) Standing(key string) Standing {
	if key == w.PlayerKey() {
		return StandingPlayer
	}
	goodwill, ok := w.player.Goodwill(key)
	if !ok {
		f, known := w.factions[key]
		if !known {
			return StandingNeutral
		}
		goodwill, _ = f.Goodwill(w.PlayerKey())
	}
	switch {
	case goodwill > 0:
		return StandingFriendly
	case goodwill < 0:
		return StandingHostile
	default:
		return StandingNeutral
	}
}
