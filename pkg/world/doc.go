// Package world holds the typed entities of a colony save and the read-only
// relationship graph built from them.
//
// # Entities
//
// A save describes three kinds of records:
//
//   - [Faction]: a group with a definition type, a leader and goodwill
//     scores toward other factions
//   - [Person]: an individual with a [Name], liveness, faction membership,
//     observation flag and typed [Relation]s to other persons
//   - [Name]: a closed sum of null, triple (first/nick/last) and single forms
//
// # World Model
//
// [New] aggregates extracted factions and persons into a [World]:
//
//	w, err := world.New(factions, persons)
//	if errors.Is(err, world.ErrNoPlayerFaction) {
//	    // the save has no player colony
//	}
//
// Construction identifies the unique player faction and back-populates
// every person's children from the parent sets of the others. After New
// returns the World is never mutated; the visibility resolver and graph
// emitter only read it.
package world
