// Package visibility decides which persons of a [world.World] appear in a
// genealogy diagram and which of them are shown with their real names.
//
// Two sets are computed independently:
//
//   - the named set ([NamedMode]): persons whose names are revealed
//   - the draw set ([DrawMode]): persons drawn as nodes, grown from a seed
//     set by breadth-first expansion over parent/child links
//
// Expansion only continues through named persons, so anonymous relatives
// are drawn as placeholders but their own families stay hidden. The
// relationship targets of colonists are added after expansion and are
// never expanded through:
//
//	res, err := visibility.Resolve(w, visibility.DrawColony, visibility.NamedSeen)
//	if err != nil {
//	    return err
//	}
//	for _, id := range res.Drawn.Sorted() {
//	    if res.Named.Has(id) { /* real name */ } else { /* placeholder */ }
//	}
//
// [world.World]: github.com/matzehuels/rimealogy/pkg/world.World
package visibility
