package visibility

import (
	"fmt"

	"github.com/matzehuels/rimealogy/pkg/world"
)

// Result holds the two visibility sets. A person in Drawn but not in Named
// is drawn as an anonymous placeholder; a person in neither is omitted.
type Result struct {
	Drawn Set
	Named Set
}

// Resolve computes the named set for named and then the draw set for draw.
func Resolve(w *world.World, draw DrawMode, named NamedMode) (*Result, error) {
	n, err := NamedSet(w, named)
	if err != nil {
		return nil, err
	}
	d, err := DrawSet(w, draw, n)
	if err != nil {
		return nil, err
	}
	return &Result{Drawn: d, Named: n}, nil
}

// NamedSet returns the persons shown with real names under mode.
func NamedSet(w *world.World, mode NamedMode) (Set, error) {
	switch mode {
	case NamedAll:
		return NewSet(w.PersonIDs()...), nil
	case NamedSeen:
		return observed(w), nil
	case NamedRelated:
		s := observed(w)
		for _, p := range w.Colonists() {
			for _, id := range p.Parents {
				if w.Has(id) {
					s.Add(id)
				}
			}
		}
		for _, id := range relationTargets(w) {
			s.Add(id)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: named mode %q", ErrInvalidMode, mode)
	}
}

// DrawSet returns the persons drawn as nodes under mode. Expansion from the
// seed only passes through members of named. The relationship targets of
// every colonist are added after expansion and are not expanded through.
func DrawSet(w *world.World, mode DrawMode, named Set) (Set, error) {
	switch mode {
	case DrawAll:
		return NewSet(w.PersonIDs()...), nil
	case DrawColony, DrawSeen:
		s := Expand(w, Seeds(w, mode), named.Has)
		for _, id := range relationTargets(w) {
			s.Add(id)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: draw mode %q", ErrInvalidMode, mode)
	}
}

// Seeds returns the starting set of the draw set for mode: the player
// faction's members for DrawColony, observed persons for DrawSeen and
// everyone otherwise.
func Seeds(w *world.World, mode DrawMode) Set {
	switch mode {
	case DrawColony:
		s := Set{}
		for _, p := range w.Colonists() {
			s.Add(p.ID)
		}
		return s
	case DrawSeen:
		return observed(w)
	default:
		return NewSet(w.PersonIDs()...)
	}
}

// Expand grows seeds breadth-first over parent/child links until no new
// persons are found. Links are followed only out of persons for which
// through returns true, and only to persons present in w. The seeds are
// always part of the result.
func Expand(w *world.World, seeds Set, through func(id string) bool) Set {
	visited := make(Set, len(seeds))
	frontier := make([]string, 0, len(seeds))
	for _, id := range seeds.Sorted() {
		visited.Add(id)
		frontier = append(frontier, id)
	}

	for len(frontier) > 0 {
		var next []string
		for _, id := range frontier {
			p, ok := w.Person(id)
			if !ok || !through(id) {
				continue
			}
			for _, rel := range [][]string{p.Parents, p.Children} {
				for _, other := range rel {
					if w.Has(other) && visited.Add(other) {
						next = append(next, other)
					}
				}
			}
		}
		frontier = next
	}
	return visited
}

func observed(w *world.World) Set {
	s := Set{}
	for _, p := range w.Persons() {
		if p.Seen {
			s.Add(p.ID)
		}
	}
	return s
}

// relationTargets returns the ids of persons in w that a colonist has a
// relationship with, in colonist and relation order.
func relationTargets(w *world.World) []string {
	var ids []string
	for _, p := range w.Colonists() {
		for _, r := range p.Relations {
			if w.Has(r.Other) {
				ids = append(ids, r.Other)
			}
		}
	}
	return ids
}
