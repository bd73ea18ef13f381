package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/rimealogy/pkg/render/genealogy"
	"github.com/matzehuels/rimealogy/pkg/world"
)

var (
	// ErrDuplicateNode is returned when two nodes share an id.
	ErrDuplicateNode = errors.New("duplicate node")

	// ErrUnknownNode is returned when an edge references a missing node.
	ErrUnknownNode = errors.New("unknown node")

	// ErrUnknownKind is returned for an unrecognized node or edge kind.
	ErrUnknownKind = errors.New("unknown kind")
)

var standingFromString = map[string]world.Standing{
	world.StandingNeutral.String():  world.StandingNeutral,
	world.StandingPlayer.String():   world.StandingPlayer,
	world.StandingFriendly.String(): world.StandingFriendly,
	world.StandingHostile.String():  world.StandingHostile,
}

// ReadJSON decodes a JSON diagram from r.
//
// ReadJSON returns an error if the JSON is malformed, a node id repeats,
// a node or edge has an unknown kind, or an edge references an unknown
// node. Parent edges must point at couple nodes and relation edges must
// name a declared helper. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*genealogy.Diagram, error) {
	var data graph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	d := &genealogy.Diagram{}
	kinds := make(map[string]string, len(data.Nodes))
	couples := make(map[string]int)

	for _, n := range data.Nodes {
		if _, dup := kinds[n.ID]; dup {
			return nil, fmt.Errorf("node %s: %w", n.ID, ErrDuplicateNode)
		}
		kinds[n.ID] = n.Kind

		switch n.Kind {
		case kindPerson:
			d.Persons = append(d.Persons, genealogy.PersonNode{
				ID:        n.ID,
				Label:     n.Label,
				FillColor: n.Fill,
				Named:     n.Named,
				Alive:     n.Alive,
				Standing:  standingFromString[n.Standing],
			})
		case kindCouple:
			couples[n.ID] = len(d.Couples)
			d.Couples = append(d.Couples, genealogy.Couple{ID: n.ID})
		case kindHelper:
		default:
			return nil, fmt.Errorf("node %s: %w %q", n.ID, ErrUnknownKind, n.Kind)
		}
	}

	for _, e := range data.Edges {
		if err := checkEndpoints(kinds, e); err != nil {
			return nil, err
		}
		switch e.Kind {
		case kindRelation:
			if kinds[e.Helper] != kindHelper {
				return nil, fmt.Errorf("edge %s->%s: helper %s: %w", e.From, e.To, e.Helper, ErrUnknownNode)
			}
			d.Relations = append(d.Relations, genealogy.RelationEdge{
				From: e.From, To: e.To, Type: e.Type,
				Style: e.Style, Color: e.Color, Tooltip: e.Tooltip, Helper: e.Helper,
			})
		case kindParent:
			i, ok := couples[e.To]
			if !ok {
				return nil, fmt.Errorf("edge %s->%s: couple %s: %w", e.From, e.To, e.To, ErrUnknownNode)
			}
			d.Couples[i].Parents = append(d.Couples[i].Parents, e.From)
		case kindDescent:
			d.Descents = append(d.Descents, genealogy.Descent{Couple: e.From, Child: e.To})
		case kindAnchor:
		default:
			return nil, fmt.Errorf("edge %s->%s: %w %q", e.From, e.To, ErrUnknownKind, e.Kind)
		}
	}

	return d, nil
}

func checkEndpoints(kinds map[string]string, e edge) error {
	for _, id := range []string{e.From, e.To} {
		if _, ok := kinds[id]; !ok {
			return fmt.Errorf("edge %s->%s: %s: %w", e.From, e.To, id, ErrUnknownNode)
		}
	}
	return nil
}

// ImportJSON reads a JSON file at path and returns the decoded diagram.
func ImportJSON(path string) (*genealogy.Diagram, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
