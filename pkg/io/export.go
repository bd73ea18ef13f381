package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/rimealogy/pkg/render/genealogy"
)

const (
	kindPerson = "person"
	kindHelper = "helper"
	kindCouple = "couple"

	kindRelation = "relation"
	kindAnchor   = "anchor"
	kindParent   = "parent"
	kindDescent  = "descent"
)

type graph struct {
	Nodes []node `json:"nodes"`
	Edges []edge `json:"edges"`
}

type node struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Label    string `json:"label,omitempty"`
	Fill     string `json:"fill,omitempty"`
	Named    bool   `json:"named,omitempty"`
	Alive    bool   `json:"alive,omitempty"`
	Standing string `json:"standing,omitempty"`
}

type edge struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Kind    string `json:"kind"`
	Type    string `json:"type,omitempty"`
	Style   string `json:"style,omitempty"`
	Color   string `json:"color,omitempty"`
	Tooltip string `json:"tooltip,omitempty"`
	Helper  string `json:"helper,omitempty"`
}

// WriteJSON encodes a diagram as JSON and writes it to w.
// Nodes and edges appear in the same order as in the DOT output.
func WriteJSON(d *genealogy.Diagram, w io.Writer) error {
	out := graph{
		Nodes: make([]node, 0, d.NodeCount()),
		Edges: make([]edge, 0, d.EdgeCount()),
	}

	for _, p := range d.Persons {
		out.Nodes = append(out.Nodes, node{
			ID:       p.ID,
			Kind:     kindPerson,
			Label:    p.Label,
			Fill:     p.FillColor,
			Named:    p.Named,
			Alive:    p.Alive,
			Standing: p.Standing.String(),
		})
	}
	for _, r := range d.Relations {
		out.Nodes = append(out.Nodes, node{ID: r.Helper, Kind: kindHelper})
		out.Edges = append(out.Edges,
			edge{
				From: r.From, To: r.To, Kind: kindRelation,
				Type: r.Type, Style: r.Style, Color: r.Color, Tooltip: r.Tooltip, Helper: r.Helper,
			},
			edge{From: r.Helper, To: r.From, Kind: kindAnchor},
			edge{From: r.Helper, To: r.To, Kind: kindAnchor},
		)
	}
	for _, c := range d.Couples {
		out.Nodes = append(out.Nodes, node{ID: c.ID, Kind: kindCouple})
		for _, parent := range c.Parents {
			out.Edges = append(out.Edges, edge{From: parent, To: c.ID, Kind: kindParent})
		}
	}
	for _, e := range d.Descents {
		out.Edges = append(out.Edges, edge{From: e.Couple, To: e.Child, Kind: kindDescent})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a diagram to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(d *genealogy.Diagram, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(d, f)
}
