// Package io provides JSON import and export for genealogy diagrams.
//
// # Overview
//
// A [genealogy.Diagram] serializes to a flat node and edge list that
// external tools can consume without understanding DOT:
//
//	{
//	  "nodes": [
//	    {"id": "Human1", "kind": "person", "label": "Adam 'Ace' Reed", "fill": "#DDDDFF", "named": true, "alive": true, "standing": "player"},
//	    {"id": "Virtual_0", "kind": "helper"},
//	    {"id": "Couple_Human3_Human4", "kind": "couple"}
//	  ],
//	  "edges": [
//	    {"from": "Human1", "to": "Human2", "kind": "relation", "type": "Spouse", "style": "bold", "color": "black", "tooltip": "Ace <Spouse> Bea", "helper": "Virtual_0"},
//	    {"from": "Human3", "to": "Couple_Human3_Human4", "kind": "parent"},
//	    {"from": "Couple_Human3_Human4", "to": "Human1", "kind": "descent"}
//	  ]
//	}
//
// # Node Kinds
//
//   - person: a drawn person, with label, fill color and visibility flags
//   - helper: the invisible anchor of one relationship edge
//   - couple: the point node joining the parents of a child
//
// # Edge Kinds
//
//   - relation: a relationship between a colonist and another person
//   - anchor: an invisible edge from a helper to a relationship endpoint
//   - parent: a parent joining its couple node
//   - descent: a couple node pointing at a child
//
// # Round Trip
//
// [ReadJSON] rebuilds the diagram from person, couple, relation, parent and
// descent records. Helper nodes and anchor edges are derived from the
// relation edges and are only checked for consistency.
//
// [genealogy.Diagram]: github.com/matzehuels/rimealogy/pkg/render/genealogy.Diagram
package io
