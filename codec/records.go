// SPDX-License-Identifier: MIT
//
// File: records.go
// Role: document shape shared by the JSON and YAML codecs.
//
//	{"nodes": [{"id", "label", "color", "position": [x, y]}],
//	 "edges": [{"start", "end", "weight", "color"}]}
//
// Edge colour is optional; documents without it load with core defaults.

package codec

import (
	"fmt"

	"github.com/katalvlaran/graphlab/core"
)

type document struct {
	Nodes []nodeDoc `json:"nodes" yaml:"nodes"`
	Edges []edgeDoc `json:"edges" yaml:"edges"`
}

type nodeDoc struct {
	ID       string    `json:"id" yaml:"id"`
	Label    string    `json:"label" yaml:"label"`
	Color    string    `json:"color" yaml:"color"`
	Position []float64 `json:"position" yaml:"position,flow"`
}

type edgeDoc struct {
	Start  string  `json:"start" yaml:"start"`
	End    string  `json:"end" yaml:"end"`
	Weight float64 `json:"weight" yaml:"weight"`
	Color  string  `json:"color,omitempty" yaml:"color,omitempty"`
}

func fromSnapshot(s core.Snapshot) document {
	d := document{
		Nodes: make([]nodeDoc, len(s.Nodes)),
		Edges: make([]edgeDoc, len(s.Edges)),
	}
	for i, n := range s.Nodes {
		d.Nodes[i] = nodeDoc{
			ID:       n.ID,
			Label:    n.Label,
			Color:    n.Color,
			Position: []float64{n.Position.X, n.Position.Y},
		}
	}
	for i, e := range s.Edges {
		d.Edges[i] = edgeDoc{Start: e.Start, End: e.End, Weight: e.Weight, Color: e.Color}
	}

	return d
}

// snapshot converts the document; a missing position means the origin.
func (d document) snapshot() (core.Snapshot, error) {
	s := core.Snapshot{
		Nodes: make([]core.NodeRecord, len(d.Nodes)),
		Edges: make([]core.EdgeRecord, len(d.Edges)),
	}
	for i, n := range d.Nodes {
		var p core.Position
		switch len(n.Position) {
		case 0:
		case 2:
			p = core.Position{X: n.Position[0], Y: n.Position[1]}
		default:
			return core.Snapshot{}, fmt.Errorf("%w: node %d (%q): position has %d coordinates",
				ErrDecode, i, n.ID, len(n.Position))
		}
		s.Nodes[i] = core.NodeRecord{ID: n.ID, Label: n.Label, Color: n.Color, Position: p}
	}
	for i, e := range d.Edges {
		s.Edges[i] = core.EdgeRecord{Start: e.Start, End: e.End, Weight: e.Weight, Color: e.Color}
	}

	return s, nil
}
