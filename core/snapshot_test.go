// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphlab/core"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.SetPosition("C", core.Position{X: 10, Y: -3}))
	require.NoError(t, g.AddEdge("B", "B", 0.5, "red"))

	s := g.Snapshot()
	require.Len(t, s.Nodes, 3)
	require.Len(t, s.Edges, 4)
	assert.Equal(t, core.Position{X: 10, Y: -3}, s.Nodes[2].Position)

	back, err := core.FromSnapshot(s)
	require.NoError(t, err)
	assert.Equal(t, s, back.Snapshot())
	assert.Equal(t, g.NodeIDs(), back.NodeIDs())
}

func TestFromSnapshot_SameInvariants(t *testing.T) {
	tests := []struct {
		name string
		snap core.Snapshot
		want error
	}{
		{
			name: "duplicate node",
			snap: core.Snapshot{Nodes: []core.NodeRecord{{ID: "A"}, {ID: "A"}}},
			want: core.ErrDuplicateNode,
		},
		{
			name: "empty id",
			snap: core.Snapshot{Nodes: []core.NodeRecord{{ID: " "}}},
			want: core.ErrEmptyNodeID,
		},
		{
			name: "dangling edge",
			snap: core.Snapshot{
				Nodes: []core.NodeRecord{{ID: "A"}},
				Edges: []core.EdgeRecord{{Start: "A", End: "B", Weight: 1}},
			},
			want: core.ErrMissingEndpoint,
		},
		{
			name: "parallel edge",
			snap: core.Snapshot{
				Nodes: []core.NodeRecord{{ID: "A"}, {ID: "B"}},
				Edges: []core.EdgeRecord{{Start: "A", End: "B"}, {Start: "B", End: "A"}},
			},
			want: core.ErrDuplicateEdge,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.FromSnapshot(tc.snap)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad_AtomicOnFailure(t *testing.T) {
	g := buildTriangle(t)
	before := g.Snapshot()

	bad := core.Snapshot{
		Nodes: []core.NodeRecord{{ID: "X"}},
		Edges: []core.EdgeRecord{{Start: "X", End: "Y"}},
	}
	require.ErrorIs(t, g.Load(bad), core.ErrMissingEndpoint)
	assert.Equal(t, before, g.Snapshot())

	good := core.Snapshot{Nodes: []core.NodeRecord{{ID: "X", Label: "x", Color: "green"}}}
	require.NoError(t, g.Load(good))
	assert.Equal(t, []string{"X"}, g.NodeIDs())
	assert.Equal(t, 0, g.EdgeCount())
}
