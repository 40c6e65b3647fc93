// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphlab/core"
)

const (
	nWriters = 8
	nPerGoro = 50
	nReaders = 8
)

// TestConcurrentAddAndRead hammers single operations from many goroutines.
// Run with -race; the graph must end with exactly the inserted elements.
func TestConcurrentAddAndRead(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddNode("hub", "", "")

	var wg sync.WaitGroup
	errs := make(chan error, nWriters*nPerGoro*2)
	for w := 0; w < nWriters; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < nPerGoro; i++ {
				id := fmt.Sprintf("n%d_%d", w, i)
				if err := g.AddNode(id, "", ""); err != nil {
					errs <- err
					continue
				}
				if err := g.AddEdge("hub", id, float64(i), ""); err != nil {
					errs <- err
				}
			}
		}(w)
	}
	for r := 0; r < nReaders; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < nPerGoro; i++ {
				_, _ = g.Neighbors("hub")
				_ = g.Snapshot()
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("unexpected error: %v", err)
	}
	assert.Equal(t, nWriters*nPerGoro+1, g.NodeCount())
	assert.Equal(t, nWriters*nPerGoro, g.EdgeCount())
}

// TestSnapshotConsistentUnderChurn checks that a snapshot taken while nodes
// come and go never holds an edge whose endpoint is missing.
func TestSnapshotConsistentUnderChurn(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddNode("hub", "", "")

	var wg sync.WaitGroup
	for w := 0; w < nWriters; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < nPerGoro; i++ {
				id := fmt.Sprintf("c%d_%d", w, i)
				_ = g.AddNode(id, "", "")
				_ = g.AddEdge("hub", id, 1, "")
				_ = g.RemoveNode(id)
			}
		}(w)
	}

	bad := make(chan error, nReaders*nPerGoro)
	for r := 0; r < nReaders; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < nPerGoro; i++ {
				if _, err := core.FromSnapshot(g.Snapshot()); err != nil {
					bad <- err
				}
			}
		}()
	}
	wg.Wait()
	close(bad)

	for err := range bad {
		t.Errorf("inconsistent snapshot: %v", err)
	}
	assert.Equal(t, 1, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
}
