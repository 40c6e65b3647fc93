package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeparation_Antisymmetric(t *testing.T) {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			if i == j {
				continue
			}
			a, b := separation(i, j), separation(j, i)
			assert.InDelta(t, 1, a.norm(), 1e-12)
			assert.InDelta(t, -a.x, b.x, 1e-15)
			assert.InDelta(t, -a.y, b.y, 1e-15)
		}
	}
}

func TestUnitFrom_Coincident(t *testing.T) {
	u, d := unitFrom(vec{1, 1}, vec{1, 1}, 0, 1, 1e-9)
	assert.Equal(t, 1e-9, d)
	assert.Equal(t, separation(0, 1), u)

	u, d = unitFrom(vec{3, 4}, vec{0, 0}, 0, 1, 1e-9)
	assert.Equal(t, 5.0, d)
	assert.InDelta(t, 0.6, u.x, 1e-15)
	assert.InDelta(t, 0.8, u.y, 1e-15)
}

func TestRescale(t *testing.T) {
	pts := []vec{{0, 0}, {4, 0}, {2, 2}}
	rescale(pts, 1)
	var lim float64
	var c vec
	for _, p := range pts {
		lim = math.Max(lim, math.Max(math.Abs(p.x), math.Abs(p.y)))
		c = c.add(p)
	}
	assert.InDelta(t, 1, lim, 1e-12)
	assert.InDelta(t, 0, c.x, 1e-12)
	assert.InDelta(t, 0, c.y, 1e-12)

	single := []vec{{5, 5}}
	rescale(single, 1)
	assert.Equal(t, vec{0, 0}, single[0])
}

func TestFitViewport_FlipsY(t *testing.T) {
	pts := []vec{{0, 0}, {10, 10}}
	fitViewport(pts, 0, 100, 0, 100, 100)
	// Bottom-left in simulation space becomes bottom-left on screen (large y).
	assert.Equal(t, vec{0, 100}, pts[0])
	assert.Equal(t, vec{100, 0}, pts[1])
}

func TestClampNorm(t *testing.T) {
	v := vec{30, 40}.clampNorm(10)
	assert.InDelta(t, 10, v.norm(), 1e-12)
	assert.Equal(t, vec{1, 1}, vec{1, 1}.clampNorm(10))
}

func TestForceDirected_ResolvedGravity(t *testing.T) {
	f, err := ForceDirected{}.resolved()
	assert.NoError(t, err)
	assert.Equal(t, DefaultForceGravity, f.Gravity)

	f, err = ForceDirected{Gravity: 0.3, NoGravity: true}.resolved()
	assert.NoError(t, err)
	assert.Zero(t, f.Gravity)

	// Negative values are rejected only when gravity is in use.
	_, err = ForceDirected{Gravity: -1}.resolved()
	assert.ErrorIs(t, err, ErrBadConfig)
}
