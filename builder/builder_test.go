// Package builder_test contains functional tests for all Constructor
// implementations, verifying edge counts, emission order, disjointness
// and error classes.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cuckatoo/builder"
	"github.com/katalvlaran/cuckatoo/edges"
)

// degrees counts edges per node on side s.
func degrees(t *edges.Table, s edges.Side) map[uint64]int {
	d := make(map[uint64]int)
	for _, e := range t.Edges() {
		d[e.Endpoint(s)]++
	}
	return d
}

func TestPlantedCycle(t *testing.T) {
	tb, err := builder.BuildTable(16, nil, builder.PlantedCycle(6))
	require.NoError(t, err)

	want := []edges.Edge{
		{Index: 0, U: 0, V: 0}, {Index: 1, U: 1, V: 0},
		{Index: 2, U: 1, V: 1}, {Index: 3, U: 2, V: 1},
		{Index: 4, U: 2, V: 2}, {Index: 5, U: 0, V: 2},
	}
	assert.Equal(t, want, tb.Edges())

	// Every node on the cycle has degree exactly 2.
	for _, s := range []edges.Side{edges.U, edges.V} {
		for n, d := range degrees(tb, s) {
			assert.Equalf(t, 2, d, "%s node %d", s, n)
		}
	}
}

func TestPlantedCycle_Invalid(t *testing.T) {
	_, err := builder.BuildTable(16, nil, builder.PlantedCycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewEdges)

	_, err = builder.BuildTable(16, nil, builder.PlantedCycle(7))
	assert.ErrorIs(t, err, builder.ErrOddLength)

	_, err = builder.BuildTable(4, nil, builder.PlantedCycle(10))
	assert.ErrorIs(t, err, builder.ErrNodesExhausted)
}

func TestPath(t *testing.T) {
	tb, err := builder.BuildTable(8, nil, builder.Path(4))
	require.NoError(t, err)
	assert.Equal(t, []edges.Edge{
		{Index: 0, U: 0, V: 0}, {Index: 1, U: 1, V: 0},
		{Index: 2, U: 1, V: 1}, {Index: 3, U: 2, V: 1},
	}, tb.Edges())

	_, err = builder.BuildTable(8, nil, builder.Path(0))
	assert.ErrorIs(t, err, builder.ErrTooFewEdges)
}

func TestPendants(t *testing.T) {
	tb, err := builder.BuildTable(16, nil, builder.PlantedCycle(4), builder.Pendants(4))
	require.NoError(t, err)
	require.Equal(t, uint64(8), tb.NumEdges())

	assert.Equal(t, []edges.Edge{
		{Index: 4, U: 0, V: 2}, // leaf v2 on u0
		{Index: 5, U: 2, V: 0}, // leaf u2 on v0
		{Index: 6, U: 1, V: 3}, // leaf v3 on u1
		{Index: 7, U: 3, V: 1}, // leaf u3 on v1
	}, tb.Edges()[4:])

	// Isolated edges when there is nothing to anchor on.
	tb, err = builder.BuildTable(16, nil, builder.Pendants(3))
	require.NoError(t, err)
	assert.Equal(t, []edges.Edge{
		{Index: 0, U: 0, V: 0}, {Index: 1, U: 1, V: 1}, {Index: 2, U: 2, V: 2},
	}, tb.Edges())
}

func TestCompleteBipartite(t *testing.T) {
	tb, err := builder.BuildTable(8, nil, builder.CompleteBipartite(2, 3))
	require.NoError(t, err)
	assert.Equal(t, uint64(6), tb.NumEdges())
	du, dv := degrees(tb, edges.U), degrees(tb, edges.V)
	assert.Len(t, du, 2)
	assert.Len(t, dv, 3)
	for _, d := range du {
		assert.Equal(t, 3, d)
	}
	for _, d := range dv {
		assert.Equal(t, 2, d)
	}

	_, err = builder.BuildTable(8, nil, builder.CompleteBipartite(0, 3))
	assert.ErrorIs(t, err, builder.ErrTooFewEdges)
}

func TestComponentsAreDisjoint(t *testing.T) {
	tb, err := builder.BuildTable(64, nil,
		builder.PlantedCycle(4),
		builder.PlantedCycle(6),
		builder.Path(3),
	)
	require.NoError(t, err)

	// First cycle uses u0..u1, second u2..u4, path u5..u6.
	firstU := map[uint64]bool{}
	for _, e := range tb.Edges()[:4] {
		firstU[e.U] = true
	}
	for _, e := range tb.Edges()[4:] {
		assert.False(t, firstU[e.U])
	}
	assert.Equal(t, uint64(13), tb.NumEdges())
}

func TestRandomSparse(t *testing.T) {
	_, err := builder.BuildTable(8, nil, builder.RandomSparse(5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	a, err := builder.BuildTable(32, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(50))
	require.NoError(t, err)
	b, err := builder.BuildTable(32, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(50))
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges(), "same seed, same table")

	for _, e := range a.Edges() {
		assert.Less(t, e.U, uint64(32))
		assert.Less(t, e.V, uint64(32))
	}
}

func TestWithShuffle(t *testing.T) {
	_, err := builder.BuildTable(16, []builder.BuilderOption{builder.WithShuffle()}, builder.PlantedCycle(4))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	plain, err := builder.BuildTable(64, nil, builder.PlantedCycle(20))
	require.NoError(t, err)
	shuffled, err := builder.BuildTable(64,
		[]builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(3))), builder.WithShuffle()},
		builder.PlantedCycle(20))
	require.NoError(t, err)

	// Same multiset of endpoint pairs, different index assignment.
	pairs := func(tb *edges.Table) map[[2]uint64]int {
		m := map[[2]uint64]int{}
		for _, e := range tb.Edges() {
			m[[2]uint64{e.U, e.V}]++
		}
		return m
	}
	assert.Equal(t, pairs(plain), pairs(shuffled))
	assert.NotEqual(t, plain.Edges(), shuffled.Edges())
}

func TestBuildTable_NilConstructor(t *testing.T) {
	_, err := builder.BuildTable(8, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestWithRand_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
}
