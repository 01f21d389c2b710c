package trimmer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cuckatoo/bitmap"
	"github.com/katalvlaran/cuckatoo/builder"
	"github.com/katalvlaran/cuckatoo/edges"
	"github.com/katalvlaran/cuckatoo/siphash"
	"github.com/katalvlaran/cuckatoo/trimmer"
)

var testKeys = siphash.Keys{
	0x0706050403020100,
	0x0f0e0d0c0b0a0908,
	0x1716151413121110,
	0x1f1e1d1c1b1a1918,
}

func generator(t *testing.T, edgeBits uint) *edges.Generator {
	t.Helper()
	p, err := edges.NewParams(edgeBits)
	require.NoError(t, err)
	return edges.NewGenerator(p, testKeys)
}

func TestNew_Errors(t *testing.T) {
	_, err := trimmer.New(nil)
	assert.ErrorIs(t, err, trimmer.ErrNilSource)

	g := generator(t, 6)
	for _, n := range []int{0, -3} {
		_, err = trimmer.New(g, trimmer.WithRounds(n))
		assert.ErrorIs(t, err, trimmer.ErrInvalidRounds)
	}

	_, err = trimmer.New(g, trimmer.WithAlive(bitmap.MustNew(10)))
	assert.ErrorIs(t, err, trimmer.ErrAliveSize)
}

func TestNew_AllAlive(t *testing.T) {
	tr, err := trimmer.New(generator(t, 8))
	require.NoError(t, err)
	assert.Equal(t, uint64(256), tr.Alive().Count())
}

// TestRun_PlantedCycleWithPendants: a 4-cycle plus four pendant edges loses
// exactly the pendants in one round.
func TestRun_PlantedCycleWithPendants(t *testing.T) {
	tb, err := builder.BuildTable(16, nil, builder.PlantedCycle(4), builder.Pendants(4))
	require.NoError(t, err)

	tr, err := trimmer.New(tb, trimmer.WithRounds(1))
	require.NoError(t, err)
	res, err := tr.Run()
	require.NoError(t, err)

	assert.Equal(t, uint64(8), res.EdgesBefore)
	assert.Equal(t, uint64(4), res.EdgesAfter)
	assert.Equal(t, 1, res.Rounds)
	assert.Equal(t, uint64(4), tr.Alive().Count())
	for i := uint64(0); i < 4; i++ {
		assert.Truef(t, tr.Alive().Test(i), "cycle edge %d", i)
	}
	// U-side leaves die in the U half-round, V-side leaves in the V half-round.
	assert.Equal(t, trimmer.RoundStats{Round: 1, RemovedU: 2, RemovedV: 2, Alive: 4}, res.PerRound[0])
}

func TestRun_PathVanishes(t *testing.T) {
	tb, err := builder.BuildTable(32, nil, builder.Path(9))
	require.NoError(t, err)

	tr, err := trimmer.New(tb)
	require.NoError(t, err)
	res, err := tr.Run()
	require.NoError(t, err)
	assert.Zero(t, res.EdgesAfter)
	assert.True(t, res.Fixpoint)
}

// TestRun_Monotone: alive count never increases round over round.
func TestRun_Monotone(t *testing.T) {
	var prev uint64 = 1 << 12
	tr, err := trimmer.New(generator(t, 12),
		trimmer.WithRounds(30),
		trimmer.WithOnRound(func(s trimmer.RoundStats) error {
			assert.LessOrEqual(t, s.Alive, prev)
			prev = s.Alive
			return nil
		}))
	require.NoError(t, err)

	res, err := tr.Run()
	require.NoError(t, err)
	assert.LessOrEqual(t, res.EdgesAfter, res.EdgesBefore)
	assert.Equal(t, res.EdgesAfter, tr.Alive().Count())
}

// TestRun_PlantedCycleSurvives: cycle edges are never trimmed regardless of
// the noise around them.
func TestRun_PlantedCycleSurvives(t *testing.T) {
	tb, err := builder.BuildTable(1<<10,
		[]builder.BuilderOption{builder.WithSeed(42)},
		builder.PlantedCycle(42),
		builder.RandomSparse(1500),
	)
	require.NoError(t, err)

	tr, err := trimmer.New(tb)
	require.NoError(t, err)
	_, err = tr.Run()
	require.NoError(t, err)

	for i := uint64(0); i < 42; i++ {
		assert.Truef(t, tr.Alive().Test(i), "cycle edge %d trimmed", i)
	}
}

// TestRun_FixpointIsStable: once a round removes nothing, further half-rounds
// remove nothing either.
func TestRun_FixpointIsStable(t *testing.T) {
	tr, err := trimmer.New(generator(t, 10), trimmer.WithRounds(1<<11))
	require.NoError(t, err)
	res, err := tr.Run()
	require.NoError(t, err)
	require.True(t, res.Fixpoint)

	before := tr.Alive().Clone()
	assert.Zero(t, tr.HalfRound(edges.U))
	assert.Zero(t, tr.HalfRound(edges.V))
	assert.True(t, before.Equal(tr.Alive()))
}

func TestRun_WithoutFixpointStop(t *testing.T) {
	tb, err := builder.BuildTable(16, nil, builder.PlantedCycle(4))
	require.NoError(t, err)

	tr, err := trimmer.New(tb, trimmer.WithRounds(5), trimmer.WithoutFixpointStop())
	require.NoError(t, err)
	res, err := tr.Run()
	require.NoError(t, err)
	assert.Equal(t, 5, res.Rounds)
	assert.False(t, res.Fixpoint)
	assert.Len(t, res.PerRound, 5)
}

func TestRun_WithAlive(t *testing.T) {
	tb, err := builder.BuildTable(16, nil, builder.PlantedCycle(4), builder.PlantedCycle(4))
	require.NoError(t, err)

	// Drop one edge of the second cycle: the rest of it unravels.
	alive := bitmap.MustNew(tb.NumEdges())
	alive.SetAll()
	alive.Clear(5)

	tr, err := trimmer.New(tb, trimmer.WithAlive(alive))
	require.NoError(t, err)
	res, err := tr.Run()
	require.NoError(t, err)
	assert.Equal(t, uint64(7), res.EdgesBefore)
	assert.Equal(t, uint64(4), res.EdgesAfter)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr, err := trimmer.New(generator(t, 8), trimmer.WithContext(ctx))
	require.NoError(t, err)
	res, err := tr.Run()
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Zero(t, res.Rounds)
	assert.Equal(t, uint64(256), res.EdgesAfter)
}

func TestRun_HookError(t *testing.T) {
	stop := errors.New("stop")
	tr, err := trimmer.New(generator(t, 8), trimmer.WithOnRound(func(trimmer.RoundStats) error { return stop }))
	require.NoError(t, err)
	res, err := tr.Run()
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, res.Rounds)
}

func TestRound_MatchesHalfRounds(t *testing.T) {
	a, err := trimmer.New(generator(t, 10))
	require.NoError(t, err)
	b, err := trimmer.New(generator(t, 10))
	require.NoError(t, err)

	ru, rv := a.Round()
	assert.Equal(t, ru, b.HalfRound(edges.U))
	assert.Equal(t, rv, b.HalfRound(edges.V))
	assert.True(t, a.Alive().Equal(b.Alive()))
}
