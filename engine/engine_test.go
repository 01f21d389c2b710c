package engine_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cuckatoo/builder"
	"github.com/katalvlaran/cuckatoo/cycles"
	"github.com/katalvlaran/cuckatoo/edges"
	"github.com/katalvlaran/cuckatoo/engine"
	"github.com/katalvlaran/cuckatoo/keys"
	"github.com/katalvlaran/cuckatoo/siphash"
)

var testKeys = siphash.Keys{
	0x0706050403020100,
	0x0f0e0d0c0b0a0908,
	0x1716151413121110,
	0x1f1e1d1c1b1a1918,
}

// plenty reports 64 GiB available so tests never depend on the host.
func plenty() (uint64, error) { return 64 << 30, nil }

func smallConfig() engine.Config {
	cfg := engine.DefaultConfig()
	cfg.EdgeBits = 12
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := engine.DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, engine.Config{
		EdgeBits: 31, CycleLength: 42, TrimRounds: 90,
		MaxSolutions: 1, MaxSearchEdges: 1 << 21, MemoryHeadroom: 0.8,
	}, cfg)
	// 512 MiB of bitmaps plus 2^21 survivors × 256 bytes.
	assert.Equal(t, uint64(1<<30), cfg.RequiredBytes())

	small := smallConfig()
	assert.Equal(t, uint64(512+2*256+4096*256), small.RequiredBytes(),
		"search structures are bounded by the edge count")
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*engine.Config)
		want error
	}{
		{"edgeBits low", func(c *engine.Config) { c.EdgeBits = 9 }, engine.ErrEdgeBits},
		{"edgeBits high", func(c *engine.Config) { c.EdgeBits = 33 }, engine.ErrEdgeBits},
		{"odd cycle", func(c *engine.Config) { c.CycleLength = 41 }, engine.ErrCycleLength},
		{"tiny cycle", func(c *engine.Config) { c.CycleLength = 2 }, engine.ErrCycleLength},
		{"zero rounds", func(c *engine.Config) { c.TrimRounds = 0 }, engine.ErrTrimRounds},
		{"negative solutions", func(c *engine.Config) { c.MaxSolutions = -1 }, engine.ErrMaxSolution},
		{"zero search edges", func(c *engine.Config) { c.MaxSearchEdges = 0 }, engine.ErrSearchEdges},
		{"zero headroom", func(c *engine.Config) { c.MemoryHeadroom = 0 }, engine.ErrHeadroom},
		{"headroom > 1", func(c *engine.Config) { c.MemoryHeadroom = 1.5 }, engine.ErrHeadroom},
	}
	for _, tc := range cases {
		cfg := engine.DefaultConfig()
		tc.mut(&cfg)
		assert.ErrorIsf(t, cfg.Validate(), tc.want, tc.name)

		_, err := engine.New(cfg, engine.WithMemoryProbe(plenty))
		assert.ErrorIsf(t, err, tc.want, tc.name)
	}

	for _, bits := range []uint{engine.MinEdgeBits, engine.MaxEdgeBits} {
		cfg := engine.DefaultConfig()
		cfg.EdgeBits = bits
		assert.NoError(t, cfg.Validate())
	}
}

func TestNew_MemoryGuard(t *testing.T) {
	_, err := engine.New(engine.DefaultConfig(), engine.WithMemoryProbe(func() (uint64, error) {
		return 256 << 20, nil
	}))
	assert.ErrorIs(t, err, engine.ErrInsufficientMemory)

	// 1 GiB needed: 80% of 1 GiB is not enough, 80% of 1.5 GiB is.
	_, err = engine.New(engine.DefaultConfig(), engine.WithMemoryProbe(func() (uint64, error) {
		return 1 << 30, nil
	}))
	assert.ErrorIs(t, err, engine.ErrInsufficientMemory)

	_, err = engine.New(engine.DefaultConfig(), engine.WithMemoryProbe(func() (uint64, error) {
		return 1536 << 20, nil
	}))
	assert.NoError(t, err)

	boom := errors.New("boom")
	_, err = engine.New(engine.DefaultConfig(), engine.WithMemoryProbe(func() (uint64, error) {
		return 0, boom
	}))
	assert.ErrorIs(t, err, boom)
}

func TestSolve_Generator(t *testing.T) {
	e, err := engine.New(smallConfig(), engine.WithMemoryProbe(plenty))
	require.NoError(t, err)

	res, err := e.Solve(context.Background(), testKeys)
	require.NoError(t, err)
	assert.Equal(t, testKeys, res.Keys)
	assert.Equal(t, uint64(1<<12), res.EdgesBefore)
	assert.Less(t, res.EdgesAfter, res.EdgesBefore)
	assert.LessOrEqual(t, res.Rounds, engine.DefaultTrimRounds)
	assert.False(t, res.AttemptID.IsNil())

	g := edges.NewGenerator(e.Params(), testKeys)
	require.Len(t, res.Cycles, 1)
	assert.NoError(t, cycles.Verify(g, res.Cycles[0], 42))
}

func TestSolveHeader_TuningGraph(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.EdgeBits = engine.MinEdgeBits
	e, err := engine.New(cfg, engine.WithMemoryProbe(plenty))
	require.NoError(t, err)

	res, err := e.SolveHeader(context.Background(), keys.TuningHeader(), 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1024), res.EdgesBefore)
	assert.Equal(t, uint64(667), res.EdgesAfter)
	assert.Equal(t, 4, res.Rounds)
	require.Len(t, res.Proofs(), 1)
	assert.Equal(t, []uint64{
		2, 20, 21, 38, 57, 87, 103, 141, 158, 168, 192, 237, 263, 269,
		272, 285, 294, 305, 312, 320, 349, 358, 376, 411, 415, 443, 448, 499,
		566, 583, 663, 688, 690, 695, 727, 799, 803, 828, 849, 856, 900, 936,
	}, res.Proofs()[0])
	assert.NoError(t, cycles.VerifyProof(edges.NewGenerator(e.Params(), res.Keys), res.Proofs()[0], 42))
}

func TestSolve_DeadlineStopsSearch(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.EdgeBits = engine.MinEdgeBits
	cfg.MaxSolutions = 0 // far more cycles than could ever be listed
	e, err := engine.New(cfg, engine.WithMemoryProbe(plenty))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	k := keys.Derive(keys.TuningHeader(), 0)
	res, err := e.Solve(ctx, k)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	require.NotNil(t, res)

	g := edges.NewGenerator(e.Params(), k)
	for _, c := range res.Cycles {
		assert.NoError(t, cycles.Verify(g, c, 42))
	}
	assert.Zero(t, e.Stats().Graphs)
}

func TestSolve_SearchEdgeCap(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.EdgeBits = engine.MinEdgeBits
	cfg.MaxSearchEdges = 100
	e, err := engine.New(cfg, engine.WithMemoryProbe(plenty))
	require.NoError(t, err)

	res, err := e.SolveHeader(context.Background(), keys.TuningHeader(), 0)
	assert.ErrorIs(t, err, cycles.ErrTooManyEdges)
	require.NotNil(t, res)
	assert.Equal(t, uint64(667), res.EdgesAfter)
	assert.Empty(t, res.Cycles)
}

func TestSolveHeader_MatchesSolve(t *testing.T) {
	e, err := engine.New(smallConfig(), engine.WithMemoryProbe(plenty))
	require.NoError(t, err)

	h := keys.TuningHeader()
	a, err := e.SolveHeader(context.Background(), h, 7)
	require.NoError(t, err)
	b, err := e.Solve(context.Background(), keys.Derive(h, 7))
	require.NoError(t, err)

	assert.Equal(t, a.Keys, b.Keys)
	assert.Equal(t, a.EdgesAfter, b.EdgesAfter)
	assert.Equal(t, a.Cycles, b.Cycles)
	assert.NotEqual(t, a.AttemptID, b.AttemptID)
}

func TestSolveSource_PlantedCycle(t *testing.T) {
	tb, err := builder.BuildTable(1<<10,
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithShuffle()},
		builder.PlantedCycle(42), builder.Pendants(40), builder.Path(30))
	require.NoError(t, err)

	e, err := engine.New(smallConfig(), engine.WithMemoryProbe(plenty))
	require.NoError(t, err)
	res, err := e.SolveSource(context.Background(), tb)
	require.NoError(t, err)

	assert.True(t, res.Solved())
	assert.Equal(t, uint64(42), res.EdgesAfter)
	require.Len(t, res.Proofs(), 1)
	assert.NoError(t, cycles.VerifyProof(tb, res.Proofs()[0], 42))

	st := e.Stats()
	assert.Equal(t, 1, st.Graphs)
	assert.Equal(t, 1, st.Solutions)
}

func TestSolveSource_TrimmedToZero(t *testing.T) {
	tb, err := builder.BuildTable(64, nil, builder.Path(20))
	require.NoError(t, err)

	e, err := engine.New(smallConfig(), engine.WithMemoryProbe(plenty))
	require.NoError(t, err)
	res, err := e.SolveSource(context.Background(), tb)
	require.NoError(t, err)
	assert.Zero(t, res.EdgesAfter)
	assert.False(t, res.Solved())
	assert.Empty(t, res.Cycles)
}

func TestSolve_Cancelled(t *testing.T) {
	e, err := engine.New(smallConfig(), engine.WithMemoryProbe(plenty))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := e.Solve(ctx, testKeys)
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Zero(t, e.Stats().Graphs)
}

func TestStats(t *testing.T) {
	var s engine.Stats
	assert.Zero(t, s.GraphsPerSecond())

	s.Add(&engine.Result{Cycles: []cycles.Cycle{{1}}, TrimDuration: 1500 * time.Millisecond, SearchDuration: 500 * time.Millisecond})
	s.Add(&engine.Result{TrimDuration: time.Second, SearchDuration: time.Second})
	assert.Equal(t, 2, s.Graphs)
	assert.Equal(t, 1, s.Solutions)
	assert.Equal(t, 4*time.Second, s.Total())
	assert.InDelta(t, 0.5, s.GraphsPerSecond(), 1e-9)
}
