package trimmer

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/cuckatoo/bitmap"
)

// DefaultRounds is the number of full rounds Run performs when no
// WithRounds option is given.
const DefaultRounds = 90

// Sentinel errors for trimmer construction and execution.
var (
	// ErrNilSource is returned if a nil edges.Source is passed.
	ErrNilSource = errors.New("trimmer: source is nil")

	// ErrInvalidRounds is returned for a round count ≤ 0.
	ErrInvalidRounds = errors.New("trimmer: rounds must be positive")

	// ErrAliveSize is returned when a supplied alive-set does not match the
	// source's edge count.
	ErrAliveSize = errors.New("trimmer: alive-set size mismatch")
)

// Option configures a Trimmer via functional arguments.
// Invalid values are recorded and surfaced by New.
type Option func(*Options)

// Options holds parameters and callbacks for a Trimmer.
type Options struct {
	// Rounds is the maximum number of full (U+V) rounds Run performs.
	Rounds int

	// Ctx allows cancellation between half-rounds.
	Ctx context.Context

	// Logger receives per-round debug events.
	Logger zerolog.Logger

	// Alive, if non-nil, is used as the initial alive-set instead of
	// "every edge alive". The Trimmer takes ownership of it.
	Alive *bitmap.Bitmap

	// OnRound is called after each full round. Returning an error aborts Run.
	OnRound func(RoundStats) error

	// StopAtFixpoint ends Run after the first round that removes no edge.
	StopAtFixpoint bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - DefaultRounds rounds
//   - context.Background()
//   - a no-op logger
//   - fixpoint early exit enabled.
func DefaultOptions() Options {
	return Options{
		Rounds:         DefaultRounds,
		Ctx:            context.Background(),
		Logger:         zerolog.Nop(),
		OnRound:        func(RoundStats) error { return nil },
		StopAtFixpoint: true,
	}
}

// WithRounds sets the maximum number of full rounds. n ≤ 0 is rejected by New
// with ErrInvalidRounds; it is never clamped.
func WithRounds(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: got %d", ErrInvalidRounds, n)
			return
		}
		o.Rounds = n
	}
}

// WithContext sets a context checked between half-rounds.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithAlive starts trimming from a given alive-set.
func WithAlive(alive *bitmap.Bitmap) Option {
	return func(o *Options) {
		o.Alive = alive
	}
}

// WithOnRound registers a per-round callback.
func WithOnRound(fn func(RoundStats) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}

// WithoutFixpointStop makes Run perform every requested round even after
// the alive-set stopped changing.
func WithoutFixpointStop() Option {
	return func(o *Options) {
		o.StopAtFixpoint = false
	}
}
