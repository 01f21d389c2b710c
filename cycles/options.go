package cycles

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

const (
	// DefaultLength is the proof-of-work cycle length.
	DefaultLength = 42

	// MinLength is the shortest cycle a simple bipartite graph can contain.
	MinLength = 4

	// BytesPerEdge bounds the search memory per alive edge: the edge
	// record, two adjacency entries with append slack, and the per-node
	// id map, slice header, component label, distance label and queue slot
	// of both endpoints.
	BytesPerEdge = 256
)

// Option configures Find.
type Option func(*Options)

// Options holds the search parameters.
type Options struct {
	// Length is the exact number of edges a reported cycle has.
	Length int

	// MaxSolutions stops the search after this many cycles; 0 means all.
	MaxSolutions int

	// MaxEdges rejects alive-sets larger than this before any search
	// structure is built; 0 means no limit.
	MaxEdges uint64

	// Ctx is checked before the search and every few hundred walk steps.
	Ctx context.Context

	Logger zerolog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options searching for every DefaultLength cycle.
func DefaultOptions() Options {
	return Options{
		Length: DefaultLength,
		Ctx:    context.Background(),
		Logger: zerolog.Nop(),
	}
}

// WithLength sets the target cycle length. It must be even and ≥ MinLength.
func WithLength(l int) Option {
	return func(o *Options) {
		if err := validLength(l); err != nil {
			o.err = err
			return
		}
		o.Length = l
	}
}

// WithMaxSolutions bounds the number of cycles returned. 0 means unbounded,
// 1 returns the first cycle found. Negative values panic.
func WithMaxSolutions(n int) Option {
	if n < 0 {
		panic("cycles: WithMaxSolutions(n<0)")
	}
	return func(o *Options) {
		o.MaxSolutions = n
	}
}

// WithMaxEdges caps the number of alive edges Find will materialise.
// Larger alive-sets fail with ErrTooManyEdges. 0 removes the cap.
func WithMaxEdges(n uint64) Option {
	return func(o *Options) {
		o.MaxEdges = n
	}
}

// WithContext sets a context for cancellation.
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

func validLength(l int) error {
	if l < MinLength || l%2 != 0 {
		return fmt.Errorf("%w: %d (must be even and ≥ %d)", ErrInvalidLength, l, MinLength)
	}

	return nil
}
