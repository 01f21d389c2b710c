// SPDX-License-Identifier: MIT

package engine

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cuckatoo/bitmap"
	"github.com/katalvlaran/cuckatoo/cycles"
	"github.com/katalvlaran/cuckatoo/trimmer"
)

// Operational limits and defaults.
const (
	MinEdgeBits        = 10
	MaxEdgeBits        = 32
	DefaultEdgeBits    = 31
	DefaultCycleLength = cycles.DefaultLength
	DefaultTrimRounds  = trimmer.DefaultRounds
	DefaultHeadroom    = 0.8

	// DefaultMaxSolutions stops an attempt at its first cycle.
	DefaultMaxSolutions = 1

	// DefaultMaxSearchEdges caps the survivors handed to the cycle search.
	DefaultMaxSearchEdges = 1 << 21
)

// Configuration errors.
var (
	ErrEdgeBits    = errors.New("engine: edgeBits out of range")
	ErrCycleLength = errors.New("engine: invalid cycle length")
	ErrTrimRounds  = errors.New("engine: trim rounds must be positive")
	ErrHeadroom    = errors.New("engine: memory headroom must be in (0,1]")
	ErrMaxSolution = errors.New("engine: max solutions must be ≥ 0")
	ErrSearchEdges = errors.New("engine: max search edges must be positive")
)

// Config holds the parameters of a solver instance.
type Config struct {
	EdgeBits    uint
	CycleLength int
	TrimRounds  int
	// MaxSolutions bounds the cycles reported per graph; 0 means all.
	// Dense graphs hold more cycles than can be listed, so 0 only suits
	// small fixtures.
	MaxSolutions int
	// MaxSearchEdges is the largest survivor count the search accepts.
	// Attempts trimmed to more edges fail with cycles.ErrTooManyEdges.
	MaxSearchEdges uint64
	// MemoryHeadroom is the fraction of available memory the solver may use.
	MemoryHeadroom float64
}

// DefaultConfig returns the production configuration.
func DefaultConfig() Config {
	return Config{
		EdgeBits:       DefaultEdgeBits,
		CycleLength:    DefaultCycleLength,
		TrimRounds:     DefaultTrimRounds,
		MaxSolutions:   DefaultMaxSolutions,
		MaxSearchEdges: DefaultMaxSearchEdges,
		MemoryHeadroom: DefaultHeadroom,
	}
}

// Validate checks every field against its documented range.
func (c Config) Validate() error {
	if c.EdgeBits < MinEdgeBits || c.EdgeBits > MaxEdgeBits {
		return fmt.Errorf("Validate: edgeBits=%d not in [%d,%d]: %w", c.EdgeBits, MinEdgeBits, MaxEdgeBits, ErrEdgeBits)
	}
	if c.CycleLength < cycles.MinLength || c.CycleLength%2 != 0 {
		return fmt.Errorf("Validate: cycleLength=%d (even, ≥ %d): %w", c.CycleLength, cycles.MinLength, ErrCycleLength)
	}
	if c.TrimRounds <= 0 {
		return fmt.Errorf("Validate: trimRounds=%d: %w", c.TrimRounds, ErrTrimRounds)
	}
	if c.MaxSolutions < 0 {
		return fmt.Errorf("Validate: maxSolutions=%d: %w", c.MaxSolutions, ErrMaxSolution)
	}
	if c.MaxSearchEdges == 0 {
		return fmt.Errorf("Validate: maxSearchEdges=0: %w", ErrSearchEdges)
	}
	if !(c.MemoryHeadroom > 0 && c.MemoryHeadroom <= 1) {
		return fmt.Errorf("Validate: headroom=%g: %w", c.MemoryHeadroom, ErrHeadroom)
	}

	return nil
}

// RequiredBytes is the memory one attempt may need: one bit per edge for
// the alive-set, two bits per node for the degree marks, and the search
// structures for up to MaxSearchEdges survivors.
func (c Config) RequiredBytes() uint64 {
	numEdges := uint64(1) << c.EdgeBits
	numNodes := numEdges >> 1

	return bitmap.Bytes(numEdges) + 2*bitmap.Bytes(numNodes) +
		min(numEdges, c.MaxSearchEdges)*cycles.BytesPerEdge
}
