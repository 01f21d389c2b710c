package cycles

import "errors"

// Sentinel errors for search and verification.
var (
	// ErrNilSource is returned if a nil edges.Source is passed.
	ErrNilSource = errors.New("cycles: source is nil")

	// ErrAliveSize is returned when the alive-set length differs from the
	// source's edge count.
	ErrAliveSize = errors.New("cycles: alive-set size mismatch")

	// ErrInvalidLength is returned for a target length that is odd or < MinLength.
	ErrInvalidLength = errors.New("cycles: invalid cycle length")

	// ErrTooManyEdges is returned when the alive-set exceeds WithMaxEdges.
	ErrTooManyEdges = errors.New("cycles: too many alive edges to search")

	// ErrUnverifiedCycle is returned when the search produced a walk that
	// fails independent verification. It indicates a bug, never bad input.
	ErrUnverifiedCycle = errors.New("cycles: search produced an unverifiable cycle")
)

// Verification failures.
var (
	ErrLength        = errors.New("cycles: wrong number of edges")
	ErrEdgeIndex     = errors.New("cycles: edge index out of range")
	ErrDuplicateEdge = errors.New("cycles: duplicate edge")
	ErrBroken        = errors.New("cycles: consecutive edges do not share a node")
	ErrNotClosed     = errors.New("cycles: walk does not return to its start")
	ErrRepeatedNode  = errors.New("cycles: node visited more than once")
	ErrUnsorted      = errors.New("cycles: proof edges not in ascending order")
	ErrShortCycle    = errors.New("cycles: proof contains a shorter cycle")
)
