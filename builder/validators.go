package builder

import "fmt"

// validateMin ensures that got ≥ min, returning ErrTooFewEdges with method
// context otherwise.
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: parameter must be ≥ %d, got %d: %w", method, min, got, ErrTooFewEdges)
	}

	return nil
}

// validateCycleLength enforces an even length ≥ MinCycleLength.
func validateCycleLength(method string, length int) error {
	if err := validateMin(method, length, MinCycleLength); err != nil {
		return err
	}
	if length%2 != 0 {
		return fmt.Errorf("%s: length=%d: %w", method, length, ErrOddLength)
	}

	return nil
}
