package cycles

import "slices"

// minimalRotation implements Booth's algorithm to find the lexicographically
// minimal rotation of s. It returns a new slice; s is not modified.
// Algorithm overview:
// 1. Duplicate the sequence (doubled) to length 2n.
// 2. Maintain an array f of failure links initialized to -1.
// 3. Track candidate k = 0; for j from 1 to 2n-1, adjust k based on comparisons.
// 4. After scanning, extract the rotation starting at index k.
// Time Complexity: O(n).
func minimalRotation(s []uint64) []uint64 {
	n := len(s)
	if n == 0 {
		return nil
	}
	doubled := make([]uint64, 0, 2*n)
	doubled = append(append(doubled, s...), s...)

	f := make([]int, 2*n) // failure links
	for i := range f {
		f[i] = -1
	}
	k := 0 // start of the best rotation so far
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] { // i == -1 here
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	return slices.Clone(doubled[k : k+n])
}

// canonical returns the representative of c among all its rotations and
// both traversal directions: the lexicographically smaller of the minimal
// forward rotation and the minimal rotation of the reversed walk.
func canonical(c Cycle) Cycle {
	fwd := minimalRotation(c)

	rev := slices.Clone([]uint64(c))
	slices.Reverse(rev)
	bwd := minimalRotation(rev)

	if slices.Compare(bwd, fwd) < 0 {
		return bwd
	}

	return fwd
}

// key renders a canonical cycle as a map key.
func key(c Cycle) string {
	return c.String()
}
