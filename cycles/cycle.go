package cycles

import (
	"slices"
	"strconv"
	"strings"
)

// Cycle is a closed walk given as edge indices in traversal order.
type Cycle []uint64

// Sorted returns the edge indices in ascending order, the form in which a
// proof is published.
func (c Cycle) Sorted() []uint64 {
	out := slices.Clone([]uint64(c))
	slices.Sort(out)

	return out
}

// String renders the walk as space-separated indices.
func (c Cycle) String() string {
	var b strings.Builder
	for i, e := range c {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatUint(e, 10))
	}

	return b.String()
}
