package engine

import (
	"errors"
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"
)

// ErrInsufficientMemory is returned by New when the bitmaps would not fit in
// the allowed share of available memory.
var ErrInsufficientMemory = errors.New("engine: insufficient memory")

// MemoryProbe reports the bytes of memory currently available.
type MemoryProbe func() (uint64, error)

// SystemMemory reads available memory from the operating system.
func SystemMemory() (uint64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}

	return vm.Available, nil
}

// checkMemory rejects configurations whose bitmaps exceed headroom × available.
func checkMemory(cfg Config, probe MemoryProbe) (required, budget uint64, err error) {
	avail, err := probe()
	if err != nil {
		return 0, 0, fmt.Errorf("checkMemory: probe: %w", err)
	}
	required = cfg.RequiredBytes()
	budget = uint64(float64(avail) * cfg.MemoryHeadroom)
	if required > budget {
		return required, budget, fmt.Errorf("checkMemory: need %d bytes, budget %d (%.0f%% of %d): %w",
			required, budget, cfg.MemoryHeadroom*100, avail, ErrInsufficientMemory)
	}

	return required, budget, nil
}
