package engine

import "time"

// Stats accumulates results over many attempts.
type Stats struct {
	Graphs     int
	Solutions  int
	TrimTime   time.Duration
	SearchTime time.Duration
}

// Add folds one attempt into s.
func (s *Stats) Add(r *Result) {
	s.Graphs++
	s.Solutions += len(r.Cycles)
	s.TrimTime += r.TrimDuration
	s.SearchTime += r.SearchDuration
}

// Total is the time spent trimming and searching.
func (s Stats) Total() time.Duration { return s.TrimTime + s.SearchTime }

// GraphsPerSecond is the attempt throughput; zero before any time accrued.
func (s Stats) GraphsPerSecond() float64 {
	t := s.Total().Seconds()
	if t == 0 {
		return 0
	}

	return float64(s.Graphs) / t
}
