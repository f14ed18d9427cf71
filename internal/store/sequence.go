package store

import "sync/atomic"

// Sequence hands out monotonically increasing int64 ids starting at 1.
// Each service owns one sequence per entity kind.
type Sequence struct {
	last atomic.Int64
}

// Next returns the next id.
func (s *Sequence) Next() int64 {
	return s.last.Add(1)
}
