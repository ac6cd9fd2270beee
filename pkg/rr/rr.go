package rr

import "sync/atomic"

// RR hands out pool indexes round-robin. Safe for concurrent use; the zero
// value is ready.
type RR struct{ n atomic.Uint64 }

func (r *RR) Next(mod int) int {
	x := r.n.Add(1)
	return int((x - 1) % uint64(mod))
}
