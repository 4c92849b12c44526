// Package limiter implements an optional execution limiter: a mid-playout
// cutoff that aborts backpropagation once a reducer's contribution has
// decayed below numerical significance on either side.
package limiter

import "github.com/gridmcts/engine/pkg/reducer"

// Limiter tests a reducer's per-side magnitudes against a configured
// threshold. The zero value has Threshold 0 and never cuts off.
type Limiter struct {
	Threshold float32
}

// New returns a Limiter that cuts off once either side's reducer magnitude
// drops below threshold. A non-positive threshold disables cutoff.
func New(threshold float32) Limiter {
	return Limiter{Threshold: threshold}
}

// ShouldCutoff reports whether backpropagation should stop climbing the
// tree, given the reducer state reached so far.
func (l Limiter) ShouldCutoff(r reducer.Reducer) bool {
	if l.Threshold <= 0 {
		return false
	}
	active, other := r.Magnitudes()
	return active < l.Threshold || other < l.Threshold
}
