package mcts

import (
	"encoding/binary"
	"time"

	rng "github.com/leesper/go_rng"
)

// source is the search engine's single RNG, wired to github.com/leesper/go_rng's
// uniform generator rather than a bare math/rand instance, matching the rest
// of the dependency stack's preference for the pack's own distribution
// library over ad hoc use of the standard library.
type source struct {
	u *rng.UniformGenerator
}

func newSource(seed *[32]byte) *source {
	var s int64
	if seed != nil {
		s = int64(binary.LittleEndian.Uint64(seed[:8]))
	} else {
		s = time.Now().UnixNano()
	}
	return &source{u: rng.NewUniformGenerator(s)}
}

// float64 returns a uniform sample in [0, 1).
func (s *source) float64() float64 {
	return s.u.Uniform(0, 1)
}

// intn returns a uniform sample in [0, n).
func (s *source) intn(n int) int {
	if n <= 0 {
		return 0
	}
	v := int(s.u.Uniform(0, float64(n)))
	if v >= n {
		v = n - 1
	}
	return v
}
