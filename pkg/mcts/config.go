package mcts

import (
	"time"

	"github.com/pkg/errors"

	"github.com/gridmcts/engine/pkg/reducer"
)

// Budget bounds a single top-level search either by a fixed iteration count
// or by a wall-clock deadline. At least one of the two must be positive;
// when both are, the search stops at whichever limit is reached first.
type Budget struct {
	Iterations int
	Deadline   time.Duration
}

func (b Budget) isValid() bool {
	return b.Iterations > 0 || b.Deadline > 0
}

// RootNoise optionally perturbs the order in which unvisited root children
// receive their first forced visit, trading strict enumeration order for a
// Dirichlet-sampled one purely to diversify exploration.
type RootNoise struct {
	Enabled bool
	Alpha   float64
}

// Config collects everything a Search needs beyond the game itself.
type Config struct {
	// ExplorationC is the UCT exploration constant, typically near sqrt(2).
	ExplorationC float32

	// Reducer configures the two-player backpropagation reward mapping.
	Reducer reducer.Config

	// LimiterThreshold, if positive, enables the execution limiter: once a
	// reducer's magnitude on either side falls below this value while
	// climbing the DAG during backprop, that climb stops early.
	LimiterThreshold float32

	// Seed, if non-nil, makes the search's RNG deterministic.
	Seed *[32]byte

	Budget Budget

	RootNoise RootNoise
}

// DefaultConfig returns a conservative, always-valid configuration: a
// 1,000-iteration budget, c = sqrt(2), and an identity reducer with a
// symmetric (+1/0) reward for both sides.
func DefaultConfig() Config {
	return Config{
		ExplorationC: 1.4142135,
		Reducer: reducer.Config{Sides: [2]reducer.SideConfig{
			{Kind: reducer.Identity, OnWin: 1, OnTie: 0},
			{Kind: reducer.Identity, OnWin: 1, OnTie: 0},
		}},
		Budget: Budget{Iterations: 1000},
	}
}

// Validate reports the first configuration error found, or nil.
func (c Config) Validate() error {
	if c.ExplorationC < 0 {
		return errors.New("mcts: ExplorationC must be non-negative")
	}
	if !c.Budget.isValid() {
		return errors.New("mcts: Budget must set a positive Iterations or Deadline")
	}
	for i, side := range c.Reducer.Sides {
		if side.Kind == reducer.Decay && (side.Decay < 0 || side.Decay > 1) {
			return errors.Errorf("mcts: Reducer.Sides[%d].Decay must be in [0, 1]", i)
		}
	}
	if c.RootNoise.Enabled && c.RootNoise.Alpha <= 0 {
		return errors.New("mcts: RootNoise.Alpha must be positive when enabled")
	}
	return nil
}
