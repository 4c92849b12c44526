// Package reducer implements the pluggable backpropagation reward mapping:
// identity, geometric decay, and sibling averaging, composed into a
// two-player alternating wrapper that the search engine drives one tree
// level at a time.
package reducer

import (
	"github.com/chewxy/math32"

	"github.com/gridmcts/engine/pkg/game"
)

// Kind selects which inner reducer a side uses.
type Kind uint8

const (
	// Identity passes the score upward unchanged at every level.
	Identity Kind = iota
	// Decay multiplies the score by a constant factor at every level.
	Decay
	// Average divides the score by the branching factor at every level.
	Average
)

// SideConfig configures one side's terminal rewards and reducer.
type SideConfig struct {
	Kind   Kind
	OnWin  float32
	OnTie  float32
	Decay  float32 // used only when Kind == Decay; must be in [0, 1]
}

func (sc SideConfig) reward(result game.Result) float32 {
	if result == game.Win {
		return sc.OnWin
	}
	return sc.OnTie
}

func (sc SideConfig) inner() inner {
	switch sc.Kind {
	case Decay:
		return decayReducer{d: sc.Decay, mag: 1}
	case Average:
		return averageReducer{mag: 1}
	default:
		return identityReducer{}
	}
}

// Config holds both sides' reducer configuration.
type Config struct {
	Sides [2]SideConfig
}

// inner is a single side's reward-mapping reducer.
type inner interface {
	// step maps the score held at the current node, using the current
	// node's branching factor, to the score for the next ancestor level,
	// advancing the reducer's own decay state.
	step(score float32, branchFactor int) (float32, inner)
	// magnitude is the current decay magnitude, used by the execution
	// limiter to detect a played-out contribution.
	magnitude() float32
}

type identityReducer struct{}

func (identityReducer) step(score float32, _ int) (float32, inner) { return score, identityReducer{} }
func (identityReducer) magnitude() float32                         { return 1 }

type decayReducer struct {
	d, mag float32
}

func (r decayReducer) step(score float32, _ int) (float32, inner) {
	next := r.mag * r.d
	return score * r.d, decayReducer{d: r.d, mag: next}
}
func (r decayReducer) magnitude() float32 { return r.mag }

type averageReducer struct {
	mag float32
}

func (r averageReducer) step(score float32, branchFactor int) (float32, inner) {
	bf := branchFactor
	if bf < 1 {
		bf = 1
	}
	next := r.mag / float32(bf)
	return score / float32(bf), averageReducer{mag: next}
}
func (r averageReducer) magnitude() float32 { return r.mag }

// Reducer drives one side's score through one more level of ancestors and
// alternates which of the two configured sides is "active" (the one whose
// reward/decay policy produces the emitted score), while both sides'
// internal decay state advances on every step.
type Reducer struct {
	active, other inner
}

// NewLeaf computes the terminal reward for mover (the side that just played
// into the reached leaf) and returns a Reducer ready to drive backprop
// through the leaf's immediate predecessor's own ancestors. The immediate
// predecessor itself receives the returned value unchanged.
func NewLeaf(cfg Config, result game.Result, mover game.Side) (float32, Reducer) {
	value := cfg.Sides[mover].reward(result)
	return value, Reducer{
		active: cfg.Sides[mover.Other()].inner(),
		other:  cfg.Sides[mover].inner(),
	}
}

// Step computes the score for the next ancestor level from the score held
// at the current node, given the current node's branching factor (its
// number of legal moves). The sign inverts on every step, reflecting that
// the acting player alternates one level at a time.
func (r Reducer) Step(score float32, branchFactor int) (float32, Reducer) {
	next, nextActive := r.active.step(score, branchFactor)
	_, nextOther := r.other.step(score, branchFactor)
	return -next, Reducer{active: nextOther, other: nextActive}
}

// Magnitudes returns the current decay magnitude of the active side and of
// the other side, in that order.
func (r Reducer) Magnitudes() (active, other float32) {
	return math32.Abs(r.active.magnitude()), math32.Abs(r.other.magnitude())
}
