// Package driver runs complete games between two Players, alternating
// which side starts and tallying wins, losses, and ties with side-swap
// accounting.
package driver

import (
	"bytes"
	"context"
	"log"
	"time"

	"github.com/hashicorp/go-multierror"
	rng "github.com/leesper/go_rng"
	"github.com/pkg/errors"

	"github.com/gridmcts/engine/pkg/game"
	"github.com/gridmcts/engine/pkg/player"
)

// Driver plays repeated games of one Game between two Players.
type Driver[S comparable, M comparable, O any] struct {
	Game game.Game[S, M, O]

	buf    bytes.Buffer
	logger *log.Logger
	rng    *rng.UniformGenerator
}

// New returns a Driver for g, seeded from the current time.
func New[S comparable, M comparable, O any](g game.Game[S, M, O]) *Driver[S, M, O] {
	d := &Driver[S, M, O]{Game: g}
	d.logger = log.New(&d.buf, "driver: ", log.Ltime)
	d.rng = rng.NewUniformGenerator(time.Now().UnixNano())
	return d
}

// Log returns the driver's accumulated log output.
func (d *Driver[S, M, O]) Log() string { return d.buf.String() }

// Result is the outcome of one finished game.
type Result struct {
	Classification game.Result
	Mover          game.Side
	Plies          int
}

// PlayGame runs one game to completion between first (seated SideOne) and
// second (seated SideTwo), recording the outcome into both players' tallies.
func (d *Driver[S, M, O]) PlayGame(ctx context.Context, first, second *player.Player[S, M]) (Result, error) {
	first.Side = game.SideOne
	second.Side = game.SideTwo

	state := d.Game.New()
	plies := 0

	for {
		if result, ok := d.Game.WinState(state); ok {
			mover := d.Game.Player(state).Other()
			first.Record(result, mover)
			second.Record(result, mover)
			return Result{Classification: result, Mover: mover, Plies: plies}, nil
		}

		select {
		case <-ctx.Done():
			return Result{}, errors.Wrap(ctx.Err(), "driver: PlayGame")
		default:
		}

		acting := first
		if d.Game.Player(state) != first.Side {
			acting = second
		}

		mv, err := acting.Move(ctx, state)
		if err != nil {
			return Result{}, errors.Wrapf(err, "driver: %s failed to move", acting.Name)
		}

		outcome := d.sampleOutcome(d.Game.Outcomes(state, mv))
		state, _ = d.Game.Apply(state, mv, outcome)
		plies++

		d.logger.Printf("ply %d: %s played %v", plies, acting.Name, mv)
	}
}

func (d *Driver[S, M, O]) sampleOutcome(outcomes []game.WeightedOutcome[O]) O {
	if len(outcomes) == 1 {
		return outcomes[0].Outcome
	}
	r := d.rng.Uniform(0, 1)
	var cum float64
	for _, o := range outcomes {
		cum += o.Probability
		if r < cum {
			return o.Outcome
		}
	}
	return outcomes[len(outcomes)-1].Outcome
}

// Tally summarizes a multi-game match from the perspective of the first
// player passed to RunMatch or RunMatchTolerant.
type Tally struct {
	Wins, Losses, Ties int
	Results            []Result
}

// RunMatch plays n games between a and b, swapping which player starts
// every other game so neither side is systematically favored by first-move
// advantage, and returns the match tally from a's perspective.
func (d *Driver[S, M, O]) RunMatch(ctx context.Context, n int, a, b *player.Player[S, M]) (Tally, error) {
	var t Tally
	for i := 0; i < n; i++ {
		first, second := a, b
		if i%2 == 1 {
			first, second = b, a
		}

		res, err := d.PlayGame(ctx, first, second)
		if err != nil {
			return t, errors.Wrapf(err, "driver: game %d", i)
		}
		t.Results = append(t.Results, res)

		switch {
		case res.Classification == game.Tie:
			t.Ties++
		case res.Mover == a.Side:
			t.Wins++
		default:
			t.Losses++
		}
	}
	return t, nil
}

// RunMatchTolerant behaves like RunMatch but keeps playing through per-game
// failures (a timed-out search, a player returning an illegal move) instead
// of aborting the whole match on the first one, collecting every failure
// into a single error via go-multierror so a long unattended tournament run
// can report all of its casualties at once.
func (d *Driver[S, M, O]) RunMatchTolerant(ctx context.Context, n int, a, b *player.Player[S, M]) (Tally, error) {
	var t Tally
	var errs *multierror.Error
	for i := 0; i < n; i++ {
		first, second := a, b
		if i%2 == 1 {
			first, second = b, a
		}

		res, err := d.PlayGame(ctx, first, second)
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "driver: game %d", i))
			continue
		}
		t.Results = append(t.Results, res)

		switch {
		case res.Classification == game.Tie:
			t.Ties++
		case res.Mover == a.Side:
			t.Wins++
		default:
			t.Losses++
		}
	}
	return t, errs.ErrorOrNil()
}
