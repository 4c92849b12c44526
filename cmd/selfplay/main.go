// Command selfplay runs a short match between two MCTS-driven players on a
// chosen game kernel and prints the tally.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gridmcts/engine/pkg/driver"
	"github.com/gridmcts/engine/pkg/game"
	"github.com/gridmcts/engine/pkg/game/connect4"
	"github.com/gridmcts/engine/pkg/game/tictactoe"
	"github.com/gridmcts/engine/pkg/mcts"
	"github.com/gridmcts/engine/pkg/player"
	"github.com/gridmcts/engine/pkg/reducer"
)

func main() {
	kind := flag.String("game", "tictactoe", "game kernel: tictactoe, connect4, connect4-8x8")
	games := flag.Int("games", 10, "number of games to play")
	iterations := flag.Int("iterations", 400, "MCTS playoffs per move")
	flag.Parse()

	cfg := mcts.DefaultConfig()
	cfg.Budget = mcts.Budget{Iterations: *iterations}
	cfg.Reducer = reducer.Config{Sides: [2]reducer.SideConfig{
		{Kind: reducer.Average, OnWin: 1, OnTie: 0},
		{Kind: reducer.Average, OnWin: 1, OnTie: 0},
	}}
	cfg.LimiterThreshold = 1e-4

	switch *kind {
	case "tictactoe":
		runMatch(*kind, tictactoe.New(), cfg, *games)
	case "connect4":
		runMatch(*kind, connect4.New7x6(), cfg, *games)
	case "connect4-8x8":
		runMatch(*kind, connect4.New8x8(), cfg, *games)
	default:
		log.Fatalf("selfplay: unknown game %q", *kind)
	}
}

func runMatch[S comparable, M comparable, O any](name string, g game.Game[S, M, O], cfg mcts.Config, games int) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	a := player.New[S, M]("A", mcts.New[S, M, O](g, cfg))
	b := player.New[S, M]("B", mcts.New[S, M, O](g, cfg))

	d := driver.New[S, M, O](g)
	tally, err := d.RunMatch(ctx, games, a, b)
	if err != nil {
		log.Fatalf("selfplay: %s: %v", name, err)
	}

	fmt.Printf("%s: A wins=%d losses=%d ties=%d\n", name, tally.Wins, tally.Losses, tally.Ties)
}
