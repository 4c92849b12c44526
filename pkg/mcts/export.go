package mcts

import (
	"fmt"

	"github.com/awalterschulze/gographviz"

	"github.com/gridmcts/engine/internal/arena"
)

// ExportDOT renders the current search tree (from the root down) as
// Graphviz DOT source, labeling each node with its visit count and mean
// score. It exists purely for debugging; it is never consulted by Search
// itself.
func (e *Engine[S, M, O]) ExportDOT() (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName("search"); err != nil {
		return "", err
	}
	if err := g.SetDir(true); err != nil {
		return "", err
	}

	visited := make(map[arena.Handle]bool)
	if e.root != arena.Invalid {
		if err := e.exportNode(g, e.root, visited); err != nil {
			return "", err
		}
	}
	return g.String(), nil
}

func nodeID(h arena.Handle) string {
	return fmt.Sprintf("\"n%d\"", uint64(h))
}

func (e *Engine[S, M, O]) exportNode(g *gographviz.Graph, h arena.Handle, visited map[arena.Handle]bool) error {
	if visited[h] {
		return nil
	}
	visited[h] = true

	n, ok := e.nodes.Get(h)
	if !ok {
		return nil
	}
	label := fmt.Sprintf("\"v=%d m=%.3f solved=%t\"", n.visits, n.meanScore(), n.solved)
	if err := g.AddNode("search", nodeID(h), map[string]string{"label": label}); err != nil {
		return err
	}

	moves, _ := e.moveLists.Get(n.moves)
	for _, mv := range moves {
		for _, oc := range mv.outcomes {
			if !oc.expanded() {
				continue
			}
			if err := e.exportNode(g, oc.successor, visited); err != nil {
				return err
			}
			edgeLabel := fmt.Sprintf("\"%v\"", mv.move)
			if err := g.AddEdge(nodeID(h), nodeID(oc.successor), true, map[string]string{"label": edgeLabel}); err != nil {
				return err
			}
		}
	}
	return nil
}
