package mcts

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distmv"
)

// sampleDirichlet draws one sample from a symmetric Dirichlet(alpha, ...,
// alpha) distribution over n outcomes, used to perturb the order in which
// unvisited root moves receive their first forced visit.
func sampleDirichlet(rng *source, alpha float64, n int) []float64 {
	if n == 0 {
		return nil
	}
	alphas := make([]float64, n)
	for i := range alphas {
		alphas[i] = alpha
	}
	seed := uint64(rng.intn(1<<31-1)) + 1
	d := distmv.Dirichlet{Alpha: alphas, Src: rand.New(rand.NewSource(seed))}
	return d.Rand(nil)
}
