package gradients

import "math/rand"

// Sampler produces perturbation direction vectors over the trainable
// parameter space. Implementations must be pure given the rng state and
// call index: the only state threaded between calls is the explicit rng
// handle and the caller-supplied call index.
//
// The returned vector has length numParams. Entries at positions listed in
// indices are the sampled direction; all other entries are zero and are
// never shifted by the variant generator.
type Sampler interface {
	Sample(rng *rand.Rand, indices []int, numParams, callIndex int) []float64
}

// RademacherSampler draws each selected entry independently from {-1, +1}
// with equal probability. Given a seeded rng the sequence is reproducible.
//
// This is the default SPSA direction distribution: averaging directional
// finite differences over Rademacher directions recovers the Jacobian in
// expectation.
type RademacherSampler struct{}

// Sample implements Sampler.
func (RademacherSampler) Sample(rng *rand.Rand, indices []int, numParams, _ int) []float64 {
	direction := make([]float64, numParams)
	for _, idx := range indices {
		if rng.Intn(2) == 0 {
			direction[idx] = -1
		} else {
			direction[idx] = 1
		}
	}
	return direction
}

// CoordinateSampler cycles deterministically through canonical basis
// vectors: call k selects indices[k mod len(indices)]. It exists to
// reproduce exact finite-difference derivatives instead of stochastic
// estimates; users must rescale the averaged result by the number of
// directions themselves (see Config.NumDirections).
type CoordinateSampler struct{}

// Sample implements Sampler. The rng handle is ignored.
func (CoordinateSampler) Sample(_ *rand.Rand, indices []int, numParams, callIndex int) []float64 {
	direction := make([]float64, numParams)
	if len(indices) == 0 {
		return direction
	}
	direction[indices[callIndex%len(indices)]] = 1
	return direction
}
