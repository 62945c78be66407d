package osc

import "math/rand"

const (
	whiteScale = 0.4
	brownLeak  = 0.02
	brownScale = 3.5
	pinkScale  = 0.11
	boxMullerU = 1e-9
)

// Noise generates white, pink and brown noise from an owned, seeded PRNG.
// It is not safe for concurrent use.
type Noise struct {
	seed int64
	rng  *rand.Rand

	spare    float64
	hasSpare bool

	pink  [7]float64
	brown float64
}

// NewNoise returns a noise source seeded with seed.
func NewNoise(seed int64) *Noise {
	return &Noise{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Reseed restarts the PRNG sequence and clears all filter memory.
func (n *Noise) Reseed(seed int64) {
	n.seed = seed
	n.rng.Seed(seed)
	n.Reset()
}

// Reset clears the cached Gaussian sample and the pink/brown filter states.
// The PRNG position is kept.
func (n *Noise) Reset() {
	n.spare = 0
	n.hasSpare = false
	n.pink = [7]float64{}
	n.brown = 0
}

// Seed returns the seed the source was created or last reseeded with.
func (n *Noise) Seed() int64 { return n.seed }

// White returns Gaussian white noise (sigma 0.4). Samples are produced in
// Box-Muller pairs; the second sample of each pair is served on the next call.
func (n *Noise) White() float64 {
	if n.hasSpare {
		n.hasSpare = false
		return n.spare
	}

	u1 := n.rng.Float64()
	u2 := n.rng.Float64()
	mag := noiseSqrt(-2 * noiseLog(u1+boxMullerU))
	s, c := noiseSinCos(twoPi * u2)

	n.spare = mag * s * whiteScale
	n.hasSpare = true

	return mag * c * whiteScale
}

// Pink returns 1/f noise using Paul Kellet's refined seven-term filter on a
// uniform white input.
func (n *Noise) Pink() float64 {
	w := n.uniform()
	b := &n.pink

	b[0] = 0.99886*b[0] + w*0.0555179
	b[1] = 0.99332*b[1] + w*0.0750312
	b[2] = 0.96900*b[2] + w*0.1538520
	b[3] = 0.86650*b[3] + w*0.3104856
	b[4] = 0.55000*b[4] + w*0.5329522
	b[5] = -0.7616*b[5] + w*0.0168980
	out := (b[0] + b[1] + b[2] + b[3] + b[4] + b[5] + b[6] + w*0.5362) * pinkScale
	b[6] = w * 0.11592

	return out
}

// Brown returns integrated (1/f^2) noise from a leaky integrator
// y = (y + k*w) / (1 + k).
func (n *Noise) Brown() float64 {
	w := n.uniform()
	n.brown = (n.brown + brownLeak*w) / (1 + brownLeak)

	return n.brown * brownScale
}

func (n *Noise) uniform() float64 {
	return n.rng.Float64()*2 - 1
}
