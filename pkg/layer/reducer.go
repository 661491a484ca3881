package layer

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// Schedule is a geometric cooling schedule over a fixed number of steps.
type Schedule struct {
	StartTemp float64
	EndTemp   float64
	Steps     int
}

// SingleStep returns a one-step schedule at a constant temperature, the
// shape used by a plain (non-cooling) swap command.
func SingleStep(temp float64) Schedule {
	return Schedule{StartTemp: temp, EndTemp: temp, Steps: 1}
}

// temperatureAt returns the temperature for step s (0-indexed), following a
// geometric interpolation between StartTemp and EndTemp.
func (s Schedule) temperatureAt(step int) float64 {
	if s.Steps <= 1 {
		return s.StartTemp
	}
	frac := float64(step) / float64(s.Steps-1)
	return s.StartTemp * math.Pow(s.EndTemp/s.StartTemp, frac)
}

// Reduce runs the simulated-annealing reducer over the n x n pairwise
// contribution matrix p, starting from the identity permutation of [0, n)
// and an initial crossing count c0, following schedule across schedule.Steps
// temperature steps with up to maxIterations sweeps per step.
//
// borders, if non-nil, forbids a swap between positions j and j+1 whenever j
// is a member: moves never cross a group boundary. rng drives the Metropolis
// acceptance draws; callers that need reproducible runs pass a seeded one.
//
// Reduce stops early, as soon as a full sweep leaves C == 0, or as soon as
// C <= 0 is observed at the top of any step (including before the first).
// It returns the resulting permutation (as indices into the original
// n-element ordering) and the final crossing count, which may have drifted
// from the true count due to accumulated i64 rounding.
func Reduce(n int, p *mat.Dense, schedule Schedule, maxIterations int, c0 int64, borders map[int]bool, rng *rand.Rand) ([]int, int64) {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	if c0 <= 0 || n < 2 {
		return perm, c0
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 1))
	}

	crossings := c0
	for step := 0; step < schedule.Steps; step++ {
		if crossings <= 0 {
			return perm, crossings
		}
		temp := schedule.temperatureAt(step)

		for iter := 0; iter < maxIterations; iter++ {
			for j := 0; j < n-1; j++ {
				if borders[j] {
					continue
				}
				a, b := perm[j], perm[j+1]
				delta := p.At(a, b)
				if delta > 0 || math.Exp((delta-1)/temp) > rng.Float64() {
					perm[j], perm[j+1] = b, a
					crossings -= int64(delta)
				}
			}
			if crossings == 0 {
				return perm, crossings
			}
		}
	}

	return perm, crossings
}
