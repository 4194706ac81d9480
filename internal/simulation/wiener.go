package simulation

import (
	"math"
	"math/rand"
	"time"

	"github.com/jwaldner/optionslab/internal/pricing"
)

// Wiener generates one realization of a standard Wiener process over the
// given horizon: W[0] = 0 and each increment is drawn from N(0, dt). The
// returned slice has steps+1 entries. GBM is driven by exactly this process;
// the standalone realization exists for studying the noise on its own.
func Wiener(horizon float64, steps int, seed *int64) ([]float64, error) {
	if math.IsNaN(horizon) || horizon <= 0 {
		return nil, &pricing.InvalidParameterError{Field: "horizon", Value: horizon, Reason: "must be positive"}
	}
	if steps < 1 {
		return nil, &pricing.InvalidParameterError{Field: "step_count", Value: float64(steps), Reason: "must be at least 1"}
	}

	s := time.Now().UnixNano()
	if seed != nil {
		s = *seed
	}
	rng := rand.New(rand.NewSource(s))

	dt := horizon / float64(steps)
	scale := math.Sqrt(dt)

	// The process level is the running sum of its increments.
	w := make([]float64, steps+1)
	for t := 1; t <= steps; t++ {
		w[t] = w[t-1] + scale*rng.NormFloat64()
	}

	return w, nil
}
