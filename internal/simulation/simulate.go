// Package simulation generates ensembles of discretized Geometric Brownian
// Motion price trajectories under the same model parameters the pricing
// package consumes. The two packages share no state; they meet only where a
// caller hands both outputs to a display layer.
package simulation

import (
	"math"
	"math/rand"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/jwaldner/optionslab/internal/pricing"
)

// Config controls the shape of one simulation run.
type Config struct {
	PathCount int // independent trajectories, >= 1
	StepCount int // discrete time steps per trajectory, >= 1
	// Seed pins the random source so a run can be reproduced bit for bit.
	// Nil draws a fresh time-based seed on every call.
	Seed *int64
}

// Validate rejects non-positive path or step counts before any draw happens.
func (c Config) Validate() error {
	if c.PathCount < 1 {
		return &pricing.InvalidParameterError{Field: "path_count", Value: float64(c.PathCount), Reason: "must be at least 1"}
	}
	if c.StepCount < 1 {
		return &pricing.InvalidParameterError{Field: "step_count", Value: float64(c.StepCount), Reason: "must be at least 1"}
	}
	return nil
}

// Ensemble holds one trajectory per row. Every row has StepCount+1 columns
// and column 0 equals the starting spot; all entries are strictly positive.
type Ensemble [][]float64

// PathCount returns the number of trajectories in the ensemble.
func (e Ensemble) PathCount() int {
	return len(e)
}

// StepCount returns the number of GBM steps per trajectory.
func (e Ensemble) StepCount() int {
	if len(e) == 0 {
		return 0
	}
	return len(e[0]) - 1
}

// TerminalPrices returns the final column, one value per trajectory.
func (e Ensemble) TerminalPrices() []float64 {
	prices := make([]float64, len(e))
	for i, path := range e {
		prices[i] = path[len(path)-1]
	}
	return prices
}

// Summary condenses the terminal price distribution of an ensemble.
type Summary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	P05    float64 `json:"p05"`
	P95    float64 `json:"p95"`
}

// Summarize computes distribution statistics over the terminal prices.
func (e Ensemble) Summarize() (Summary, error) {
	terminal := stats.Float64Data(e.TerminalPrices())

	mean, err := terminal.Mean()
	if err != nil {
		return Summary{}, err
	}
	median, err := terminal.Median()
	if err != nil {
		return Summary{}, err
	}
	min, err := terminal.Min()
	if err != nil {
		return Summary{}, err
	}
	max, err := terminal.Max()
	if err != nil {
		return Summary{}, err
	}
	p05, err := terminal.Percentile(5)
	if err != nil {
		return Summary{}, err
	}
	p95, err := terminal.Percentile(95)
	if err != nil {
		return Summary{}, err
	}

	return Summary{Mean: mean, Median: median, Min: min, Max: max, P05: p05, P95: p95}, nil
}

// Simulate produces an ensemble of GBM trajectories. Each step applies the
// exact-solution discretization
//
//	next = prev * exp((r - σ²/2)·dt + σ·√dt·z)
//
// rather than an Euler approximation, so every price stays strictly positive
// regardless of step size. The function has no side effects; it neither
// plots nor persists anything.
func Simulate(params pricing.ModelParameters, cfg Config) (Ensemble, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := time.Now().UnixNano()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	dt := params.Horizon / float64(cfg.StepCount)
	drift := (params.Rate - 0.5*params.Volatility*params.Volatility) * dt
	diffusion := params.Volatility * math.Sqrt(dt)

	paths := make(Ensemble, cfg.PathCount)
	for i := range paths {
		paths[i] = make([]float64, cfg.StepCount+1)
		paths[i][0] = params.Spot
	}

	// Step-major order: all trajectories advance together, mirroring the
	// batch recurrence. Each draw is independent across paths and steps.
	for t := 1; t <= cfg.StepCount; t++ {
		for i := range paths {
			z := rng.NormFloat64()
			paths[i][t] = paths[i][t-1] * math.Exp(drift+diffusion*z)
		}
	}

	return paths, nil
}
