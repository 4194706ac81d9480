// Package hedging replays a delta hedge of a short European call along one
// simulated price trajectory. It exists to show how well (or badly) the
// continuous-hedging assumption behind the closed-form price survives
// discrete rebalancing.
package hedging

import (
	"math"

	"github.com/jwaldner/optionslab/internal/pricing"
	"github.com/jwaldner/optionslab/internal/simulation"
)

// Config controls one hedging replay.
type Config struct {
	StepCount int    // rebalancing intervals over the horizon, >= 1
	Seed      *int64 // pins the simulated trajectory; nil draws a fresh one
}

// Result is the outcome of replaying a hedge along a single trajectory.
type Result struct {
	Path          []float64 `json:"path"`           // the simulated underlying prices, StepCount+1 entries
	StepPnL       []float64 `json:"step_pnl"`       // per-interval hedge P&L, StepPnL[0] == 0
	CumulativePnL []float64 `json:"cumulative_pnl"` // running sum of StepPnL
	FinalError    float64   `json:"final_error"`    // CumulativePnL at expiry; zero for a perfect hedge
}

// near-expiry cutoff below which the option collapses to intrinsic value,
// avoiding division by a vanishing sqrt(T) in the closed form.
const expiryEpsilon = 1e-5

// valueAndDelta prices the call with the remaining time on the clock.
func valueAndDelta(params pricing.ModelParameters, spot, timeLeft float64) (float64, float64, error) {
	if timeLeft <= expiryEpsilon {
		price := math.Max(spot-params.Strike, 0)
		delta := 0.0
		if spot > params.Strike {
			delta = 1.0
		}
		return price, delta, nil
	}

	p := params
	p.Spot = spot
	p.Horizon = timeLeft
	result, err := pricing.PriceCall(p)
	if err != nil {
		return 0, 0, err
	}
	return result.Price, result.Delta, nil
}

// Replay simulates one GBM trajectory, then walks it step by step holding
// the model delta in stock against a short call. At each step the P&L is the
// gain on the stock held over the interval minus the change in the option
// liability; financing of the cash leg is deliberately left out, matching
// the simplest classroom treatment.
func Replay(params pricing.ModelParameters, cfg Config) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if cfg.StepCount < 1 {
		return nil, &pricing.InvalidParameterError{Field: "step_count", Value: float64(cfg.StepCount), Reason: "must be at least 1"}
	}

	paths, err := simulation.Simulate(params, simulation.Config{PathCount: 1, StepCount: cfg.StepCount, Seed: cfg.Seed})
	if err != nil {
		return nil, err
	}
	path := paths[0]

	dt := params.Horizon / float64(cfg.StepCount)

	prevPrice, holdings, err := valueAndDelta(params, path[0], params.Horizon)
	if err != nil {
		return nil, err
	}

	stepPnL := make([]float64, cfg.StepCount+1)
	cumulative := make([]float64, cfg.StepCount+1)

	for t := 1; t <= cfg.StepCount; t++ {
		timeLeft := params.Horizon - float64(t)*dt
		price, delta, err := valueAndDelta(params, path[t], timeLeft)
		if err != nil {
			return nil, err
		}

		// Stock gain on the position carried into this interval, less the
		// move in the short option.
		stepPnL[t] = holdings*(path[t]-path[t-1]) - (price - prevPrice)
		cumulative[t] = cumulative[t-1] + stepPnL[t]

		// Rebalance to the fresh delta for the next interval.
		prevPrice, holdings = price, delta
	}

	return &Result{
		Path:          path,
		StepPnL:       stepPnL,
		CumulativePnL: cumulative,
		FinalError:    cumulative[cfg.StepCount],
	}, nil
}
