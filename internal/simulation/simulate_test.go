package simulation

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwaldner/optionslab/internal/pricing"
)

func seedOf(v int64) *int64 {
	return &v
}

func testParams() pricing.ModelParameters {
	return pricing.ModelParameters{Spot: 100, Strike: 100, Rate: 0.05, Volatility: 0.2, Horizon: 1.0}
}

func TestSimulateShapeAndPositivity(t *testing.T) {
	// The reference run: a year of daily steps across 50 trajectories.
	paths, err := Simulate(testParams(), Config{PathCount: 50, StepCount: 252, Seed: seedOf(7)})
	require.NoError(t, err)

	require.Equal(t, 50, paths.PathCount())
	require.Equal(t, 252, paths.StepCount())

	for i, path := range paths {
		require.Len(t, path, 253)
		assert.Equal(t, 100.0, path[0], "path %d must start at spot", i)
		for tt, price := range path {
			require.Greater(t, price, 0.0, "path %d step %d", i, tt)
		}
	}
}

func TestSimulateSeededReproducibility(t *testing.T) {
	cfg := Config{PathCount: 20, StepCount: 100, Seed: seedOf(42)}

	first, err := Simulate(testParams(), cfg)
	require.NoError(t, err)
	second, err := Simulate(testParams(), cfg)
	require.NoError(t, err)

	// Bit-identical output, not merely close.
	assert.Equal(t, first, second)
}

func TestSimulateUnseededRunsDiffer(t *testing.T) {
	cfg := Config{PathCount: 10, StepCount: 50}

	first, err := Simulate(testParams(), cfg)
	require.NoError(t, err)
	second, err := Simulate(testParams(), cfg)
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two unseeded runs should practically never coincide")
}

func TestSimulateZeroVolatilityIsDeterministicForward(t *testing.T) {
	// With no volatility every step is a pure drift multiplication, so each
	// trajectory must follow spot * exp(r * t * dt) exactly.
	params := testParams()
	params.Volatility = 0

	paths, err := Simulate(params, Config{PathCount: 3, StepCount: 10, Seed: seedOf(1)})
	require.NoError(t, err)

	dt := params.Horizon / 10
	for _, path := range paths {
		for tt, price := range path {
			expected := params.Spot * math.Exp(params.Rate*float64(tt)*dt)
			assert.InDelta(t, expected, price, 1e-9)
		}
	}
}

func TestSimulateRejectsInvalidInputs(t *testing.T) {
	cases := []struct {
		name   string
		params pricing.ModelParameters
		cfg    Config
		field  string
	}{
		{"zero paths", testParams(), Config{PathCount: 0, StepCount: 10}, "path_count"},
		{"negative steps", testParams(), Config{PathCount: 1, StepCount: -1}, "step_count"},
		{"bad spot", pricing.ModelParameters{Spot: 0, Strike: 100, Volatility: 0.2, Horizon: 1}, Config{PathCount: 1, StepCount: 1}, "spot"},
		{"bad horizon", pricing.ModelParameters{Spot: 100, Strike: 100, Volatility: 0.2, Horizon: -1}, Config{PathCount: 1, StepCount: 1}, "horizon"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Simulate(tc.params, tc.cfg)
			require.Error(t, err)

			var invalid *pricing.InvalidParameterError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tc.field, invalid.Field)
		})
	}
}

func TestEnsembleSummarize(t *testing.T) {
	paths, err := Simulate(testParams(), Config{PathCount: 200, StepCount: 50, Seed: seedOf(99)})
	require.NoError(t, err)

	summary, err := paths.Summarize()
	require.NoError(t, err)

	assert.Greater(t, summary.Min, 0.0)
	assert.LessOrEqual(t, summary.Min, summary.P05)
	assert.LessOrEqual(t, summary.P05, summary.Median)
	assert.LessOrEqual(t, summary.Median, summary.P95)
	assert.LessOrEqual(t, summary.P95, summary.Max)
	// Under the risk-neutral drift the average terminal price sits near the
	// forward; a loose band keeps the check meaningful without flaking.
	assert.InDelta(t, 100*math.Exp(0.05), summary.Mean, 10)
}

func TestWiener(t *testing.T) {
	t.Run("starts at zero with the right length", func(t *testing.T) {
		w, err := Wiener(1.0, 1000, seedOf(3))
		require.NoError(t, err)

		require.Len(t, w, 1001)
		assert.Zero(t, w[0])
	})

	t.Run("seeded realizations repeat", func(t *testing.T) {
		first, err := Wiener(1.0, 100, seedOf(5))
		require.NoError(t, err)
		second, err := Wiener(1.0, 100, seedOf(5))
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		_, err := Wiener(0, 100, nil)
		assert.Error(t, err)
		_, err = Wiener(1.0, 0, nil)
		assert.Error(t, err)
	})
}
