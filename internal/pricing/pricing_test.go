package pricing

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceCallReferenceScenario(t *testing.T) {
	// Standard textbook scenario with well-known reference values.
	result, err := PriceCall(ModelParameters{
		Spot:       100,
		Strike:     100,
		Rate:       0.05,
		Volatility: 0.20,
		Horizon:    1.0,
	})
	require.NoError(t, err)

	assert.InDelta(t, 10.45, result.Price, 0.01)
	assert.InDelta(t, 0.6368, result.Delta, 0.01)
	assert.False(t, result.Degenerate)
}

func TestPriceCallBounds(t *testing.T) {
	// A call can never be worth more than the underlying, and delta stays
	// inside [0, 1], across a broad sweep of moneyness and volatility.
	spots := []float64{1, 50, 100, 250, 1000}
	vols := []float64{0.01, 0.1, 0.4, 1.0, 3.0}
	horizons := []float64{0.01, 0.25, 1, 5}

	for _, s := range spots {
		for _, v := range vols {
			for _, h := range horizons {
				result, err := PriceCall(ModelParameters{Spot: s, Strike: 100, Rate: 0.03, Volatility: v, Horizon: h})
				require.NoError(t, err)

				assert.GreaterOrEqual(t, result.Price, 0.0)
				assert.LessOrEqual(t, result.Price, s)
				assert.GreaterOrEqual(t, result.Delta, 0.0)
				assert.LessOrEqual(t, result.Delta, 1.0)
			}
		}
	}
}

func TestPriceCallVolatilityMonotonicity(t *testing.T) {
	params := ModelParameters{Spot: 100, Strike: 110, Rate: 0.02, Horizon: 0.5}

	prev := -1.0
	for _, vol := range []float64{0.05, 0.1, 0.2, 0.4, 0.8, 1.6} {
		params.Volatility = vol
		result, err := PriceCall(params)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, result.Price, prev, "price must not decrease as volatility rises (vol=%v)", vol)
		prev = result.Price
	}
}

func TestPriceCallSpotMonotonicity(t *testing.T) {
	params := ModelParameters{Strike: 100, Rate: 0.05, Volatility: 0.25, Horizon: 1}

	prevPrice, prevDelta := -1.0, -1.0
	for spot := 50.0; spot <= 150.0; spot += 5 {
		params.Spot = spot
		result, err := PriceCall(params)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, result.Price, prevPrice)
		assert.GreaterOrEqual(t, result.Delta, prevDelta)
		prevPrice, prevDelta = result.Price, result.Delta
	}
}

func TestPriceCallDegenerateVolatility(t *testing.T) {
	t.Run("zero volatility takes the forward branch", func(t *testing.T) {
		result, err := PriceCall(ModelParameters{Spot: 120, Strike: 100, Rate: 0.05, Volatility: 0, Horizon: 1})
		require.NoError(t, err)

		expected := 120 - 100*math.Exp(-0.05)
		assert.InDelta(t, expected, result.Price, 1e-12)
		assert.Equal(t, 1.0, result.Delta)
		assert.True(t, result.Degenerate)
	})

	t.Run("out-of-the-money forward is worthless", func(t *testing.T) {
		result, err := PriceCall(ModelParameters{Spot: 80, Strike: 100, Rate: 0.01, Volatility: 0, Horizon: 1})
		require.NoError(t, err)

		assert.Equal(t, 0.0, result.Price)
		assert.Equal(t, 0.0, result.Delta)
		assert.True(t, result.Degenerate)
	})

	t.Run("general formula converges to the forward branch", func(t *testing.T) {
		base := ModelParameters{Spot: 110, Strike: 100, Rate: 0.05, Horizon: 1}

		base.Volatility = 1e-8
		nearZero, err := PriceCall(base)
		require.NoError(t, err)

		base.Volatility = 0
		degenerate, err := PriceCall(base)
		require.NoError(t, err)

		assert.InDelta(t, degenerate.Price, nearZero.Price, 1e-6)
		assert.InDelta(t, degenerate.Delta, nearZero.Delta, 1e-6)
	})
}

func TestPriceCallRejectsInvalidParameters(t *testing.T) {
	cases := []struct {
		name   string
		params ModelParameters
		field  string
	}{
		{"zero spot", ModelParameters{Spot: 0, Strike: 100, Volatility: 0.2, Horizon: 1}, "spot"},
		{"negative spot", ModelParameters{Spot: -5, Strike: 100, Volatility: 0.2, Horizon: 1}, "spot"},
		{"zero strike", ModelParameters{Spot: 100, Strike: 0, Volatility: 0.2, Horizon: 1}, "strike"},
		{"negative volatility", ModelParameters{Spot: 100, Strike: 100, Volatility: -0.1, Horizon: 1}, "volatility"},
		{"zero horizon", ModelParameters{Spot: 100, Strike: 100, Volatility: 0.2, Horizon: 0}, "horizon"},
		{"nan rate", ModelParameters{Spot: 100, Strike: 100, Rate: math.NaN(), Volatility: 0.2, Horizon: 1}, "rate"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := PriceCall(tc.params)
			require.Error(t, err)

			var invalid *InvalidParameterError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tc.field, invalid.Field)
		})
	}
}

func TestNormCDFAccuracy(t *testing.T) {
	// Tabulated reference values for the standard normal CDF.
	cases := []struct {
		x        float64
		expected float64
	}{
		{0, 0.5},
		{1, 0.8413447460685429},
		{-1, 0.15865525393145705},
		{1.959963984540054, 0.975},
		{-1.959963984540054, 0.025},
		{3, 0.9986501019683699},
		{-6, 9.865876450376946e-10},
	}

	for _, tc := range cases {
		assert.InDelta(t, tc.expected, normCDF(tc.x), 1e-10, "N(%v)", tc.x)
	}
}
