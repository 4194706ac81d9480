package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreeksAtTheMoney(t *testing.T) {
	greeks, err := Greeks(ModelParameters{Spot: 100, Strike: 100, Rate: 0.05, Volatility: 0.2, Horizon: 1})
	require.NoError(t, err)

	// Known reference values for the textbook scenario.
	assert.InDelta(t, 0.01876, greeks.Gamma, 1e-4)
	assert.InDelta(t, 0.3752, greeks.Vega, 1e-3)
	assert.Negative(t, greeks.Theta)
	assert.Positive(t, greeks.Rho)
}

func TestGreeksGammaPeaksNearStrike(t *testing.T) {
	// Gamma is largest around at-the-money and decays in both wings.
	params := ModelParameters{Strike: 100, Rate: 0.05, Volatility: 0.2, Horizon: 0.25}

	gamma := func(spot float64) float64 {
		params.Spot = spot
		g, err := Greeks(params)
		require.NoError(t, err)
		return g.Gamma
	}

	atm := gamma(100)
	assert.Greater(t, atm, gamma(70))
	assert.Greater(t, atm, gamma(130))
}

func TestGreeksZeroVolatilityIsFlat(t *testing.T) {
	greeks, err := Greeks(ModelParameters{Spot: 100, Strike: 90, Rate: 0.05, Volatility: 0, Horizon: 1})
	require.NoError(t, err)

	assert.Zero(t, greeks.Gamma)
	assert.Zero(t, greeks.Vega)
	assert.Zero(t, greeks.Theta)
	assert.Zero(t, greeks.Rho)
}

func TestGreeksRejectsInvalidParameters(t *testing.T) {
	_, err := Greeks(ModelParameters{Spot: -1, Strike: 100, Volatility: 0.2, Horizon: 1})
	assert.Error(t, err)
}
