package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwaldner/optionslab/internal/pricing"
	"github.com/jwaldner/optionslab/internal/simulation"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestRenderPaths(t *testing.T) {
	seed := int64(7)
	paths, err := simulation.Simulate(
		pricing.ModelParameters{Spot: 100, Strike: 100, Rate: 0.05, Volatility: 0.2, Horizon: 1},
		simulation.Config{PathCount: 5, StepCount: 30, Seed: &seed},
	)
	require.NoError(t, err)

	img, err := RenderPaths(paths, "5 Possible Futures")
	require.NoError(t, err)
	require.NotEmpty(t, img)
	assert.Equal(t, pngMagic, img[:4], "output should be a PNG")
}

func TestRenderPathsEmptyEnsemble(t *testing.T) {
	_, err := RenderPaths(simulation.Ensemble{}, "empty")
	assert.Error(t, err)
}

func TestRenderWiener(t *testing.T) {
	seed := int64(3)
	w, err := simulation.Wiener(1.0, 100, &seed)
	require.NoError(t, err)

	img, err := RenderWiener(w, "Wiener Process Realization")
	require.NoError(t, err)
	require.NotEmpty(t, img)
	assert.Equal(t, pngMagic, img[:4])
}
