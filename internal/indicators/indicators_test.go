package indicators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const equalityThreshold = 1e-2

func TestSMA(t *testing.T) {
	closes := []float64{1, 2, 3, 4, 5, 6}
	out := SMA(closes, 3)

	assert.Zero(t, out[0])
	assert.Zero(t, out[1])
	assert.InDelta(t, 2.0, out[2], 1e-12)
	assert.InDelta(t, 3.0, out[3], 1e-12)
	assert.InDelta(t, 5.0, out[5], 1e-12)
}

func TestSMAWindowLargerThanSeries(t *testing.T) {
	out := SMA([]float64{1, 2}, 5)
	assert.Equal(t, []float64{0, 0}, out)
}

func TestEMAConstantSeriesIsFlat(t *testing.T) {
	out := EMA([]float64{10, 10, 10, 10}, 3)
	for _, v := range out {
		assert.InDelta(t, 10.0, v, 1e-12)
	}
}

func TestCrossovers(t *testing.T) {
	// A series that trends down, then sharply up: exactly one buy signal
	// once the short average overtakes the long one.
	closes := []float64{10, 9, 8, 7, 6, 5, 6, 8, 10, 12, 14, 16}
	signals := Crossovers(closes, 2, 4)

	require.NotEmpty(t, signals)
	assert.True(t, signals[0].Buy)
	for i := 1; i < len(signals); i++ {
		assert.NotEqual(t, signals[i-1].Buy, signals[i].Buy, "signals must alternate")
	}
}

func TestRSI(t *testing.T) {
	t.Run("example rsi", func(t *testing.T) {
		// example taken from https://blog.quantinsti.com/rsi-indicator/
		rsi := NewRSI(14)
		closes := []float64{
			283.46, 280.69, 285.48, 294.08, 293.90, 299.92, 301.15, 284.45,
			294.09, 302.77, 301.97, 306.85, 305.02, 301.06, 291.97,
		}

		var val float64
		for i, c := range closes {
			val = rsi.Update(c)
			if i < len(closes)-1 {
				assert.Equal(t, 0.0, val)
			}
		}
		assert.Less(t, math.Abs(val-55.37), equalityThreshold)

		val = rsi.Update(284.18)
		assert.Less(t, math.Abs(val-50.07), equalityThreshold)

		val = rsi.Update(286.48)
		assert.Less(t, math.Abs(val-51.55), equalityThreshold)
	})

	t.Run("too few closes", func(t *testing.T) {
		rsi := NewRSI(14)
		assert.Equal(t, 0.0, rsi.Update(100.0))
	})

	t.Run("all losers pins to zero", func(t *testing.T) {
		rsi := NewRSI(2)
		var val float64
		for _, c := range []float64{10, 9, 5} {
			val = rsi.Update(c)
		}
		assert.Equal(t, 0.0, val)
	})

	t.Run("all winners pins to hundred", func(t *testing.T) {
		rsi := NewRSI(2)
		var val float64
		for _, c := range []float64{10, 11, 15} {
			val = rsi.Update(c)
		}
		assert.Equal(t, 100.0, val)
	})
}

func TestMACDConstantSeriesIsZero(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 42
	}

	result := MACD(closes, 12, 26, 9)
	for i := range closes {
		assert.InDelta(t, 0.0, result.MACD[i], 1e-12)
		assert.InDelta(t, 0.0, result.Histogram[i], 1e-12)
	}
}

func TestMACDRisingSeriesIsPositive(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}

	result := MACD(closes, 12, 26, 9)
	assert.Positive(t, result.MACD[len(closes)-1])
}
