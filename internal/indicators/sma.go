// Package indicators provides the moving-average and momentum calculations
// the strategy scripts consume. Each indicator takes a plain close-price
// series, so a simulated trajectory works as input just as well as a real
// price history.
package indicators

// SMA returns the simple moving average of closes over the given window.
// The first window-1 positions have no full window yet and are left at zero;
// callers index from window-1 onward.
func SMA(closes []float64, window int) []float64 {
	out := make([]float64, len(closes))
	if window < 1 || len(closes) < window {
		return out
	}

	var sum float64
	for i, c := range closes {
		sum += c
		if i >= window {
			sum -= closes[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		}
	}
	return out
}

// EMA returns the exponential moving average with the conventional
// 2/(window+1) smoothing factor, seeded by the first close.
func EMA(closes []float64, window int) []float64 {
	out := make([]float64, len(closes))
	if window < 1 || len(closes) == 0 {
		return out
	}

	alpha := 2.0 / (float64(window) + 1.0)
	out[0] = closes[0]
	for i := 1; i < len(closes); i++ {
		out[i] = alpha*closes[i] + (1-alpha)*out[i-1]
	}
	return out
}

// Signal marks a moving-average crossover event in a close series.
type Signal struct {
	Index int
	Buy   bool // true when the short average crosses above the long one
}

// Crossovers returns the crossover signals of a short/long SMA pair, the
// classic trend-following entry and exit points.
func Crossovers(closes []float64, shortWindow, longWindow int) []Signal {
	if shortWindow >= longWindow || len(closes) <= longWindow {
		return nil
	}

	short := SMA(closes, shortWindow)
	long := SMA(closes, longWindow)

	var signals []Signal
	prevAbove := short[longWindow-1] > long[longWindow-1]
	for i := longWindow; i < len(closes); i++ {
		above := short[i] > long[i]
		if above != prevAbove {
			signals = append(signals, Signal{Index: i, Buy: above})
			prevAbove = above
		}
	}
	return signals
}
