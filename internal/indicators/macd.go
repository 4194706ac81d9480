package indicators

// MACDResult holds the three MACD series, aligned with the input closes.
type MACDResult struct {
	MACD      []float64
	Signal    []float64
	Histogram []float64
}

// MACD computes the Moving Average Convergence Divergence with the usual
// fast/slow/signal EMA windows (12/26/9 in the classic setup).
func MACD(closes []float64, fast, slow, signal int) MACDResult {
	fastEMA := EMA(closes, fast)
	slowEMA := EMA(closes, slow)

	macd := make([]float64, len(closes))
	for i := range closes {
		macd[i] = fastEMA[i] - slowEMA[i]
	}

	signalLine := EMA(macd, signal)

	histogram := make([]float64, len(closes))
	for i := range closes {
		histogram[i] = macd[i] - signalLine[i]
	}

	return MACDResult{MACD: macd, Signal: signalLine, Histogram: histogram}
}
