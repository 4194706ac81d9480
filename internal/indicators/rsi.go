package indicators

import "math"

// RSI computes the Relative Strength Index incrementally with Wilder
// smoothing. Feed closes one at a time; Update returns 0 until a full
// period of history exists.
type RSI struct {
	period      int
	closes      []float64
	prevAvgGain *float64
	prevAvgLoss *float64
}

func NewRSI(period int) *RSI {
	return &RSI{period: period}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// relativeStrength derives the gain/loss ratio, smoothing against the
// previous averages once they exist (Wilder's method).
func (r *RSI) relativeStrength() float64 {
	if r.prevAvgGain != nil {
		cur := r.closes[len(r.closes)-1]
		prev := r.closes[len(r.closes)-2]
		delta := cur - prev

		var gain, loss float64
		if delta > 0 {
			gain = delta
		} else {
			loss = math.Abs(delta)
		}

		avgGain := ((*r.prevAvgGain)*(float64(r.period)-1) + gain) / float64(r.period)
		avgLoss := ((*r.prevAvgLoss)*(float64(r.period)-1) + loss) / float64(r.period)
		r.prevAvgGain = &avgGain
		r.prevAvgLoss = &avgLoss

		if avgLoss == 0 {
			return 100
		}
		return avgGain / avgLoss
	}

	gains := make([]float64, len(r.closes))
	losses := make([]float64, len(r.closes))
	prev := r.closes[0]
	for i, c := range r.closes {
		delta := c - prev
		if delta > 0 {
			gains[i] = delta
		} else {
			losses[i] = math.Abs(delta)
		}
		prev = c
	}

	avgGain := mean(gains[1:])
	avgLoss := mean(losses[1:])
	r.prevAvgGain = &avgGain
	r.prevAvgLoss = &avgLoss

	if avgLoss == 0 {
		return 100
	}
	return avgGain / avgLoss
}

// Update consumes the next close and returns the current RSI value, or 0
// while the warm-up window is still filling.
func (r *RSI) Update(close float64) float64 {
	if len(r.closes) < r.period {
		r.closes = append(r.closes, close)
		return 0
	}

	r.closes = append(r.closes, close)
	rs := r.relativeStrength()
	r.closes = r.closes[1:]

	if rs == 0 {
		return 0
	}
	return 100 - (100 / (1 + rs))
}
