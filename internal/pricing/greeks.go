package pricing

import "math"

// GreekSet holds the second-order sensitivities of a European call beyond
// delta. Vega and rho follow the per-1%-move convention used on most desks.
type GreekSet struct {
	Gamma float64 `json:"gamma"`
	Vega  float64 `json:"vega"`
	Theta float64 `json:"theta"`
	Rho   float64 `json:"rho"`
}

// Greeks computes gamma, vega, theta and rho for a European call under the
// same parameters PriceCall consumes. In the zero-volatility branch the
// payoff is deterministic, so all four sensitivities are flat.
func Greeks(p ModelParameters) (GreekSet, error) {
	if err := p.Validate(); err != nil {
		return GreekSet{}, err
	}

	if p.Volatility == 0 {
		return GreekSet{}, nil
	}

	sqrtT := math.Sqrt(p.Horizon)
	d1 := (math.Log(p.Spot/p.Strike) + (p.Rate+0.5*p.Volatility*p.Volatility)*p.Horizon) / (p.Volatility * sqrtT)
	d2 := d1 - p.Volatility*sqrtT
	pdfD1 := normPDF(d1)
	discount := math.Exp(-p.Rate * p.Horizon)

	return GreekSet{
		Gamma: pdfD1 / (p.Spot * p.Volatility * sqrtT),
		Vega:  p.Spot * pdfD1 * sqrtT / 100,
		Theta: (-(p.Spot*pdfD1*p.Volatility)/(2*sqrtT) - p.Rate*p.Strike*discount*normCDF(d2)) / 365,
		Rho:   p.Strike * p.Horizon * discount * normCDF(d2) / 100,
	}, nil
}
