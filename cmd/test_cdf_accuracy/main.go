package main

import (
	"fmt"
	"math"

	"github.com/jwaldner/optionslab/internal/pricing"
)

// Checks the erf-based normal CDF against high-precision Black-Scholes
// reference values computed independently.
func main() {
	fmt.Println("🎯 Testing CDF Accuracy Against Reference Values")
	fmt.Println("===============================================")

	params := pricing.ModelParameters{
		Spot:       100.0,
		Strike:     100.0,
		Rate:       0.05,
		Volatility: 0.20,
		Horizon:    1.0,
	}

	// Reference values: d1 = 0.35, d2 = 0.15
	expectedPrice := 10.450584
	expectedDelta := 0.636831

	fmt.Printf("📊 Input Parameters:\n")
	fmt.Printf("   Stock Price (S): $%.2f\n", params.Spot)
	fmt.Printf("   Strike Price (K): $%.0f\n", params.Strike)
	fmt.Printf("   Time to Exp (T): %.6f years\n", params.Horizon)
	fmt.Printf("   Risk-free Rate (r): %.5f\n", params.Rate)
	fmt.Printf("   Volatility (σ): %.6f\n", params.Volatility)
	fmt.Println()

	result, err := pricing.PriceCall(params)
	if err != nil {
		fmt.Printf("❌ Pricing failed: %v\n", err)
		return
	}
	greeks, err := pricing.Greeks(params)
	if err != nil {
		fmt.Printf("❌ Greeks failed: %v\n", err)
		return
	}

	fmt.Printf("🔬 Calculation Results:\n")
	fmt.Printf("   Price: $%.6f (Expected: $%.6f)\n", result.Price, expectedPrice)
	fmt.Printf("   Delta: %.6f (Expected: %.6f)\n", result.Delta, expectedDelta)
	fmt.Printf("   Gamma: %.6f\n", greeks.Gamma)
	fmt.Printf("   Theta: %.6f\n", greeks.Theta)
	fmt.Printf("   Vega: %.6f\n", greeks.Vega)
	fmt.Printf("   Rho: %.6f\n", greeks.Rho)
	fmt.Println()

	priceDiff := math.Abs(result.Price - expectedPrice)
	deltaDiff := math.Abs(result.Delta - expectedDelta)

	fmt.Printf("📈 Accuracy Analysis:\n")
	fmt.Printf("   Price Difference: $%.8f\n", priceDiff)
	fmt.Printf("   Delta Difference: %.8f\n", deltaDiff)
	fmt.Println()

	tolerance := 0.000001
	if priceDiff <= tolerance && deltaDiff <= tolerance {
		fmt.Printf("✅ ACCURATE: Both values within ±%.6f tolerance\n", tolerance)
	} else {
		fmt.Printf("⚠️  OUT OF TOLERANCE:\n")
		if priceDiff > tolerance {
			fmt.Printf("   - Price difference %.8f exceeds tolerance %.6f\n", priceDiff, tolerance)
		}
		if deltaDiff > tolerance {
			fmt.Printf("   - Delta difference %.8f exceeds tolerance %.6f\n", deltaDiff, tolerance)
		}
	}
}
