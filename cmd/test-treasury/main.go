package main

import (
	"fmt"
	"log"

	"github.com/jwaldner/optionslab/internal/marketdata"
)

func main() {
	fmt.Println("🏛️ Testing Treasury API integration...")

	client := marketdata.NewRateClient("")

	// Test fetching current risk-free rate
	rate, err := client.RiskFreeRate()
	if err != nil {
		log.Printf("❌ Error fetching Treasury rate: %v", err)
	} else {
		fmt.Printf("✅ Current Treasury Bill Rate (Risk-Free): %.6f (%.3f%%)\n", rate, rate*100)
	}

	// Test last known rate functionality
	lastKnownRate := client.RiskFreeRateOrLastKnown(0.05)
	fmt.Printf("✅ Rate with last known: %.6f (%.3f%%)\n", lastKnownRate, lastKnownRate*100)

	fmt.Println("🎉 Treasury API integration successful!")
}
