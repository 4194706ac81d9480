package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/jwaldner/optionslab/internal/charts"
	"github.com/jwaldner/optionslab/internal/hedging"
	"github.com/jwaldner/optionslab/internal/indicators"
	"github.com/jwaldner/optionslab/internal/pricing"
	"github.com/jwaldner/optionslab/internal/simulation"
	"github.com/jwaldner/optionslab/internal/utils"
)

var rootCmd = &cobra.Command{
	Use:   "optionslab",
	Short: "Price European calls and simulate GBM price paths",
	Long: `OptionsLab prices European call options with the Black-Scholes closed form
and simulates geometric Brownian motion price paths for the same model
parameters. It can also replay a daily delta hedge along a simulated path
to show the discrete-hedging error against the option premium.`,
}

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Price a European call and print its Greeks",
	Run: func(cmd *cobra.Command, args []string) {
		params := paramsFromFlags(cmd)

		result, err := pricing.PriceCall(params)
		if err != nil {
			log.Fatalf("error pricing call: %v", err)
		}
		greeks, err := pricing.Greeks(params)
		if err != nil {
			log.Fatalf("error computing greeks: %v", err)
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Field", "Value"})
		table.SetAlignment(tablewriter.ALIGN_RIGHT)
		table.Append([]string{"Price", fmt.Sprintf("$%.4f", result.Price)})
		table.Append([]string{"Delta", fmt.Sprintf("%.4f", result.Delta)})
		table.Append([]string{"Gamma", fmt.Sprintf("%.4f", greeks.Gamma)})
		table.Append([]string{"Vega (per 1%)", fmt.Sprintf("%.4f", greeks.Vega)})
		table.Append([]string{"Theta (per day)", fmt.Sprintf("%.4f", greeks.Theta)})
		table.Append([]string{"Rho (per 1%)", fmt.Sprintf("%.4f", greeks.Rho)})
		table.Render()

		if result.Degenerate {
			fmt.Println("note: volatility is zero, price is the discounted forward payoff")
		}
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate a GBM ensemble and summarize terminal prices",
	Run: func(cmd *cobra.Command, args []string) {
		params := paramsFromFlags(cmd)
		cfg := simulation.Config{}

		cfg.PathCount, _ = cmd.Flags().GetInt("paths")
		cfg.StepCount, _ = cmd.Flags().GetInt("steps")
		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetInt64("seed")
			cfg.Seed = &seed
		}

		ensemble, err := simulation.Simulate(params, cfg)
		if err != nil {
			log.Fatalf("error simulating paths: %v", err)
		}
		summary, err := ensemble.Summarize()
		if err != nil {
			log.Fatalf("error summarizing ensemble: %v", err)
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Terminal Price", "Value"})
		table.SetAlignment(tablewriter.ALIGN_RIGHT)
		table.Append([]string{"Mean", fmt.Sprintf("$%.4f", summary.Mean)})
		table.Append([]string{"Median", fmt.Sprintf("$%.4f", summary.Median)})
		table.Append([]string{"Min", fmt.Sprintf("$%.4f", summary.Min)})
		table.Append([]string{"Max", fmt.Sprintf("$%.4f", summary.Max)})
		table.Append([]string{"5th pct", fmt.Sprintf("$%.4f", summary.P05)})
		table.Append([]string{"95th pct", fmt.Sprintf("$%.4f", summary.P95)})
		table.Render()

		if showSignals, _ := cmd.Flags().GetBool("signals"); showSignals {
			printSignals(ensemble[0])
		}

		chartPath, _ := cmd.Flags().GetString("chart")
		if chartPath != "" {
			title := fmt.Sprintf("GBM paths (S=%.0f, vol=%.0f%%, T=%.2fy)",
				params.Spot, params.Volatility*100, params.Horizon)
			png, err := charts.RenderPaths(ensemble, title)
			if err != nil {
				log.Fatalf("error rendering chart: %v", err)
			}
			if err := os.WriteFile(chartPath, png, 0644); err != nil {
				log.Fatalf("error writing chart: %v", err)
			}
			fmt.Printf("chart written to %s (%d bytes)\n", chartPath, len(png))
		}
	},
}

var hedgeCmd = &cobra.Command{
	Use:   "hedge",
	Short: "Replay a daily delta hedge along one simulated path",
	Run: func(cmd *cobra.Command, args []string) {
		params := paramsFromFlags(cmd)
		cfg := hedging.Config{}

		cfg.StepCount, _ = cmd.Flags().GetInt("steps")
		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetInt64("seed")
			cfg.Seed = &seed
		}

		result, err := hedging.Replay(params, cfg)
		if err != nil {
			log.Fatalf("error replaying hedge: %v", err)
		}
		premium, err := pricing.PriceCall(params)
		if err != nil {
			log.Fatalf("error pricing call: %v", err)
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Field", "Value"})
		table.SetAlignment(tablewriter.ALIGN_RIGHT)
		table.Append([]string{"Premium", fmt.Sprintf("$%.4f", premium.Price)})
		table.Append([]string{"Terminal price", fmt.Sprintf("$%.4f", result.Path[len(result.Path)-1])})
		table.Append([]string{"Final hedge error", fmt.Sprintf("$%.4f", result.FinalError)})
		table.Append([]string{"Error / premium", fmt.Sprintf("%.2f%%", 100*result.FinalError/premium.Price)})
		table.Render()
	},
}

// printSignals runs the trend and momentum indicators over one simulated
// trajectory, treating each step as a daily close.
func printSignals(path []float64) {
	signals := indicators.Crossovers(path, 10, 30)

	rsi := indicators.NewRSI(14)
	var lastRSI float64
	for _, close := range path {
		lastRSI = rsi.Update(close)
	}

	macd := indicators.MACD(path, 12, 26, 9)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Indicator", "Value"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.Append([]string{"SMA 10/30 crossovers", fmt.Sprintf("%d", len(signals))})
	table.Append([]string{"RSI(14) at expiry", fmt.Sprintf("%.2f", lastRSI)})
	if len(macd.Histogram) > 0 {
		table.Append([]string{"MACD histogram at expiry", fmt.Sprintf("%.4f", macd.Histogram[len(macd.Histogram)-1])})
	}
	table.Render()

	for _, s := range signals {
		side := "sell"
		if s.Buy {
			side = "buy"
		}
		fmt.Printf("  step %d: %s signal\n", s.Index, side)
	}
}

func paramsFromFlags(cmd *cobra.Command) pricing.ModelParameters {
	spot, _ := cmd.Flags().GetFloat64("spot")
	strike, _ := cmd.Flags().GetFloat64("strike")
	rate, _ := cmd.Flags().GetFloat64("rate")
	vol, _ := cmd.Flags().GetFloat64("vol")
	horizon, _ := cmd.Flags().GetFloat64("horizon")

	// An expiration date overrides the raw horizon; "next" picks the next
	// standard monthly expiration.
	if expiration, _ := cmd.Flags().GetString("expiration"); expiration != "" {
		if expiration == "next" {
			expiration = utils.NextOptionsExpiration(time.Now())
			fmt.Printf("using next monthly expiration %s\n", expiration)
		}
		h, err := utils.HorizonUntil(expiration, time.Now())
		if err != nil {
			log.Fatalf("error: %v", err)
		}
		horizon = h
	}

	return pricing.ModelParameters{
		Spot:       spot,
		Strike:     strike,
		Rate:       rate,
		Volatility: vol,
		Horizon:    horizon,
	}
}

func main() {
	rootCmd.PersistentFlags().Float64("spot", 100, "current underlying price")
	rootCmd.PersistentFlags().Float64("strike", 100, "option strike price")
	rootCmd.PersistentFlags().Float64("rate", 0.05, "annualized risk-free rate")
	rootCmd.PersistentFlags().Float64("vol", 0.20, "annualized volatility")
	rootCmd.PersistentFlags().Float64("horizon", 1.0, "time to expiry in years")
	rootCmd.PersistentFlags().String("expiration", "", "expiry date YYYY-MM-DD, or 'next' for the next monthly expiration (overrides --horizon)")

	simulateCmd.Flags().Int("paths", 50, "number of simulated paths")
	simulateCmd.Flags().Int("steps", 252, "time steps per path")
	simulateCmd.Flags().Int64("seed", 0, "RNG seed for reproducible runs")
	simulateCmd.Flags().String("chart", "", "write a PNG chart of the paths to this file")
	simulateCmd.Flags().Bool("signals", false, "print trend and momentum indicators for the first path")

	hedgeCmd.Flags().Int("steps", 252, "rebalancing steps over the horizon")
	hedgeCmd.Flags().Int64("seed", 0, "RNG seed for reproducible runs")

	rootCmd.AddCommand(priceCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(hedgeCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("error: %v", err)
	}
}
