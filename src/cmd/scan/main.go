package main

import (
	"log"
	"strings"

	"github.com/spf13/cobra"

	"option-scanner/src/cmd/scan/run"
	"option-scanner/src/models"
	"option-scanner/src/utils"
)

var rootCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scans option chains and ranks option-selling strategies by risk-adjusted score",
	Run: func(cmd *cobra.Command, args []string) {
		tickersStr, err := cmd.Flags().GetString("tickers")
		if err != nil {
			log.Fatalf("error getting tickers flag: %v", err)
		}

		dataDir, err := cmd.Flags().GetString("data-dir")
		if err != nil {
			log.Fatalf("error getting data-dir flag: %v", err)
		}

		fastMode, err := cmd.Flags().GetBool("fast")
		if err != nil {
			log.Fatalf("error getting fast flag: %v", err)
		}

		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			log.Fatalf("error getting config flag: %v", err)
		}

		outputCSV, err := cmd.Flags().GetString("output-csv")
		if err != nil {
			log.Fatalf("error getting output-csv flag: %v", err)
		}

		riskFreeRate, err := cmd.Flags().GetFloat64("risk-free-rate")
		if err != nil {
			log.Fatalf("error getting risk-free-rate flag: %v", err)
		}

		seed, err := cmd.Flags().GetInt64("seed")
		if err != nil {
			log.Fatalf("error getting seed flag: %v", err)
		}

		var symbols []models.StockSymbol
		for _, t := range strings.Split(tickersStr, ",") {
			if s := models.NewStockSymbol(t); s != "" {
				symbols = append(symbols, s)
			}
		}

		if err := run.Run(run.RunArgs{
			Symbols:      symbols,
			DataDir:      dataDir,
			FastMode:     fastMode,
			ConfigPath:   configPath,
			OutputCSV:    outputCSV,
			RiskFreeRate: riskFreeRate,
			Seed:         seed,
		}); err != nil {
			log.Fatalf("error running scan: %v", err)
		}
	},
}

func main() {
	if err := utils.InitEnvironmentVariables(); err != nil {
		log.Fatalf("error initializing environment variables: %v", err)
	}

	rootCmd.PersistentFlags().StringP("tickers", "t", "", "Comma-separated stock tickers to scan, e.g. 'AAPL,MSFT'. This flag is required.")
	rootCmd.PersistentFlags().StringP("data-dir", "d", "data", "Directory holding <symbol>_stock.csv and <symbol>_chain.csv files.")
	rootCmd.PersistentFlags().Bool("fast", false, "Fast mode: fewer simulation paths and tighter admission gates.")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Optional YAML scan config file; when set it takes precedence over the fast flag.")
	rootCmd.PersistentFlags().StringP("output-csv", "o", "", "Optional path to export the ranked results as CSV.")
	rootCmd.PersistentFlags().Float64("risk-free-rate", 0.05, "Annualized risk-free rate used for carry and discounting.")
	rootCmd.PersistentFlags().Int64("seed", 0, "Random seed for reproducible scans; 0 seeds from the clock.")

	rootCmd.MarkPersistentFlagRequired("tickers")

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("error executing command: %v", err)
	}
}
