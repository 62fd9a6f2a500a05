package run

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"option-scanner/src/data"
	"option-scanner/src/models"
	"option-scanner/src/scanner"
)

type RunArgs struct {
	Symbols      []models.StockSymbol
	DataDir      string
	FastMode     bool
	ConfigPath   string
	OutputCSV    string
	RiskFreeRate float64
	Seed         int64
}

func Run(args RunArgs) error {
	if len(args.Symbols) == 0 {
		return fmt.Errorf("Run: at least one ticker is required")
	}

	cfg := models.DefaultScanConfig(args.FastMode)
	if args.ConfigPath != "" {
		loaded, err := models.LoadScanConfig(args.ConfigPath)
		if err != nil {
			return fmt.Errorf("Run: %v", err)
		}
		cfg = loaded
	}

	fetcher := data.NewCSVFetcher(args.DataDir)

	s, err := scanner.NewScanner(fetcher, cfg, scanner.Options{
		RiskFreeRate: args.RiskFreeRate,
		Seed:         args.Seed,
	})
	if err != nil {
		return fmt.Errorf("Run: %v", err)
	}

	results, err := s.ScanTickers(context.Background(), args.Symbols)
	if err != nil {
		return fmt.Errorf("Run: %v", err)
	}

	log.Infof("scan complete: %d candidates", len(results))

	scanner.RenderTable(os.Stdout, results)

	if args.OutputCSV != "" {
		if err := scanner.ExportCSV(results, args.OutputCSV); err != nil {
			return fmt.Errorf("Run: %v", err)
		}
	}

	return nil
}
