package data

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"option-scanner/src/models"
)

// CSVFetcher serves market data from per-symbol CSV files, one pair
// per symbol: <symbol>_stock.csv and <symbol>_chain.csv. It exists
// for offline scans and tests; live brokerage fetchers plug in behind
// the same MarketDataFetcher interface.
type CSVFetcher struct {
	Dir string
}

func NewCSVFetcher(dir string) *CSVFetcher {
	return &CSVFetcher{Dir: dir}
}

type stockTickCSV struct {
	Bid              float64 `csv:"bid"`
	Ask              float64 `csv:"ask"`
	Last             float64 `csv:"last"`
	DividendPerShare float64 `csv:"dividend_per_share"`
	DividendYield    float64 `csv:"dividend_yield"`
	NextEarningsDate string  `csv:"next_earnings_date"`
}

type optionQuoteCSV struct {
	Symbol            string  `csv:"symbol"`
	Side              string  `csv:"side"`
	Strike            float64 `csv:"strike"`
	Bid               float64 `csv:"bid"`
	Ask               float64 `csv:"ask"`
	Last              float64 `csv:"last"`
	ImpliedVolatility float64 `csv:"implied_volatility"`
	OpenInterest      int     `csv:"open_interest"`
	Volume            int     `csv:"volume"`
	ExpirationDate    string  `csv:"expiration_date"`
}

func (f *CSVFetcher) FetchStockTick(ctx context.Context, symbol models.StockSymbol) (*models.StockTick, error) {
	path := filepath.Join(f.Dir, fmt.Sprintf("%s_stock.csv", strings.ToLower(string(symbol))))

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("FetchStockTick: failed to open %s: %v", path, err)
	}

	defer file.Close()

	var rows []stockTickCSV
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("FetchStockTick: failed to unmarshal %s: %v", path, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("FetchStockTick: %s is empty", path)
	}

	row := rows[0]
	tick := &models.StockTick{
		Symbol:           symbol,
		Bid:              row.Bid,
		Ask:              row.Ask,
		Last:             row.Last,
		DividendPerShare: row.DividendPerShare,
		DividendYield:    row.DividendYield,
	}

	if row.NextEarningsDate != "" {
		earnings, err := time.Parse("2006-01-02", row.NextEarningsDate)
		if err != nil {
			return nil, fmt.Errorf("FetchStockTick: invalid next_earnings_date %q: %v", row.NextEarningsDate, err)
		}
		tick.NextEarningsDate = &earnings
	}

	return tick, nil
}

func (f *CSVFetcher) FetchOptionChain(ctx context.Context, symbol models.StockSymbol) ([]models.OptionQuote, error) {
	path := filepath.Join(f.Dir, fmt.Sprintf("%s_chain.csv", strings.ToLower(string(symbol))))

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("FetchOptionChain: failed to open %s: %v", path, err)
	}

	defer file.Close()

	var rows []optionQuoteCSV
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("FetchOptionChain: failed to unmarshal %s: %v", path, err)
	}

	quotes := make([]models.OptionQuote, 0, len(rows))
	for _, row := range rows {
		expiration, err := time.Parse("2006-01-02", row.ExpirationDate)
		if err != nil {
			return nil, fmt.Errorf("FetchOptionChain: invalid expiration_date %q: %v", row.ExpirationDate, err)
		}

		side := models.OptionSide(strings.ToLower(row.Side))
		if side != models.CallSide && side != models.PutSide {
			return nil, fmt.Errorf("FetchOptionChain: invalid side %q for %s", row.Side, row.Symbol)
		}

		quotes = append(quotes, models.OptionQuote{
			Symbol:            row.Symbol,
			Underlying:        symbol,
			Side:              side,
			Strike:            row.Strike,
			Bid:               row.Bid,
			Ask:               row.Ask,
			Last:              row.Last,
			ImpliedVolatility: row.ImpliedVolatility,
			OpenInterest:      row.OpenInterest,
			Volume:            row.Volume,
			ExpirationDate:    expiration,
		})
	}

	return quotes, nil
}
