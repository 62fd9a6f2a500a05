package models

import "time"

type OptionSide string

const (
	CallSide OptionSide = "call"
	PutSide  OptionSide = "put"
)

// OptionQuote is a single option chain entry as delivered by the
// market data layer.
type OptionQuote struct {
	Symbol            string      `json:"symbol"`
	Underlying        StockSymbol `json:"underlying"`
	Side              OptionSide  `json:"side"`
	Strike            float64     `json:"strike"`
	Bid               float64     `json:"bid"`
	Ask               float64     `json:"ask"`
	Last              float64     `json:"last"`
	ImpliedVolatility float64     `json:"implied_volatility"`
	OpenInterest      int         `json:"open_interest"`
	Volume            int         `json:"volume"`
	ExpirationDate    time.Time   `json:"expiration_date"`
}

// Mid returns the bid-ask midpoint, falling back to the last trade
// when one side of the book is empty.
func (q OptionQuote) Mid() float64 {
	if q.Bid > 0 && q.Ask > 0 {
		return (q.Bid + q.Ask) / 2.0
	}

	return q.Last
}

// SpreadPercent returns the bid-ask spread as a fraction of the mid
// price, or nil when the quote is one-sided.
func (q OptionQuote) SpreadPercent() *float64 {
	if q.Bid <= 0 || q.Ask <= 0 || q.Ask < q.Bid {
		return nil
	}

	mid := (q.Bid + q.Ask) / 2.0
	if mid <= 0 {
		return nil
	}

	pct := (q.Ask - q.Bid) / mid
	return &pct
}

// StockTick is the underlying's quote plus the dividend and earnings
// estimates the market data layer provides.
type StockTick struct {
	Symbol           StockSymbol `json:"symbol"`
	Bid              float64     `json:"bid"`
	Ask              float64     `json:"ask"`
	Last             float64     `json:"last"`
	DividendPerShare float64     `json:"dividend_per_share"`
	DividendYield    float64     `json:"dividend_yield"`
	NextEarningsDate *time.Time  `json:"next_earnings_date,omitempty"`
}

// Spot returns the best estimate of the current underlying price.
func (t StockTick) Spot() float64 {
	if t.Bid > 0 && t.Ask > 0 {
		return (t.Bid + t.Ask) / 2.0
	}

	return t.Last
}
