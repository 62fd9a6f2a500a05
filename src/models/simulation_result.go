package models

// SimulationResult is the flat Monte-Carlo output contract used
// everywhere downstream. Scalars are nil when they could not be
// computed; they are never reported as zero or NaN.
//
// Per-contract figures are the per-share figures scaled by the
// contract multiplier. Invariants: TerminalPrices and ProfitAndLoss
// have equal length, and P5 <= P50 <= P95 over the finite subset.
type SimulationResult struct {
	TerminalPrices []float64 `json:"terminal_prices"`
	ProfitAndLoss  []float64 `json:"profit_and_loss"`

	ExpectedPnL       *float64 `json:"expected_pnl"`
	PnLP5             *float64 `json:"pnl_p5"`
	PnLP50            *float64 `json:"pnl_p50"`
	PnLP95            *float64 `json:"pnl_p95"`
	MinPnL            *float64 `json:"min_pnl"`
	AnnualizedROI     *float64 `json:"annualized_roi"`
	AnnualizedROIAtP5 *float64 `json:"annualized_roi_at_p5"`
	RiskAdjustedRatio *float64 `json:"risk_adjusted_ratio"`

	// CapitalPerShare is strategy-specific and is the single source
	// of truth for return-on-capital math.
	CapitalPerShare float64 `json:"capital_per_share"`
	PathCount       int     `json:"path_count"`
}

// CapitalPerContract returns the capital requirement scaled by the
// contract multiplier.
func (r SimulationResult) CapitalPerContract(multiplier float64) float64 {
	return r.CapitalPerShare * multiplier
}
