package models

import (
	"fmt"
	"math"
)

// MarketSnapshot is the immutable per-candidate view of the underlying
// used by the pricing and simulation layers. Volatility is annualized
// and expressed as a decimal (0.25 = 25%).
type MarketSnapshot struct {
	Spot              float64 `json:"spot"`
	DaysToExpiration  int     `json:"days_to_expiration"`
	ImpliedVolatility float64 `json:"implied_volatility"`
	RiskFreeRate      float64 `json:"risk_free_rate"`
	DividendYield     float64 `json:"dividend_yield"`
}

func (m MarketSnapshot) Validate() error {
	if !isFinite(m.Spot) || m.Spot <= 0 {
		return fmt.Errorf("MarketSnapshot: Validate: spot must be positive, got %v", m.Spot)
	}

	if m.DaysToExpiration < 0 {
		return fmt.Errorf("MarketSnapshot: Validate: days to expiration must be >= 0, got %d", m.DaysToExpiration)
	}

	if !isFinite(m.ImpliedVolatility) || m.ImpliedVolatility < 0 {
		return fmt.Errorf("MarketSnapshot: Validate: implied volatility must be >= 0, got %v", m.ImpliedVolatility)
	}

	if !isFinite(m.RiskFreeRate) {
		return fmt.Errorf("MarketSnapshot: Validate: risk free rate must be finite, got %v", m.RiskFreeRate)
	}

	if !isFinite(m.DividendYield) || m.DividendYield < 0 {
		return fmt.Errorf("MarketSnapshot: Validate: dividend yield must be >= 0, got %v", m.DividendYield)
	}

	return nil
}

// TimeToExpiry converts days to expiration to years on a 365-day basis.
func (m MarketSnapshot) TimeToExpiry() float64 {
	return float64(m.DaysToExpiration) / 365.0
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
