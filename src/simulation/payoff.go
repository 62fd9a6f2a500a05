package simulation

import (
	"fmt"
	"math"

	"option-scanner/src/models"
	"option-scanner/src/pricing"
)

// EvaluatePayoff maps a terminal price batch to a per-path P&L batch
// (per share) and the strategy's capital-per-share. The switch over
// strategy payloads is exhaustive; an unknown payload is a programmer
// error and fails fast.
//
// Defined-risk strategies (spreads and condors) are bounded within
// [-maxLoss, maxProfit] by construction: the payoff composes
// max(0, .) spread losses that can never exceed the wing widths.
func EvaluatePayoff(params models.StrategyParameters, snap models.MarketSnapshot, terminal []float64) ([]float64, float64, error) {
	switch p := params.(type) {
	case models.CashSecuredPutParams:
		return cashSecuredPutPayoff(p, snap, terminal)
	case models.CoveredCallParams:
		return coveredCallPayoff(p, snap, terminal)
	case models.CollarParams:
		return collarPayoff(p, snap, terminal)
	case models.IronCondorParams:
		return ironCondorPayoff(p, terminal)
	case models.BullPutSpreadParams:
		return bullPutSpreadPayoff(p, terminal)
	case models.BearCallSpreadParams:
		return bearCallSpreadPayoff(p, terminal)
	case models.PoorMansCoveredCallParams:
		return poorMansCoveredCallPayoff(p, snap, terminal)
	case models.SyntheticCollarParams:
		return syntheticCollarPayoff(p, snap, terminal)
	default:
		return nil, 0, fmt.Errorf("EvaluatePayoff: unknown strategy parameters type %T", params)
	}
}

func cashSecuredPutPayoff(p models.CashSecuredPutParams, snap models.MarketSnapshot, terminal []float64) ([]float64, float64, error) {
	// Collateral earns the risk-free rate while the put is open.
	carry := p.Strike * snap.RiskFreeRate * snap.TimeToExpiry()

	pnl := make([]float64, len(terminal))
	for i, s := range terminal {
		pnl[i] = p.Premium - math.Max(0, p.Strike-s) + carry
	}

	return pnl, p.Strike, nil
}

func coveredCallPayoff(p models.CoveredCallParams, snap models.MarketSnapshot, terminal []float64) ([]float64, float64, error) {
	pnl := make([]float64, len(terminal))
	for i, s := range terminal {
		pnl[i] = (s - snap.Spot) + p.Premium - math.Max(0, s-p.Strike) + p.Dividend
	}

	return pnl, snap.Spot, nil
}

func collarPayoff(p models.CollarParams, snap models.MarketSnapshot, terminal []float64) ([]float64, float64, error) {
	pnl := make([]float64, len(terminal))
	for i, s := range terminal {
		pnl[i] = (s - snap.Spot) +
			p.CallPremium - math.Max(0, s-p.CallStrike) -
			p.PutCost + math.Max(0, p.PutStrike-s) +
			p.Dividend
	}

	return pnl, snap.Spot, nil
}

func ironCondorPayoff(p models.IronCondorParams, terminal []float64) ([]float64, float64, error) {
	maxWidth := math.Max(p.PutWidth(), p.CallWidth())
	capital := maxWidth - p.NetCredit

	pnl := make([]float64, len(terminal))
	for i, s := range terminal {
		putLoss := math.Max(0, p.PutShortStrike-s) - math.Max(0, p.PutLongStrike-s)
		callLoss := math.Max(0, s-p.CallShortStrike) - math.Max(0, s-p.CallLongStrike)
		pnl[i] = p.NetCredit - putLoss - callLoss
	}

	return pnl, capital, nil
}

func bullPutSpreadPayoff(p models.BullPutSpreadParams, terminal []float64) ([]float64, float64, error) {
	capital := p.Width() - p.NetCredit

	pnl := make([]float64, len(terminal))
	for i, s := range terminal {
		pnl[i] = p.NetCredit - math.Max(0, p.ShortStrike-s) + math.Max(0, p.LongStrike-s)
	}

	return pnl, capital, nil
}

func bearCallSpreadPayoff(p models.BearCallSpreadParams, terminal []float64) ([]float64, float64, error) {
	capital := p.Width() - p.NetCredit

	pnl := make([]float64, len(terminal))
	for i, s := range terminal {
		pnl[i] = p.NetCredit - math.Max(0, s-p.ShortStrike) + math.Max(0, s-p.LongStrike)
	}

	return pnl, capital, nil
}

// longCallMark re-prices the long leg of a diagonal at the short
// leg's expiry, when the long leg still has time on the clock. With
// no time left the pricer falls back to intrinsic value.
func longCallMark(terminalPrice, strike float64, snap models.MarketSnapshot, longDays int) float64 {
	remainingDays := longDays - snap.DaysToExpiration

	return pricing.CallPrice(pricing.PricingInput{
		Spot:          terminalPrice,
		Strike:        strike,
		Rate:          snap.RiskFreeRate,
		DividendYield: snap.DividendYield,
		Vol:           snap.ImpliedVolatility,
		TimeToExpiry:  float64(remainingDays) / 365.0,
	})
}

func poorMansCoveredCallPayoff(p models.PoorMansCoveredCallParams, snap models.MarketSnapshot, terminal []float64) ([]float64, float64, error) {
	pnl := make([]float64, len(terminal))
	for i, s := range terminal {
		longChange := longCallMark(s, p.LongStrike, snap, p.LongDaysToExpiration) - p.LongPremium
		pnl[i] = p.ShortPremium - math.Max(0, s-p.ShortStrike) + longChange
	}

	return pnl, p.NetDebit(), nil
}

func syntheticCollarPayoff(p models.SyntheticCollarParams, snap models.MarketSnapshot, terminal []float64) ([]float64, float64, error) {
	pnl := make([]float64, len(terminal))
	for i, s := range terminal {
		longChange := longCallMark(s, p.LongStrike, snap, p.LongDaysToExpiration) - p.LongPremium
		pnl[i] = p.ShortCallPremium - math.Max(0, s-p.ShortCallStrike) -
			p.PutCost + math.Max(0, p.PutStrike-s) +
			longChange
	}

	return pnl, p.NetDebit(), nil
}
