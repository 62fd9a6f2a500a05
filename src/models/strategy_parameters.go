package models

import "fmt"

// StrategyParameters is the closed set of per-strategy payloads. Each
// variant carries the strikes and premiums (per share) for its payoff
// shape. The payoff evaluator switches exhaustively on the concrete
// type and fails fast on anything else.
type StrategyParameters interface {
	Kind() StrategyKind
	Validate() error
}

type CashSecuredPutParams struct {
	Strike  float64 `json:"strike"`
	Premium float64 `json:"premium"`
}

func (p CashSecuredPutParams) Kind() StrategyKind { return CashSecuredPut }

func (p CashSecuredPutParams) Validate() error {
	if !isFinite(p.Strike) || p.Strike <= 0 {
		return fmt.Errorf("CashSecuredPutParams: Validate: strike must be positive, got %v", p.Strike)
	}

	if !isFinite(p.Premium) || p.Premium <= 0 {
		return fmt.Errorf("CashSecuredPutParams: Validate: premium must be positive, got %v", p.Premium)
	}

	return nil
}

type CoveredCallParams struct {
	Strike   float64 `json:"strike"`
	Premium  float64 `json:"premium"`
	Dividend float64 `json:"dividend"`
}

func (p CoveredCallParams) Kind() StrategyKind { return CoveredCall }

func (p CoveredCallParams) Validate() error {
	if !isFinite(p.Strike) || p.Strike <= 0 {
		return fmt.Errorf("CoveredCallParams: Validate: strike must be positive, got %v", p.Strike)
	}

	if !isFinite(p.Premium) || p.Premium <= 0 {
		return fmt.Errorf("CoveredCallParams: Validate: premium must be positive, got %v", p.Premium)
	}

	if !isFinite(p.Dividend) || p.Dividend < 0 {
		return fmt.Errorf("CoveredCallParams: Validate: dividend must be >= 0, got %v", p.Dividend)
	}

	return nil
}

type CollarParams struct {
	CallStrike  float64 `json:"call_strike"`
	CallPremium float64 `json:"call_premium"`
	PutStrike   float64 `json:"put_strike"`
	PutCost     float64 `json:"put_cost"`
	Dividend    float64 `json:"dividend"`
}

func (p CollarParams) Kind() StrategyKind { return Collar }

func (p CollarParams) Validate() error {
	if !isFinite(p.CallStrike) || p.CallStrike <= 0 {
		return fmt.Errorf("CollarParams: Validate: call strike must be positive, got %v", p.CallStrike)
	}

	if !isFinite(p.PutStrike) || p.PutStrike <= 0 {
		return fmt.Errorf("CollarParams: Validate: put strike must be positive, got %v", p.PutStrike)
	}

	if p.PutStrike >= p.CallStrike {
		return fmt.Errorf("CollarParams: Validate: put strike %v must be below call strike %v", p.PutStrike, p.CallStrike)
	}

	if !isFinite(p.CallPremium) || p.CallPremium <= 0 {
		return fmt.Errorf("CollarParams: Validate: call premium must be positive, got %v", p.CallPremium)
	}

	if !isFinite(p.PutCost) || p.PutCost < 0 {
		return fmt.Errorf("CollarParams: Validate: put cost must be >= 0, got %v", p.PutCost)
	}

	if !isFinite(p.Dividend) || p.Dividend < 0 {
		return fmt.Errorf("CollarParams: Validate: dividend must be >= 0, got %v", p.Dividend)
	}

	return nil
}

type IronCondorParams struct {
	PutLongStrike   float64 `json:"put_long_strike"`
	PutShortStrike  float64 `json:"put_short_strike"`
	CallShortStrike float64 `json:"call_short_strike"`
	CallLongStrike  float64 `json:"call_long_strike"`
	NetCredit       float64 `json:"net_credit"`
}

func (p IronCondorParams) Kind() StrategyKind { return IronCondor }

// PutWidth is the width of the put wing, per share.
func (p IronCondorParams) PutWidth() float64 {
	return p.PutShortStrike - p.PutLongStrike
}

// CallWidth is the width of the call wing, per share.
func (p IronCondorParams) CallWidth() float64 {
	return p.CallLongStrike - p.CallShortStrike
}

func (p IronCondorParams) Validate() error {
	strikes := []float64{p.PutLongStrike, p.PutShortStrike, p.CallShortStrike, p.CallLongStrike}
	for _, strike := range strikes {
		if !isFinite(strike) || strike <= 0 {
			return fmt.Errorf("IronCondorParams: Validate: strikes must be positive, got %v", strikes)
		}
	}

	if !(p.PutLongStrike < p.PutShortStrike && p.PutShortStrike < p.CallShortStrike && p.CallShortStrike < p.CallLongStrike) {
		return fmt.Errorf("IronCondorParams: Validate: strikes must be strictly ascending, got %v", strikes)
	}

	if !isFinite(p.NetCredit) || p.NetCredit <= 0 {
		return fmt.Errorf("IronCondorParams: Validate: net credit must be positive, got %v", p.NetCredit)
	}

	maxWidth := p.PutWidth()
	if p.CallWidth() > maxWidth {
		maxWidth = p.CallWidth()
	}
	if p.NetCredit >= maxWidth {
		return fmt.Errorf("IronCondorParams: Validate: net credit %v must be below the widest wing %v", p.NetCredit, maxWidth)
	}

	return nil
}

type BullPutSpreadParams struct {
	ShortStrike float64 `json:"short_strike"`
	LongStrike  float64 `json:"long_strike"`
	NetCredit   float64 `json:"net_credit"`
}

func (p BullPutSpreadParams) Kind() StrategyKind { return BullPutSpread }

func (p BullPutSpreadParams) Width() float64 {
	return p.ShortStrike - p.LongStrike
}

func (p BullPutSpreadParams) Validate() error {
	if !isFinite(p.ShortStrike) || p.ShortStrike <= 0 || !isFinite(p.LongStrike) || p.LongStrike <= 0 {
		return fmt.Errorf("BullPutSpreadParams: Validate: strikes must be positive, got short=%v long=%v", p.ShortStrike, p.LongStrike)
	}

	if p.Width() <= 0 {
		return fmt.Errorf("BullPutSpreadParams: Validate: short strike %v must be above long strike %v", p.ShortStrike, p.LongStrike)
	}

	if !isFinite(p.NetCredit) || p.NetCredit <= 0 {
		return fmt.Errorf("BullPutSpreadParams: Validate: net credit must be positive, got %v", p.NetCredit)
	}

	if p.NetCredit >= p.Width() {
		return fmt.Errorf("BullPutSpreadParams: Validate: net credit %v must be below spread width %v", p.NetCredit, p.Width())
	}

	return nil
}

type BearCallSpreadParams struct {
	ShortStrike float64 `json:"short_strike"`
	LongStrike  float64 `json:"long_strike"`
	NetCredit   float64 `json:"net_credit"`
}

func (p BearCallSpreadParams) Kind() StrategyKind { return BearCallSpread }

func (p BearCallSpreadParams) Width() float64 {
	return p.LongStrike - p.ShortStrike
}

func (p BearCallSpreadParams) Validate() error {
	if !isFinite(p.ShortStrike) || p.ShortStrike <= 0 || !isFinite(p.LongStrike) || p.LongStrike <= 0 {
		return fmt.Errorf("BearCallSpreadParams: Validate: strikes must be positive, got short=%v long=%v", p.ShortStrike, p.LongStrike)
	}

	if p.Width() <= 0 {
		return fmt.Errorf("BearCallSpreadParams: Validate: long strike %v must be above short strike %v", p.LongStrike, p.ShortStrike)
	}

	if !isFinite(p.NetCredit) || p.NetCredit <= 0 {
		return fmt.Errorf("BearCallSpreadParams: Validate: net credit must be positive, got %v", p.NetCredit)
	}

	if p.NetCredit >= p.Width() {
		return fmt.Errorf("BearCallSpreadParams: Validate: net credit %v must be below spread width %v", p.NetCredit, p.Width())
	}

	return nil
}

// PoorMansCoveredCallParams is a diagonal: a long call with a later
// expiration stands in for stock, and a nearer call is sold against
// it. Premiums are per share. LongDaysToExpiration must exceed the
// snapshot's days to expiration so the long leg still has time value
// at the short leg's expiry.
type PoorMansCoveredCallParams struct {
	LongStrike           float64 `json:"long_strike"`
	LongPremium          float64 `json:"long_premium"`
	LongDaysToExpiration int     `json:"long_days_to_expiration"`
	ShortStrike          float64 `json:"short_strike"`
	ShortPremium         float64 `json:"short_premium"`
}

func (p PoorMansCoveredCallParams) Kind() StrategyKind { return PoorMansCovered }

// NetDebit is the capital outlay per share to open the position.
func (p PoorMansCoveredCallParams) NetDebit() float64 {
	return p.LongPremium - p.ShortPremium
}

func (p PoorMansCoveredCallParams) Validate() error {
	if !isFinite(p.LongStrike) || p.LongStrike <= 0 || !isFinite(p.ShortStrike) || p.ShortStrike <= 0 {
		return fmt.Errorf("PoorMansCoveredCallParams: Validate: strikes must be positive, got long=%v short=%v", p.LongStrike, p.ShortStrike)
	}

	if p.LongStrike >= p.ShortStrike {
		return fmt.Errorf("PoorMansCoveredCallParams: Validate: long strike %v must be below short strike %v", p.LongStrike, p.ShortStrike)
	}

	if !isFinite(p.LongPremium) || p.LongPremium <= 0 || !isFinite(p.ShortPremium) || p.ShortPremium <= 0 {
		return fmt.Errorf("PoorMansCoveredCallParams: Validate: premiums must be positive, got long=%v short=%v", p.LongPremium, p.ShortPremium)
	}

	if p.LongDaysToExpiration <= 0 {
		return fmt.Errorf("PoorMansCoveredCallParams: Validate: long days to expiration must be positive, got %d", p.LongDaysToExpiration)
	}

	if p.NetDebit() <= 0 {
		return fmt.Errorf("PoorMansCoveredCallParams: Validate: net debit must be positive, got %v", p.NetDebit())
	}

	return nil
}

// SyntheticCollarParams is a collar with the stock leg replaced by a
// long call with a later expiration: long call + short call + long put.
type SyntheticCollarParams struct {
	LongStrike           float64 `json:"long_strike"`
	LongPremium          float64 `json:"long_premium"`
	LongDaysToExpiration int     `json:"long_days_to_expiration"`
	ShortCallStrike      float64 `json:"short_call_strike"`
	ShortCallPremium     float64 `json:"short_call_premium"`
	PutStrike            float64 `json:"put_strike"`
	PutCost              float64 `json:"put_cost"`
}

func (p SyntheticCollarParams) Kind() StrategyKind { return SyntheticCollar }

// NetDebit is the capital outlay per share to open the position.
func (p SyntheticCollarParams) NetDebit() float64 {
	return p.LongPremium - p.ShortCallPremium + p.PutCost
}

func (p SyntheticCollarParams) Validate() error {
	if !isFinite(p.LongStrike) || p.LongStrike <= 0 || !isFinite(p.ShortCallStrike) || p.ShortCallStrike <= 0 || !isFinite(p.PutStrike) || p.PutStrike <= 0 {
		return fmt.Errorf("SyntheticCollarParams: Validate: strikes must be positive, got long=%v shortCall=%v put=%v", p.LongStrike, p.ShortCallStrike, p.PutStrike)
	}

	if p.LongStrike >= p.ShortCallStrike {
		return fmt.Errorf("SyntheticCollarParams: Validate: long strike %v must be below short call strike %v", p.LongStrike, p.ShortCallStrike)
	}

	if p.PutStrike >= p.ShortCallStrike {
		return fmt.Errorf("SyntheticCollarParams: Validate: put strike %v must be below short call strike %v", p.PutStrike, p.ShortCallStrike)
	}

	if !isFinite(p.LongPremium) || p.LongPremium <= 0 || !isFinite(p.ShortCallPremium) || p.ShortCallPremium <= 0 {
		return fmt.Errorf("SyntheticCollarParams: Validate: premiums must be positive, got long=%v shortCall=%v", p.LongPremium, p.ShortCallPremium)
	}

	if !isFinite(p.PutCost) || p.PutCost < 0 {
		return fmt.Errorf("SyntheticCollarParams: Validate: put cost must be >= 0, got %v", p.PutCost)
	}

	if p.LongDaysToExpiration <= 0 {
		return fmt.Errorf("SyntheticCollarParams: Validate: long days to expiration must be positive, got %d", p.LongDaysToExpiration)
	}

	if p.NetDebit() <= 0 {
		return fmt.Errorf("SyntheticCollarParams: Validate: net debit must be positive, got %v", p.NetDebit())
	}

	return nil
}
