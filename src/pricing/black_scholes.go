package pricing

import "math"

// MaxDecimalVol is the largest volatility accepted as a decimal.
// Anything above it is assumed to be quoted in percentage points.
const MaxDecimalVol = 3.0

// NormalizeVol converts percentage-point volatility quotes (e.g. 25.0)
// to decimals (0.25). Every entry point into the pricing and
// simulation math goes through this one function.
func NormalizeVol(vol float64) float64 {
	if vol > MaxDecimalVol {
		return vol / 100.0
	}

	return vol
}

// PricingInput is the full Black-Scholes input set. Vol is annualized
// and TimeToExpiry is in years.
type PricingInput struct {
	Spot          float64
	Strike        float64
	Rate          float64
	DividendYield float64
	Vol           float64
	TimeToExpiry  float64
}

// Greeks are nil when a degenerate input (zero volatility or time)
// leaves them undefined.
type Greeks struct {
	CallDelta *float64
	PutDelta  *float64
	Gamma     *float64
	CallTheta *float64
	PutTheta  *float64
	Vega      *float64
}

func (in PricingInput) degenerate() bool {
	return in.Spot <= 0 || in.Strike <= 0 || NormalizeVol(in.Vol) <= 0 || in.TimeToExpiry <= 0
}

// D1D2 returns the d1/d2 intermediate terms. ok is false for
// degenerate inputs.
func D1D2(in PricingInput) (d1 float64, d2 float64, ok bool) {
	if in.degenerate() {
		return 0, 0, false
	}

	vol := NormalizeVol(in.Vol)
	sqrtT := math.Sqrt(in.TimeToExpiry)
	d1 = (math.Log(in.Spot/in.Strike) + (in.Rate-in.DividendYield+0.5*vol*vol)*in.TimeToExpiry) / (vol * sqrtT)
	d2 = d1 - vol*sqrtT

	return d1, d2, true
}

// CallPrice returns the Black-Scholes call price, falling back to the
// intrinsic value for degenerate inputs.
func CallPrice(in PricingInput) float64 {
	d1, d2, ok := D1D2(in)
	if !ok {
		return math.Max(0, in.Spot-in.Strike)
	}

	return in.Spot*math.Exp(-in.DividendYield*in.TimeToExpiry)*NormCDF(d1) -
		in.Strike*math.Exp(-in.Rate*in.TimeToExpiry)*NormCDF(d2)
}

// PutPrice returns the Black-Scholes put price, falling back to the
// intrinsic value for degenerate inputs.
func PutPrice(in PricingInput) float64 {
	d1, d2, ok := D1D2(in)
	if !ok {
		return math.Max(0, in.Strike-in.Spot)
	}

	return in.Strike*math.Exp(-in.Rate*in.TimeToExpiry)*NormCDF(-d2) -
		in.Spot*math.Exp(-in.DividendYield*in.TimeToExpiry)*NormCDF(-d1)
}

// ComputeGreeks returns all supported Greeks. Theta is per year.
func ComputeGreeks(in PricingInput) Greeks {
	d1, d2, ok := D1D2(in)
	if !ok {
		return Greeks{}
	}

	vol := NormalizeVol(in.Vol)
	sqrtT := math.Sqrt(in.TimeToExpiry)
	discQ := math.Exp(-in.DividendYield * in.TimeToExpiry)
	discR := math.Exp(-in.Rate * in.TimeToExpiry)

	callDelta := discQ * NormCDF(d1)
	putDelta := discQ * (NormCDF(d1) - 1)
	gamma := discQ * NormPDF(d1) / (in.Spot * vol * sqrtT)
	vega := in.Spot * discQ * NormPDF(d1) * sqrtT

	common := -in.Spot * discQ * NormPDF(d1) * vol / (2 * sqrtT)
	callTheta := common - in.Rate*in.Strike*discR*NormCDF(d2) + in.DividendYield*in.Spot*discQ*NormCDF(d1)
	putTheta := common + in.Rate*in.Strike*discR*NormCDF(-d2) - in.DividendYield*in.Spot*discQ*NormCDF(-d1)

	return Greeks{
		CallDelta: &callDelta,
		PutDelta:  &putDelta,
		Gamma:     &gamma,
		CallTheta: &callTheta,
		PutTheta:  &putTheta,
		Vega:      &vega,
	}
}
