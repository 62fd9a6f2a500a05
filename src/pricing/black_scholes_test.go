package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormCDF(t *testing.T) {
	assert.InDelta(t, 0.5, NormCDF(0), 1e-12)
	assert.InDelta(t, 0.8413, NormCDF(1), 1e-4)
	assert.InDelta(t, 0.1587, NormCDF(-1), 1e-4)
	assert.InDelta(t, 1.0, NormCDF(10), 1e-12)
}

func TestNormalizeVol(t *testing.T) {
	assert.Equal(t, 0.25, NormalizeVol(0.25))
	assert.Equal(t, 3.0, NormalizeVol(3.0))
	assert.Equal(t, 0.25, NormalizeVol(25.0))
	assert.Equal(t, 1.5, NormalizeVol(150.0))
}

func TestBlackScholes(t *testing.T) {
	atm := PricingInput{
		Spot:         100,
		Strike:       100,
		Rate:         0.05,
		Vol:          0.20,
		TimeToExpiry: 1.0,
	}

	t.Run("known ATM value", func(t *testing.T) {
		assert.InDelta(t, 10.4506, CallPrice(atm), 1e-3)
		assert.InDelta(t, 5.5735, PutPrice(atm), 1e-3)
	})

	t.Run("put-call parity", func(t *testing.T) {
		inputs := []PricingInput{
			atm,
			{Spot: 100, Strike: 90, Rate: 0.05, DividendYield: 0.02, Vol: 0.35, TimeToExpiry: 0.25},
			{Spot: 50, Strike: 65, Rate: 0.01, DividendYield: 0.0, Vol: 0.80, TimeToExpiry: 2.0},
			{Spot: 250, Strike: 240, Rate: 0.03, DividendYield: 0.015, Vol: 0.12, TimeToExpiry: 0.08},
		}

		for _, in := range inputs {
			lhs := CallPrice(in) - PutPrice(in)
			rhs := in.Spot*math.Exp(-in.DividendYield*in.TimeToExpiry) - in.Strike*math.Exp(-in.Rate*in.TimeToExpiry)
			assert.InDelta(t, rhs, lhs, 1e-9)
		}
	})

	t.Run("percentage point vol matches decimal vol", func(t *testing.T) {
		pct := atm
		pct.Vol = 20.0
		assert.Equal(t, CallPrice(atm), CallPrice(pct))
	})

	t.Run("zero time falls back to intrinsic", func(t *testing.T) {
		in := PricingInput{Spot: 110, Strike: 100, Rate: 0.05, Vol: 0.2, TimeToExpiry: 0}
		assert.Equal(t, 10.0, CallPrice(in))
		assert.Equal(t, 0.0, PutPrice(in))

		in.Spot = 90
		assert.Equal(t, 0.0, CallPrice(in))
		assert.Equal(t, 10.0, PutPrice(in))
	})

	t.Run("zero vol falls back to intrinsic", func(t *testing.T) {
		in := PricingInput{Spot: 110, Strike: 100, Rate: 0.05, Vol: 0, TimeToExpiry: 1}
		assert.Equal(t, 10.0, CallPrice(in))
		assert.Equal(t, 0.0, PutPrice(in))
	})

	t.Run("negative spot falls back to intrinsic", func(t *testing.T) {
		in := PricingInput{Spot: -5, Strike: 100, Rate: 0.05, Vol: 0.2, TimeToExpiry: 1}
		assert.Equal(t, 0.0, CallPrice(in))
		assert.Equal(t, 105.0, PutPrice(in))
	})
}

func TestComputeGreeks(t *testing.T) {
	t.Run("degenerate inputs yield nil greeks", func(t *testing.T) {
		greeks := ComputeGreeks(PricingInput{Spot: 100, Strike: 100, Rate: 0.05, Vol: 0.2, TimeToExpiry: 0})
		assert.Nil(t, greeks.CallDelta)
		assert.Nil(t, greeks.PutDelta)
		assert.Nil(t, greeks.Gamma)
		assert.Nil(t, greeks.CallTheta)
		assert.Nil(t, greeks.PutTheta)
		assert.Nil(t, greeks.Vega)
	})

	t.Run("ATM greeks", func(t *testing.T) {
		greeks := ComputeGreeks(PricingInput{Spot: 100, Strike: 100, Rate: 0.05, Vol: 0.2, TimeToExpiry: 1})

		assert.NotNil(t, greeks.CallDelta)
		assert.InDelta(t, 0.6368, *greeks.CallDelta, 1e-3)
		assert.InDelta(t, -0.3632, *greeks.PutDelta, 1e-3)
		assert.InDelta(t, 0.0188, *greeks.Gamma, 1e-3)
		assert.InDelta(t, 37.524, *greeks.Vega, 1e-2)
		assert.True(t, *greeks.CallTheta < 0)
	})

	t.Run("call delta minus put delta is discounted one", func(t *testing.T) {
		in := PricingInput{Spot: 100, Strike: 95, Rate: 0.04, DividendYield: 0.01, Vol: 0.3, TimeToExpiry: 0.5}
		greeks := ComputeGreeks(in)
		assert.InDelta(t, math.Exp(-in.DividendYield*in.TimeToExpiry), *greeks.CallDelta-*greeks.PutDelta, 1e-9)
	})
}
