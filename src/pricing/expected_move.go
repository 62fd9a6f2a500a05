package pricing

import "math"

// OneSigmaMove estimates the one-standard-deviation price move over
// the given horizon. Returns 0 for degenerate inputs.
func OneSigmaMove(spot, vol float64, days int) float64 {
	v := NormalizeVol(vol)
	if spot <= 0 || v <= 0 || days <= 0 {
		return 0
	}

	return spot * v * math.Sqrt(float64(days)/365.0)
}

// CushionBelow expresses the distance from spot down to a strike in
// standard deviations of the expected move. Used for short puts.
// Returns nil when the expected move is degenerate.
func CushionBelow(spot, strike, vol float64, days int) *float64 {
	move := OneSigmaMove(spot, vol, days)
	if move <= 0 {
		return nil
	}

	cushion := (spot - strike) / move
	return &cushion
}

// CushionAbove expresses the distance from spot up to a strike in
// standard deviations of the expected move. Used for short calls.
// Returns nil when the expected move is degenerate.
func CushionAbove(spot, strike, vol float64, days int) *float64 {
	move := OneSigmaMove(spot, vol, days)
	if move <= 0 {
		return nil
	}

	cushion := (strike - spot) / move
	return &cushion
}
