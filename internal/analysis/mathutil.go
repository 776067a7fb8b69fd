package analysis

import "math"

func clip(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// saturate maps x linearly onto [0,1], saturating at limit.
func saturate(x, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	return clip(x/limit, 0, 1)
}

// logScale compresses x onto [0,1] with log1p so large raw counts cannot
// dominate: logScale(scale, scale) == 1.
func logScale(x, scale float64) float64 {
	if x <= 0 || scale <= 0 {
		return 0
	}
	return clip(math.Log1p(x)/math.Log1p(scale), 0, 1)
}

// decayWeight computes exp(-delta/tau).
func decayWeight(delta, tau float64) float64 {
	if tau <= 0 {
		return 0
	}
	if delta < 0 {
		delta = 0
	}
	return math.Exp(-delta / tau)
}

// round2 rounds to two decimal places for presentation.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
