package statistics

import "math"

// roundHalfUp rounds to the given number of decimal places with ties going
// away from zero, matching the precision rules of the persisted snapshots.
func roundHalfUp(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	if value >= 0 {
		return math.Floor(value*factor+0.5) / factor
	}
	return math.Ceil(value*factor-0.5) / factor
}

// ratePct turns numerator/denominator into a percentage rounded to 2
// decimals, or nil when the denominator is zero.
func ratePct(numerator, denominator int) *float64 {
	if denominator == 0 {
		return nil
	}
	v := roundHalfUp(float64(numerator)/float64(denominator)*100, 2)
	return &v
}

// countPtr maps the zero count to nil; absent and zero are distinct on the
// wire, and zero-valued counters are stored as absent.
func countPtr(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}

// floatPtr maps a zero value to nil under the same display convention.
func floatPtr(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}

// perGame averages a summed counter over matches played, rounded to 2
// decimals; nil when the sum is zero or there are no matches.
func perGame(total, matches int) *float64 {
	if total == 0 || matches == 0 {
		return nil
	}
	v := roundHalfUp(float64(total)/float64(matches), 2)
	return &v
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func floatOrZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
