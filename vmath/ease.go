package vmath

// EaseOutQuartic maps p in [0,1] to 1-(1-p)^4
// Fast start, gentle settle; used by ripple expansion
func EaseOutQuartic(p float64) float64 {
	q := 1 - p
	q *= q
	return 1 - q*q
}
