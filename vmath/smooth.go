package vmath

import "math"

// DtCap bounds delta time fed into smoothing laws
// Frame hiccups produce huge dt; uncapped it overshoots the target
const DtCap = 0.1

// ClampDt sanitizes a frame delta: non-finite or negative collapses to 0,
// anything above DtCap is capped
func ClampDt(dt float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return 0
	}
	if dt > DtCap {
		return DtCap
	}
	return dt
}

// Approach moves current toward target by rate*dt, first-order low-pass
// rate: decay per second; converges without overshoot for rate*dt <= 1
func Approach(current, target, rate, dt float64) float64 {
	step := rate * dt
	if step > 1 {
		step = 1
	}
	return current + (target-current)*step
}

// V3Approach applies Approach per axis
func V3Approach(current, target Vec3, rate, dt float64) Vec3 {
	step := rate * dt
	if step > 1 {
		step = 1
	}
	return Vec3{
		X: current.X + (target.X-current.X)*step,
		Y: current.Y + (target.Y-current.Y)*step,
		Z: current.Z + (target.Z-current.Z)*step,
	}
}

// Clamp bounds x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Wrap keeps x in [lo, hi) by shifting whole spans
func Wrap(x, lo, hi float64) float64 {
	span := hi - lo
	if span <= 0 {
		return lo
	}
	for x >= hi {
		x -= span
	}
	for x < lo {
		x += span
	}
	return x
}
