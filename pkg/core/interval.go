package core

import "math"

// Interval represents a closed 1D real range [Min, Max]. A range with
// Min > Max is semantically empty; by convention the empty interval is
// represented as {+Inf, -Inf} and the universe as {-Inf, +Inf}.
type Interval struct {
	Min, Max float64
}

// Empty is the canonical empty interval.
var Empty = Interval{Min: math.Inf(1), Max: math.Inf(-1)}

// Universe is the interval containing every real number.
var Universe = Interval{Min: math.Inf(-1), Max: math.Inf(1)}

// NewInterval constructs an interval from explicit bounds.
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Size returns Max-Min; negative for an empty interval.
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains reports whether x lies in the closed interval [Min, Max].
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether x lies in the open interval (Min, Max). Root
// acceptance in every primitive uses this, not Contains, so a hit exactly
// at Min is rejected.
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Clamp returns x clamped into [Min, Max].
func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// Expand returns the interval padded symmetrically by delta/2 on each side.
func (i Interval) Expand(delta float64) Interval {
	padding := delta / 2
	return Interval{Min: i.Min - padding, Max: i.Max + padding}
}

// Merge returns the union bounding interval of two intervals.
func (i Interval) Merge(other Interval) Interval {
	return Interval{
		Min: math.Min(i.Min, other.Min),
		Max: math.Max(i.Max, other.Max),
	}
}
