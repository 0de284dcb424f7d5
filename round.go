package dec16

import (
	mu "github.com/avdva/dec16/internal/mathutil"
)

// RoundingMode defines how a fractional part is dropped.
type RoundingMode int

const (
	// RoundDown drops the fractional part (truncation towards zero).
	RoundDown RoundingMode = iota
	// RoundUp rounds any non-zero fractional part away from zero.
	RoundUp
	// RoundHalfUp rounds to the nearest integer, and midpoints away from zero.
	RoundHalfUp
)

func (m RoundingMode) String() string {
	switch m {
	case RoundDown:
		return "down"
	case RoundUp:
		return "up"
	case RoundHalfUp:
		return "half-up"
	default:
		return "unknown"
	}
}

// Trunc returns the integer part of v.
func (v Value) Trunc() Value {
	return v.Integer(RoundDown)
}

// Round returns v rounded to the nearest integer, with midpoints rounded away from zero.
func (v Value) Round() Value {
	return v.Integer(RoundHalfUp)
}

// Ceil returns the closest integer, that is not less than |v| in magnitude.
func (v Value) Ceil() Value {
	return v.Integer(RoundUp)
}

// Integer returns v rounded to an integer according to mode.
// Zero, infinities, and values without a fractional part are returned as is.
func (v Value) Integer(mode RoundingMode) Value {
	if !v.IsFinite() || v.exp >= DigitsMax {
		return v
	}
	if v.exp <= 0 { // |v| < 1
		if mode == RoundUp || mode == RoundHalfUp && v.exp == 0 && v.coef >= 5*CoefMin {
			return Value{sign: v.sign, coef: CoefMin, exp: 1}
		}
		return Zero
	}
	e := DigitsMax - int(v.exp)
	p := mu.Pow10(e)
	frac := v.coef % p
	if frac == 0 {
		return v
	}
	i := v.coef - frac
	if mode == RoundUp || mode == RoundHalfUp && frac >= mu.HalfPow10(e) {
		// 9.9 -> 10 carries into the 17th digit, renormalize.
		return New(v.sign, i+p, v.exp)
	}
	return Value{sign: v.sign, coef: i, exp: v.exp}
}
