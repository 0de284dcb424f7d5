package dec16

import (
	mu "github.com/avdva/dec16/internal/mathutil"
)

// New returns a normalized value for given sign, coefficient, and exponent,
// where the value is coef*10^(exp-16).
// The coefficient may have any number of digits: too long coefficients are rounded half-up
// to 16 digits, shorter ones are widened.
// Returns Inf(sign) for zero coefficients and non-finite signs.
// New returns canonical values as is.
func New(sign Sign, coef uint64, exp int32) Value {
	if !sign.IsFinite() || coef == 0 {
		return Inf(sign)
	}
	var rounded bool
	for coef > CoefMax {
		// (coef+5)/10 without overflowing near math.MaxUint64.
		coef = coef/10 + (coef%10+5)/10
		exp++
		rounded = true
	}
	if !rounded {
		p := mu.MaxShift(coef)
		coef *= mu.Pow10(p)
		exp -= int32(p)
	}
	return Value{sign: sign, coef: coef, exp: exp}
}
