package dec16

import (
	"strings"

	mu "github.com/avdva/dec16/internal/mathutil"
)

// expLimit bounds the magnitude of an exponent suffix.
// Anything above it is far outside [MinExp, MaxExp] anyway.
const expLimit = 100000000

// reader scans a numeral byte by byte.
// It knows nothing about normalization: coefficients it returns are
// placed in a 16-digit window, but the exponent is not range-checked.
type reader struct {
	s string
	i int
}

func (r *reader) cur() byte {
	if r.i >= len(r.s) {
		return 0
	}
	return r.s[r.i]
}

// len returns the number of unconsumed bytes.
func (r *reader) len() int {
	return len(r.s) - r.i
}

func (r *reader) match(c byte) bool {
	if r.i < len(r.s) && r.s[r.i] == c {
		r.i++
		return true
	}
	return false
}

func (r *reader) matchDigit() (uint64, bool) {
	if c := r.cur(); '0' <= c && c <= '9' {
		r.i++
		return uint64(c - '0'), true
	}
	return 0, false
}

func (r *reader) matchFold(pre string) bool {
	if r.len() < len(pre) || !strings.EqualFold(r.s[r.i:r.i+len(pre)], pre) {
		return false
	}
	r.i += len(pre)
	return true
}

// sign consumes an optional sign. Returns SignPos if there is none.
func (r *reader) sign() Sign {
	if r.match('-') {
		return SignNeg
	}
	r.match('+')
	return SignPos
}

// coef reads the digits of a numeral with an optional decimal point.
// The first significant digit is placed at 10^15, each next one a position lower.
// Digits past the 16th are dropped without rounding, but integer digits
// still count towards the exponent.
// exp is the number of significant integer digits, or minus the number of zeros
// between the decimal point and the first significant digit.
func (r *reader) coef() (coef uint64, exp int, err error) {
	var digits, significant bool
	p := shiftMax
	add := func(d uint64) {
		if p >= 0 {
			coef += d * mu.Pow10(p)
		}
		p--
	}
	for {
		d, ok := r.matchDigit()
		if !ok {
			break
		}
		digits = true
		if d == 0 && !significant { // leading zero
			continue
		}
		significant = true
		add(d)
	}
	exp = shiftMax - p
	if r.match('.') {
		for {
			d, ok := r.matchDigit()
			if !ok {
				break
			}
			digits = true
			if !significant {
				if d == 0 {
					exp--
					continue
				}
				significant = true
			}
			add(d)
		}
	}
	if !digits {
		return 0, 0, newPosError("numeral requires at least one digit", r.i)
	}
	return coef, exp, nil
}

// exponent reads an optional exponent suffix, like 'e-5' or 'E+12'.
// The magnitude saturates at expLimit.
func (r *reader) exponent() (int, error) {
	if !r.match('e') && !r.match('E') {
		return 0, nil
	}
	sign := r.sign()
	start, e := r.i, 0
	for {
		d, ok := r.matchDigit()
		if !ok {
			break
		}
		if e < expLimit {
			e = e*10 + int(d)
		}
	}
	if r.i == start {
		return 0, newPosError("exponent requires at least one digit", r.i)
	}
	if sign == SignNeg {
		e = -e
	}
	return e, nil
}
