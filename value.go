// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package dec16 implements an exact decimal number with 16 significant digits,
// an explicit sign, and signed infinities.
// Can be used to represent money, percentages, or user-entered measurements
// without the drift of binary floating-point numbers.
package dec16

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	mu "github.com/avdva/dec16/internal/mathutil"
)

const (
	// DigitsMax is the number of significant digits every finite non-zero value carries.
	DigitsMax = mu.MaxDigits
	// CoefMin is the smallest coefficient of a finite non-zero value.
	CoefMin = 1000000000000000
	// CoefMax is the largest coefficient of a finite non-zero value.
	CoefMax = 9999999999999999
	// MinExp is the smallest exponent a parsed value can have before it collapses to Zero.
	MinExp = math.MinInt8
	// MaxExp is the largest exponent a parsed value can have before it collapses to an infinity.
	MaxExp = math.MaxInt8

	shiftMax = DigitsMax - 1
)

var (
	// ErrEmptyInput is returned when parsing an empty string.
	ErrEmptyInput = errors.New("empty input")
	// ErrInvalidNumeral is returned for malformed numerals or unconsumed trailing text.
	ErrInvalidNumeral = errors.New("invalid numeral")
	// ErrNaN is returned when converting from a float NaN.
	ErrNaN = errors.New("cannot convert from NaN")
)

var (
	// Zero is the only zero value. It equals Value{}.
	Zero = Value{}
	// One is 1.
	One = Value{sign: SignPos, coef: CoefMin, exp: 1}
	// NegOne is -1.
	NegOne = Value{sign: SignNeg, coef: CoefMin, exp: 1}
	// PosInf is the positive infinity.
	PosInf = Value{sign: SignPosInf, coef: 1}
	// NegInf is the negative infinity.
	NegInf = Value{sign: SignNegInf, coef: 1}
)

// Sign is the sign of a Value.
// Signs are totally ordered, and the order matches the numeric order of values:
//
//	SignNegInf < SignNeg < SignZero < SignPos < SignPosInf
//
// Comparison of values with different signs relies on this order only.
type Sign int8

const (
	SignNegInf Sign = iota - 2
	SignNeg
	SignZero
	SignPos
	SignPosInf
)

// Cmp compares two signs.
// Returns -1 if s < other, 0 if s == other, 1 if s > other.
func (s Sign) Cmp(other Sign) int {
	switch {
	case s < other:
		return -1
	case s > other:
		return 1
	default:
		return 0
	}
}

// IsInf returns true for SignNegInf and SignPosInf.
func (s Sign) IsInf() bool {
	return s == SignNegInf || s == SignPosInf
}

// IsFinite returns true for SignNeg and SignPos.
// SignZero is not considered finite here, as zero carries no coefficient.
func (s Sign) IsFinite() bool {
	return s == SignNeg || s == SignPos
}

// infinity returns the infinity sign with the same direction as s.
func (s Sign) infinity() Sign {
	switch {
	case s < SignZero:
		return SignNegInf
	case s > SignZero:
		return SignPosInf
	default:
		return SignZero
	}
}

func (s Sign) String() string {
	switch s {
	case SignNegInf:
		return "-inf"
	case SignNeg:
		return "-"
	case SignZero:
		return "0"
	case SignPos:
		return "+"
	case SignPosInf:
		return "+inf"
	default:
		return "Sign(" + strconv.Itoa(int(s)) + ")"
	}
}

// Value is an immutable decimal number.
// A finite non-zero value equals
//
//	sign * coef * 10^(exp-16),
//
// where coef always has exactly 16 digits, so exp is the number of digits
// to the left of the decimal point.
// Zero has a zero coefficient, and infinities have a coefficient of 1.
//
// Values are plain data and can be copied and shared freely.
type Value struct {
	coef uint64
	exp  int32
	sign Sign
}

// Inf returns an infinity for SignNegInf and SignPosInf, and Zero for other signs.
func Inf(sign Sign) Value {
	switch sign {
	case SignPosInf:
		return PosInf
	case SignNegInf:
		return NegInf
	default:
		return Zero
	}
}

// FromUint64 returns a value for given uint64 number.
// If the number has more than 16 digits, it is rounded half-up.
func FromUint64(v uint64) Value {
	if v == 0 {
		return Zero
	}
	return New(SignPos, v, DigitsMax)
}

// FromInt64 returns a value for given int64 number.
// If the number has more than 16 digits, it is rounded half-up.
func FromInt64(v int64) Value {
	switch {
	case v == 0:
		return Zero
	case v < 0:
		// ^v+1 is -v without overflowing on math.MinInt64.
		return New(SignNeg, uint64(^v)+1, DigitsMax)
	default:
		return New(SignPos, uint64(v), DigitsMax)
	}
}

// FromInt returns a value for given int number.
func FromInt(v int) Value {
	return FromInt64(int64(v))
}

// log10of2 is 1/log2(10).
const log10of2 = 1 / 3.32192809488736234787

// FromFloat64 returns a value for given float64 number.
// The result is an approximation of f, rounded to 16 digits.
// Returns ErrNaN for not-a-numbers.
func FromFloat64(f float64) (Value, error) {
	switch {
	case math.IsNaN(f):
		return Zero, ErrNaN
	case math.IsInf(f, 1):
		return PosInf, nil
	case math.IsInf(f, -1):
		return NegInf, nil
	case f == 0:
		return Zero, nil
	}
	sign := SignPos
	if f < 0 {
		f, sign = -f, SignNeg
	}
	if math.Trunc(f) == f && f < 1<<64 {
		return New(sign, uint64(f), DigitsMax), nil
	}
	// f is in [2^(be-1), 2^be), so floor(log10(f)) is either e-1 or e.
	_, be := math.Frexp(f)
	e := int(math.Floor(float64(be-1)*log10of2)) + 1
	switch {
	case e < MinExp:
		return Zero, nil
	case e > MaxExp:
		return Inf(sign.infinity()), nil
	}
	// scale f so, that it has 16 or 17 digits before the decimal point.
	var scaled float64
	if shift := DigitsMax - e; shift >= 0 {
		if p := mu.Pow10f(shift); p != 0 {
			scaled = f * p
		} else {
			scaled = f * math.Pow10(shift)
		}
	} else {
		scaled = f / math.Pow10(-shift)
	}
	return New(sign, uint64(scaled+0.5), int32(e)), nil
}

// MustFromFloat64 is like FromFloat64, but panics on NaN.
func MustFromFloat64(f float64) Value {
	v, err := FromFloat64(f)
	if err != nil {
		panic(err)
	}
	return v
}

// Sign returns the sign of v.
func (v Value) Sign() Sign {
	return v.sign
}

// Coef returns the coefficient of v as is.
func (v Value) Coef() uint64 {
	return v.coef
}

// Exp returns the exponent of v, which is the number of digits before the decimal point.
func (v Value) Exp() int32 {
	return v.exp
}

// IsZero returns true if v is zero.
func (v Value) IsZero() bool {
	return v.sign == SignZero
}

// IsInf returns true if v is an infinity.
func (v Value) IsInf() bool {
	return v.sign.IsInf()
}

// IsFinite returns true for non-zero values, that are not infinities.
func (v Value) IsFinite() bool {
	return v.sign.IsFinite()
}

// NumIntDigits returns the number of digits before the decimal point.
// It's an alias for Exp.
func (v Value) NumIntDigits() int {
	return int(v.exp)
}

// NumDigits returns the number of significant digits of v.
// Trailing zeros of the coefficient are not counted.
// Returns 0 for zero and infinities.
func (v Value) NumDigits() int {
	if !v.IsFinite() {
		return 0
	}
	m, _ := mu.TrimZeros(v.coef, 0, DigitsMax)
	return mu.DecimalDigits(m)
}

// NumFractionalDigits returns the number of significant digits after the decimal point.
func (v Value) NumFractionalDigits() int {
	if n := v.NumDigits() - int(v.exp); n > 0 {
		return n
	}
	return 0
}

// Digits returns significant digits of the coefficient without trailing zeros.
// Returns "0" for zero and an empty string for infinities.
func (v Value) Digits() string {
	switch {
	case v.IsZero():
		return "0"
	case v.IsInf():
		return ""
	}
	m, _ := mu.TrimZeros(v.coef, 0, DigitsMax)
	return strconv.FormatUint(m, 10)
}

// Float64 returns a float64 value. The result may be inexact.
func (v Value) Float64() float64 {
	switch v.sign {
	case SignZero:
		return 0
	case SignPosInf:
		return math.Inf(1)
	case SignNegInf:
		return math.Inf(-1)
	}
	var f float64
	// dividing by an exact power of ten keeps integers and short fractions exact.
	if e := int(v.exp) - DigitsMax; e < 0 {
		f = float64(v.coef) / math.Pow10(-e)
	} else {
		f = float64(v.coef) * math.Pow10(e)
	}
	if v.sign == SignNeg {
		return -f
	}
	return f
}

// GoString returns debug string representation.
func (v Value) GoString() string {
	return fmt.Sprintf("{%v %v %v}", v.sign, v.coef, v.exp)
}

// Eq returns true if v and other have the same sign, coefficient, and exponent.
// As all values are kept normalized, this is the numeric equality.
func (v Value) Eq(other Value) bool {
	return v == other
}

// Cmp compares two values.
// Returns -1 if v < other, 0 if v == other, 1 if v > other.
// Infinities of the same sign are equal.
func (v Value) Cmp(other Value) int {
	if c := v.sign.Cmp(other.sign); c != 0 {
		return c
	}
	if v == other || !v.sign.IsFinite() {
		return 0
	}
	// a larger magnitude means a larger positive, but a smaller negative value.
	dir := 1
	if v.sign == SignNeg {
		dir = -1
	}
	switch {
	case v.exp > other.exp:
		return dir
	case v.exp < other.exp:
		return -dir
	case v.coef > other.coef:
		return dir
	case v.coef < other.coef:
		return -dir
	default:
		return 0
	}
}

// Less returns true if v < other.
func (v Value) Less(other Value) bool {
	return v.Cmp(other) < 0
}
