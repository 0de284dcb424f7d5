// Package mathutil holds power-of-ten tables and integer digit helpers.
package mathutil

import (
	"math/bits"
)

// MaxDigits is the width of a canonical coefficient in decimal digits.
const MaxDigits = 16

var (
	decimalFactorTable = [...]uint64{ // up to 1e19
		1, 10, 100, 1000, 10000,
		100000, 1000000, 10000000, 100000000, 1000000000, 10000000000,
		100000000000, 1000000000000, 10000000000000, 100000000000000,
		1000000000000000, 10000000000000000, 100000000000000000,
		1000000000000000000, 10000000000000000000,
	}

	floatFactorTable = [...]float64{
		1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8,
		1e9, 1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16,
	}

	// halfFactorTable[i] is the midpoint of a run of i dropped digits.
	halfFactorTable = [...]uint64{
		0, 5, 50, 500, 5000,
		50000, 500000, 5000000, 50000000, 500000000,
		5000000000, 50000000000, 500000000000, 5000000000000, 50000000000000,
		500000000000000,
	}

	digitsHelper = [...]int{
		0, 0, 0, 0, 1, 1, 1, 2, 2, 2,
		3, 3, 3, 3, 4, 4, 4, 5, 5, 5,
		6, 6, 6, 6, 7, 7, 7, 8, 8, 8,
		9, 9, 9, 9, 10, 10, 10, 11, 11, 11,
		12, 12, 12, 12, 13, 13, 13, 14, 14, 14,
		15, 15, 15, 15, 16, 16, 16, 17, 17, 17,
		18, 18, 18, 18, 19,
	}
)

// Pow10 returns 10^pow, or 0 if pow is out of [0, 19].
func Pow10(pow int) uint64 {
	if pow < 0 || pow >= len(decimalFactorTable) {
		return 0
	}
	return decimalFactorTable[pow]
}

// Pow10f returns 10^pow as a float64, or 0 if pow is out of [0, 16].
func Pow10f(pow int) float64 {
	if pow < 0 || pow >= len(floatFactorTable) {
		return 0
	}
	return floatFactorTable[pow]
}

// HalfPow10 returns 5*10^(pow-1), the half-up threshold for pow dropped digits.
// Returns 0 if pow is out of [0, 15].
func HalfPow10(pow int) uint64 {
	if pow < 0 || pow >= len(halfFactorTable) {
		return 0
	}
	return halfFactorTable[pow]
}

func BinaryDigits(value uint64) int {
	return 64 - bits.LeadingZeros64(value)
}

// DecimalDigits returns the number of decimal digits in 'value'.
// see https://stackoverflow.com/a/25934909
func DecimalDigits(value uint64) int {
	if value == 0 {
		return 1
	}

	digits := digitsHelper[BinaryDigits(value)]
	if value >= decimalFactorTable[digits] {
		digits++
	}
	return digits
}

// Log10 returns floor(log10(a)), and 0 for a == 0.
func Log10(a uint64) int {
	return DecimalDigits(a) - 1
}

// MaxShift returns the number of decimal digits 'value' can be shifted left by,
// so that it still fits into MaxDigits digits.
func MaxShift(value uint64) int {
	l := Log10(value)
	if l >= MaxDigits-1 {
		return 0
	}
	return MaxDigits - 1 - l
}

// TrimZeros removes trailing zeros from m, increasing e for each removed digit.
// It stops at eMax.
func TrimZeros(m uint64, e, eMax int32) (uint64, int32) {
	for e < eMax && m > 9 && m%10 == 0 {
		m /= 10
		e++
	}
	return m, e
}
