package dec16

import (
	"fmt"
	"testing"

	of "github.com/robaho/fixed"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// numerals with no more than 16 significant digits, so that they are represented exactly.
var compatNumerals = []string{
	"0", "1", "-1", "0.5", "-0.5", "2.5", "-2.5", "2.4", "-2.6",
	"123.456", "-123.456", "0.000123", "-0.0000000001", "9999999999999999",
	"999999999999999.9", "-999999999999999.5", "1234567890.123456",
	"1.5e3", "-2.75E-4", "1e20", "-3.3e-30", "0.0000000000000001",
}

func toDecimal(v Value) decimal.Decimal {
	if !v.IsFinite() {
		return decimal.Zero
	}
	d := decimal.New(int64(v.Coef()), v.Exp()-DigitsMax)
	if v.Sign() == SignNeg {
		d = d.Neg()
	}
	return d
}

func ceilAway(d decimal.Decimal) decimal.Decimal {
	if d.Sign() < 0 {
		return d.Neg().Ceil().Neg()
	}
	return d.Ceil()
}

func TestDecimalCompat(t *testing.T) {
	a := assert.New(t)
	for i, s := range compatNumerals {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v := MustFromString(s)
			ref, err := decimal.NewFromString(s)
			if !a.NoError(err) {
				return
			}
			a.True(ref.Equal(toDecimal(v)), "%s: %#v", s, v)
			a.Equal(ref.Sign(), v.Cmp(Zero))
			a.True(ref.Truncate(0).Equal(toDecimal(v.Integer(RoundDown))), "%s down", s)
			a.True(ceilAway(ref).Equal(toDecimal(v.Integer(RoundUp))), "%s up", s)
			a.True(ref.Round(0).Equal(toDecimal(v.Integer(RoundHalfUp))), "%s half-up", s)
		})
	}
}

func TestDecimalCompatCmp(t *testing.T) {
	a := assert.New(t)
	for _, s1 := range compatNumerals {
		for _, s2 := range compatNumerals {
			d1, d2 := decimal.RequireFromString(s1), decimal.RequireFromString(s2)
			a.Equal(d1.Cmp(d2), MustFromString(s1).Cmp(MustFromString(s2)), "%s vs %s", s1, s2)
		}
	}
}

func TestDecimalCompatTruncatesLongNumerals(t *testing.T) {
	a := assert.New(t)
	for _, s := range []string{"12345678901234567890", "-0.123456789012345678", "98765.43210987654321e5"} {
		ref := decimal.RequireFromString(s)
		v := MustFromString(s)
		// the 17th digit and beyond are dropped, so the value is never larger in magnitude.
		diff := ref.Abs().Sub(toDecimal(v).Abs())
		a.True(diff.Sign() >= 0, "%s", s)
		a.True(diff.LessThan(decimal.New(1, v.Exp()-DigitsMax)), "%s", s)
	}
}

func BenchmarkFromStringDecimal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		decimal.NewFromString("-123456.7890123e-3")
	}
}

func BenchmarkFromStringOtherFixed(b *testing.B) {
	for i := 0; i < b.N; i++ {
		of.NewS("-123.4567890123")
	}
}

func BenchmarkCmp(b *testing.B) {
	v1, v2 := MustFromString("-123.4567890123"), MustFromString("-123.4567890124")
	for i := 0; i < b.N; i++ {
		v1.Cmp(v2)
	}
}

func BenchmarkCmpDecimal(b *testing.B) {
	d1, d2 := decimal.RequireFromString("-123.4567890123"), decimal.RequireFromString("-123.4567890124")
	for i := 0; i < b.N; i++ {
		d1.Cmp(d2)
	}
}

func BenchmarkCmpOtherFixed(b *testing.B) {
	f1, f2 := of.NewS("-123.4567890"), of.NewS("-123.4567891")
	for i := 0; i < b.N; i++ {
		f1.Cmp(f2)
	}
}
