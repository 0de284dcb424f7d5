// Copyright 2020 Aleksandr Demakin. All rights reserved.

package dec16

import (
	"errors"
	"fmt"
	"strings"
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

func (pe posError) Unwrap() error {
	return ErrInvalidNumeral
}

func addPosErrorOffset(err error, offset int) error {
	var pe *posError
	if !errors.As(err, &pe) {
		return err
	}
	pe.pos += offset
	return pe
}

// FromString parses a numeral into a value.
// Accepted forms are: an optional sign, digits with an optional decimal point,
// an optional exponent, and an optional '%' suffix, like "-12.5e3" or "+.5%".
// "inf" in any case is an infinity.
// Digits past the 16th are dropped. Exponents above MaxExp result in an infinity,
// and below MinExp in Zero.
// Returns ErrEmptyInput for an empty string, and an error wrapping ErrInvalidNumeral
// for malformed input.
func FromString(s string) (Value, error) {
	v, err := parse(s)
	if err != nil {
		if errors.Is(err, ErrEmptyInput) {
			return Zero, err
		}
		// +1 to start indices from 1.
		return Zero, fmt.Errorf("parsing failed: %w", addPosErrorOffset(err, 1))
	}
	return v, nil
}

// MustFromString is like FromString, but panics on error.
func MustFromString(s string) Value {
	v, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func parse(s string) (Value, error) {
	if len(s) == 0 {
		return Zero, ErrEmptyInput
	}
	percent := strings.HasSuffix(s, "%")
	if percent {
		s = s[:len(s)-1]
	}
	r := &reader{s: s}
	sign := r.sign()
	if r.matchFold("inf") {
		if r.len() != 0 {
			return Zero, unexpectedSymbol(r)
		}
		return Inf(sign.infinity()), nil
	}
	coef, exp, err := r.coef()
	if err != nil {
		return Zero, err
	}
	e, err := r.exponent()
	if err != nil {
		return Zero, err
	}
	exp += e
	if r.len() != 0 { // didn't consume the entire string
		return Zero, unexpectedSymbol(r)
	}
	switch {
	case coef == 0 || exp < MinExp:
		return Zero, nil
	case exp > MaxExp:
		return Inf(sign.infinity()), nil
	}
	if percent {
		exp -= 2
	}
	return New(sign, coef, int32(exp)), nil
}

func unexpectedSymbol(r *reader) error {
	return newPosError(fmt.Sprintf("unexpected symbol %q", r.cur()), r.i)
}
