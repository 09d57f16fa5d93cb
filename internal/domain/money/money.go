package money

import (
	"errors"
	"fmt"
)

var ErrNegativeAmount = errors.New("money cannot be negative")

// Money is an amount in cents. Arithmetic stays exact; only Percent rounds.
type Money struct {
	cents int64
}

func FromCents(cents int64) Money {
	return Money{cents: cents}
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func Zero() Money {
	return Money{}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) IsNegative() bool {
	return m.cents < 0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

// Percent returns pct% of m rounded half away from zero to the nearest cent.
func (m Money) Percent(pct int) Money {
	return Money{cents: divRound(m.cents*int64(pct), 100)}
}

// String renders the amount with two decimals, e.g. "522.50".
func (m Money) String() string {
	c := m.cents
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

// Average returns the mean of amounts rounded to the nearest cent, or zero for none.
func Average(amounts []Money) Money {
	if len(amounts) == 0 {
		return Zero()
	}
	var sum int64
	for _, a := range amounts {
		sum += a.cents
	}
	return Money{cents: divRound(sum, int64(len(amounts)))}
}

func divRound(num, den int64) int64 {
	if num < 0 {
		return -((-num + den/2) / den)
	}
	return (num + den/2) / den
}
