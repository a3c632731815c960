package model

import "github.com/shopspring/decimal"

// Money is a decimal amount written to JSON as a bare number rather than the
// quoted string decimal.Decimal produces by default.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.String()), nil
}
