package domain

import (
	"encoding/json"
	"fmt"
)

// Money is an amount of gold. It can never be negative.
type Money struct {
	amount uint
}

func NewMoney(amount uint) Money {
	return Money{amount: amount}
}

func (m Money) Amount() uint {
	return m.amount
}

func (m Money) IsZero() bool {
	return m.amount == 0
}

func (m Money) LessThan(other Money) bool {
	return m.amount < other.amount
}

func (m Money) Combine(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

func (m Money) Remove(other Money) (Money, error) {
	if m.amount < other.amount {
		return m, fmt.Errorf("%w: have %d, need %d", ErrNotEnoughMoney, m.amount, other.amount)
	}
	return Money{amount: m.amount - other.amount}, nil
}

func (m Money) String() string {
	return fmt.Sprintf("%d gold", m.amount)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.amount)
}

func (m *Money) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &m.amount)
}
