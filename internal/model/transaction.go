package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction indicates which way money moved.
type Direction string

const (
	DirectionIn  Direction = "IN"
	DirectionOut Direction = "OUT"
)

// Status classifies a transaction's settlement state.
type Status string

const (
	StatusSettled Status = "SETTLED"
	StatusPending Status = "PENDING"
	StatusOther   Status = "OTHER"
)

// Transaction is the canonical form every API generation normalizes to.
// Amount is in minor currency units (pence): positive = money in,
// negative = money out. Built once during normalization, never mutated.
type Transaction struct {
	ID           string
	Timestamp    time.Time
	Amount       int64 // minor units, signed
	Direction    Direction
	Status       Status
	Counterparty string
	Memo         string
	RawCategory  string // provider spending-category code, "" if absent
	Source       string // provider source code (MASTER_CARD, INTERNAL_TRANSFER, ...)
	SubType      string // provider sub-type / card method (ONLINE, ATM, ...)
	Balance      decimal.NullDecimal
}

// AmountDecimal returns the signed amount in major units.
func (t Transaction) AmountDecimal() decimal.Decimal {
	return decimal.New(t.Amount, -2)
}

// Cleared reports whether the transaction has settled.
func (t Transaction) Cleared() bool {
	return t.Status == StatusSettled
}
