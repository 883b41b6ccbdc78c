package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction indicates which side of the account a transaction moves.
type Direction string

const (
	Debit  Direction = "debit"  // outflow
	Credit Direction = "credit" // inflow
)

// Transaction is one classified bank-account transaction.
//
// Amount is a non-negative magnitude; Direction carries the sign
// semantics. Merchant, Balance and PostedAt are optional: an empty
// merchant means unknown, Balance.Valid reports whether the running
// balance was present on the source row, and a zero PostedAt means the
// posting time was not recorded.
type Transaction struct {
	ID          string
	DocumentID  string
	Date        time.Time
	Amount      decimal.Decimal
	Description string
	Direction   Direction
	Category    Category
	Merchant    string
	Balance     decimal.NullDecimal
	PostedAt    time.Time
}

// EffectiveCategory resolves an unset category to the error sentinel.
func (t Transaction) EffectiveCategory() Category {
	if t.Category == "" {
		return CategoryError
	}
	return t.Category
}

// StatementMetadata describes the statement a batch of transactions came
// from, as reported by the upstream extraction step.
type StatementMetadata struct {
	DocumentID     string
	BankName       string
	AccountHolder  string
	AccountNumber  string
	PeriodStart    time.Time
	PeriodEnd      time.Time
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
}
