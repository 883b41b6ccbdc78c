package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashlens-dev/cashlens/internal/model"
)

// CategorizedCSVParser parses the categorized-transaction CSV exported
// by the upstream classification step. Columns:
//
//	date,description,amount,direction,category,merchant,balance,posted_at
//
// merchant, balance and posted_at may be empty. Unknown categories
// resolve to the error sentinel rather than failing the import.
type CategorizedCSVParser struct{}

const (
	csvDateFormat = "2006-01-02"
	csvNumFields  = 8
	colDate       = 0
	colDesc       = 1
	colAmount     = 2
	colDirection  = 3
	colCategory   = 4
	colMerchant   = 5
	colBalance    = 6
	colPostedAt   = 7
)

// Format returns the parser name.
func (p *CategorizedCSVParser) Format() string { return "categorized" }

// Parse reads the CSV and returns transactions in file order.
func (p *CategorizedCSVParser) Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = csvNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading categorized CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	if !strings.EqualFold(strings.TrimSpace(records[0][colDate]), "date") {
		return nil, fmt.Errorf("missing header row: first column is %q, want %q", records[0][colDate], "date")
	}
	if len(records) == 1 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func parseRow(rec []string) (model.Transaction, error) {
	date, err := time.Parse(csvDateFormat, rec[colDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", rec[colDate], err)
	}

	amount, err := decimal.NewFromString(rec[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", rec[colAmount], err)
	}
	if amount.Sign() < 0 {
		return model.Transaction{}, fmt.Errorf("amount %q: must be a non-negative magnitude", rec[colAmount])
	}

	var direction model.Direction
	switch rec[colDirection] {
	case string(model.Debit):
		direction = model.Debit
	case string(model.Credit):
		direction = model.Credit
	default:
		return model.Transaction{}, fmt.Errorf("unknown direction %q", rec[colDirection])
	}

	txn := model.Transaction{
		Date:        date,
		Amount:      amount,
		Description: rec[colDesc],
		Direction:   direction,
		Category:    model.ParseCategory(rec[colCategory]),
		Merchant:    rec[colMerchant],
	}

	if rec[colBalance] != "" {
		balance, err := decimal.NewFromString(rec[colBalance])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing balance %q: %w", rec[colBalance], err)
		}
		txn.Balance = decimal.NewNullDecimal(balance)
	}

	if rec[colPostedAt] != "" {
		postedAt, err := time.Parse(time.RFC3339, rec[colPostedAt])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing posted_at %q: %w", rec[colPostedAt], err)
		}
		txn.PostedAt = postedAt
	}

	return txn, nil
}
