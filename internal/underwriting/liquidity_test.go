package underwriting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashlens-dev/cashlens/internal/model"
)

func withBalance(txn model.Transaction, balance string) model.Transaction {
	txn.Balance = decimal.NewNullDecimal(dec(balance))
	return txn
}

func TestLiquidity_NoBalanceData(t *testing.T) {
	txns := []model.Transaction{
		tx(date(2025, 1, 1), model.Credit, "100.00", model.CategorySalaryWages),
	}

	stats := Liquidity(txns)
	assert.False(t, stats.AvgDailyBalance.Valid)
	assert.False(t, stats.MinDailyBalance.Valid)
	assert.Zero(t, stats.DaysNegative)
}

func TestLiquidity_DailyBalances(t *testing.T) {
	txns := []model.Transaction{
		withBalance(tx(date(2025, 1, 1), model.Credit, "100.00", model.CategorySalaryWages), "500.00"),
		withBalance(tx(date(2025, 1, 1), model.Debit, "600.00", model.CategoryRent), "-100.00"),
		withBalance(tx(date(2025, 1, 2), model.Credit, "400.00", model.CategorySalaryWages), "300.00"),
	}

	stats := Liquidity(txns)
	require.True(t, stats.AvgDailyBalance.Valid)
	// Day endings: -100 and 300.
	assert.Equal(t, "100.00", stats.AvgDailyBalance.Decimal.StringFixed(2))
	require.True(t, stats.MinDailyBalance.Valid)
	assert.Equal(t, "-100.00", stats.MinDailyBalance.Decimal.StringFixed(2))
	assert.Equal(t, 1, stats.DaysNegative)
}

func TestLiquidity_PostTimeOrdersTheDay(t *testing.T) {
	late := tx(date(2025, 1, 1), model.Credit, "50.00", model.CategorySalaryWages)
	late.PostedAt = time.Date(2025, 1, 1, 18, 0, 0, 0, time.UTC)
	late = withBalance(late, "900.00")

	early := tx(date(2025, 1, 1), model.Debit, "20.00", model.CategoryDining)
	early.PostedAt = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	early = withBalance(early, "850.00")

	// Input order is reversed relative to posting time.
	stats := Liquidity([]model.Transaction{late, early})
	require.True(t, stats.AvgDailyBalance.Valid)
	assert.Equal(t, "900.00", stats.AvgDailyBalance.Decimal.StringFixed(2))
}

func TestLiquidity_NSFDetection(t *testing.T) {
	fee := tx(date(2025, 1, 3), model.Debit, "35.00", model.CategoryBankFees)
	fee.Description = "OVERDRAFT FEE"
	returned := tx(date(2025, 1, 4), model.Credit, "120.00", model.CategoryOtherIncome)
	returned.Description = "NSF returned deposit"
	clean := tx(date(2025, 1, 5), model.Debit, "10.00", model.CategoryDining)
	clean.Description = "coffee"

	stats := Liquidity([]model.Transaction{fee, returned, clean})
	assert.Equal(t, 2, stats.NSFCount)
	// Only the debit contributes to fees.
	assert.Equal(t, "35.00", stats.NSFFees.StringFixed(2))
}
