package underwriting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashlens-dev/cashlens/internal/model"
)

func sampleTransactions() []model.Transaction {
	mk := func(txn model.Transaction, desc, merchant string) model.Transaction {
		txn.Description = desc
		txn.Merchant = merchant
		return txn
	}
	return []model.Transaction{
		mk(tx(date(2025, 1, 3), model.Credit, "5000.00", model.CategoryBusinessRevenue), "STRIPE PAYOUT", "stripe"),
		mk(tx(date(2025, 1, 10), model.Debit, "1500.00", model.CategoryRent), "rent january", "prop mgmt"),
		mk(tx(date(2025, 1, 15), model.Debit, "450.00", model.CategoryLoanPayment), "loan pmt", "acme lending"),
		mk(tx(date(2025, 1, 20), model.Credit, "2000.00", model.CategoryTransferIn), "transfer from savings", ""),
		mk(tx(date(2025, 2, 3), model.Credit, "5200.00", model.CategoryBusinessRevenue), "STRIPE PAYOUT", "stripe"),
		mk(tx(date(2025, 2, 10), model.Debit, "1500.00", model.CategoryRent), "rent february", "prop mgmt"),
		mk(tx(date(2025, 2, 14), model.Debit, "452.00", model.CategoryLoanPayment), "loan pmt", "acme lending"),
		mk(tx(date(2025, 2, 21), model.Debit, "300.00", model.CategoryDining), "restaurants", ""),
	}
}

func TestCalculate_EmptyInput(t *testing.T) {
	_, err := Calculate(nil, Options{})
	require.ErrorIs(t, err, ErrNoTransactions)
}

func TestCalculate_Aggregate(t *testing.T) {
	m, err := Calculate(sampleTransactions(), Options{})
	require.NoError(t, err)

	assert.Equal(t, 8, m.TransactionCount)
	// 16402 across 8 transactions.
	assert.Equal(t, "2050.25", m.AverageTransactionSize.StringFixed(2))
	assert.Equal(t, "10200.00", m.CashFlow.Income.StringFixed(2))
	assert.Equal(t, "4202.00", m.CashFlow.Expenses.StringFixed(2))
	assert.Equal(t, "2000.00", m.LiquidityIn.StringFixed(2))
	assert.True(t, m.LiquidityOut.IsZero())
	assert.Equal(t, "902.00", m.Debt.ExistingDebtService.StringFixed(2))
	require.Len(t, m.MonthlyRollup, 2)
	require.Len(t, m.LoanSignals, 1)
	assert.Equal(t, "acme lending", m.LoanSignals[0].Lender)
	// Margin 0.59, DSCR 6.65, 8 transactions, income >= 10000.
	assert.Equal(t, 100, m.RiskScore.Score)
	assert.Equal(t, model.RatingA, m.RiskScore.Rating)
}

func TestCalculate_BucketBreakdownPartitionProperty(t *testing.T) {
	txns := sampleTransactions()
	m, err := Calculate(txns, Options{})
	require.NoError(t, err)

	breakdownTotal := decimal.Zero
	count := 0
	for _, b := range m.BucketBreakdown {
		breakdownTotal = breakdownTotal.Add(b.TotalAmount)
		count += b.Count
	}

	absTotal := decimal.Zero
	for _, txn := range txns {
		absTotal = absTotal.Add(txn.Amount.Abs())
	}

	assert.True(t, breakdownTotal.Equal(absTotal),
		"bucket totals %s != absolute total %s", breakdownTotal, absTotal)
	assert.Equal(t, len(txns), count)

	pct := 0.0
	for _, b := range m.BucketBreakdown {
		pct += b.PctOfTotal
	}
	assert.InDelta(t, 100.0, pct, 0.001)
}

func TestCalculate_BreakdownSortedDescending(t *testing.T) {
	m, err := Calculate(sampleTransactions(), Options{})
	require.NoError(t, err)

	for i := 1; i < len(m.BucketBreakdown); i++ {
		prev, cur := m.BucketBreakdown[i-1], m.BucketBreakdown[i]
		assert.True(t, prev.TotalAmount.GreaterThanOrEqual(cur.TotalAmount))
	}
}

func TestCalculate_Idempotent(t *testing.T) {
	txns := sampleTransactions()

	first, err := Calculate(txns, Options{})
	require.NoError(t, err)
	second, err := Calculate(txns, Options{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCalculate_ProFormaScenario(t *testing.T) {
	opts := Options{Scenario: &LoanScenario{
		Amount:     dec("10000"),
		AnnualRate: 0.12,
		TermMonths: 12,
	}}
	m, err := Calculate(sampleTransactions(), opts)
	require.NoError(t, err)

	assert.Equal(t, "888.49", m.Debt.ProFormaPayment.StringFixed(2))
	require.NotNil(t, m.Debt.DSCRProForma)
	require.NotNil(t, m.Debt.DSCRExisting)
	assert.Less(t, *m.Debt.DSCRProForma, *m.Debt.DSCRExisting)
}

func TestCalculateByMonth(t *testing.T) {
	results, err := CalculateByMonth(sampleTransactions())
	require.NoError(t, err)
	require.Len(t, results, 2)

	jan, ok := results["2025-01"]
	require.True(t, ok)
	assert.Equal(t, 4, jan.TransactionCount)
	feb, ok := results["2025-02"]
	require.True(t, ok)
	assert.Equal(t, 4, feb.TransactionCount)
	assert.Equal(t, "5200.00", feb.CashFlow.Income.StringFixed(2))
}

func TestCalculateByMonth_Empty(t *testing.T) {
	results, err := CalculateByMonth(nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
