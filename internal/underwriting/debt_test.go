package underwriting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashlens-dev/cashlens/internal/model"
)

func TestAmortizedPayment(t *testing.T) {
	payment := AmortizedPayment(dec("10000"), 0.12, 12)
	assert.Equal(t, "888.49", payment.StringFixed(2))
}

func TestAmortizedPayment_ZeroRate(t *testing.T) {
	payment := AmortizedPayment(dec("1200"), 0, 12)
	assert.Equal(t, "100.00", payment.StringFixed(2))
}

func TestAmortizedPayment_InvalidInputs(t *testing.T) {
	assert.True(t, AmortizedPayment(dec("0"), 0.1, 12).IsZero())
	assert.True(t, AmortizedPayment(dec("-100"), 0.1, 12).IsZero())
	assert.True(t, AmortizedPayment(dec("100"), 0.1, 0).IsZero())
}

func TestDebt_DSCR(t *testing.T) {
	txns := []model.Transaction{
		tx(date(2025, 1, 5), model.Debit, "500.00", model.CategoryLoanPayment),
	}
	buckets := Partition(txns)

	debt := Debt(buckets, dec("1000.00"), nil)
	assert.Equal(t, dec("500.00"), debt.ExistingDebtService)
	require.NotNil(t, debt.DSCRExisting)
	assert.InDelta(t, 2.0, *debt.DSCRExisting, 0.001)
	require.NotNil(t, debt.DSCRProForma)
	assert.InDelta(t, 2.0, *debt.DSCRProForma, 0.001)
}

func TestDebt_NoDebtService(t *testing.T) {
	debt := Debt(Partition(nil), dec("1000.00"), nil)
	assert.Nil(t, debt.DSCRExisting)
	assert.Nil(t, debt.DSCRProForma)
}

func TestDebt_ProFormaScenario(t *testing.T) {
	scenario := &LoanScenario{Amount: dec("10000"), AnnualRate: 0.12, TermMonths: 12}

	debt := Debt(Partition(nil), dec("1000.00"), scenario)
	assert.Equal(t, "888.49", debt.ProFormaPayment.StringFixed(2))
	assert.Nil(t, debt.DSCRExisting)
	require.NotNil(t, debt.DSCRProForma)
	assert.InDelta(t, 1000.0/888.49, *debt.DSCRProForma, 0.001)
}

func TestLoanSignals_MonthlyCadence(t *testing.T) {
	payment := func(d time.Time, amount, merchant string) model.Transaction {
		txn := tx(d, model.Debit, amount, model.CategoryLoanPayment)
		txn.Merchant = merchant
		return txn
	}
	// Same lender under different spellings of the name.
	txns := []model.Transaction{
		payment(date(2025, 1, 15), "450.00", "  ACME Lending  "),
		payment(date(2025, 2, 14), "452.00", "acme lending"),
		payment(date(2025, 3, 16), "448.00", "Acme Lending"),
	}

	signals := LoanSignals(Partition(txns))
	require.Len(t, signals, 1)
	assert.Equal(t, "acme lending", signals[0].Lender)
	assert.Equal(t, model.CadenceMonthly, signals[0].Cadence)
	assert.Equal(t, 3, signals[0].Count)
	assert.Equal(t, "450.00", signals[0].AvgPayment.StringFixed(2))
}

func TestLoanSignals_RequiresTwoPayments(t *testing.T) {
	txn := tx(date(2025, 1, 15), model.Debit, "450.00", model.CategoryLoanPayment)
	txn.Merchant = "acme lending"

	signals := LoanSignals(Partition([]model.Transaction{txn}))
	assert.Empty(t, signals)
}

func TestLoanSignals_SortedByAvgPaymentDesc(t *testing.T) {
	var txns []model.Transaction
	add := func(merchant string, day int, amount string) {
		txn := tx(date(2025, 1, day), model.Debit, amount, model.CategoryCreditCardPayment)
		txn.Merchant = merchant
		txns = append(txns, txn)
		txn2 := tx(date(2025, 2, day), model.Debit, amount, model.CategoryCreditCardPayment)
		txn2.Merchant = merchant
		txns = append(txns, txn2)
	}
	add("small bank", 10, "100.00")
	add("big bank", 12, "900.00")

	signals := LoanSignals(Partition(txns))
	require.Len(t, signals, 2)
	assert.Equal(t, "big bank", signals[0].Lender)
	assert.Equal(t, "small bank", signals[1].Lender)
}
