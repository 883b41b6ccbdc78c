package underwriting

import (
	"github.com/shopspring/decimal"

	"github.com/cashlens-dev/cashlens/internal/model"
)

// CashFlow computes income, expense and margin figures. Liquidity
// movements are excluded throughout: a transfer between own accounts is
// not cash flow.
func CashFlow(txns []model.Transaction, buckets map[model.RiskBucket][]model.Transaction) model.CashFlowMetrics {
	flows := nonTransfers(txns)
	income := sumDirection(flows, model.Credit)
	expenses := sumDirection(flows, model.Debit)
	net := income.Sub(expenses)

	operating := sumDirection(buckets[model.BucketOperatingExpense], model.Debit)
	discretionary := sumDirection(buckets[model.BucketDiscretionaryExpense], model.Debit)

	return model.CashFlowMetrics{
		Income:                    income,
		Expenses:                  expenses,
		NetCashFlow:               net,
		CashFlowMargin:            safeRatio(net, income) * 100,
		OperatingExpenses:         operating,
		DiscretionaryExpenses:     discretionary,
		OperatingExpenseRatio:     safeRatio(operating, expenses),
		DiscretionaryExpenseRatio: safeRatio(discretionary, expenses),
	}
}

// LiquidityFlows totals the inflows and outflows inside the liquidity
// movement bucket. Informational only; these never count as cash flow.
func LiquidityFlows(buckets map[model.RiskBucket][]model.Transaction) (in, out decimal.Decimal) {
	liquidity := buckets[model.BucketLiquidityMovement]
	return sumDirection(liquidity, model.Credit), sumDirection(liquidity, model.Debit)
}

func nonTransfers(txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if !isTransfer(t) {
			out = append(out, t)
		}
	}
	return out
}

func sumDirection(txns []model.Transaction, dir model.Direction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		if t.Direction == dir {
			total = total.Add(t.Amount.Abs())
		}
	}
	return total
}
