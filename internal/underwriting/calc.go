package underwriting

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cashlens-dev/cashlens/internal/model"
)

// ErrNoTransactions is returned when the orchestrator is called without
// any transactions; every other data-quality problem degrades instead.
var ErrNoTransactions = errors.New("no transactions provided")

// Options carries the optional inputs of an analysis run.
type Options struct {
	// Scenario, when set, adds an amortized pro-forma payment to the
	// debt-service analysis.
	Scenario *LoanScenario
}

// Calculate runs every analyzer over one transaction list and assembles
// the aggregate result. The list is partitioned by risk bucket exactly
// once; all analyzers read the shared list or partition and nothing is
// mutated, so two calls over the same input produce identical output.
func Calculate(txns []model.Transaction, opts Options) (*model.UnderwritingMetrics, error) {
	if len(txns) == 0 {
		return nil, ErrNoTransactions
	}

	buckets := Partition(txns)

	cashFlow := CashFlow(txns, buckets)
	debt := Debt(buckets, cashFlow.NetCashFlow, opts.Scenario)
	liquidityIn, liquidityOut := LiquidityFlows(buckets)

	// Activity figures use absolute amounts, the same convention as the
	// bucket breakdown.
	total := decimal.Zero
	for _, t := range txns {
		total = total.Add(t.Amount.Abs())
	}
	avgSize := total.Div(decimal.NewFromInt(int64(len(txns))))

	rollup := MonthlyRollups(txns)

	return &model.UnderwritingMetrics{
		CashFlow:               cashFlow,
		Debt:                   debt,
		LiquidityIn:            liquidityIn,
		LiquidityOut:           liquidityOut,
		TransactionCount:       len(txns),
		AverageTransactionSize: avgSize,
		Stability:              Stability(txns, rollup),
		ProcessorMix:           ProcessorMix(txns),
		Liquidity:              Liquidity(txns),
		RecurringBills:         RecurringBills(txns),
		LoanSignals:            LoanSignals(buckets),
		BucketBreakdown:        BucketSummary(buckets),
		MonthlyRollup:          rollup,
		RedFlags:               RiskFlags(txns),
		RiskScore:              ScoreRisk(txns, buckets),
	}, nil
}

// CalculateByMonth groups the input by calendar month and runs the
// single-call path per group. The proposed-loan scenario does not apply
// to per-month slices.
func CalculateByMonth(txns []model.Transaction) (map[string]*model.UnderwritingMetrics, error) {
	groups := make(map[string][]model.Transaction)
	for _, t := range txns {
		ym := t.Date.Format("2006-01")
		groups[ym] = append(groups[ym], t)
	}

	results := make(map[string]*model.UnderwritingMetrics, len(groups))
	for ym, group := range groups {
		m, err := Calculate(group, Options{})
		if err != nil {
			return nil, err
		}
		results[ym] = m
	}
	return results, nil
}

// BucketSummary totals each bucket's absolute amount and its share of
// the overall absolute total, descending by amount.
func BucketSummary(buckets map[model.RiskBucket][]model.Transaction) []model.BucketBreakdown {
	overall := decimal.Zero
	breakdown := make([]model.BucketBreakdown, 0, len(buckets))

	for bucket, group := range buckets {
		total := decimal.Zero
		for _, t := range group {
			total = total.Add(t.Amount.Abs())
		}
		overall = overall.Add(total)
		breakdown = append(breakdown, model.BucketBreakdown{
			Bucket:      bucket,
			Count:       len(group),
			TotalAmount: total,
		})
	}

	for i := range breakdown {
		if !overall.IsZero() {
			breakdown[i].PctOfTotal = safeRatio(breakdown[i].TotalAmount, overall) * 100
		}
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if !breakdown[i].TotalAmount.Equal(breakdown[j].TotalAmount) {
			return breakdown[i].TotalAmount.GreaterThan(breakdown[j].TotalAmount)
		}
		return breakdown[i].Bucket < breakdown[j].Bucket
	})
	return breakdown
}
