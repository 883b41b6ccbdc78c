// Package underwriting computes loan-underwriting risk and cash-flow
// metrics from a classified list of bank-account transactions. Every
// analyzer is a pure function over a read-only transaction slice (and
// optionally the shared bucket partition); nothing here performs I/O or
// keeps state between calls.
package underwriting

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cashlens-dev/cashlens/internal/model"
)

// normalizeName trims and lower-cases a grouping key so repeated runs
// over identical input produce identical groupings.
func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// isTransfer reports whether a transaction is a liquidity movement.
// Membership is always resolved through the category/bucket table.
func isTransfer(t model.Transaction) bool {
	return model.BucketOf(t.EffectiveCategory()) == model.BucketLiquidityMovement
}

// classifyCadence maps a median day interval to a payment cadence.
func classifyCadence(medianDays float64) model.Cadence {
	switch {
	case medianDays >= 26 && medianDays <= 35:
		return model.CadenceMonthly
	case medianDays >= 12 && medianDays <= 16:
		return model.CadenceBiweekly
	case medianDays >= 6 && medianDays <= 8:
		return model.CadenceWeekly
	default:
		return model.CadenceIrregular
	}
}

// dayDeltas returns the day intervals between consecutive transactions.
// The slice must already be sorted by date.
func dayDeltas(txns []model.Transaction) []int {
	deltas := make([]int, 0, len(txns)-1)
	for i := 1; i < len(txns); i++ {
		d := txns[i].Date.Sub(txns[i-1].Date).Hours() / 24
		deltas = append(deltas, int(d+0.5))
	}
	return deltas
}

// medianInt returns the median of a non-empty int slice as a float
// (the mean of the middle pair for even lengths).
func medianInt(values []int) float64 {
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}

// sortByDate orders transactions by date, keeping input order for ties.
func sortByDate(txns []model.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.Before(txns[j].Date)
	})
}

// safeRatio returns numer/denom as a float, resolving a zero denominator
// to 0 rather than an error or infinity.
func safeRatio(numer, denom decimal.Decimal) float64 {
	if denom.IsZero() {
		return 0
	}
	return numer.Div(denom).InexactFloat64()
}

// avgAbs returns the mean of absolute amounts over a non-empty group.
func avgAbs(txns []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		total = total.Add(t.Amount.Abs())
	}
	return total.Div(decimal.NewFromInt(int64(len(txns))))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
