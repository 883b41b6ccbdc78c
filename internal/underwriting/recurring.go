package underwriting

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cashlens-dev/cashlens/internal/model"
)

// Recurring-bill inclusion gates.
var minRecurringAmount = decimal.NewFromInt(50)

const minRecurringConfidence = 0.5

// RecurringBills detects recurring debit patterns. A pattern needs at
// least three debits to the same normalized (merchant, category) pair, a
// non-irregular cadence, confidence of at least 0.5 and an average
// amount of at least 50. Monthly bills sort first, then by descending
// average amount.
func RecurringBills(txns []model.Transaction) []model.RecurringBill {
	type key struct {
		merchant string
		category model.Category
	}
	groups := make(map[key][]model.Transaction)
	for _, t := range txns {
		if t.Direction != model.Debit {
			continue
		}
		k := key{merchant: normalizeName(t.Merchant), category: t.EffectiveCategory()}
		groups[k] = append(groups[k], t)
	}

	var bills []model.RecurringBill
	for k, group := range groups {
		if len(group) < 3 {
			continue
		}

		sortByDate(group)
		deltas := dayDeltas(group)
		if len(deltas) == 0 {
			continue
		}
		cadence := classifyCadence(medianInt(deltas))
		avg := avgAbs(group)
		confidence := billConfidence(group, avg, cadence)

		if cadence == model.CadenceIrregular || confidence < minRecurringConfidence ||
			avg.LessThan(minRecurringAmount) {
			continue
		}

		merchant := k.merchant
		if merchant == "" {
			merchant = "unknown"
		}
		bills = append(bills, model.RecurringBill{
			Merchant:   merchant,
			Category:   k.category,
			AvgAmount:  avg,
			Cadence:    cadence,
			Count:      len(group),
			Confidence: confidence,
		})
	}

	sort.Slice(bills, func(i, j int) bool {
		im, jm := bills[i].Cadence == model.CadenceMonthly, bills[j].Cadence == model.CadenceMonthly
		if im != jm {
			return im
		}
		if !bills[i].AvgAmount.Equal(bills[j].AvgAmount) {
			return bills[i].AvgAmount.GreaterThan(bills[j].AvgAmount)
		}
		if bills[i].Merchant != bills[j].Merchant {
			return bills[i].Merchant < bills[j].Merchant
		}
		return bills[i].Category < bills[j].Category
	})
	return bills
}

// billConfidence scores amount consistency: the population coefficient
// of variation of the absolute amounts dampens a cadence-based baseline
// (0.9 for a regular cadence, 0.5 otherwise), clamped to 0..1.
func billConfidence(group []model.Transaction, avg decimal.Decimal, cadence model.Cadence) float64 {
	cv := 1.0
	if !avg.IsZero() {
		avgF := avg.InexactFloat64()
		amounts := make([]float64, len(group))
		for i, t := range group {
			amounts[i] = t.Amount.Abs().InexactFloat64()
		}
		cv = populationStdDev(amounts, avgF) / avgF
	}

	base := 0.9
	if cadence == model.CadenceIrregular {
		base = 0.5
	}
	return clamp01((1 - cv) * base)
}
