package underwriting

import (
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cashlens-dev/cashlens/internal/model"
)

// processorKeywords maps description substrings to processor labels.
// Order matters: the first matching keyword wins.
var processorKeywords = []struct {
	keyword string
	label   string
}{
	{"stripe", "Stripe"},
	{"square", "Square"},
	{"shopify", "Shopify"},
	{"paypal", "PayPal"},
	{"braintree", "Braintree"},
	{"adyen", "Adyen"},
	{"amazon pay", "Amazon Pay"},
	{"skrill", "Skrill"},
}

const topProcessorLimit = 5

// MonthlyRollups groups transactions by calendar month and totals
// non-transfer deposits and withdrawals per month, ascending by label.
func MonthlyRollups(txns []model.Transaction) []model.MonthlyRollup {
	groups := make(map[string][]model.Transaction)
	for _, t := range txns {
		ym := t.Date.Format("2006-01")
		groups[ym] = append(groups[ym], t)
	}

	rollups := make([]model.MonthlyRollup, 0, len(groups))
	for ym, group := range groups {
		deposits := sumDirection(nonTransfers(group), model.Credit)
		withdrawals := sumDirection(nonTransfers(group), model.Debit)
		rollups = append(rollups, model.MonthlyRollup{
			Month:       ym,
			Deposits:    deposits,
			Withdrawals: withdrawals,
			Net:         deposits.Sub(withdrawals),
			Count:       len(group),
		})
	}

	sort.Slice(rollups, func(i, j int) bool { return rollups[i].Month < rollups[j].Month })
	return rollups
}

// Stability derives deposit variability, trend and payer concentration
// from the monthly rollup and the raw transactions.
func Stability(txns []model.Transaction, rollup []model.MonthlyRollup) model.StabilityStats {
	if len(rollup) == 0 {
		return model.StabilityStats{}
	}

	deposits := make([]float64, len(rollup))
	for i, m := range rollup {
		deposits[i] = m.Deposits.InexactFloat64()
	}

	cv := 0.0
	if m := mean(deposits); m != 0 {
		cv = populationStdDev(deposits, m) / m
	}

	topShare, uniquePayers := payerConcentration(txns)

	return model.StabilityStats{
		DepositCV:            cv,
		DepositSlopePerMonth: trendSlope(deposits),
		TopPayerShare:        topShare,
		UniquePayers:         uniquePayers,
	}
}

// ProcessorMix attributes non-transfer deposits to settlement channels.
// Deposits whose description matches a known processor keyword count as
// card settlements; the rest split between "other" (income/other
// buckets) and ACH/wires.
func ProcessorMix(txns []model.Transaction) model.ProcessorMix {
	mix := model.ProcessorMix{
		CardSettlements: decimal.Zero,
		ACHWires:        decimal.Zero,
		Other:           decimal.Zero,
	}
	totals := make(map[string]decimal.Decimal)

	for _, t := range txns {
		if t.Direction != model.Credit || isTransfer(t) {
			continue
		}
		amount := t.Amount.Abs()
		desc := strings.ToLower(t.Description)

		matched := false
		for _, p := range processorKeywords {
			if strings.Contains(desc, p.keyword) {
				totals[p.label] = totals[p.label].Add(amount)
				mix.CardSettlements = mix.CardSettlements.Add(amount)
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		switch model.BucketOf(t.EffectiveCategory()) {
		case model.BucketIncome, model.BucketOther:
			mix.Other = mix.Other.Add(amount)
		default:
			mix.ACHWires = mix.ACHWires.Add(amount)
		}
	}

	top := make([]model.ProcessorTotal, 0, len(totals))
	for name, total := range totals {
		top = append(top, model.ProcessorTotal{Name: name, Total: total})
	}
	sort.Slice(top, func(i, j int) bool {
		if !top[i].Total.Equal(top[j].Total) {
			return top[i].Total.GreaterThan(top[j].Total)
		}
		return top[i].Name < top[j].Name
	})
	if len(top) > topProcessorLimit {
		top = top[:topProcessorLimit]
	}
	mix.TopProcessors = top

	return mix
}

// payerConcentration groups non-transfer deposits by normalized payer
// name and returns the top payer's share of deposits plus the distinct
// payer count.
func payerConcentration(txns []model.Transaction) (float64, int) {
	totals := make(map[string]decimal.Decimal)
	for _, t := range txns {
		if t.Direction != model.Credit || isTransfer(t) {
			continue
		}
		name := normalizeName(t.Merchant)
		if name == "" {
			name = "unknown"
		}
		totals[name] = totals[name].Add(t.Amount.Abs())
	}
	if len(totals) == 0 {
		return 0, 0
	}

	total := decimal.Zero
	top := decimal.Zero
	for _, v := range totals {
		total = total.Add(v)
		if v.GreaterThan(top) {
			top = v
		}
	}
	return safeRatio(top, total), len(totals)
}

// trendSlope fits monthly deposits against index 0..n-1 by ordinary
// least squares and returns the slope per month.
func trendSlope(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}

	xMean := float64(n-1) / 2
	yMean := mean(values)

	var numer, denom float64
	for i, y := range values {
		numer += (float64(i) - xMean) * (y - yMean)
		denom += (float64(i) - xMean) * (float64(i) - xMean)
	}
	if denom == 0 {
		denom = 1
	}
	return numer / denom
}

func mean(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

func populationStdDev(values []float64, mean float64) float64 {
	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	return math.Sqrt(variance / float64(len(values)))
}
