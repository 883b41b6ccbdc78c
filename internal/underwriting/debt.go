package underwriting

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cashlens-dev/cashlens/internal/model"
)

// LoanScenario is a proposed loan for pro-forma DSCR analysis. All three
// fields are required together.
type LoanScenario struct {
	Amount     decimal.Decimal
	AnnualRate float64 // e.g. 0.12 for 12% APR
	TermMonths int
}

// Debt computes debt-service metrics from the financing bucket and the
// net cash flow already produced by the cash-flow analyzer.
func Debt(buckets map[model.RiskBucket][]model.Transaction, netCashFlow decimal.Decimal, scenario *LoanScenario) model.DebtMetrics {
	eds := sumDirection(buckets[model.BucketFinancing], model.Debit)

	newPayment := decimal.Zero
	if scenario != nil {
		newPayment = AmortizedPayment(scenario.Amount, scenario.AnnualRate, scenario.TermMonths)
	}

	var dscrExisting, dscrProForma *float64
	if !eds.IsZero() {
		v := safeRatio(netCashFlow, eds)
		dscrExisting = &v
	}
	if total := eds.Add(newPayment); !total.IsZero() {
		v := safeRatio(netCashFlow, total)
		dscrProForma = &v
	}

	return model.DebtMetrics{
		ExistingDebtService: eds,
		ProFormaPayment:     newPayment,
		DSCRExisting:        dscrExisting,
		DSCRProForma:        dscrProForma,
	}
}

// AmortizedPayment computes the standard monthly payment
// r*A / (1 - (1+r)^-n) for principal amount, annual rate and term,
// rounded half-up to cents. A zero rate degrades to straight-line A/n;
// a non-positive amount or term yields zero.
func AmortizedPayment(amount decimal.Decimal, annualRate float64, termMonths int) decimal.Decimal {
	if amount.Sign() <= 0 || termMonths <= 0 {
		return decimal.Zero
	}

	monthly := decimal.NewFromFloat(annualRate).Div(decimal.NewFromInt(12))
	if monthly.IsZero() {
		return amount.Div(decimal.NewFromInt(int64(termMonths))).Round(2)
	}

	// (1+r)^-n via the positive power to stay in exact decimal arithmetic
	// as long as possible.
	growth := decimal.NewFromInt(1).Add(monthly).Pow(decimal.NewFromInt(int64(termMonths)))
	denom := decimal.NewFromInt(1).Sub(decimal.NewFromInt(1).Div(growth))
	return monthly.Mul(amount).Div(denom).Round(2)
}

// LoanSignals detects repeated loan payments among financing-bucket
// debits: at least two payments to the same normalized lender, cadence
// from the median day interval. Results are ordered by descending
// average payment, then lender.
func LoanSignals(buckets map[model.RiskBucket][]model.Transaction) []model.LoanSignal {
	groups := make(map[string][]model.Transaction)
	for _, t := range buckets[model.BucketFinancing] {
		if t.Direction != model.Debit {
			continue
		}
		groups[normalizeName(t.Merchant)] = append(groups[normalizeName(t.Merchant)], t)
	}

	var signals []model.LoanSignal
	for lender, group := range groups {
		if len(group) < 2 {
			continue
		}

		sortByDate(group)
		cadence := classifyCadence(medianInt(dayDeltas(group)))

		if lender == "" {
			lender = "unknown"
		}
		signals = append(signals, model.LoanSignal{
			Lender:     lender,
			AvgPayment: avgAbs(group),
			Cadence:    cadence,
			Count:      len(group),
		})
	}

	sort.Slice(signals, func(i, j int) bool {
		if !signals[i].AvgPayment.Equal(signals[j].AvgPayment) {
			return signals[i].AvgPayment.GreaterThan(signals[j].AvgPayment)
		}
		return signals[i].Lender < signals[j].Lender
	})
	return signals
}
