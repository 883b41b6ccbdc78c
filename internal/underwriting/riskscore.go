package underwriting

import (
	"github.com/shopspring/decimal"

	"github.com/cashlens-dev/cashlens/internal/model"
)

// ScoreRisk builds a composite 0-100 score from cash-flow margin, debt
// coverage, activity level and income size, starting from a neutral 50
// and clamping to the 0-100 range. Income and expenses exclude liquidity
// movements; the activity count does not. Ratings: A at 80+, B at 65+,
// C at 45+, else D. An empty transaction list scores 0/D.
func ScoreRisk(txns []model.Transaction, buckets map[model.RiskBucket][]model.Transaction) model.RiskScore {
	if len(txns) == 0 {
		return model.RiskScore{Score: 0, Rating: model.RatingD}
	}

	flows := nonTransfers(txns)
	income := sumDirection(flows, model.Credit)
	expenses := sumDirection(flows, model.Debit)
	net := income.Sub(expenses)
	debt := sumDirection(buckets[model.BucketFinancing], model.Debit)

	score := 50
	score += cashFlowScore(net, income)
	score += debtCoverageScore(debt, net)
	score += activityScore(len(txns))
	score += incomeScore(income)

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return model.RiskScore{Score: score, Rating: scoreRating(score)}
}

// cashFlowScore awards up to 40 points for positive margin; negative or
// zero net cash flow costs 20.
func cashFlowScore(net, income decimal.Decimal) int {
	if net.Sign() <= 0 {
		return -20
	}
	margin := safeRatio(net, income)
	switch {
	case margin >= 0.15:
		return 40
	case margin >= 0.10:
		return 30
	case margin >= 0.05:
		return 20
	default:
		return 10
	}
}

// debtCoverageScore awards up to 30 points by DSCR tier. No debt at all
// is worth 20; debt without positive cash flow to service it costs 30.
func debtCoverageScore(debt, net decimal.Decimal) int {
	if debt.IsZero() {
		return 20
	}
	if net.Sign() <= 0 {
		return -30
	}
	dscr := safeRatio(net, debt)
	switch {
	case dscr >= 1.5:
		return 30
	case dscr >= 1.25:
		return 25
	case dscr >= 1.1:
		return 15
	default:
		return -10
	}
}

// activityScore awards up to 20 points by transaction volume.
func activityScore(count int) int {
	switch {
	case count >= 100:
		return 20
	case count >= 50:
		return 15
	case count >= 20:
		return 10
	default:
		return 5
	}
}

// incomeScore awards up to 10 points by total income size.
func incomeScore(income decimal.Decimal) int {
	v := income.InexactFloat64()
	switch {
	case v >= 100000:
		return 10
	case v >= 50000:
		return 8
	case v >= 25000:
		return 5
	case v >= 10000:
		return 3
	default:
		return 0
	}
}

func scoreRating(score int) model.RiskRating {
	switch {
	case score >= 80:
		return model.RatingA
	case score >= 65:
		return model.RatingB
	case score >= 45:
		return model.RatingC
	default:
		return model.RatingD
	}
}
