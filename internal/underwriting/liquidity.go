package underwriting

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashlens-dev/cashlens/internal/model"
)

var nsfKeywords = []string{"nsf", "non-sufficient", "returned item charge", "overdraft"}

// Liquidity computes daily balance statistics and NSF/overdraft signals.
// The balance statistics require a running balance on at least one
// record; without any balance data they stay null and DaysNegative is 0.
func Liquidity(txns []model.Transaction) model.LiquidityStats {
	stats := model.LiquidityStats{NSFFees: decimal.Zero}

	hasBalance := false
	for _, t := range txns {
		if t.Balance.Valid {
			hasBalance = true
			break
		}
	}

	if hasBalance {
		days := groupByDay(txns)
		var endings, minimums []decimal.Decimal

		for _, day := range days {
			sort.SliceStable(day, func(i, j int) bool {
				return postTime(day[i]).Before(postTime(day[j]))
			})

			last := day[len(day)-1]
			if !last.Balance.Valid {
				continue
			}
			ending := last.Balance.Decimal

			dayMin := ending
			for _, t := range day {
				if t.Balance.Valid && t.Balance.Decimal.LessThan(dayMin) {
					dayMin = t.Balance.Decimal
				}
			}

			endings = append(endings, ending)
			minimums = append(minimums, dayMin)
			if ending.Sign() < 0 {
				stats.DaysNegative++
			}
		}

		if len(endings) > 0 {
			total := decimal.Zero
			for _, b := range endings {
				total = total.Add(b)
			}
			stats.AvgDailyBalance = decimal.NewNullDecimal(total.Div(decimal.NewFromInt(int64(len(endings)))))

			minBalance := minimums[0]
			for _, b := range minimums[1:] {
				if b.LessThan(minBalance) {
					minBalance = b
				}
			}
			stats.MinDailyBalance = decimal.NewNullDecimal(minBalance)
		}
	}

	stats.NSFCount, stats.NSFFees = scanNSF(txns)
	return stats
}

// groupByDay partitions transactions by calendar day, preserving input
// order within a day.
func groupByDay(txns []model.Transaction) [][]model.Transaction {
	byDay := make(map[string][]model.Transaction)
	var order []string
	for _, t := range txns {
		key := t.Date.Format("2006-01-02")
		if _, seen := byDay[key]; !seen {
			order = append(order, key)
		}
		byDay[key] = append(byDay[key], t)
	}

	days := make([][]model.Transaction, 0, len(order))
	for _, key := range order {
		days = append(days, byDay[key])
	}
	return days
}

// postTime returns the posting timestamp, falling back to the
// transaction date when the posting time was not recorded.
func postTime(t model.Transaction) time.Time {
	if !t.PostedAt.IsZero() {
		return t.PostedAt
	}
	return t.Date
}

func scanNSF(txns []model.Transaction) (int, decimal.Decimal) {
	count := 0
	fees := decimal.Zero
	for _, t := range txns {
		desc := strings.ToLower(t.Description)
		for _, kw := range nsfKeywords {
			if strings.Contains(desc, kw) {
				count++
				if t.Direction == model.Debit {
					fees = fees.Add(t.Amount.Abs())
				}
				break
			}
		}
	}
	return count, fees
}
