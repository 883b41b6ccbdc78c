// Package report renders underwriting metrics as plain-text tables.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/cashlens-dev/cashlens/internal/model"
)

// Options controls rendering.
type Options struct {
	BarWidth int
	ShowBars bool
}

// DefaultOptions match the default cashlens.yaml report block.
func DefaultOptions() Options {
	return Options{BarWidth: 20, ShowBars: true}
}

// Money formats a decimal as "$1,234.56", rounded half-up to cents.
func Money(d decimal.Decimal) string {
	q := d.Round(2)
	neg := q.Sign() < 0
	s := q.Abs().StringFixed(2)

	whole, frac, _ := strings.Cut(s, ".")
	var grouped []string
	for len(whole) > 3 {
		grouped = append([]string{whole[len(whole)-3:]}, grouped...)
		whole = whole[:len(whole)-3]
	}
	grouped = append([]string{whole}, grouped...)

	out := "$" + strings.Join(grouped, ",") + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}

// Pct formats a percentage with one decimal place.
func Pct(x float64) string {
	return fmt.Sprintf("%5.1f%%", x)
}

// Bar renders a proportional block gauge for a 0..100 percentage.
func Bar(pct float64, width int) string {
	blocks := int(math.Round(pct / 100 * float64(width)))
	if blocks < 0 {
		blocks = 0
	}
	if blocks > width {
		blocks = width
	}
	return strings.Repeat("█", blocks)
}

// Render writes the full underwriting report.
func Render(w io.Writer, m *model.UnderwritingMetrics, opts Options) {
	fmt.Fprintln(w, "RISK SCORE")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  score\t%d/100\n", m.RiskScore.Score)
	fmt.Fprintf(tw, "  rating\t%s\n", m.RiskScore.Rating)
	tw.Flush()

	fmt.Fprintln(w, "\nCASH FLOW")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  income\t%s\n", Money(m.CashFlow.Income))
	fmt.Fprintf(tw, "  expenses\t%s\n", Money(m.CashFlow.Expenses))
	fmt.Fprintf(tw, "  net cash flow\t%s\n", Money(m.CashFlow.NetCashFlow))
	fmt.Fprintf(tw, "  margin\t%s\n", Pct(m.CashFlow.CashFlowMargin))
	fmt.Fprintf(tw, "  operating\t%s (%s)\n", Money(m.CashFlow.OperatingExpenses), Pct(m.CashFlow.OperatingExpenseRatio*100))
	fmt.Fprintf(tw, "  discretionary\t%s (%s)\n", Money(m.CashFlow.DiscretionaryExpenses), Pct(m.CashFlow.DiscretionaryExpenseRatio*100))
	tw.Flush()

	fmt.Fprintln(w, "\nDEBT SERVICE")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  existing\t%s\n", Money(m.Debt.ExistingDebtService))
	fmt.Fprintf(tw, "  pro-forma payment\t%s\n", Money(m.Debt.ProFormaPayment))
	fmt.Fprintf(tw, "  DSCR existing\t%s\n", dscr(m.Debt.DSCRExisting))
	fmt.Fprintf(tw, "  DSCR pro-forma\t%s\n", dscr(m.Debt.DSCRProForma))
	tw.Flush()

	fmt.Fprintln(w, "\nACTIVITY")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  transactions\t%d\n", m.TransactionCount)
	fmt.Fprintf(tw, "  average size\t%s\n", Money(m.AverageTransactionSize))
	fmt.Fprintf(tw, "  liquidity in/out\t%s / %s\n", Money(m.LiquidityIn), Money(m.LiquidityOut))
	tw.Flush()

	fmt.Fprintln(w, "\nSTABILITY")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  deposit CV\t%.2f\n", m.Stability.DepositCV)
	fmt.Fprintf(tw, "  deposit trend/month\t%.2f\n", m.Stability.DepositSlopePerMonth)
	fmt.Fprintf(tw, "  top payer share\t%s\n", Pct(m.Stability.TopPayerShare*100))
	fmt.Fprintf(tw, "  unique payers\t%d\n", m.Stability.UniquePayers)
	tw.Flush()

	fmt.Fprintln(w, "\nLIQUIDITY")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  avg daily balance\t%s\n", nullMoney(m.Liquidity.AvgDailyBalance))
	fmt.Fprintf(tw, "  min daily balance\t%s\n", nullMoney(m.Liquidity.MinDailyBalance))
	fmt.Fprintf(tw, "  days negative\t%d\n", m.Liquidity.DaysNegative)
	fmt.Fprintf(tw, "  NSF events\t%d (%s in fees)\n", m.Liquidity.NSFCount, Money(m.Liquidity.NSFFees))
	tw.Flush()

	fmt.Fprintln(w, "\nBUCKETS")
	RenderBuckets(w, m.BucketBreakdown, opts)

	if len(m.MonthlyRollup) > 0 {
		fmt.Fprintln(w, "\nMONTHLY")
		RenderRollup(w, m.MonthlyRollup)
	}

	if len(m.RecurringBills) > 0 {
		fmt.Fprintln(w, "\nRECURRING BILLS")
		tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, b := range m.RecurringBills {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\tx%d\tconf %.2f\n",
				b.Merchant, b.Category, Money(b.AvgAmount), b.Cadence, b.Count, b.Confidence)
		}
		tw.Flush()
	}

	if len(m.LoanSignals) > 0 {
		fmt.Fprintln(w, "\nLOAN SIGNALS")
		tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, s := range m.LoanSignals {
			fmt.Fprintf(tw, "  %s\t%s\t%s\tx%d\n", s.Lender, Money(s.AvgPayment), s.Cadence, s.Count)
		}
		tw.Flush()
	}

	fmt.Fprintln(w, "\nRED FLAGS")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  chargebacks\t%d\n", m.RedFlags.Chargebacks)
	fmt.Fprintf(tw, "  gambling/crypto\t%d\n", m.RedFlags.GamblingCryptoHits)
	fmt.Fprintf(tw, "  large cash withdrawals\t%d\n", m.RedFlags.LargeCashWithdrawals)
	fmt.Fprintf(tw, "  round cash deposits\t%d\n", m.RedFlags.RoundCashDeposits)
	tw.Flush()
}

// RenderBuckets writes the bucket breakdown table.
func RenderBuckets(w io.Writer, rows []model.BucketBreakdown, opts Options) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  BUCKET\tCNT\tTOTAL\t%\t")
	for _, r := range rows {
		line := fmt.Sprintf("  %s\t%d\t%s\t%s\t", r.Bucket, r.Count, Money(r.TotalAmount), Pct(r.PctOfTotal))
		if opts.ShowBars {
			line += Bar(r.PctOfTotal, opts.BarWidth)
		}
		fmt.Fprintln(tw, line)
	}
	tw.Flush()
}

// RenderRollup writes the monthly rollup table.
func RenderRollup(w io.Writer, rows []model.MonthlyRollup) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  MONTH\tDEPOSITS\tWITHDRAWALS\tNET\tCNT")
	for _, r := range rows {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%d\n",
			r.Month, Money(r.Deposits), Money(r.Withdrawals), Money(r.Net), r.Count)
	}
	tw.Flush()
}

func dscr(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *v)
}

func nullMoney(d decimal.NullDecimal) string {
	if !d.Valid {
		return "n/a"
	}
	return Money(d.Decimal)
}
