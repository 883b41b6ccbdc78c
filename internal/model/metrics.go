package model

import "github.com/shopspring/decimal"

// Cadence is the inferred payment frequency of a recurring pattern,
// classified from the median interval between occurrences.
type Cadence string

const (
	CadenceMonthly   Cadence = "monthly"
	CadenceBiweekly  Cadence = "biweekly"
	CadenceWeekly    Cadence = "weekly"
	CadenceIrregular Cadence = "irregular"
)

// MonthlyRollup aggregates one calendar month of activity. Deposits and
// withdrawals exclude liquidity movements; Count includes every
// transaction dated in the month.
type MonthlyRollup struct {
	Month       string // "YYYY-MM"
	Deposits    decimal.Decimal
	Withdrawals decimal.Decimal
	Net         decimal.Decimal
	Count       int
}

// RecurringBill is a detected recurring debit pattern for one
// (merchant, category) pair.
type RecurringBill struct {
	Merchant   string
	Category   Category
	AvgAmount  decimal.Decimal
	Cadence    Cadence
	Count      int
	Confidence float64 // 0..1
}

// LoanSignal is a detected repeated financing payment to one lender.
type LoanSignal struct {
	Lender     string
	AvgPayment decimal.Decimal
	Cadence    Cadence
	Count      int
}

// BucketBreakdown summarizes one risk bucket's share of total activity.
type BucketBreakdown struct {
	Bucket      RiskBucket
	Count       int
	TotalAmount decimal.Decimal // sum of absolute amounts
	PctOfTotal  float64         // 0..100
}

// StabilityStats measures income stability across the statement period.
type StabilityStats struct {
	DepositCV            float64 // population coefficient of variation of monthly deposits
	DepositSlopePerMonth float64 // OLS trend of monthly deposits
	TopPayerShare        float64 // 0..1
	UniquePayers         int
}

// LiquidityStats measures the account's cash cushion. The balance fields
// are null when no record carried a running balance.
type LiquidityStats struct {
	AvgDailyBalance decimal.NullDecimal
	MinDailyBalance decimal.NullDecimal
	DaysNegative    int
	NSFCount        int
	NSFFees         decimal.Decimal
}

// ProcessorTotal is one payment processor's settled deposit total.
type ProcessorTotal struct {
	Name  string
	Total decimal.Decimal
}

// ProcessorMix breaks deposits down by settlement channel.
type ProcessorMix struct {
	CardSettlements decimal.Decimal
	ACHWires        decimal.Decimal
	Other           decimal.Decimal
	TopProcessors   []ProcessorTotal // at most 5, descending by total
}

// RedFlags counts risk heuristics triggered across the transaction list.
// A single transaction may increment several counters.
type RedFlags struct {
	Chargebacks          int
	GamblingCryptoHits   int
	LargeCashWithdrawals int
	RoundCashDeposits    int
}

// RiskRating is the letter grade attached to a composite risk score.
type RiskRating string

const (
	RatingA RiskRating = "A"
	RatingB RiskRating = "B"
	RatingC RiskRating = "C"
	RatingD RiskRating = "D"
)

// RiskScore is the composite 0-100 underwriting score and its grade.
type RiskScore struct {
	Score  int
	Rating RiskRating
}

// CashFlowMetrics are the headline cash-flow figures, with liquidity
// movements excluded from income and expenses.
type CashFlowMetrics struct {
	Income                    decimal.Decimal
	Expenses                  decimal.Decimal
	NetCashFlow               decimal.Decimal
	CashFlowMargin            float64 // percent, 0..100
	OperatingExpenses         decimal.Decimal
	DiscretionaryExpenses     decimal.Decimal
	OperatingExpenseRatio     float64
	DiscretionaryExpenseRatio float64
}

// DebtMetrics cover existing debt service and the pro-forma scenario.
// The DSCR values are nil when the corresponding debt service is zero.
type DebtMetrics struct {
	ExistingDebtService decimal.Decimal
	ProFormaPayment     decimal.Decimal
	DSCRExisting        *float64
	DSCRProForma        *float64
}

// UnderwritingMetrics is the aggregate result of one analysis run. It is
// assembled once by the orchestrator and never mutated afterwards.
type UnderwritingMetrics struct {
	CashFlow CashFlowMetrics
	Debt     DebtMetrics

	LiquidityIn  decimal.Decimal
	LiquidityOut decimal.Decimal

	TransactionCount       int
	AverageTransactionSize decimal.Decimal

	Stability    StabilityStats
	ProcessorMix ProcessorMix
	Liquidity    LiquidityStats

	RecurringBills  []RecurringBill
	LoanSignals     []LoanSignal
	BucketBreakdown []BucketBreakdown
	MonthlyRollup   []MonthlyRollup

	RedFlags  RedFlags
	RiskScore RiskScore
}
