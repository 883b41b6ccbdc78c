package underwriting

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cashlens-dev/cashlens/internal/model"
)

var (
	chargebackKeywords = []string{"chargeback", "return item", "reversal", "ach r0"}
	gamblingKeywords   = []string{"casino", "bet", "gambl", "crypto", "coinbase", "binance"}
	cashKeywords       = []string{"cash", "atm"}

	largeCashThreshold    = decimal.NewFromInt(1000)
	roundDepositThreshold = decimal.NewFromInt(500)
	roundDepositUnit      = decimal.NewFromInt(100)
)

// RiskFlags scans descriptions for red-flag heuristics. The counters are
// independent; one transaction may trigger several.
func RiskFlags(txns []model.Transaction) model.RedFlags {
	var flags model.RedFlags

	for _, t := range txns {
		desc := strings.ToLower(t.Description)
		amount := t.Amount.Abs()

		if containsAny(desc, chargebackKeywords) {
			flags.Chargebacks++
		}
		if containsAny(desc, gamblingKeywords) {
			flags.GamblingCryptoHits++
		}
		if t.Direction == model.Debit && containsAny(desc, cashKeywords) &&
			amount.GreaterThanOrEqual(largeCashThreshold) {
			flags.LargeCashWithdrawals++
		}
		if t.Direction == model.Credit && containsAny(desc, cashKeywords) &&
			amount.Mod(roundDepositUnit).IsZero() &&
			amount.GreaterThanOrEqual(roundDepositThreshold) {
			flags.RoundCashDeposits++
		}
	}

	return flags
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
