package underwriting

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/cashlens-dev/cashlens/internal/model"
)

// reconcileTolerance is zero: statements must balance to the cent.
var reconcileTolerance = decimal.Zero

// Reconcile verifies that opening balance + net change matches the
// closing balance within tolerance. It never returns an error: missing
// metadata or a missing (nil) transaction list yields false, and an
// empty statement reconciles only when opening equals closing. A
// mismatch is logged as an upstream data-quality signal.
func Reconcile(meta *model.StatementMetadata, txns []model.Transaction) bool {
	if meta == nil || txns == nil {
		return false
	}

	net := decimal.Zero
	for _, t := range txns {
		switch t.Direction {
		case model.Credit:
			net = net.Add(t.Amount.Abs())
		case model.Debit:
			net = net.Sub(t.Amount.Abs())
		}
	}

	expected := meta.OpeningBalance.Add(net)
	diff := expected.Sub(meta.ClosingBalance).Abs()
	balanced := diff.LessThanOrEqual(reconcileTolerance)

	if !balanced {
		logrus.WithFields(logrus.Fields{
			"document_id": meta.DocumentID,
			"opening":     meta.OpeningBalance.StringFixed(2),
			"net_change":  net.StringFixed(2),
			"expected":    expected.StringFixed(2),
			"closing":     meta.ClosingBalance.StringFixed(2),
			"difference":  diff.StringFixed(2),
		}).Warn("statement does not reconcile")
	}

	return balanced
}
