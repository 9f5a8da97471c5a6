// Package classify derives the short reference label stamped on each
// exported transaction.
package classify

import "github.com/starling-tools/starling-export/internal/model"

// The five possible labels.
const (
	Online   = "Online"
	ATM      = "ATM"
	Transfer = "Transfer"
	Deposit  = "Deposit"
	POS      = "POS"
)

// Label classifies a transaction. Checks run in strict priority order and
// the first match wins, so an ATM withdrawal stays "ATM" even when the
// amount is positive.
func Label(txn model.Transaction) string {
	switch {
	case txn.SubType == "ONLINE":
		return Online
	case txn.SubType == "ATM":
		return ATM
	case txn.Source == "INTERNAL_TRANSFER":
		return Transfer
	case txn.Amount > 0:
		return Deposit
	}
	return POS
}
