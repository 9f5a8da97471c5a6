// Package category maps provider spending-category codes onto the labels
// downstream accounting tools expect. Tables are explicit per-version data:
// the vocabularies drifted across API generations and must not be inferred.
package category

import (
	"strings"

	"github.com/starling-tools/starling-export/internal/model"
)

// Mapper resolves output categories for one API generation's vocabulary.
type Mapper struct {
	table map[string]string
}

// ForVersion returns the Mapper for an API version name. Unknown versions
// get the newest table.
func ForVersion(version string) Mapper {
	switch strings.ToLower(version) {
	case "v1":
		return Mapper{table: v1Table}
	case "v2":
		return Mapper{table: v2Table}
	}
	return Mapper{table: feedTable}
}

// Map returns the output category for a transaction, or "" when none
// applies. The fallback chain is evaluated in order, first match wins:
// a raw category present in the table is terminal even when it maps to
// nothing, then ATM withdrawals, then interest payments.
func (m Mapper) Map(txn model.Transaction) string {
	if txn.RawCategory != "" {
		if mapped, ok := m.table[txn.RawCategory]; ok {
			return mapped
		}
	}
	if txn.SubType == "ATM" {
		return "ATM"
	}
	if txn.Source == "INTEREST_PAYMENT" || txn.SubType == "INTEREST_PAYMENT" {
		return "Interest Received"
	}
	return ""
}
