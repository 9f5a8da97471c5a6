package category

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/starling-tools/starling-export/internal/model"
)

func TestMap_TableHit(t *testing.T) {
	m := ForVersion("v1")

	assert.Equal(t, "Groceries", m.Map(model.Transaction{RawCategory: "GROCERIES"}))
	assert.Equal(t, "Dining:Restaurants", m.Map(model.Transaction{RawCategory: "EATING_OUT"}))
	assert.Equal(t, "Travel", m.Map(model.Transaction{RawCategory: "HOLIDAYS"}))
	assert.Equal(t, "Travel", m.Map(model.Transaction{RawCategory: "TRANSPORT"}))
}

// A code that is present but maps to nothing is terminal: it must not fall
// through to the ATM or interest checks.
func TestMap_PresentButEmptyIsTerminal(t *testing.T) {
	m := ForVersion("v1")

	txn := model.Transaction{RawCategory: "GENERAL", SubType: "ATM"}
	assert.Equal(t, "", m.Map(txn))
}

func TestMap_ATMFallback(t *testing.T) {
	m := ForVersion("v1")

	assert.Equal(t, "ATM", m.Map(model.Transaction{SubType: "ATM"}))
	assert.Equal(t, "ATM", m.Map(model.Transaction{RawCategory: "NOT_IN_TABLE", SubType: "ATM"}))
}

func TestMap_InterestFallback(t *testing.T) {
	m := ForVersion("v1")

	assert.Equal(t, "Interest Received", m.Map(model.Transaction{Source: "INTEREST_PAYMENT"}))
	assert.Equal(t, "Interest Received", m.Map(model.Transaction{SubType: "INTEREST_PAYMENT"}))
}

func TestMap_NoMatch(t *testing.T) {
	m := ForVersion("v1")

	assert.Equal(t, "", m.Map(model.Transaction{}))
	assert.Equal(t, "", m.Map(model.Transaction{RawCategory: "UNKNOWN", Source: "MASTER_CARD"}))
}

func TestMap_VersionTablesDiffer(t *testing.T) {
	// INCOME only exists from v2 on; CHARITY only on the feed API.
	assert.Equal(t, "", ForVersion("v1").Map(model.Transaction{RawCategory: "INCOME"}))
	assert.Equal(t, "Income", ForVersion("v2").Map(model.Transaction{RawCategory: "INCOME"}))
	assert.Equal(t, "", ForVersion("v2").Map(model.Transaction{RawCategory: "CHARITY"}))
	assert.Equal(t, "Charity", ForVersion("feed").Map(model.Transaction{RawCategory: "CHARITY"}))
	assert.Equal(t, "Pets", ForVersion("feed").Map(model.Transaction{RawCategory: "PETS"}))

	// The original vocabulary survives in every table.
	for _, v := range []string{"v1", "v2", "feed"} {
		assert.Equal(t, "Groceries", ForVersion(v).Map(model.Transaction{RawCategory: "GROCERIES"}), v)
	}
}

func TestMap_Idempotent(t *testing.T) {
	m := ForVersion("feed")
	txn := model.Transaction{RawCategory: "SHOPPING", SubType: "ATM"}

	first := m.Map(txn)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, m.Map(txn))
	}
	assert.Equal(t, "Clothing", first)
}
