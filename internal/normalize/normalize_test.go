package normalize

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starling-tools/starling-export/internal/model"
	"github.com/starling-tools/starling-export/internal/starling"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestParseTime(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2023-01-05", time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"2023-01-05T14:30:00Z", time.Date(2023, 1, 5, 14, 30, 0, 0, time.UTC)},
		{"2023-01-05T14:30:00.000Z", time.Date(2023, 1, 5, 14, 30, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := parseTime(tc.in)
		require.NoError(t, err, tc.in)
		assert.True(t, tc.want.Equal(got), "parsing %s", tc.in)
	}
}

func TestParseTime_Unrecognized(t *testing.T) {
	_, err := parseTime("05/01/2023")
	assert.Error(t, err)
}

func TestParseStatus_UnknownDefaultsToOther(t *testing.T) {
	assert.Equal(t, model.StatusSettled, parseStatus("SETTLED"))
	assert.Equal(t, model.StatusPending, parseStatus("PENDING"))
	assert.Equal(t, model.StatusOther, parseStatus("REFUNDED"))
	assert.Equal(t, model.StatusOther, parseStatus(""))
}

func TestFromV1_DirectDebit(t *testing.T) {
	txn, err := FromV1(starling.V1Transaction{
		ID:        "txn-1",
		Amount:    dec("-12.50"),
		Created:   "2023-01-05",
		Narrative: "Netflix",
		Source:    "DIRECT_DEBIT",
		Status:    "SETTLED",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(-1250), txn.Amount)
	assert.Equal(t, model.DirectionOut, txn.Direction)
	assert.Equal(t, model.StatusSettled, txn.Status)
	assert.Equal(t, "-12.50", txn.AmountDecimal().StringFixed(2))
	assert.True(t, txn.Cleared())
	assert.Equal(t, "DIRECT_DEBIT - Netflix", txn.Memo)
	assert.Equal(t, "Netflix", txn.Counterparty)
	assert.Equal(t, 5, txn.Timestamp.Day())
}

func TestFromV1_BadCreated(t *testing.T) {
	_, err := FromV1(starling.V1Transaction{ID: "txn-1", Created: "not a date"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing created")
}

func TestFromV2(t *testing.T) {
	txn, err := FromV2(starling.V2Transaction{
		TransactionUID:   "uid-9",
		Amount:           dec("20.00"),
		TransactionTime:  "2023-02-10T09:15:00Z",
		Reference:        "Salary Feb",
		CounterPartyName: "Acme Ltd",
		Source:           "FASTER_PAYMENTS_IN",
		SpendingCategory: "INCOME",
		Status:           "PENDING",
		Balance:          decimal.NewNullDecimal(dec("120.00")),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2000), txn.Amount)
	assert.Equal(t, model.DirectionIn, txn.Direction)
	assert.Equal(t, model.StatusPending, txn.Status)
	assert.False(t, txn.Cleared())
	assert.Equal(t, "Acme Ltd", txn.Counterparty)
	assert.Equal(t, "Salary Feb", txn.Memo)
	assert.Equal(t, "INCOME", txn.RawCategory)
	assert.True(t, txn.Balance.Valid)
	assert.Equal(t, "120.00", txn.Balance.Decimal.StringFixed(2))
}

func TestFromFeedItem_OutgoingIsNegative(t *testing.T) {
	txn, err := FromFeedItem(starling.FeedItem{
		FeedItemUID:      "feed-1",
		Amount:           starling.FeedAmount{Currency: "GBP", MinorUnits: 1250},
		Direction:        "OUT",
		TransactionTime:  "2023-01-05T18:00:00Z",
		CounterPartyName: "Tesco",
		SpendingCategory: "GROCERIES",
		Status:           "SETTLED",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(-1250), txn.Amount)
	assert.Equal(t, model.DirectionOut, txn.Direction)
	assert.False(t, txn.Balance.Valid)
}

func TestFromFeedItem_IncomingStaysPositive(t *testing.T) {
	txn, err := FromFeedItem(starling.FeedItem{
		FeedItemUID:     "feed-2",
		Amount:          starling.FeedAmount{MinorUnits: 500},
		Direction:       "IN",
		TransactionTime: "2023-01-06T08:00:00Z",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(500), txn.Amount)
	assert.Equal(t, model.DirectionIn, txn.Direction)
}

// The provider should send magnitudes, but a signed minor-units value with
// direction OUT must still come out negative exactly once.
func TestFromFeedItem_SignedWireAmount(t *testing.T) {
	txn, err := FromFeedItem(starling.FeedItem{
		FeedItemUID:     "feed-3",
		Amount:          starling.FeedAmount{MinorUnits: -700},
		Direction:       "OUT",
		TransactionTime: "2023-01-07T08:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(-700), txn.Amount)
}

// Sign and direction must agree for every generation's output.
func TestSignMatchesDirection(t *testing.T) {
	v1out, err := FromV1(starling.V1Transaction{ID: "a", Amount: dec("-3.20"), Created: "2023-01-01"})
	require.NoError(t, err)
	v1in, err := FromV1(starling.V1Transaction{ID: "b", Amount: dec("3.20"), Created: "2023-01-01"})
	require.NoError(t, err)
	v2out, err := FromV2(starling.V2Transaction{TransactionUID: "c", Amount: dec("-9.99"), TransactionTime: "2023-01-01"})
	require.NoError(t, err)
	feedOut, err := FromFeedItem(starling.FeedItem{FeedItemUID: "d", Amount: starling.FeedAmount{MinorUnits: 999}, Direction: "OUT", TransactionTime: "2023-01-01"})
	require.NoError(t, err)

	for _, txn := range []model.Transaction{v1out, v1in, v2out, feedOut} {
		if txn.Direction == model.DirectionOut {
			assert.Less(t, txn.Amount, int64(0), txn.ID)
		} else {
			assert.GreaterOrEqual(t, txn.Amount, int64(0), txn.ID)
		}
	}
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry(nil)

	assert.NotNil(t, r.Get("v1"))
	assert.NotNil(t, r.Get("V2"))
	assert.NotNil(t, r.Get("feed"))
	assert.Nil(t, r.Get("v3"))
	assert.Len(t, r.Versions(), 3)
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&V1Source{})
	assert.Panics(t, func() { r.Register(&V1Source{}) })
}
