package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starling-tools/starling-export/internal/category"
	"github.com/starling-tools/starling-export/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestQIFWriter_SettledDirectDebit(t *testing.T) {
	var buf bytes.Buffer
	qw := NewQIFWriter(&buf, category.ForVersion("v1"))

	require.NoError(t, qw.WriteHeader())
	require.NoError(t, qw.Write(model.Transaction{
		ID:           "txn-1",
		Timestamp:    date(2023, 1, 5),
		Amount:       -1250,
		Direction:    model.DirectionOut,
		Status:       model.StatusSettled,
		Counterparty: "Netflix",
		Memo:         "DIRECT_DEBIT - Netflix",
		Source:       "DIRECT_DEBIT",
	}))

	want := "!Type:Bank\n" +
		"D05/01/2023\n" +
		"T-12.50\n" +
		"Cc\n" +
		"MDIRECT_DEBIT - Netflix\n" +
		"PNetflix\n" +
		"NPOS\n" +
		"^\n"
	assert.Equal(t, want, buf.String())
}

func TestQIFWriter_PendingOmitsClearedFlag(t *testing.T) {
	var buf bytes.Buffer
	qw := NewQIFWriter(&buf, category.ForVersion("feed"))

	require.NoError(t, qw.Write(model.Transaction{
		ID:          "txn-2",
		Timestamp:   date(2023, 2, 1),
		Amount:      500,
		Direction:   model.DirectionIn,
		Status:      model.StatusPending,
		RawCategory: "GROCERIES",
	}))

	out := buf.String()
	assert.NotContains(t, out, "Cc")
	assert.Contains(t, out, "T5.00\n")
	assert.Contains(t, out, "NDeposit\n")
	assert.Contains(t, out, "LGroceries\n")
}

func TestQIFWriter_UnknownStatusNotCleared(t *testing.T) {
	var buf bytes.Buffer
	qw := NewQIFWriter(&buf, category.ForVersion("v1"))

	require.NoError(t, qw.Write(model.Transaction{
		ID:        "txn-3",
		Timestamp: date(2023, 3, 9),
		Amount:    -100,
		Status:    model.StatusOther,
	}))
	assert.NotContains(t, buf.String(), "C")
}

func TestQIFWriter_EmptyFieldsOmitted(t *testing.T) {
	var buf bytes.Buffer
	qw := NewQIFWriter(&buf, category.ForVersion("v1"))

	require.NoError(t, qw.Write(model.Transaction{
		ID:        "txn-4",
		Timestamp: date(2023, 4, 2),
		Amount:    -315,
	}))

	want := "D02/04/2023\n" +
		"T-3.15\n" +
		"NPOS\n" +
		"^\n"
	assert.Equal(t, want, buf.String())
}
