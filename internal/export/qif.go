package export

import (
	"fmt"
	"io"

	"github.com/starling-tools/starling-export/internal/category"
	"github.com/starling-tools/starling-export/internal/classify"
	"github.com/starling-tools/starling-export/internal/model"
)

// qifDateFormat is the dd/mm/yyyy date layout QIF consumers expect.
const qifDateFormat = "02/01/2006"

// QIFWriter serializes canonical transactions as a QIF bank register.
type QIFWriter struct {
	w      io.Writer
	mapper category.Mapper
}

// NewQIFWriter creates a QIFWriter that annotates records with the given
// category mapper.
func NewQIFWriter(w io.Writer, mapper category.Mapper) *QIFWriter {
	return &QIFWriter{w: w, mapper: mapper}
}

// WriteHeader writes the QIF type header. Call once, before any records.
func (q *QIFWriter) WriteHeader() error {
	if _, err := fmt.Fprintln(q.w, "!Type:Bank"); err != nil {
		return fmt.Errorf("writing QIF header: %w", err)
	}
	return nil
}

// Write appends one transaction record. Empty fields are omitted; the
// cleared marker is only written for settled transactions.
func (q *QIFWriter) Write(txn model.Transaction) error {
	lines := []struct {
		tag   byte
		value string
	}{
		{'D', txn.Timestamp.Format(qifDateFormat)},
		{'T', txn.AmountDecimal().StringFixed(2)},
		{'C', clearedFlag(txn)},
		{'M', txn.Memo},
		{'P', txn.Counterparty},
		{'N', classify.Label(txn)},
		{'L', q.mapper.Map(txn)},
	}

	for _, line := range lines {
		if line.value == "" {
			continue
		}
		if _, err := fmt.Fprintf(q.w, "%c%s\n", line.tag, line.value); err != nil {
			return fmt.Errorf("writing QIF record %s: %w", txn.ID, err)
		}
	}
	if _, err := fmt.Fprintln(q.w, "^"); err != nil {
		return fmt.Errorf("writing QIF record %s: %w", txn.ID, err)
	}
	return nil
}

func clearedFlag(txn model.Transaction) string {
	if txn.Cleared() {
		return "c"
	}
	return ""
}
