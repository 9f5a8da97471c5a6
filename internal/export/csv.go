package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/starling-tools/starling-export/internal/model"
)

// Header is the CSV header row.
const Header = "date,description,amount,balance"

const (
	numFields     = 4
	csvDateFormat = "02/01/06"
	colDate       = 0
	colDesc       = 1
	colAmount     = 2
	colBalance    = 3
)

// Row is one parsed CSV row. Balance is empty where the source API does not
// report a running balance.
type Row struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Balance     decimal.NullDecimal
}

// CSVWriter serializes canonical transactions as CSV rows.
type CSVWriter struct {
	cw *csv.Writer
}

// NewCSVWriter creates a CSVWriter.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{cw: csv.NewWriter(w)}
}

// WriteHeader writes the header row. Call once, before any records.
func (c *CSVWriter) WriteHeader() error {
	if err := c.cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	return nil
}

// Write appends one transaction row.
func (c *CSVWriter) Write(txn model.Transaction) error {
	row := make([]string, numFields)
	row[colDate] = txn.Timestamp.Format(csvDateFormat)
	row[colDesc] = txn.Counterparty
	row[colAmount] = txn.AmountDecimal().StringFixed(2)
	if txn.Balance.Valid {
		row[colBalance] = txn.Balance.Decimal.StringFixed(2)
	}

	if err := c.cw.Write(row); err != nil {
		return fmt.Errorf("writing CSV row %s: %w", txn.ID, err)
	}
	return nil
}

// Flush writes buffered rows and reports any accumulated write error.
func (c *CSVWriter) Flush() error {
	c.cw.Flush()
	return c.cw.Error()
}

// ReadRows parses an exported CSV back into rows, skipping the header.
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var rows []Row
	for i, rec := range records[1:] {
		row, err := unmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func unmarshalRow(rec []string) (Row, error) {
	date, err := time.Parse(csvDateFormat, rec[colDate])
	if err != nil {
		return Row{}, fmt.Errorf("parsing date %q: %w", rec[colDate], err)
	}

	amount, err := decimal.NewFromString(rec[colAmount])
	if err != nil {
		return Row{}, fmt.Errorf("parsing amount %q: %w", rec[colAmount], err)
	}

	var balance decimal.NullDecimal
	if rec[colBalance] != "" {
		b, err := decimal.NewFromString(rec[colBalance])
		if err != nil {
			return Row{}, fmt.Errorf("parsing balance %q: %w", rec[colBalance], err)
		}
		balance = decimal.NewNullDecimal(b)
	}

	return Row{
		Date:        date,
		Description: rec[colDesc],
		Amount:      amount,
		Balance:     balance,
	}, nil
}
