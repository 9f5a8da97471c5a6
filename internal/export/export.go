// Package export serializes canonical transactions to the QIF and CSV
// interchange formats. Callers hand over transactions newest first, as the
// API returns them; files are written most-recent-last.
package export

import (
	"fmt"
	"io"
	"os"

	"github.com/starling-tools/starling-export/internal/category"
	"github.com/starling-tools/starling-export/internal/model"
)

// WriteQIFFile writes txns (newest first) to a QIF file at path, oldest
// first, echoing a progress line per record to console. The file handle is
// closed on every exit path; a failed write may leave a partial file but
// never an open descriptor.
func WriteQIFFile(path string, txns []model.Transaction, mapper category.Mapper, console io.Writer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	qw := NewQIFWriter(f, mapper)
	if err := qw.WriteHeader(); err != nil {
		return err
	}

	progress := NewProgress(console, len(txns))
	for i := len(txns) - 1; i >= 0; i-- {
		txn := txns[i]
		progress.Line(len(txns)-i, txn)
		if err := qw.Write(txn); err != nil {
			return err
		}
	}
	return f.Close()
}

// WriteCSVFile writes txns (newest first) to a CSV file at path, oldest
// first, echoing a progress line per record to console.
func WriteCSVFile(path string, txns []model.Transaction, console io.Writer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	cw := NewCSVWriter(f)
	if err := cw.WriteHeader(); err != nil {
		return err
	}

	progress := NewProgress(console, len(txns))
	for i := len(txns) - 1; i >= 0; i-- {
		txn := txns[i]
		progress.Line(len(txns)-i, txn)
		if err := cw.Write(txn); err != nil {
			return err
		}
	}
	if err := cw.Flush(); err != nil {
		return err
	}
	return f.Close()
}
