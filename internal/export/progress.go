package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"github.com/starling-tools/starling-export/internal/model"
)

var (
	inflow  = color.New(color.FgGreen)
	outflow = color.New(color.FgRed)
)

// Progress renders one console line per exported transaction. Purely
// observational; color degrades to plain text on non-terminal output.
type Progress struct {
	out   io.Writer
	total int
	width int
}

// NewProgress creates a Progress for a run of total transactions.
func NewProgress(out io.Writer, total int) *Progress {
	return &Progress{
		out:   out,
		total: total,
		width: len(strconv.Itoa(total)),
	}
}

// Line prints the progress line for the index-th transaction (1-based):
// [i/N] <date> - <id> - <signed amount>, inflows green, outflows red.
func (p *Progress) Line(index int, txn model.Transaction) {
	amount := txn.AmountDecimal().StringFixed(2)
	if txn.Amount > 0 {
		amount = inflow.Sprint(amount)
	} else {
		amount = outflow.Sprint(amount)
	}

	fmt.Fprintf(p.out, "[%*d/%d] %s - %s - %s\n",
		p.width, index, p.total, txn.Timestamp.Format("2006-01-02"), txn.ID, amount)
}
