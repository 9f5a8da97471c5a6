package export

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/starling-tools/starling-export/internal/model"
)

func TestProgress_Line(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	var buf bytes.Buffer
	p := NewProgress(&buf, 12)

	p.Line(3, model.Transaction{ID: "txn-3", Timestamp: date(2023, 1, 5), Amount: -1250})
	p.Line(10, model.Transaction{ID: "txn-10", Timestamp: date(2023, 1, 6), Amount: 500})

	lines := buf.String()
	assert.Contains(t, lines, "[ 3/12] 2023-01-05 - txn-3 - -12.50\n")
	assert.Contains(t, lines, "[10/12] 2023-01-06 - txn-10 - 5.00\n")
}
