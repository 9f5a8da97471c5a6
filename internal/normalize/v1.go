package normalize

import (
	"context"
	"fmt"

	"github.com/starling-tools/starling-export/internal/model"
	"github.com/starling-tools/starling-export/internal/starling"
)

const dateOnly = "2006-01-02"

// V1Source normalizes the oldest API generation: signed decimal amounts,
// `created` timestamps, `narrative` descriptions, detail fetches handled by
// the client.
type V1Source struct {
	client *starling.Client
}

// Version returns the source name.
func (s *V1Source) Version() string { return "v1" }

// Transactions fetches and normalizes v1 transactions for the range.
func (s *V1Source) Transactions(ctx context.Context, r model.DateRange) ([]model.Transaction, error) {
	raw, err := s.client.V1Transactions(ctx, r.From.Format(dateOnly), r.To.Format(dateOnly))
	if err != nil {
		return nil, err
	}

	txns := make([]model.Transaction, 0, len(raw))
	for _, rt := range raw {
		txn, err := FromV1(rt)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", rt.ID, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// FromV1 converts a raw v1 record to canonical form.
func FromV1(rt starling.V1Transaction) (model.Transaction, error) {
	ts, err := parseTime(rt.Created)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing created: %w", err)
	}

	minorUnits := rt.Amount.Shift(2).IntPart()

	return model.Transaction{
		ID:           rt.ID,
		Timestamp:    ts,
		Amount:       minorUnits,
		Direction:    directionFromAmount(minorUnits),
		Status:       parseStatus(rt.Status),
		Counterparty: rt.Narrative,
		Memo:         fmt.Sprintf("%s - %s", rt.Source, rt.Narrative),
		RawCategory:  rt.SpendingCategory,
		Source:       rt.Source,
		SubType:      rt.MastercardTransactionMethod,
		Balance:      rt.Balance,
	}, nil
}
