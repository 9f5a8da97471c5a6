package normalize

import (
	"context"
	"fmt"

	"github.com/starling-tools/starling-export/internal/model"
	"github.com/starling-tools/starling-export/internal/starling"
)

// V2Source normalizes the middle API generation: complete records with
// counterparty and reference fields, amounts still signed decimals.
type V2Source struct {
	client *starling.Client
}

// Version returns the source name.
func (s *V2Source) Version() string { return "v2" }

// Transactions fetches and normalizes v2 transactions for the range.
func (s *V2Source) Transactions(ctx context.Context, r model.DateRange) ([]model.Transaction, error) {
	raw, err := s.client.V2Transactions(ctx, r.From.Format(dateOnly), r.To.Format(dateOnly))
	if err != nil {
		return nil, err
	}

	txns := make([]model.Transaction, 0, len(raw))
	for _, rt := range raw {
		txn, err := FromV2(rt)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", rt.TransactionUID, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// FromV2 converts a raw v2 record to canonical form.
func FromV2(rt starling.V2Transaction) (model.Transaction, error) {
	ts, err := parseTime(rt.TransactionTime)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing transactionTime: %w", err)
	}

	minorUnits := rt.Amount.Shift(2).IntPart()

	return model.Transaction{
		ID:           rt.TransactionUID,
		Timestamp:    ts,
		Amount:       minorUnits,
		Direction:    directionFromAmount(minorUnits),
		Status:       parseStatus(rt.Status),
		Counterparty: rt.CounterPartyName,
		Memo:         rt.Reference,
		RawCategory:  rt.SpendingCategory,
		Source:       rt.Source,
		SubType:      rt.SourceSubType,
		Balance:      rt.Balance,
	}, nil
}
