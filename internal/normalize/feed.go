package normalize

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/starling-tools/starling-export/internal/model"
	"github.com/starling-tools/starling-export/internal/starling"
)

// FeedSource normalizes the newest API generation: feed items with nested
// minor-units amounts and an explicit direction. Account resolution happens
// inside the client, once per job.
type FeedSource struct {
	client *starling.Client
}

// Version returns the source name.
func (s *FeedSource) Version() string { return "feed" }

// Transactions fetches and normalizes feed items for the range. The feed
// endpoint takes timestamps, so the inclusive To date is widened to the end
// of its day.
func (s *FeedSource) Transactions(ctx context.Context, r model.DateRange) ([]model.Transaction, error) {
	min := r.From.UTC().Format(time.RFC3339)
	max := r.To.UTC().Add(24 * time.Hour).Format(time.RFC3339)

	raw, err := s.client.FeedItems(ctx, min, max)
	if err != nil {
		return nil, err
	}

	txns := make([]model.Transaction, 0, len(raw))
	for _, item := range raw {
		txn, err := FromFeedItem(item)
		if err != nil {
			return nil, fmt.Errorf("feed item %s: %w", item.FeedItemUID, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// FromFeedItem converts a raw feed item to canonical form. The wire amount
// is a magnitude; the sign comes from the direction field, so an OUT item
// always yields a negative amount regardless of how the provider encoded it.
func FromFeedItem(item starling.FeedItem) (model.Transaction, error) {
	ts, err := parseTime(item.TransactionTime)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing transactionTime: %w", err)
	}

	minorUnits := item.Amount.MinorUnits
	if minorUnits < 0 {
		minorUnits = -minorUnits
	}
	direction := model.DirectionIn
	if item.Direction == "OUT" {
		direction = model.DirectionOut
		minorUnits = -minorUnits
	}

	return model.Transaction{
		ID:           item.FeedItemUID,
		Timestamp:    ts,
		Amount:       minorUnits,
		Direction:    direction,
		Status:       parseStatus(item.Status),
		Counterparty: item.CounterPartyName,
		Memo:         item.Reference,
		RawCategory:  item.SpendingCategory,
		Source:       item.Source,
		SubType:      item.SourceSubType,
		Balance:      decimal.NullDecimal{},
	}, nil
}
