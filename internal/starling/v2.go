package starling

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"
)

// V2Transaction is a raw transaction record from the v2 transactions API.
// Amounts are still signed decimals in major units, but records are complete
// on first fetch: no per-transaction detail round trips.
type V2Transaction struct {
	TransactionUID   string              `json:"transactionUid"`
	Currency         string              `json:"currency"`
	Amount           decimal.Decimal     `json:"amount"`
	TransactionTime  string              `json:"transactionTime"`
	Reference        string              `json:"reference"`
	CounterPartyName string              `json:"counterPartyName"`
	Source           string              `json:"source"`
	SourceSubType    string              `json:"sourceSubType"`
	SpendingCategory string              `json:"spendingCategory"`
	Status           string              `json:"status"`
	Balance          decimal.NullDecimal `json:"balance"`
}

type v2TransactionsResponse struct {
	Transactions []V2Transaction `json:"transactions"`
}

// V2Transactions fetches the raw v2 transaction list for a date range,
// newest first.
func (c *Client) V2Transactions(ctx context.Context, from, to string) ([]V2Transaction, error) {
	path := fmt.Sprintf("/api/v2/transactions?from=%s&to=%s", url.QueryEscape(from), url.QueryEscape(to))

	var resp v2TransactionsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Transactions, nil
}
