package starling

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"
)

// V1Transaction is a raw transaction record from the v1 API. Amount is a
// signed decimal in major units. MastercardTransactionMethod and
// SpendingCategory are only populated after an extended-detail fetch.
type V1Transaction struct {
	ID                          string              `json:"id"`
	Currency                    string              `json:"currency"`
	Amount                      decimal.Decimal     `json:"amount"`
	Created                     string              `json:"created"`
	Narrative                   string              `json:"narrative"`
	Source                      string              `json:"source"`
	Status                      string              `json:"status"`
	Balance                     decimal.NullDecimal `json:"balance"`
	MastercardTransactionMethod string              `json:"mastercardTransactionMethod"`
	SpendingCategory            string              `json:"spendingCategory"`
}

type v1TransactionsResponse struct {
	Embedded struct {
		Transactions []V1Transaction `json:"transactions"`
	} `json:"_embedded"`
}

// v1AccountResponse is the v1 accounts payload (a single account object).
type v1AccountResponse struct {
	ID            string `json:"id"`
	AccountNumber string `json:"accountNumber"`
	SortCode      string `json:"sortCode"`
	Currency      string `json:"currency"`
}

type v1BalanceResponse struct {
	AvailableToSpend decimal.Decimal `json:"availableToSpend"`
	Currency         string          `json:"currency"`
}

// V1Transactions fetches the raw v1 transaction list for a date range,
// newest first, and resolves extended details for every record whose source
// has a detail endpoint. Detail fetches are issued sequentially, one per
// transaction, so a range of N transactions costs up to N+1 requests.
func (c *Client) V1Transactions(ctx context.Context, from, to string) ([]V1Transaction, error) {
	path := fmt.Sprintf("/api/v1/transactions?from=%s&to=%s", url.QueryEscape(from), url.QueryEscape(to))

	var resp v1TransactionsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}

	txns := resp.Embedded.Transactions
	for i, txn := range txns {
		detail, err := c.v1ExtendedDetails(ctx, txn)
		if err != nil {
			return nil, fmt.Errorf("extended details for %s: %w", txn.ID, err)
		}
		txns[i] = detail
	}
	return txns, nil
}

// v1ExtendedDetails fetches the full record for sources that have a detail
// endpoint. Transactions with unmapped sources pass through unmodified.
func (c *Client) v1ExtendedDetails(ctx context.Context, txn V1Transaction) (V1Transaction, error) {
	detailPath := v1DetailPath(txn.Source)
	if detailPath == "" {
		return txn, nil
	}

	var detail V1Transaction
	if err := c.get(ctx, fmt.Sprintf("/api/v1/transactions/%s/%s", detailPath, txn.ID), &detail); err != nil {
		return V1Transaction{}, err
	}
	return detail, nil
}

func v1DetailPath(source string) string {
	switch source {
	case "MASTER_CARD":
		return "mastercard"
	case "FASTER_PAYMENTS_IN":
		return "fps/in"
	case "FASTER_PAYMENTS_OUT":
		return "fps/out"
	case "DIRECT_DEBIT":
		return "direct-debit"
	}
	return ""
}

// V1Account fetches the account number and sort code via the v1 API.
func (c *Client) V1Account(ctx context.Context) (Account, error) {
	var resp v1AccountResponse
	if err := c.get(ctx, "/api/v1/accounts", &resp); err != nil {
		return Account{}, err
	}
	return Account{
		UID:           resp.ID,
		AccountNumber: resp.AccountNumber,
		SortCode:      resp.SortCode,
	}, nil
}

// V1Balance fetches the spendable balance in major units via the v1 API.
func (c *Client) V1Balance(ctx context.Context) (decimal.Decimal, error) {
	var resp v1BalanceResponse
	if err := c.get(ctx, "/api/v1/accounts/balance", &resp); err != nil {
		return decimal.Zero, err
	}
	return resp.AvailableToSpend, nil
}
