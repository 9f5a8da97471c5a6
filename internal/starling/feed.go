package starling

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"
)

// Account identifies the bank account an export runs against, as resolved
// from the v2 accounts endpoint.
type Account struct {
	UID             string
	AccountNumber   string
	SortCode        string
	DefaultCategory string
}

// FeedAmount is the nested minor-units amount object on a feed item.
type FeedAmount struct {
	Currency   string `json:"currency"`
	MinorUnits int64  `json:"minorUnits"`
}

// FeedItem is a raw transaction record from the newest feed API. The amount
// carries magnitude only; Direction says which way the money moved.
type FeedItem struct {
	FeedItemUID      string     `json:"feedItemUid"`
	Amount           FeedAmount `json:"amount"`
	Direction        string     `json:"direction"` // "IN" or "OUT"
	TransactionTime  string     `json:"transactionTime"`
	SettlementTime   string     `json:"settlementTime"`
	CounterPartyName string     `json:"counterPartyName"`
	Reference        string     `json:"reference"`
	Source           string     `json:"source"`
	SourceSubType    string     `json:"sourceSubType"`
	SpendingCategory string     `json:"spendingCategory"`
	Status           string     `json:"status"`
}

type feedItemsResponse struct {
	FeedItems []FeedItem `json:"feedItems"`
}

type accountsResponse struct {
	Accounts []struct {
		AccountUID      string `json:"accountUid"`
		DefaultCategory string `json:"defaultCategory"`
		Currency        string `json:"currency"`
	} `json:"accounts"`
}

type accountIdentifiersResponse struct {
	AccountIdentifier string `json:"accountIdentifier"`
	BankIdentifier    string `json:"bankIdentifier"`
}

type feedBalanceResponse struct {
	EffectiveBalance FeedAmount `json:"effectiveBalance"`
}

// ResolveAccount returns the first account from the v2 accounts list along
// with its identifiers, caching the result for the duration of the job.
// Multi-account support is an extension point; today the first account wins.
func (c *Client) ResolveAccount(ctx context.Context) (Account, error) {
	if c.account != nil {
		return *c.account, nil
	}

	var resp accountsResponse
	if err := c.get(ctx, "/api/v2/accounts", &resp); err != nil {
		return Account{}, err
	}
	if len(resp.Accounts) == 0 {
		return Account{}, &UpstreamError{Endpoint: "/api/v2/accounts", Status: 200, Body: "no accounts returned"}
	}
	first := resp.Accounts[0]

	var ids accountIdentifiersResponse
	if err := c.get(ctx, fmt.Sprintf("/api/v2/accounts/%s/identifiers", first.AccountUID), &ids); err != nil {
		return Account{}, err
	}

	c.account = &Account{
		UID:             first.AccountUID,
		AccountNumber:   ids.AccountIdentifier,
		SortCode:        ids.BankIdentifier,
		DefaultCategory: first.DefaultCategory,
	}
	return *c.account, nil
}

// FeedItems fetches feed items between two timestamps, newest first.
// Account and default category are resolved once and reused.
func (c *Client) FeedItems(ctx context.Context, minTimestamp, maxTimestamp string) ([]FeedItem, error) {
	account, err := c.ResolveAccount(ctx)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/api/v2/feed/account/%s/category/%s/transactions-between?minTransactionTimestamp=%s&maxTransactionTimestamp=%s",
		account.UID, account.DefaultCategory,
		url.QueryEscape(minTimestamp), url.QueryEscape(maxTimestamp))

	var resp feedItemsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.FeedItems, nil
}

// FeedBalance fetches the effective balance for the resolved account and
// converts minor units to major units.
func (c *Client) FeedBalance(ctx context.Context) (decimal.Decimal, error) {
	account, err := c.ResolveAccount(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	var resp feedBalanceResponse
	if err := c.get(ctx, fmt.Sprintf("/api/v2/accounts/%s/balance", account.UID), &resp); err != nil {
		return decimal.Zero, err
	}
	return decimal.New(resp.EffectiveBalance.MinorUnits, -2), nil
}
