package commands

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/starling-tools/starling-export/internal/starling"
)

func newBalanceCommand(opts *options) *cobra.Command {
	var accessToken string
	var apiVersion string

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show account details and current balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, version, err := opts.build(accessToken, apiVersion)
			if err != nil {
				return err
			}
			if _, err := source(client, version); err != nil {
				return err
			}

			account, balance, err := lookupBalance(cmd.Context(), client, version)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Account Number: %s\n", account.AccountNumber)
			fmt.Fprintf(out, "Sort Code: %s\n", account.SortCode)
			fmt.Fprintf(out, "Balance: £%s\n", balance.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&accessToken, "access_token", "", "Starling access token")
	cmd.Flags().StringVar(&apiVersion, "api-version", "", "API generation: v1, v2 or feed")

	return cmd
}

// lookupBalance resolves the account and reads its balance. The v1 and v2
// generations share the v1 account endpoints; the feed generation resolves
// the account list first and reports minor units, converted for display.
func lookupBalance(ctx context.Context, client *starling.Client, version string) (starling.Account, decimal.Decimal, error) {
	if version == "feed" {
		account, err := client.ResolveAccount(ctx)
		if err != nil {
			return starling.Account{}, decimal.Zero, err
		}
		balance, err := client.FeedBalance(ctx)
		if err != nil {
			return starling.Account{}, decimal.Zero, err
		}
		return account, balance, nil
	}

	account, err := client.V1Account(ctx)
	if err != nil {
		return starling.Account{}, decimal.Zero, err
	}
	balance, err := client.V1Balance(ctx)
	if err != nil {
		return starling.Account{}, decimal.Zero, err
	}
	return account, balance, nil
}
