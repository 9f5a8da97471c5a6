package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/starling-tools/starling-export/internal/export"
	"github.com/starling-tools/starling-export/internal/model"
)

func newCSVCommand(opts *options) *cobra.Command {
	var directory string
	var accessToken string
	var sinceFlag string
	var apiVersion string

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export transactions as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			since, err := parseDateFlag("since", sinceFlag, now.Add(-defaultLookback))
			if err != nil {
				return err
			}
			r := model.DateRange{From: since, To: now.UTC().Truncate(24 * time.Hour)}

			cfg, client, version, err := opts.build(accessToken, apiVersion)
			if err != nil {
				return err
			}
			src, err := source(client, version)
			if err != nil {
				return err
			}

			txns, err := src.Transactions(cmd.Context(), r)
			if err != nil {
				return fmt.Errorf("fetching transactions: %w", err)
			}

			dir, err := ensureExportDir(directory, cfg)
			if err != nil {
				return err
			}
			path := filepath.Join(dir, "starling.csv")

			if err := export.WriteCSVFile(path, txns, cmd.OutOrStdout()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\nExported to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&directory, "directory", "", "directory to save the file (default: exports beside the binary)")
	cmd.Flags().StringVar(&accessToken, "access_token", "", "Starling access token")
	cmd.Flags().StringVar(&sinceFlag, "since", "", "start date YYYY-MM-DD (default: 14 days ago)")
	cmd.Flags().StringVar(&apiVersion, "api-version", "", "API generation: v1, v2 or feed")

	return cmd
}
