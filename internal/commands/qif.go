package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/starling-tools/starling-export/internal/category"
	"github.com/starling-tools/starling-export/internal/config"
	"github.com/starling-tools/starling-export/internal/export"
)

func newQIFCommand(opts *options) *cobra.Command {
	var directory string
	var accessToken string
	var fromFlag string
	var toFlag string
	var apiVersion string

	cmd := &cobra.Command{
		Use:   "qif",
		Short: "Export transactions as QIF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := resolveRange(fromFlag, toFlag, time.Now())
			if err != nil {
				return err
			}

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
			path := filepath.Join(dir, fmt.Sprintf("starling-%s-%s.qif",
				r.From.Format(flagDateFormat), r.To.Format(flagDateFormat)))

			mapper := category.ForVersion(version)
			if err := export.WriteQIFFile(path, txns, mapper, cmd.OutOrStdout()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\nExported to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&directory, "directory", "", "directory to save the file (default: exports beside the binary)")
	cmd.Flags().StringVar(&accessToken, "access_token", "", "Starling access token")
	cmd.Flags().StringVar(&fromFlag, "from", "", "start date YYYY-MM-DD (default: 14 days ago)")
	cmd.Flags().StringVar(&toFlag, "to", "", "end date YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&apiVersion, "api-version", "", "API generation: v1, v2 or feed")

	return cmd
}

// ensureExportDir resolves the output directory (flag wins over config over
// the default exports folder beside the executable) and creates it.
func ensureExportDir(flagValue string, cfg *config.Config) (string, error) {
	dir := flagValue
	if dir == "" {
		dir = cfg.Export.Directory
	}
	if dir == "" {
		dir = defaultExportDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	return dir, nil
}

func defaultExportDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "exports"
	}
	return filepath.Join(filepath.Dir(exe), "exports")
}
