// Package commands wires the CLI surface: the qif, csv, and balance
// subcommands.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/starling-tools/starling-export/internal/buildinfo"
	"github.com/starling-tools/starling-export/internal/config"
	"github.com/starling-tools/starling-export/internal/logger"
	"github.com/starling-tools/starling-export/internal/normalize"
	"github.com/starling-tools/starling-export/internal/starling"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "starling-export",
		Short:   "Generate QIF or CSV from Starling",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "starling-export.yaml", "configuration file")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log every API request")

	opts := &options{configPath: &configPath, verbose: &verbose}

	rootCmd.AddCommand(newQIFCommand(opts))
	rootCmd.AddCommand(newCSVCommand(opts))
	rootCmd.AddCommand(newBalanceCommand(opts))

	return rootCmd
}

// options carries the persistent flags into subcommand setup.
type options struct {
	configPath *string
	verbose    *bool
}

// build loads configuration, applies flag overrides (flag wins over env wins
// over file), and constructs the API client.
func (o *options) build(accessToken, version string) (*config.Config, *starling.Client, string, error) {
	cfg, err := config.Load(*o.configPath)
	if err != nil {
		return nil, nil, "", err
	}
	if accessToken != "" {
		cfg.API.AccessToken = accessToken
	}
	if version != "" {
		cfg.API.Version = version
	}

	if cfg.API.AccessToken == "" {
		return nil, nil, "", &InputError{
			Flag: "access_token",
			Err:  fmt.Errorf("no access token: pass --access_token or set STARLING_ACCESS_TOKEN"),
		}
	}

	log := logger.New(os.Stderr, *o.verbose)
	client := starling.New(starling.Options{
		BaseURL:           cfg.API.BaseURL,
		AccessToken:       cfg.API.AccessToken,
		Timeout:           cfg.API.Timeout(),
		RequestsPerSecond: cfg.API.RequestsPerSecond,
		MaxRetries:        cfg.API.MaxRetries,
		Logger:            log,
	})
	return cfg, client, cfg.API.Version, nil
}

// source resolves the normalizer for an API version name.
func source(client *starling.Client, version string) (normalize.Source, error) {
	registry := normalize.DefaultRegistry(client)
	src := registry.Get(version)
	if src == nil {
		return nil, &InputError{
			Flag:  "api-version",
			Value: version,
			Err:   fmt.Errorf("unknown API version (valid: v1, v2, feed)"),
		}
	}
	return src, nil
}
