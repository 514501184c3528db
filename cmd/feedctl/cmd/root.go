// Package cmd contains all CLI commands for feedctl
package cmd

import (
	"io"
	"os"

	"essential-feed-api/core/interfaces"
	stdlogger "essential-feed-api/infrastructure/logger/standard"
	"essential-feed-api/pkg/config"
	"github.com/spf13/cobra"
)

// options are shared by every subcommand
type options struct {
	out       io.Writer
	cfg       *config.Config
	logger    interfaces.Logger
	feedURL   string
	storeType string
	sqlite    string
	verbose   bool
}

// NewRootCommand builds the feedctl command tree writing results to out
func NewRootCommand(out io.Writer) *cobra.Command {
	opts := &options{out: out}

	root := &cobra.Command{
		Use:   "feedctl",
		Short: "Load a remote image feed and manage its snapshots",
		Long: `feedctl loads a remote image feed once and prints its items as JSON.

Defaults come from the same environment variables as the API server
(FEED_URL, DECODE_POLICY, STORE_TYPE, ...); flags override them.

Example usage:
  feedctl load                          # Load FEED_URL and print the items
  feedctl load --policy skip --save     # Drop invalid items, save a snapshot
  feedctl show --store sqlite           # Print the saved snapshot`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init()
		},
	}

	root.PersistentFlags().StringVar(&opts.feedURL, "url", "", "feed URL (default $FEED_URL)")
	root.PersistentFlags().StringVar(&opts.storeType, "store", "", "snapshot store: memory, redis or sqlite (default $STORE_TYPE)")
	root.PersistentFlags().StringVar(&opts.sqlite, "sqlite-path", "", "sqlite database file (default $SQLITE_PATH)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log to stderr at debug level")

	root.AddCommand(newLoadCommand(opts))
	root.AddCommand(newShowCommand(opts))

	return root
}

// init loads configuration and applies flag overrides
func (o *options) init() error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}

	if o.feedURL != "" {
		cfg.Feed.URL = o.feedURL
	}
	if o.storeType != "" {
		cfg.Store.Type = o.storeType
	}
	if o.sqlite != "" {
		cfg.Store.SQLite.Path = o.sqlite
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg

	if o.verbose {
		// stderr keeps stdout parseable
		o.logger = stdlogger.NewLogger(stdlogger.Options{Level: "debug", Output: os.Stderr})
	} else {
		o.logger = stdlogger.NewQuietLogger()
	}

	return nil
}
