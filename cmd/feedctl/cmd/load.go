package cmd

import (
	"fmt"
	"time"

	"essential-feed-api/api/dto/mappers"
	"essential-feed-api/core/domain"
	"essential-feed-api/core/feed"
	stdhttp "essential-feed-api/infrastructure/http/standard"
	"essential-feed-api/infrastructure/store/backend"
	"github.com/spf13/cobra"
)

func newLoadCommand(opts *options) *cobra.Command {
	var policyName string
	var save bool

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load the feed once and print its items",
		Long: `Load performs exactly one request against the feed URL and prints the
decoded items as JSON. A failed load exits non-zero with the failure kind
(connectivity or invalidData).

Examples:
  feedctl load --url https://example.com/feed
  feedctl load --policy skip
  feedctl load --save --store sqlite`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if policyName == "" {
				policyName = opts.cfg.Feed.DecodePolicy
			}
			policy, err := feed.ParseDecodePolicy(policyName)
			if err != nil {
				return err
			}

			client := stdhttp.NewStandardHTTPClient(opts.cfg.Feed.Timeout(), stdhttp.WithUserAgent("feedctl/1.0"))
			loader := feed.NewRemoteFeedLoader(opts.cfg.Feed.URL, client,
				feed.WithDecodePolicy(policy),
				feed.WithLogger(opts.logger),
			)

			result := <-loader.LoadAsync(cmd.Context())
			if !result.Succeeded() {
				return fmt.Errorf("load %s failed: %s", loader.URL(), result.Kind())
			}

			if save {
				if err := saveSnapshot(cmd, opts, loader.URL(), result.Items); err != nil {
					return err
				}
			}

			return writeJSON(opts.out, mappers.ToFeedResponse(loader.URL(), result.Items))
		},
	}

	cmd.Flags().StringVar(&policyName, "policy", "", "invalid item handling: abort or skip (default $DECODE_POLICY)")
	cmd.Flags().BoolVar(&save, "save", false, "save the loaded items as a snapshot")

	return cmd
}

func saveSnapshot(cmd *cobra.Command, opts *options, feedURL string, items []domain.FeedItem) error {
	store, err := backend.Open(opts.cfg.Store)
	if err != nil {
		return err
	}
	defer store.Close()

	snapshot, err := domain.NewSnapshot(feedURL, items, time.Now().UTC())
	if err != nil {
		return err
	}

	if err := store.Save(cmd.Context(), snapshot); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	opts.logger.Info("Snapshot saved", map[string]interface{}{
		"url":   feedURL,
		"items": len(items),
		"store": opts.cfg.Store.Type,
	})
	return nil
}
