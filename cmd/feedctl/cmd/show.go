package cmd

import (
	"fmt"

	"essential-feed-api/api/dto/mappers"
	coreerrors "essential-feed-api/core/errors"
	"essential-feed-api/infrastructure/store/backend"
	"github.com/spf13/cobra"
)

func newShowCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the saved snapshot of the feed",
		Long: `Show prints the snapshot last saved for the feed URL. It never contacts
the feed. The memory store does not outlive the process, so use redis or
sqlite with this command.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := backend.Open(opts.cfg.Store)
			if err != nil {
				return err
			}
			defer store.Close()

			snapshot, err := store.Latest(cmd.Context(), opts.cfg.Feed.URL)
			if coreerrors.IsNotFound(err) {
				return fmt.Errorf("no snapshot saved for %s", opts.cfg.Feed.URL)
			}
			if err != nil {
				return err
			}

			return writeJSON(opts.out, mappers.ToSnapshotResponse(snapshot))
		},
	}
}
