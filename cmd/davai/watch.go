package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/4thel00z/davai/internal"
	"github.com/spf13/cobra"
)

func NewWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Commit a snapshot on every filesystem change",
		Long:  `Watch the root directory and record external edits as history, so they can be undone like any other change.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(cmd, false)
			if err != nil {
				return err
			}
			a.store.Commit("watch: baseline")

			w, err := internal.NewWatcher(a.store, a.log)
			if err != nil {
				return fmt.Errorf("watch: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			fmt.Fprintf(cmd.OutOrStdout(), "Watching %s (ctrl-c to stop)\n", a.store.Root())
			if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("watch: %w", err)
			}
			return nil
		},
	}
}
