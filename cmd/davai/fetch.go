package main

import (
	"fmt"

	"github.com/4thel00z/davai/internal"
	"github.com/spf13/cobra"
)

func NewFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Load disk state into the working set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(cmd, false)
			if err != nil {
				return err
			}
			if err := a.session.Reset(cmd.Context(), internal.ActionFetch); err != nil {
				return fmt.Errorf("fetch: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fetched %d assets from %s\n", a.store.Collection().Len(), a.store.Root())
			return nil
		},
	}
}
