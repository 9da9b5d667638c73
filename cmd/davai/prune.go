package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewPruneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Delete files missing from the working set",
		Long:  `Delete every file under root that has no corresponding asset in memory. Destructive; undo does not restore pruned files.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(cmd, false)
			if err != nil {
				return err
			}
			if err := a.store.Prune(); err != nil {
				return fmt.Errorf("prune: %w", err)
			}
			return nil
		},
	}
}
