package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Drop assets whose files are gone",
		Long:  `Remove from the working set every asset whose file no longer exists on disk.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(cmd, false)
			if err != nil {
				return err
			}
			if err := a.store.Clean(); err != nil {
				return fmt.Errorf("clean: %w", err)
			}
			return nil
		},
	}
}
