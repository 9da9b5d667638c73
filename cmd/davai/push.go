package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Write the working set to disk",
		Long:  `Write every asset under root to its file. Unchanged files are left untouched.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(cmd, false)
			if err != nil {
				return err
			}
			if err := a.store.Push(); err != nil {
				return fmt.Errorf("push: %w", err)
			}
			return nil
		},
	}
}
