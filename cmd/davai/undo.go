package main

import (
	"fmt"

	"github.com/4thel00z/davai/internal"
	"github.com/spf13/cobra"
)

func NewUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Restore the previous snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(cmd, false)
			if err != nil {
				return err
			}
			if err := a.session.Reset(cmd.Context(), internal.ActionUndo); err != nil {
				return fmt.Errorf("undo: %w", err)
			}
			return nil
		},
	}
}
