package main

import (
	"fmt"

	"github.com/4thel00z/davai/internal"
	"github.com/spf13/cobra"
)

func NewRedoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "redo",
		Short: "Re-apply the most recently undone snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(cmd, false)
			if err != nil {
				return err
			}
			if err := a.session.Reset(cmd.Context(), internal.ActionRedo); err != nil {
				return fmt.Errorf("redo: %w", err)
			}
			return nil
		},
	}
}
