package main

import (
	"github.com/spf13/cobra"
)

func NewCommitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Snapshot the working set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(cmd, false)
			if err != nil {
				return err
			}
			message, _ := cmd.Flags().GetString("message")
			a.store.Commit(message)
			return nil
		},
	}

	cmd.Flags().StringP("message", "m", "", "Commit message")
	return cmd
}
