package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewAssetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assets",
		Short: "List the working set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(cmd, false)
			if err != nil {
				return err
			}
			for _, path := range a.store.Collection().Paths() {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
}
