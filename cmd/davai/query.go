package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func NewQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <prompt>",
		Short: "Ask a question about matching assets",
		Long:  `Send the prompt plus the assets it matches to the LLM and print the textual answer. No code is integrated.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd, true)
			if err != nil {
				return err
			}
			out, err := a.session.Query(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("query: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
