package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func NewTaskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "task <prompt>",
		Short: "Run a code task over matching assets",
		Long:  `Send the prompt plus the assets it matches to the LLM, review the returned code blocks, integrate them, and push to disk.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd, true)
			if err != nil {
				return err
			}
			if err := a.session.Task(cmd.Context(), strings.Join(args, " ")); err != nil {
				return fmt.Errorf("task: %w", err)
			}
			return nil
		},
	}
}
