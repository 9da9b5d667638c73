package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewLogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Show the commit history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(cmd, false)
			if err != nil {
				return err
			}
			printLog(cmd, a)
			return nil
		},
	}
}

func printLog(cmd *cobra.Command, a *app) {
	log := a.store.Log()
	if len(log) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No commits.")
		return
	}
	for _, c := range log {
		marker := ""
		if c.Head {
			marker = " <-- HEAD"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d  %s  %s%s\n", c.Index, c.When.Format("2006-01-02 15:04:05"), c.Label, marker)
	}
}
