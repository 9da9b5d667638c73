package main

import (
	"github.com/spf13/cobra"
)

func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "davai",
		Short:         "LLM-assisted code asset manager",
		Long:          `Keeps a versioned working set of source assets in sync with a filesystem tree and round-trips them through an LLM as path-tagged code blocks.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	addPersistentFlags(rootCmd)

	rootCmd.AddCommand(
		NewShellCmd(),
		NewTaskCmd(),
		NewQueryCmd(),
		NewFetchCmd(),
		NewPushCmd(),
		NewCommitCmd(),
		NewUndoCmd(),
		NewRedoCmd(),
		NewLogCmd(),
		NewAssetsCmd(),
		NewCleanCmd(),
		NewPruneCmd(),
		NewWatchCmd(),
	)

	return rootCmd
}

func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "davai.yaml", "Config file path")
	cmd.PersistentFlags().String("root", "", "Asset root directory (overrides config)")
	cmd.PersistentFlags().BoolP("yes", "y", false, "Integrate returned assets without confirmation")
}
