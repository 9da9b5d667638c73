package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/4thel00z/davai/internal"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	insertStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	deleteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
)

func renderDiff(lines []internal.DiffLine) string {
	var b strings.Builder
	for _, l := range lines {
		switch l.Op {
		case internal.DiffInsert:
			b.WriteString(insertStyle.Render("+" + l.Text))
		case internal.DiffDelete:
			b.WriteString(deleteStyle.Render("-" + l.Text))
		default:
			b.WriteString(" " + l.Text)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// makeConfirm builds the integration gate: print the diff, ask on stdin.
// With --yes every update is accepted without prompting.
func makeConfirm(cmd *cobra.Command, yes bool) internal.ConfirmFunc {
	if yes {
		return func(path string, diff []internal.DiffLine) bool {
			fmt.Fprintf(cmd.OutOrStdout(), "Diff for %s:\n%s", path, renderDiff(diff))
			return true
		}
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	return func(path string, diff []internal.DiffLine) bool {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Diff for %s:\n%s", path, renderDiff(diff))
		fmt.Fprintf(out, "Integrate %s? (y/n): ", path)

		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		return strings.EqualFold(strings.TrimSpace(line), "y")
	}
}
