package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/4thel00z/davai/internal"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

func NewShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive session",
		Long:  `A line-oriented loop over the same verbs as the one-shot commands. History, undo, and redo live for the duration of the session.`,
		Args:  cobra.NoArgs,
		RunE:  runShell,
	}
}

func runShell(cmd *cobra.Command, _ []string) error {
	// The shell stays usable without credentials; task and query report
	// the missing provider when invoked.
	a, err := buildApp(cmd, true)
	if err != nil {
		a, err = buildApp(cmd, false)
		if err != nil {
			return err
		}
		a.log("running without a provider: task and query are disabled")
	}

	historyFile := filepath.Join(a.cfg.Transcripts, "cli_history.txt")
	if err := os.MkdirAll(filepath.Dir(historyFile), 0755); err != nil {
		a.log("history disabled: %v", err)
		historyFile = ""
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          promptStyle.Render("davai >>> "),
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("init readline: %w", err)
	}
	defer rl.Close()

	fmt.Fprintln(cmd.OutOrStdout(), "Welcome to the davai shell. Type help to list commands.")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			fmt.Fprintln(cmd.OutOrStdout(), "Goodbye!")
			return nil
		}
		if err != nil {
			return err
		}

		verb, arg := splitCommand(line)
		if verb == "" {
			continue
		}
		if verb == "quit" || verb == "exit" {
			fmt.Fprintln(cmd.OutOrStdout(), "Goodbye!")
			return nil
		}

		if err := dispatch(cmd, a, verb, arg); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
		}
	}
}

func splitCommand(line string) (string, string) {
	fields := strings.SplitN(strings.TrimSpace(line), " ", 2)
	verb := fields[0]
	arg := ""
	if len(fields) > 1 {
		arg = strings.TrimSpace(fields[1])
	}
	return verb, arg
}

func dispatch(cmd *cobra.Command, a *app, verb, arg string) error {
	out := cmd.OutOrStdout()

	switch verb {
	case "task":
		if arg == "" {
			return fmt.Errorf("no input provided for code generation")
		}
		return a.session.Task(cmd.Context(), arg)

	case "query":
		if arg == "" {
			return fmt.Errorf("no input provided for code querying")
		}
		resp, err := a.session.Query(cmd.Context(), arg)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, resp)
		return nil

	case "fetch":
		return a.session.Reset(cmd.Context(), internal.ActionFetch)

	case "undo":
		return a.session.Reset(cmd.Context(), internal.ActionUndo)

	case "redo":
		return a.session.Reset(cmd.Context(), internal.ActionRedo)

	case "commit":
		a.store.Commit(arg)
		return nil

	case "push":
		return a.store.Push()

	case "clean":
		return a.store.Clean()

	case "prune":
		return a.store.Prune()

	case "log":
		printLog(cmd, a)
		return nil

	case "assets":
		for _, path := range a.store.Collection().Paths() {
			fmt.Fprintln(out, path)
		}
		return nil

	case "tracked":
		for _, path := range a.session.Tracked() {
			fmt.Fprintln(out, path)
		}
		return nil

	case "clear":
		a.session.Clear()
		fmt.Fprintln(out, "Asset paths have been cleared.")
		return nil

	case "help", "?":
		fmt.Fprintln(out, "Commands: task <prompt>, query <prompt>, fetch, undo, redo, commit [msg], push, clean, prune, log, assets, tracked, clear, quit")
		return nil

	default:
		return fmt.Errorf("unknown command: %s", verb)
	}
}
