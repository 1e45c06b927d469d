package cmd

import (
	"fmt"
	"os"
	"regexp"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bsisduck/octolog/internal/query"
	"github.com/bsisduck/octolog/internal/source"
	"github.com/bsisduck/octolog/internal/tui/logs"
)

// runView is rootCmd's RunE: it resolves the ingest source (file, stdin,
// or TCP listener) from positional args and flags, launches the Bubble
// Tea program, and maps a startup failure to a non-zero exit code.
func runView(cmd *cobra.Command, args []string) error {
	port, _ := cmd.Flags().GetInt("listen")
	lineStartPattern, _ := cmd.Flags().GetString("line-start")

	if port != 0 && len(args) > 0 {
		return fmt.Errorf("--listen is mutually exclusive with a file argument")
	}

	if lineStartPattern == "" {
		lineStartPattern = query.Load().LineStartRegex
	}
	var lineStart *regexp.Regexp
	if lineStartPattern != "" {
		re, err := regexp.Compile(lineStartPattern)
		if err != nil {
			return fmt.Errorf("invalid --line-start pattern: %w", err)
		}
		lineStart = re
	}

	label, start, err := resolveSource(args, port, lineStart)
	if err != nil {
		return err
	}

	model := logs.New(label, lineStart, start)
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	if m, ok := final.(logs.Model); ok {
		if startupErr := m.StartupErr(); startupErr != nil {
			return fmt.Errorf("starting viewer: %w", startupErr)
		}
	}
	return nil
}

// resolveSource picks the ingest variant per spec.md §6: a positional
// file argument tails that file, --listen PORT starts a TCP listener,
// and the default with neither is standard input.
func resolveSource(args []string, port int, lineStart *regexp.Regexp) (label string, start func(source.Sink) error, err error) {
	switch {
	case port != 0:
		label = fmt.Sprintf("tcp :%d", port)
		start = func(sink source.Sink) error {
			return source.StartTCPListener(port, lineStart, sink)
		}
		return label, start, nil

	case len(args) == 1:
		path := args[0]
		label = path
		start = func(sink source.Sink) error {
			return source.StartFileTail(path, lineStart, sink)
		}
		return label, start, nil

	default:
		label = "stdin"
		start = func(sink source.Sink) error {
			return source.StartStdin(os.Stdin, lineStart, sink)
		}
		return label, start, nil
	}
}
