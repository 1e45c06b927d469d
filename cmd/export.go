package cmd

import (
	"bufio"
	"fmt"
	"os"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/bsisduck/octolog/internal/filterlang"
	"github.com/bsisduck/octolog/internal/logcore"
	"github.com/bsisduck/octolog/internal/source"
	"github.com/bsisduck/octolog/internal/tui/logs"
	"github.com/bsisduck/octolog/internal/ui/format"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write a file's filtered, hide-applied lines to stdout or a file",
	Long: `Read a file non-interactively, apply the same hide/filter query
language the interactive viewer uses, and write the result as text, JSON,
or YAML. Useful for scripting a one-shot extraction without opening the
TUI.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("hide", "", "Hide-regex applied before filtering")
	exportCmd.Flags().String("filter", "", "Filter expression (see the interactive viewer's grammar)")
	exportCmd.Flags().String("line-start", "", "Regex marking the start of a new logical line")
	exportCmd.Flags().StringP("output", "o", "", "Write to this path instead of stdout")
	exportCmd.Flags().String("format", "text", "Output format: text, json, yaml")
	exportCmd.Flags().Int("page-size", 0, "With --format json, split the output into pages of this many lines instead of one flat array")
}

func runExport(cmd *cobra.Command, args []string) error {
	path := args[0]
	hidePattern, _ := cmd.Flags().GetString("hide")
	filterExprSrc, _ := cmd.Flags().GetString("filter")
	lineStartPattern, _ := cmd.Flags().GetString("line-start")
	outputPath, _ := cmd.Flags().GetString("output")
	formatName, _ := cmd.Flags().GetString("format")
	pageSize, _ := cmd.Flags().GetInt("page-size")

	var ef logs.ExportFormat
	switch formatName {
	case "text", "json", "yaml":
		ef = logs.ExportFormat(formatName)
	default:
		return fmt.Errorf("invalid format: %s. Choose: text, json, yaml", formatName)
	}
	if pageSize > 0 && ef != logs.ExportJSON {
		return fmt.Errorf("--page-size only applies to --format json")
	}

	state := logcore.NewState()
	if hidePattern != "" {
		re, err := regexp.Compile(hidePattern)
		if err != nil {
			return fmt.Errorf("invalid --hide pattern: %w", err)
		}
		state.Filter.HideRegex = re
	}
	if filterExprSrc != "" {
		expr, err := filterlang.Parse(filterExprSrc)
		if err != nil {
			return fmt.Errorf("invalid --filter expression: %w", err)
		}
		state.Filter.FilterExpr = expr
	}
	var lineStart *regexp.Regexp
	if lineStartPattern != "" {
		re, err := regexp.Compile(lineStartPattern)
		if err != nil {
			return fmt.Errorf("invalid --line-start pattern: %w", err)
		}
		lineStart = re
	}

	if err := readFileIntoState(path, lineStart, state); err != nil {
		return err
	}

	records := make([]format.LogRecord, 0, len(state.FilteredIndices))
	for _, idx := range state.FilteredIndices {
		line, ok := state.Buffer.At(idx)
		if !ok {
			continue
		}
		records = append(records, format.LogRecord{
			LineNumber: idx + 1,
			Timestamp:  line.Timestamp,
			Content:    state.Filter.ApplyHide(line.Content),
		})
	}

	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	return logs.WriteExport(out, ef, records, pageSize)
}

// readFileIntoState reads path synchronously (no tailing, no polling)
// through the multi-line aggregator and appends every resulting line to
// state.
func readFileIntoState(path string, lineStart *regexp.Regexp, state *logcore.State) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	agg := source.NewAggregator(lineStart)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		if out, ok := agg.Feed(scanner.Text()); ok {
			state.AddLine(out, true)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if out, ok := agg.Flush(); ok {
		state.AddLine(out, true)
	}
	return nil
}
