// Package cmd provides the CLI command structure for octolog.
package cmd

import (
	"fmt"
	"os"

	"github.com/bsisduck/octolog/internal/ui/styles"
	"github.com/spf13/cobra"
)

var (
	// Version information
	Version   = "0.1.0"
	BuildTime = ""
	GitCommit = ""

	// Global flags
	debug   bool
	noColor bool
)

const (
	octoTagline = "Tail, filter, and highlight logs without leaving the terminal."
	octoLogo    = `
   ___       _       _
  / _ \  ___| |_ ___| | ___   __ _
 | | | |/ __| __/ _ \ |/ _ \ / _' |
 | |_| | (__| || (_) | | (_) | (_| |
  \___/ \___|\__\___/|_|\___/ \__, |
                               |___/
`
)

// rootCmd represents the base command when called without any subcommands:
// tail a file (or stdin, or a TCP listener) with a live filter/hide/
// highlight query.
var rootCmd = &cobra.Command{
	Use:   "octolog [file]",
	Short: "Interactive log viewer",
	Long: fmt.Sprintf(`%s
%s

octolog tails a file, standard input, or a TCP listener and renders it
through a live boolean filter/hide/highlight expression language.

Run 'octolog' with no arguments to read standard input, or
'octolog path/to/app.log' to tail a file.`, octoLogo, octoTagline),
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor || os.Getenv("NO_COLOR") != "" {
			styles.DisableColors()
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags available to all commands
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.Flags().IntP("listen", "l", 0, "Listen for log lines on this TCP port instead of tailing a file")
	rootCmd.Flags().StringP("line-start", "r", "", "Regex marking the start of a new logical line (enables multi-line aggregation)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(exportCmd)
}

// IsDebug returns whether debug mode is enabled
func IsDebug() bool {
	return debug || os.Getenv("OCTOLOG_DEBUG") == "1"
}

// NoColor returns whether color output is disabled
func NoColor() bool {
	return noColor || os.Getenv("NO_COLOR") != ""
}
