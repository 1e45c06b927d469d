// octolog - an interactive log viewer: tail a file, stdin, or a TCP
// listener through a live filter/hide/highlight expression language.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/bsisduck/octolog/cmd"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			// Restore terminal to sane state:
			// Show cursor, exit alt-screen buffer, reset text attributes
			fmt.Fprint(os.Stderr, "\033[?25h")
			fmt.Fprint(os.Stderr, "\033[?1049l")
			fmt.Fprint(os.Stderr, "\033[0m")

			fmt.Fprintf(os.Stderr, "\noctolog: fatal error: %v\n", r)
			if os.Getenv("OCTOLOG_DEBUG") == "1" {
				debug.PrintStack()
			}
			os.Exit(1)
		}
	}()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
