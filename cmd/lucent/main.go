package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╦  ╦ ╦┌─┐┌─┐┌┐┌┌┬┐
  ║  ║ ║│  ├┤ │││ │
  ╩═╝╚═╝└─┘└─┘┘└┘ ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "lucent",
		Short: "Fine-grained reactive UI for Go",
		Long: `Lucent is a reactive UI library for Go.

Views are plain functions over signals; writes propagate through a
priority scheduler and reconcile against the host tree with a
positional diff. The CLI ships a preview server for iterating on
views without a browser build step.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		previewCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the Lucent ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
