// Package main implements the swiftc CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/BluPerf/swift/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "swiftc",
	Short: "Swift name-binding front end",
	Long:  `swiftc lexes, parses and binds Swift sources and reports diagnostics`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(bindCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(cleanCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|always|never)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show phase timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics per file (0=unlimited)")
	rootCmd.PersistentFlags().String("trace", "", "write a JSONL trace to the given path (- for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace detail (off|phase|detail|debug)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
