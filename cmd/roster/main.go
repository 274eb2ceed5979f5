package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"roster/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "roster",
	Short: "Roster text parser and canonicalizer",
	Long:  `roster parses semicolon/bracket delimited character rosters, reports structural issues, and prints the canonical form`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(canonCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "only show errors")
	rootCmd.PersistentFlags().Int("max-issues", 100, "maximum number of issues to record per input")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to the given path")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to the given path")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}

func maxIssues(cmd *cobra.Command) int {
	n, err := cmd.Root().PersistentFlags().GetInt("max-issues")
	if err != nil {
		return 100
	}
	return n
}

func quiet(cmd *cobra.Command) bool {
	q, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	return q
}
