package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"roster/internal/diag"
	"roster/internal/diagfmt"
	"roster/internal/driver"
	"roster/internal/observ"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file.roster|dir]",
	Short: "Parse roster input and report structural issues",
	Long: `Check parses the input, reports every structural issue with its
location, and verifies that the canonical rendering is stable. With a
directory it checks every *.roster file in parallel.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().Bool("ui", false, "show interactive progress for directory checks")
	checkCmd.Flags().Bool("cached", false, "reuse cached results for unchanged files")
	checkCmd.Flags().String("cache-dir", "", "cache directory (default: $XDG_CACHE_HOME/roster)")
	checkCmd.Flags().Bool("timings", false, "print phase timing summary to stderr")
}

func runCheck(cmd *cobra.Command, args []string) error {
	target, err := resolveTarget(args)
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	cleanup, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat %q: %w", target, err)
	}

	timer := observ.NewTimer()
	endPhase := timer.Start("check")

	var results []*driver.Result
	if info.IsDir() {
		results, err = runCheckDir(cmd, target)
	} else {
		results, err = runCheckFile(cmd, target)
	}
	if err != nil {
		return err
	}
	endPhase(fmt.Sprintf("%d input(s)", len(results)))

	if timings, _ := cmd.Flags().GetBool("timings"); timings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	opts := diagfmt.PrettyOpts{
		Color: useColor(cmd, os.Stderr),
		Quiet: quiet(cmd),
	}

	failed := 0
	for _, res := range results {
		switch format {
		case "json":
			if err := diagfmt.IssuesJSON(cmd.OutOrStdout(), res.Bag, res.Input); err != nil {
				return err
			}
		default:
			diagfmt.Pretty(os.Stderr, res.Bag, res.Input, opts)
			if !res.Stable {
				fmt.Fprintf(os.Stderr, "%s: canonical form is not stable\n", res.Input.Name)
			}
		}
		if resultFailed(res) {
			failed++
		}
	}

	if format == "pretty" {
		total := allIssues(results)
		diagfmt.Summary(os.Stderr, total, opts)
		if !quiet(cmd) {
			fmt.Fprintf(cmd.OutOrStdout(), "checked %d input(s)\n", len(results))
		}
	}
	if failed > 0 {
		return fmt.Errorf("check failed for %d input(s)", failed)
	}
	return nil
}

func runCheckFile(cmd *cobra.Command, path string) ([]*driver.Result, error) {
	cache, err := openCache(cmd)
	if err != nil {
		return nil, err
	}
	if cache != nil {
		res, _, err := driver.CheckFileCached(path, maxIssues(cmd), cache)
		if err != nil {
			return nil, err
		}
		return []*driver.Result{res}, nil
	}
	res, err := driver.CheckFile(path, maxIssues(cmd))
	if err != nil {
		return nil, err
	}
	return []*driver.Result{res}, nil
}

func runCheckDir(cmd *cobra.Command, dir string) ([]*driver.Result, error) {
	withUI, _ := cmd.Flags().GetBool("ui")
	if withUI && isTerminal(os.Stdout) {
		files, err := driver.ListRosterFiles(dir)
		if err != nil {
			return nil, err
		}
		title := fmt.Sprintf("checking %s", filepath.Clean(dir))
		return runCheckDirWithUI(cmd.Context(), title, dir, files, maxIssues(cmd))
	}
	return driver.CheckDir(context.Background(), dir, maxIssues(cmd), nil)
}

func openCache(cmd *cobra.Command) (*driver.DiskCache, error) {
	cached, _ := cmd.Flags().GetBool("cached")
	if !cached {
		return nil, nil
	}
	if dir, _ := cmd.Flags().GetString("cache-dir"); dir != "" {
		return driver.OpenDiskCacheAt(dir)
	}
	return driver.OpenDiskCache("roster")
}

// resultFailed reports whether a single input should count against the
// exit status. An input that is both unstable and erroring is still one
// failure.
func resultFailed(res *driver.Result) bool {
	return !res.Stable || res.Bag.HasErrors()
}

func allIssues(results []*driver.Result) *diag.Bag {
	n := 0
	for _, res := range results {
		n += res.Bag.Len()
	}
	merged := diag.NewBag(n + 1)
	for _, res := range results {
		for _, is := range res.Bag.Items() {
			merged.Add(is)
		}
		merged.NoteDropped(res.Bag.Dropped())
	}
	return merged
}
