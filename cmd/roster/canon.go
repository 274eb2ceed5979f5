package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"roster/internal/diagfmt"
	"roster/internal/driver"
)

var canonCmd = &cobra.Command{
	Use:   "canon [flags] [file.roster]",
	Short: "Print the canonical form of a roster file",
	Long: `Canon parses the input and prints the canonical rendering: trimmed
names, normalized fragment spacing, one trailing semicolon. Issues go
to stderr; the canonical text is the only thing on stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCanon,
}

func init() {
	canonCmd.Flags().Bool("verify", false, "fail if the input is not already canonical")
	canonCmd.Flags().StringP("output", "o", "", "write the canonical form to a file instead of stdout")
}

func runCanon(cmd *cobra.Command, args []string) error {
	target, err := resolveTarget(args)
	if err != nil {
		return err
	}
	res, err := driver.CheckFile(target, maxIssues(cmd))
	if err != nil {
		return err
	}

	diagfmt.Pretty(os.Stderr, res.Bag, res.Input, diagfmt.PrettyOpts{
		Color: useColor(cmd, os.Stderr),
		Quiet: quiet(cmd),
	})

	if verify, _ := cmd.Flags().GetBool("verify"); verify {
		if strings.TrimSpace(res.Input.Content) != res.Canonical {
			return fmt.Errorf("%s is not in canonical form", target)
		}
		return nil
	}

	if out, _ := cmd.Flags().GetString("output"); out != "" {
		if err := os.WriteFile(out, []byte(res.Canonical+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write %q: %w", out, err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Canonical)
	return nil
}
