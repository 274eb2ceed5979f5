package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"roster/internal/diagfmt"
	"roster/internal/driver"
)

var exportCmd = &cobra.Command{
	Use:   "export [flags] [file.roster]",
	Short: "Export the parsed dataset for other tooling",
	Long: `Export parses the input and writes the structured dataset: entries,
fragments, group membership by entry index, roots, and the canonical
text. JSON is for humans and scripts, msgpack for caching pipelines.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("format", "json", "output format (json|msgpack)")
	exportCmd.Flags().StringP("output", "o", "", "write to a file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	target, err := resolveTarget(args)
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	res, err := driver.CheckFile(target, maxIssues(cmd))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %q: %w", path, err)
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "json":
		return diagfmt.DatasetJSON(out, res.Dataset)
	case "msgpack":
		data, err := driver.EncodeExport(driver.BuildExport(res))
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
