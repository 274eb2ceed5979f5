package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new roster project",
	Long: `Initialize a new roster project by creating a project manifest
(roster.toml) and a sample input (main.roster). If [path|name] is
omitted, initializes the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

const sampleRoster = `Justice League [Wonder Woman; Batman [Bruce Wayne]; Superman [Kal-El]];
Jimmy Olsen (origin, death);
`

func runInit(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else if filepath.IsAbs(args[0]) {
		target = args[0]
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = filepath.Join(wd, args[0])
	}

	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	manifestPath := filepath.Join(target, "roster.toml")
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("%q already exists", manifestPath)
	}

	name := filepath.Base(target)
	manifest := fmt.Sprintf("[package]\nname = %q\n\n[input]\nmain = \"main.roster\"\n", name)
	if err := os.WriteFile(manifestPath, []byte(manifest), 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", manifestPath, err)
	}
	inputPath := filepath.Join(target, "main.roster")
	if err := os.WriteFile(inputPath, []byte(sampleRoster), 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", inputPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created %s\ncreated %s\n", manifestPath, inputPath)
	return nil
}
