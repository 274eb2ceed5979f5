package main

import (
	"errors"

	"roster/internal/project"
)

const noRosterTomlMessage = "no roster.toml found and no input given\nplease name a file or directory explicitly, e.g.:\n  roster check heroes.roster"

// resolveTarget picks the input path: an explicit argument wins, then
// the manifest's input.main relative to the manifest root.
func resolveTarget(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	manifest, ok, err := project.LoadManifest("")
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.New(noRosterTomlMessage)
	}
	main, ok := manifest.MainInput()
	if !ok {
		return "", errors.New(noRosterTomlMessage)
	}
	return main, nil
}
