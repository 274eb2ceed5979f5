package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"roster/internal/driver"
	"roster/internal/ui"
)

type checkOutcome struct {
	results []*driver.Result
	err     error
}

func runCheckDirWithUI(ctx context.Context, title, dir string, files []string, maxIssues int) ([]*driver.Result, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		res, err := driver.CheckDir(ctx, dir, maxIssues, driver.ChannelSink{Ch: events})
		outcomeCh <- checkOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewCheckModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
