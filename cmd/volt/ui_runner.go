package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"volt/internal/driver"
	"volt/internal/ui"
)

type synthOutcome struct {
	result driver.SynthResult
	err    error
}

func runSynthWithUI(title string, opts driver.SynthOptions) (driver.SynthResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan synthOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.Synth(optsCopy)
		outcomeCh <- synthOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, []string{opts.Path}, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
