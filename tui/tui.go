// Package tui provides the interactive stack visualiser.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Options encapsulates the runtime configuration for the visualiser.
type Options struct {
	// Seed is pushed, in order, before the first frame.
	Seed []string
	// Capacity is the initial capacity hint of the stack.
	Capacity int
	// RenderLimit caps the number of elements drawn; 0 draws all of them.
	RenderLimit int
	// ShowIndices prefixes each element with its depth from the top.
	ShowIndices bool
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(options *Options) error {
	_, err := tea.NewProgram(newModel(options), tea.WithAltScreen()).Run()
	return err
}
