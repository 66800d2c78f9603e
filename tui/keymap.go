package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/stacklab/stacklab/color"
	"github.com/stacklab/stacklab/style"
)

// keymap defines the keyboard interactions of the visualiser.
type keymap struct {
	push, pop, clear, undo,
	showHelp,
	quit key.Binding
}

func newKeymap() *keymap {
	return &keymap{
		push: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp(style.Fg(color.Orange)("enter"), style.Fg(color.Orange)("push")),
		),
		pop: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "pop"),
		),
		clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
		undo: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "undo"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "help"),
		),
		quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c", "ctrl+d"),
			key.WithHelp("esc", "quit"),
		),
	}
}

func (k *keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.push, k.pop, k.undo, k.showHelp, k.quit}
}

func (k *keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.push, k.pop, k.clear},
		{k.undo, k.showHelp, k.quit},
	}
}
