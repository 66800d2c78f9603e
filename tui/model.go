package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/stacklab/stacklab/stack"
)

type actionKind int

const (
	pushed actionKind = iota
	popped
	cleared
)

// action records a mutation so that it can be reverted.
type action struct {
	kind   actionKind
	values []string
}

type model struct {
	stack   *stack.Stack[string]
	history stack.Stack[action]

	keymap *keymap
	inputC textinput.Model
	helpC  help.Model

	status  string
	lastErr error

	width, height int

	options *Options
}

func newModel(options *Options) *model {
	s := stack.WithCapacity[string](max(options.Capacity, len(options.Seed)))
	for _, v := range options.Seed {
		s.Push(v)
	}

	input := textinput.New()
	input.Placeholder = "value to push"
	input.Prompt = "push › "
	input.Focus()

	return &model{
		stack:   s,
		keymap:  newKeymap(),
		inputC:  input,
		helpC:   help.New(),
		options: options,
	}
}

// record clears the previous error and remembers a for undo.
func (m *model) record(a action, status string) {
	m.history.Push(a)
	m.status = status
	m.lastErr = nil
}

// fail shows err without touching the undo history.
func (m *model) fail(err error) {
	m.lastErr = err
	m.status = ""
}

// revert undoes the most recent action.
func (m *model) revert() bool {
	a, err := m.history.Pop()
	if err != nil {
		return false
	}

	switch a.kind {
	case pushed:
		_, _ = m.stack.Pop()
	case popped:
		m.stack.Push(a.values[0])
	case cleared:
		for _, v := range a.values {
			m.stack.Push(v)
		}
	}
	return true
}
