package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stacklab/stacklab/log"
)

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.inputC.Width = max(msg.Width-len(m.inputC.Prompt)-1, 0)
		m.helpC.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.push):
			m.handlePush()
			return m, nil
		case key.Matches(msg, m.keymap.pop):
			m.handlePop()
			return m, nil
		case key.Matches(msg, m.keymap.clear):
			m.handleClear()
			return m, nil
		case key.Matches(msg, m.keymap.undo):
			m.handleUndo()
			return m, nil
		case key.Matches(msg, m.keymap.showHelp):
			m.helpC.ShowAll = !m.helpC.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputC, cmd = m.inputC.Update(msg)
	return m, cmd
}

func (m *model) handlePush() {
	value := m.inputC.Value()
	if value == "" {
		return
	}

	m.stack.Push(value)
	m.inputC.Reset()
	m.record(action{kind: pushed, values: []string{value}}, fmt.Sprintf("pushed %q", value))
	log.Debugf("tui: push %q", value)
}

func (m *model) handlePop() {
	value, err := m.stack.Pop()
	if err != nil {
		m.fail(err)
		log.Debugf("tui: %v", err)
		return
	}

	m.record(action{kind: popped, values: []string{value}}, fmt.Sprintf("popped %q", value))
	log.Debugf("tui: pop %q", value)
}

func (m *model) handleClear() {
	if m.stack.IsEmpty() {
		m.status = "already empty"
		m.lastErr = nil
		return
	}

	removed := m.stack.Snapshot()
	m.stack.Clear()
	m.record(action{kind: cleared, values: removed}, fmt.Sprintf("cleared %d elements", len(removed)))
}

func (m *model) handleUndo() {
	m.lastErr = nil
	if m.revert() {
		m.status = "undone"
	} else {
		m.status = "nothing to undo"
	}
}
