package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/stacklab/stacklab/color"
	"github.com/stacklab/stacklab/icon"
	"github.com/stacklab/stacklab/style"
	"github.com/stacklab/stacklab/util"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func (m *model) View() string {
	lines := []string{
		style.Title("stacklab"),
		"",
		m.inputC.View(),
		"",
	}
	lines = append(lines, m.viewStack()...)
	lines = append(lines, "", m.viewStatus(), "", m.helpC.View(m.keymap))

	output := strings.Join(lines, "\n")
	if m.width > 4 {
		output = wordwrap.String(output, m.width-4)
	}
	return paddingStyle.Render(output)
}

func (m *model) viewStack() []string {
	if m.stack.IsEmpty() {
		return []string{style.Faint(icon.Get(icon.Empty) + " empty")}
	}

	limit := m.stack.Size()
	if m.options.RenderLimit > 0 {
		limit = util.Min(limit, m.options.RenderLimit)
	}

	var rows []string
	depth := 0
	for value := range m.stack.All() {
		if depth == limit {
			break
		}

		marker := "  "
		if depth == 0 {
			marker = style.Fg(color.Orange)(icon.Get(icon.Top)) + " "
		}

		cell := style.Cell(value)
		if m.options.ShowIndices {
			cell = style.Faint(fmt.Sprintf("%3d ", depth)) + cell
		}

		rows = append(rows, marker+cell)
		depth++
	}

	if hidden := m.stack.Size() - limit; hidden > 0 {
		rows = append(rows, style.Faint(fmt.Sprintf("   +%d more", hidden)))
	}
	return rows
}

func (m *model) viewStatus() string {
	peek := style.Faint("none")
	if top, ok := m.stack.Peek().Get(); ok {
		peek = style.Fg(color.Yellow)(top)
	}

	info := fmt.Sprintf("peek %s  size %s", peek, style.Bold(fmt.Sprint(m.stack.Size())))

	switch {
	case m.lastErr != nil:
		return info + "\n" + style.Fg(color.Red)(icon.Get(icon.Fail)+" "+m.lastErr.Error())
	case m.status != "":
		return info + "\n" + style.Fg(color.Green)(icon.Get(icon.Success)+" "+m.status)
	default:
		return info
	}
}
