package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stacklab/stacklab/stack"
)

func press(m *model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func typeAndPush(m *model, value string) {
	m.inputC.SetValue(value)
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestModel(t *testing.T) {
	Convey("Given a fresh visualiser", t, func() {
		m := newModel(&Options{RenderLimit: 2, ShowIndices: true})

		Convey("Enter pushes the input and clears it", func() {
			typeAndPush(m, "a")
			typeAndPush(m, "b")

			So(m.stack.Snapshot(), ShouldResemble, []string{"a", "b"})
			So(m.inputC.Value(), ShouldBeEmpty)
			So(m.status, ShouldEqual, `pushed "b"`)
		})

		Convey("Enter on empty input does nothing", func() {
			press(m, tea.KeyMsg{Type: tea.KeyEnter})
			So(m.stack.IsEmpty(), ShouldBeTrue)
			So(m.history.IsEmpty(), ShouldBeTrue)
		})

		Convey("Popping an empty stack surfaces the error", func() {
			press(m, tea.KeyMsg{Type: tea.KeyCtrlX})
			So(m.lastErr, ShouldEqual, stack.ErrEmptyStack)
			So(m.View(), ShouldContainSubstring, stack.ErrEmptyStack.Error())
			So(m.history.IsEmpty(), ShouldBeTrue)
		})

		Convey("Undo reverts push, pop and clear", func() {
			typeAndPush(m, "a")
			typeAndPush(m, "b")
			typeAndPush(m, "c")

			press(m, tea.KeyMsg{Type: tea.KeyCtrlX})
			So(m.stack.Snapshot(), ShouldResemble, []string{"a", "b"})

			press(m, tea.KeyMsg{Type: tea.KeyCtrlL})
			So(m.stack.IsEmpty(), ShouldBeTrue)

			press(m, tea.KeyMsg{Type: tea.KeyCtrlZ})
			So(m.stack.Snapshot(), ShouldResemble, []string{"a", "b"})

			press(m, tea.KeyMsg{Type: tea.KeyCtrlZ})
			So(m.stack.Snapshot(), ShouldResemble, []string{"a", "b", "c"})

			press(m, tea.KeyMsg{Type: tea.KeyCtrlZ})
			So(m.stack.Snapshot(), ShouldResemble, []string{"a", "b"})

			press(m, tea.KeyMsg{Type: tea.KeyCtrlZ})
			press(m, tea.KeyMsg{Type: tea.KeyCtrlZ})
			So(m.stack.IsEmpty(), ShouldBeTrue)

			press(m, tea.KeyMsg{Type: tea.KeyCtrlZ})
			So(m.status, ShouldEqual, "nothing to undo")
		})

		Convey("The view draws at most the render limit", func() {
			typeAndPush(m, "bottom")
			typeAndPush(m, "middle")
			typeAndPush(m, "top")

			view := m.View()
			So(view, ShouldContainSubstring, "top")
			So(view, ShouldContainSubstring, "middle")
			So(view, ShouldNotContainSubstring, "bottom")
			So(view, ShouldContainSubstring, "+1 more")
		})

		Convey("Tab toggles the full help", func() {
			press(m, tea.KeyMsg{Type: tea.KeyTab})
			So(m.helpC.ShowAll, ShouldBeTrue)
			press(m, tea.KeyMsg{Type: tea.KeyTab})
			So(m.helpC.ShowAll, ShouldBeFalse)
		})

		Convey("Escape quits", func() {
			cmd := press(m, tea.KeyMsg{Type: tea.KeyEsc})
			So(cmd, ShouldNotBeNil)
			_, ok := cmd().(tea.QuitMsg)
			So(ok, ShouldBeTrue)
		})

		Convey("Typed runes reach the input", func() {
			press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})
			So(m.inputC.Value(), ShouldEqual, "hi")
		})
	})

	Convey("Seed values are visible on the first frame", t, func() {
		m := newModel(&Options{Seed: []string{"x", "y"}})
		So(m.stack.Peek().MustGet(), ShouldEqual, "y")
		So(m.View(), ShouldContainSubstring, "peek")
	})
}
