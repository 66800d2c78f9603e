package style

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stacklab/stacklab/color"
)

func TestRenderers(t *testing.T) {
	Convey("Renderers keep the text", t, func() {
		renderers := []struct {
			name   string
			render func(string) string
		}{
			{"faint", Faint},
			{"bold", Bold},
			{"italic", Italic},
			{"fg", Fg(color.Red)},
			{"title", Title},
			{"cell", Cell},
		}

		for _, r := range renderers {
			Convey(r.name, func() {
				So(r.render("top"), ShouldContainSubstring, "top")
			})
		}
	})

	Convey("Padded renderers add horizontal padding", t, func() {
		So(lipgloss.Width(Cell("x")), ShouldEqual, 3)
		So(lipgloss.Width(Title("x")), ShouldEqual, 3)
	})
}
