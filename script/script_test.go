package script

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stacklab/stacklab/stack"
)

const program = `
# build up
push a
PUSH b
push "  padded  "
peek
size
snapshot
iter
pop
pop
pop
pop
empty
peek
`

func TestParse(t *testing.T) {
	Convey("Given a well-formed program", t, func() {
		ops, err := Parse(strings.NewReader(program))
		So(err, ShouldBeNil)

		Convey("Comments and blank lines are skipped and lines are numbered from the source", func() {
			So(ops, ShouldHaveLength, 13)
			So(ops[0], ShouldResemble, Op{Line: 3, Kind: Push, Arg: "a"})
			So(ops[1].Kind, ShouldEqual, Push)
			So(ops[1].Arg, ShouldEqual, "b")
		})

		Convey("Quoted values keep their whitespace", func() {
			So(ops[2].Arg, ShouldEqual, "  padded  ")
			So(ops[2].String(), ShouldEqual, `push "  padded  "`)
		})
	})

	Convey("Syntax errors carry the line number", t, func() {
		cases := []struct {
			src  string
			want string
		}{
			{"push a\npus b", `line 2: unknown operation "pus", did you mean "push"?`},
			{"pusj b", `line 1: unknown operation "pusj", did you mean "push"?`},
			{"frobnicate", `line 1: unknown operation "frobnicate"`},
			{"\n\npush", "line 3: push needs a value"},
			{"pop now", `line 1: pop takes no argument, got "now"`},
			{`push "unterminated`, `line 1: bad quoted value "unterminated`},
		}

		for _, c := range cases {
			_, err := Parse(strings.NewReader(c.src))
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, c.want)

			var syntaxErr *SyntaxError
			So(errors.As(err, &syntaxErr), ShouldBeTrue)
		}
	})
}

func TestExecute(t *testing.T) {
	Convey("Given the sample program", t, func() {
		ops, err := Parse(strings.NewReader(program))
		So(err, ShouldBeNil)

		Convey("Lenient execution records the failing pop and continues", func() {
			out, err := Execute(ops, Options{Source: "sample"})
			So(err, ShouldBeNil)
			So(out.Source, ShouldEqual, "sample")
			So(out.Steps, ShouldHaveLength, len(ops))
			So(out.Failures, ShouldEqual, 1)

			steps := out.Steps
			So(steps[3].Result, ShouldEqual, "  padded  ")
			So(steps[4].Result, ShouldEqual, "3")
			So(steps[5].Values, ShouldResemble, []string{"a", "b", "  padded  "})
			So(steps[6].Values, ShouldResemble, []string{"  padded  ", "b", "a"})
			So(steps[7].Result, ShouldEqual, "  padded  ")
			So(steps[8].Result, ShouldEqual, "b")
			So(steps[9].Result, ShouldEqual, "a")

			So(steps[10].Failed(), ShouldBeTrue)
			So(steps[10].Error, ShouldEqual, stack.ErrEmptyStack.Error())
			So(steps[10].Size, ShouldEqual, 0)

			So(steps[11].Result, ShouldEqual, "true")
			So(steps[12].Absent, ShouldBeTrue)
			So(out.Final, ShouldBeEmpty)
		})

		Convey("Strict execution stops at the failing pop", func() {
			out, err := Execute(ops, Options{Strict: true})
			So(errors.Is(err, stack.ErrEmptyStack), ShouldBeTrue)
			So(err.Error(), ShouldStartWith, "line 13: pop")
			So(out.Steps, ShouldHaveLength, 11)
			So(out.Failures, ShouldEqual, 1)
		})
	})

	Convey("Seed values are pushed before the program runs", t, func() {
		ops, err := Parse(strings.NewReader("pop\nshow"))
		So(err, ShouldBeNil)

		out, err := Execute(ops, Options{Seed: []string{"x", "y", "z"}, Capacity: 1})
		So(err, ShouldBeNil)
		So(out.Steps[0].Result, ShouldEqual, "z")
		So(out.Steps[1].Result, ShouldEqual, "Stack[x y]")
		So(out.Final, ShouldResemble, []string{"x", "y"})
	})

	Convey("Clear resets the stack", t, func() {
		ops, err := Parse(strings.NewReader("push 1\npush 2\nclear\nlen\npop"))
		So(err, ShouldBeNil)

		out, err := Execute(ops, Options{})
		So(err, ShouldBeNil)
		So(out.Steps[3].Result, ShouldEqual, "0")
		So(out.Steps[4].Failed(), ShouldBeTrue)
	})
}

func TestRender(t *testing.T) {
	Convey("Given an execution with a failure", t, func() {
		ops, err := Parse(strings.NewReader("push hello\npop\npop"))
		So(err, ShouldBeNil)
		out, err := Execute(ops, Options{Source: "hello.stk"})
		So(err, ShouldBeNil)

		Convey("JSON output round-trips", func() {
			var buf bytes.Buffer
			So(RenderJSON(&buf, out), ShouldBeNil)

			var decoded Output
			So(json.Unmarshal(buf.Bytes(), &decoded), ShouldBeNil)
			So(decoded.Source, ShouldEqual, "hello.stk")
			So(decoded.Failures, ShouldEqual, 1)
			So(decoded.Steps[1].Result, ShouldEqual, "hello")
			So(decoded.Steps[2].Error, ShouldEqual, stack.ErrEmptyStack.Error())
		})

		Convey("Text output has one line per step plus a summary", func() {
			var buf bytes.Buffer
			So(RenderText(&buf, out, 0), ShouldBeNil)

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			So(lines, ShouldHaveLength, 4)
			So(lines[0], ShouldContainSubstring, `"hello"`)
			So(lines[2], ShouldContainSubstring, stack.ErrEmptyStack.Error())
			So(lines[3], ShouldContainSubstring, "1 failure")
		})

		Convey("Text output honours the width", func() {
			var buf bytes.Buffer
			So(RenderText(&buf, out, 12), ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, "…")
		})
	})

	Convey("Schema describes the output document", t, func() {
		schema := Schema()
		raw, err := json.Marshal(schema)
		So(err, ShouldBeNil)
		So(string(raw), ShouldContainSubstring, "script.Step")
		So(string(raw), ShouldContainSubstring, `"failures"`)
	})
}
