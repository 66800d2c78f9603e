package script

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/muesli/reflow/truncate"
	"github.com/samber/lo"
	"github.com/stacklab/stacklab/color"
	"github.com/stacklab/stacklab/icon"
	"github.com/stacklab/stacklab/style"
	"github.com/stacklab/stacklab/util"
)

// RenderJSON writes out as a single JSON document.
func RenderJSON(w io.Writer, out *Output) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// RenderText writes one styled line per step followed by the final contents.
// Lines are truncated to width columns when width is positive.
func RenderText(w io.Writer, out *Output, width int) error {
	opWidth := util.Max(lo.Map(Kinds(), func(k Kind, _ int) int { return len(k) })...)
	lineWidth := len(strconv.Itoa(lo.MaxBy(out.Steps, func(a, b Step) bool { return a.Line > b.Line }).Line))

	for _, step := range out.Steps {
		line := fmt.Sprintf(
			"%s %s %s %s %s",
			stepIcon(step),
			style.Faint(fmt.Sprintf("%*d", lineWidth, step.Line)),
			style.Fg(color.Purple)(fmt.Sprintf("%-*s", opWidth, step.Op)),
			describe(step),
			style.Faint(fmt.Sprintf("[size %d]", step.Size)),
		)

		if width > 0 {
			line = truncate.StringWithTail(line, uint(width), "…")
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	final := style.Fg(color.Yellow)(fmt.Sprintf("%v", out.Final))
	if len(out.Final) == 0 {
		final = icon.Get(icon.Empty) + " " + style.Faint("empty")
	}

	summary := style.Fg(color.Green)("no failures")
	if out.Failures > 0 {
		summary = style.Fg(color.Red)(util.Quantify(out.Failures, "failure", "failures"))
	}

	_, err := fmt.Fprintf(w, "%s %s %s\n", style.Bold("final"), final, style.Faint("("+summary+")"))
	return err
}

func stepIcon(step Step) string {
	switch {
	case step.Failed():
		return style.Fg(color.Red)(icon.Get(icon.Fail))
	case step.Op == Push:
		return icon.Get(icon.Push)
	case step.Op == Pop, step.Op == Clear:
		return icon.Get(icon.Pop)
	default:
		return icon.Get(icon.Peek)
	}
}

func describe(step Step) string {
	switch {
	case step.Failed():
		return style.Fg(color.Red)(step.Error)
	case step.Op == Push:
		return style.Fg(color.Yellow)(strconv.Quote(step.Arg))
	case step.Absent:
		return style.Faint("none")
	case step.Op == Snapshot, step.Op == Iter:
		return style.Fg(color.Yellow)("[" + strings.Join(step.Values, " ") + "]")
	default:
		return style.Fg(color.Yellow)(step.Result)
	}
}

// Schema describes the JSON produced by RenderJSON.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		return "script." + t.Name()
	}
	return reflector.Reflect(&Output{})
}
