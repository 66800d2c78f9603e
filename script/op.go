// Package script parses and executes line-oriented stack programs.
//
// A program holds one operation per line. Blank lines and lines starting with
// '#' are ignored. Operation names are case-insensitive:
//
//	push <value>   push the rest of the line, or a Go-quoted string
//	pop            pop the top element
//	peek           show the top element
//	size, len      show the element count
//	empty          show whether the stack is empty
//	clear          remove every element
//	snapshot       list elements bottom to top
//	iter           list elements top to bottom
//	show           render the whole stack
package script

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Kind names an operation.
type Kind string

const (
	Push     Kind = "push"
	Pop      Kind = "pop"
	Peek     Kind = "peek"
	Size     Kind = "size"
	Len      Kind = "len"
	Empty    Kind = "empty"
	Clear    Kind = "clear"
	Snapshot Kind = "snapshot"
	Iter     Kind = "iter"
	Show     Kind = "show"
)

// Kinds lists every operation in documentation order.
func Kinds() []Kind {
	return []Kind{Push, Pop, Peek, Size, Len, Empty, Clear, Snapshot, Iter, Show}
}

// Op is a parsed operation.
type Op struct {
	Line int
	Kind Kind
	Arg  string
}

func (o Op) String() string {
	if o.Kind == Push {
		return fmt.Sprintf("%s %s", o.Kind, strconv.Quote(o.Arg))
	}
	return string(o.Kind)
}

// SyntaxError reports a malformed line.
type SyntaxError struct {
	Line       int
	Msg        string
	Suggestion mo.Option[Kind]
}

func (e *SyntaxError) Error() string {
	if suggestion, ok := e.Suggestion.Get(); ok {
		return fmt.Sprintf("line %d: %s, did you mean %q?", e.Line, e.Msg, suggestion)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Parse reads a whole program. It stops at the first malformed line.
func Parse(r io.Reader) ([]Op, error) {
	var (
		ops     []Op
		scanner = bufio.NewScanner(r)
		line    int
	)

	for scanner.Scan() {
		line++
		op, ok, err := ParseLine(line, scanner.Text())
		if err != nil {
			return nil, err
		}
		if ok {
			ops = append(ops, op)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}

	return ops, nil
}

// ParseLine parses a single line. ok is false for blank and comment lines.
func ParseLine(line int, text string) (op Op, ok bool, err error) {
	text = strings.TrimSpace(text)
	if text == "" || strings.HasPrefix(text, "#") {
		return op, false, nil
	}

	name, rest, _ := strings.Cut(text, " ")
	rest = strings.TrimSpace(rest)
	kind := Kind(strings.ToLower(name))

	if !lo.Contains(Kinds(), kind) {
		return op, false, &SyntaxError{
			Line:       line,
			Msg:        fmt.Sprintf("unknown operation %q", name),
			Suggestion: suggest(strings.ToLower(name)),
		}
	}

	op = Op{Line: line, Kind: kind}

	switch {
	case kind == Push && rest == "":
		return op, false, &SyntaxError{Line: line, Msg: "push needs a value"}
	case kind == Push:
		op.Arg, err = unquote(rest)
		if err != nil {
			return op, false, &SyntaxError{Line: line, Msg: fmt.Sprintf("bad quoted value %s", rest)}
		}
	case rest != "":
		return op, false, &SyntaxError{Line: line, Msg: fmt.Sprintf("%s takes no argument, got %q", kind, rest)}
	}

	return op, true, nil
}

func unquote(s string) (string, error) {
	if strings.HasPrefix(s, `"`) || strings.HasPrefix(s, "`") {
		return strconv.Unquote(s)
	}
	return s, nil
}

// suggest finds the operation closest to a misspelt name.
func suggest(name string) mo.Option[Kind] {
	names := lo.Map(Kinds(), func(k Kind, _ int) string { return string(k) })

	ranks := fuzzy.RankFindNormalizedFold(name, names)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return mo.Some(Kind(ranks[0].Target))
	}

	closest := lo.MinBy(names, func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	if levenshtein.Distance(name, closest) <= 2 {
		return mo.Some(Kind(closest))
	}
	return mo.None[Kind]()
}
