package script

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/stacklab/stacklab/log"
	"github.com/stacklab/stacklab/stack"
)

// Options tune an execution.
type Options struct {
	// Source names the program in the output, usually its file path.
	Source string
	// Seed is pushed, in order, before the first operation.
	Seed []string
	// Capacity is the initial capacity hint of the stack.
	Capacity int
	// Strict stops execution at the first failing operation.
	Strict bool
}

// Step is the observable outcome of one operation.
type Step struct {
	Line   int      `json:"line" jsonschema:"description=Line number in the source program"`
	Op     Kind     `json:"op" jsonschema:"enum=push,enum=pop,enum=peek,enum=size,enum=len,enum=empty,enum=clear,enum=snapshot,enum=iter,enum=show"`
	Arg    string   `json:"arg,omitempty"`
	Result string   `json:"result,omitempty" jsonschema:"description=Scalar result: the popped or peeked value or a count or a boolean"`
	Absent bool     `json:"absent,omitempty" jsonschema:"description=Set when peek found no element"`
	Values []string `json:"values,omitempty" jsonschema:"description=Elements listed by snapshot (bottom to top) or iter (top to bottom)"`
	Error  string   `json:"error,omitempty"`
	Size   int      `json:"size" jsonschema:"description=Stack size after the operation"`
}

// Failed reports whether the operation returned an error.
func (s Step) Failed() bool {
	return s.Error != ""
}

// Output is the record of a whole execution.
type Output struct {
	Source   string   `json:"source,omitempty"`
	Steps    []Step   `json:"steps"`
	Final    []string `json:"final" jsonschema:"description=Stack contents after the last step from bottom to top"`
	Failures int      `json:"failures"`
}

// Execute runs ops against a fresh stack. Failing operations are recorded in
// their Step; with Options.Strict the first failure also ends execution and is
// returned wrapped with its line number, alongside the partial output.
func Execute(ops []Op, opts Options) (*Output, error) {
	s := stack.WithCapacity[string](max(opts.Capacity, len(opts.Seed)))
	for _, v := range opts.Seed {
		s.Push(v)
	}

	out := &Output{
		Source: opts.Source,
		Steps:  make([]Step, 0, len(ops)),
	}

	logger := log.With(log.Fields{"source": opts.Source})

	for _, op := range ops {
		step, err := apply(s, op)
		out.Steps = append(out.Steps, step)

		if err != nil {
			out.Failures++
			logger.WithField("line", op.Line).Warn(err)

			if opts.Strict {
				out.Final = s.Snapshot()
				return out, fmt.Errorf("line %d: %s: %w", op.Line, op.Kind, err)
			}
		}
	}

	out.Final = s.Snapshot()
	logger.Debugf("executed %d operations, %d failed", len(ops), out.Failures)
	return out, nil
}

func apply(s *stack.Stack[string], op Op) (step Step, err error) {
	step = Step{Line: op.Line, Op: op.Kind, Arg: op.Arg}

	switch op.Kind {
	case Push:
		s.Push(op.Arg)
	case Pop:
		var v string
		if v, err = s.Pop(); err == nil {
			step.Result = v
		}
	case Peek:
		top := s.Peek()
		step.Result = top.OrEmpty()
		step.Absent = top.IsAbsent()
	case Size, Len:
		step.Result = strconv.Itoa(s.Size())
	case Empty:
		step.Result = strconv.FormatBool(s.IsEmpty())
	case Clear:
		s.Clear()
	case Snapshot:
		step.Values = s.Snapshot()
	case Iter:
		step.Values = slices.Collect(s.All())
	case Show:
		step.Result = s.String()
	default:
		err = fmt.Errorf("unsupported operation %q", op.Kind)
	}

	if err != nil {
		step.Error = err.Error()
	}
	step.Size = s.Size()
	return step, err
}
