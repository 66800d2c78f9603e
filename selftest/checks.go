package selftest

import (
	"errors"
	"fmt"
	"slices"

	"github.com/stacklab/stacklab/stack"
)

// Checks returns the built-in suite.
func Checks() []Check {
	return []Check{
		{"push_pop_peek", checkPushPopPeek},
		{"size_and_len", checkSizeAndLen},
		{"snapshot_and_iteration", checkSnapshotAndIteration},
		{"clear", checkClear},
		{"lifo", checkLIFO},
		{"empty_iff_zero_size", checkEmptyIffZeroSize},
		{"peek_is_pure", checkPeekIsPure},
		{"empty_pop_is_idempotent", checkEmptyPop},
		{"construct_from_sequence", checkConstruct},
		{"snapshot_is_a_copy", checkSnapshotCopy},
		{"iteration_restarts", checkIterationRestarts},
	}
}

func expect[T comparable](what string, got, want T) error {
	if got != want {
		return fmt.Errorf("%s: got %v, want %v", what, got, want)
	}
	return nil
}

func expectSlice[T comparable](what string, got, want []T) error {
	if !slices.Equal(got, want) {
		return fmt.Errorf("%s: got %v, want %v", what, got, want)
	}
	return nil
}

func expectEmptyPop[T any](s *stack.Stack[T]) error {
	if _, err := s.Pop(); !errors.Is(err, stack.ErrEmptyStack) {
		return fmt.Errorf("pop on empty: got %v, want %v", err, stack.ErrEmptyStack)
	}
	return nil
}

func checkPushPopPeek() error {
	var s stack.Stack[int]
	if !s.IsEmpty() {
		return errors.New("new stack is not empty")
	}

	s.Push(1)
	s.Push(2)
	if err := expect("peek", s.Peek().OrElse(-1), 2); err != nil {
		return err
	}

	for _, want := range []int{2, 1} {
		got, err := s.Pop()
		if err != nil {
			return err
		}
		if err := expect("pop", got, want); err != nil {
			return err
		}
	}

	if !s.IsEmpty() {
		return errors.New("stack not empty after popping everything")
	}
	return expectEmptyPop(&s)
}

func checkSizeAndLen() error {
	var s stack.Stack[string]
	if err := expect("size", s.Size(), 0); err != nil {
		return err
	}

	s.Push("a")
	s.Push("b")
	if err := expect("size", s.Size(), 2); err != nil {
		return err
	}
	return expect("len", s.Len(), 2)
}

func checkSnapshotAndIteration() error {
	s := stack.New(1, 2, 3)
	if err := expectSlice("snapshot", s.Snapshot(), []int{1, 2, 3}); err != nil {
		return err
	}
	return expectSlice("iteration", slices.Collect(s.All()), []int{3, 2, 1})
}

func checkClear() error {
	s := stack.New(1, 2)
	s.Clear()

	if !s.IsEmpty() || s.Size() != 0 {
		return fmt.Errorf("stack not empty after clear: %v", s)
	}
	return expectEmptyPop(s)
}

func checkLIFO() error {
	for n := 0; n <= 100; n += 25 {
		s := stack.WithCapacity[int](1)
		for i := range n {
			s.Push(i)
		}

		for i := n - 1; i >= 0; i-- {
			got, err := s.Pop()
			if err != nil {
				return fmt.Errorf("n=%d: %w", n, err)
			}
			if err := expect(fmt.Sprintf("n=%d pop", n), got, i); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkEmptyIffZeroSize() error {
	s := stack.New[int]()
	verify := func(step string) error {
		if s.IsEmpty() != (s.Size() == 0) {
			return fmt.Errorf("after %s: IsEmpty=%t but Size=%d", step, s.IsEmpty(), s.Size())
		}
		return nil
	}

	steps := []struct {
		name string
		do   func()
	}{
		{"construct", func() {}},
		{"push", func() { s.Push(7) }},
		{"pop", func() { _, _ = s.Pop() }},
		{"failed pop", func() { _, _ = s.Pop() }},
		{"push twice", func() { s.Push(1); s.Push(2) }},
		{"clear", s.Clear},
	}

	for _, step := range steps {
		step.do()
		if err := verify(step.name); err != nil {
			return err
		}
	}
	return nil
}

func checkPeekIsPure() error {
	s := stack.New("x", "y")
	for range 3 {
		if err := expect("peek", s.Peek().OrEmpty(), "y"); err != nil {
			return err
		}
	}
	if err := expect("size after peeks", s.Size(), 2); err != nil {
		return err
	}

	s.Clear()
	if s.Peek().IsPresent() {
		return errors.New("peek on empty stack reported a value")
	}
	return nil
}

func checkEmptyPop() error {
	var s stack.Stack[int]
	for range 3 {
		if err := expectEmptyPop(&s); err != nil {
			return err
		}
		if err := expect("size after failed pop", s.Size(), 0); err != nil {
			return err
		}
	}
	return nil
}

func checkConstruct() error {
	s := stack.New("a", "b")
	got, err := s.Pop()
	if err != nil {
		return err
	}
	if err := expect("pop", got, "b"); err != nil {
		return err
	}
	if err := expect("size", s.Size(), 1); err != nil {
		return err
	}
	return expect("peek", s.Peek().OrEmpty(), "a")
}

func checkSnapshotCopy() error {
	s := stack.New(1, 2, 3)
	snap := s.Snapshot()
	for i := range snap {
		snap[i] = -snap[i]
	}

	if err := expect("size", s.Size(), 3); err != nil {
		return err
	}
	if err := expect("peek", s.Peek().OrEmpty(), 3); err != nil {
		return err
	}
	got, err := s.Pop()
	if err != nil {
		return err
	}
	return expect("pop", got, 3)
}

func checkIterationRestarts() error {
	s := stack.New(1, 2, 3)
	seq := s.All()

	for range 2 {
		if err := expectSlice("iteration", slices.Collect(seq), []int{3, 2, 1}); err != nil {
			return err
		}
	}

	n := 0
	for range s.All() {
		n++
	}
	return expect("yield count", n, s.Size())
}
