// Package stack implements a generic Last-In-First-Out (LIFO) container.
//
// A Stack is not safe for concurrent use. Callers sharing an instance across
// goroutines must guard it themselves.
package stack

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/samber/mo"
)

// ErrEmptyStack is returned by Pop when the stack holds no elements.
var ErrEmptyStack = errors.New("pop from empty stack")

// Stack is a LIFO collection backed by a growable slice.
// The zero value is an empty stack ready to use.
type Stack[T any] struct {
	items []T
}

// New returns a stack with items pushed in order, so the last item is the top.
func New[T any](items ...T) *Stack[T] {
	s := WithCapacity[T](len(items))
	for _, item := range items {
		s.Push(item)
	}
	return s
}

// FromSeq returns a stack holding every element of seq, pushed in iteration order.
func FromSeq[T any](seq iter.Seq[T]) *Stack[T] {
	s := &Stack[T]{}
	for item := range seq {
		s.Push(item)
	}
	return s
}

// WithCapacity returns an empty stack whose backing storage can hold n elements before growing.
func WithCapacity[T any](n int) *Stack[T] {
	return &Stack[T]{items: make([]T, 0, max(n, 0))}
}

// Push appends item as the new top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the top element.
// It returns ErrEmptyStack and leaves the stack untouched if there is nothing to pop.
func (s *Stack[T]) Pop() (item T, err error) {
	n := len(s.items)
	if n == 0 {
		return item, ErrEmptyStack
	}

	item = s.items[n-1]

	var zero T
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return item, nil
}

// Peek returns the top element without removing it, or mo.None if the stack is empty.
func (s *Stack[T]) Peek() mo.Option[T] {
	if len(s.items) == 0 {
		return mo.None[T]()
	}
	return mo.Some(s.items[len(s.items)-1])
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Size returns the number of elements currently held.
func (s *Stack[T]) Size() int {
	return len(s.items)
}

// Len is an alias for Size.
func (s *Stack[T]) Len() int {
	return s.Size()
}

// Clear removes all elements, resetting the stack to its empty state.
func (s *Stack[T]) Clear() {
	s.items = nil
}

// Snapshot returns a copy of the elements ordered from bottom to top.
func (s *Stack[T]) Snapshot() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// All returns an iterator over the elements from top to bottom.
// Every traversal reads the stack as it is when the traversal starts.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		items := s.Snapshot()
		for i := len(items) - 1; i >= 0; i-- {
			if !yield(items[i]) {
				return
			}
		}
	}
}

// String renders the contents from bottom to top, e.g. "Stack[1 2 3]".
func (s *Stack[T]) String() string {
	var b strings.Builder
	b.WriteString("Stack[")
	for i, item := range s.items {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, item)
	}
	b.WriteByte(']')
	return b.String()
}
