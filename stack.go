package fixed

import "iter"

// Stack is a fixed-capacity LIFO container. It only uses the back end of
// its Ring.
type Stack[T any] struct {
	ring Ring[T]
}

// NewStack creates an empty Stack holding at most capacity elements.
// Panics if capacity < 1.
func NewStack[T any](capacity int) *Stack[T] {
	s := &Stack[T]{}
	s.ring.init(capacity)
	return s
}

// Clear removes every element.
func (s *Stack[T]) Clear() { s.ring.Clear() }

// Push places v on top of the stack. Panics if the stack is full.
func (s *Stack[T]) Push(v T) {
	if s.ring.Full() {
		violation("Push on full Stack (capacity %d)", s.ring.Capacity())
	}
	s.ring.PushBack(v)
}

// Pop removes and returns the top element. Panics if the stack is empty.
func (s *Stack[T]) Pop() T {
	if s.ring.Empty() {
		violation("Pop on empty Stack")
	}
	return s.ring.PopBack()
}

// Peek returns the top element without removing it.
// Panics if the stack is empty.
func (s *Stack[T]) Peek() T {
	if s.ring.Empty() {
		violation("Peek on empty Stack")
	}
	return s.ring.Back()
}

// Size returns the number of elements on the stack.
func (s *Stack[T]) Size() int { return s.ring.Size() }

// Capacity returns the maximum number of elements the stack can hold.
func (s *Stack[T]) Capacity() int { return s.ring.Capacity() }

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool { return s.ring.Empty() }

// Full reports whether the stack holds Capacity() elements.
func (s *Stack[T]) Full() bool { return s.ring.Full() }

// Clone returns an independent copy of s.
func (s *Stack[T]) Clone() *Stack[T] {
	c := &Stack[T]{}
	s.ring.cloneInto(&c.ring, nil)
	return c
}

// Values returns an iterator over the elements from top to bottom.
func (s *Stack[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := s.ring.Size() - 1; i >= 0; i-- {
			if !yield(s.ring.Get(i)) {
				return
			}
		}
	}
}
