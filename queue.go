package fixed

import "iter"

// Queue is a fixed-capacity FIFO container: elements enter at the back of
// its Ring and leave from the front.
type Queue[T any] struct {
	ring Ring[T]
}

// NewQueue creates an empty Queue holding at most capacity elements.
// Panics if capacity < 1.
func NewQueue[T any](capacity int) *Queue[T] {
	q := &Queue[T]{}
	q.ring.init(capacity)
	return q
}

// Clear removes every element.
func (q *Queue[T]) Clear() { q.ring.Clear() }

// Enqueue appends v at the back. Panics if the queue is full.
func (q *Queue[T]) Enqueue(v T) {
	if q.ring.Full() {
		violation("Enqueue on full Queue (capacity %d)", q.ring.Capacity())
	}
	q.ring.PushBack(v)
}

// Dequeue removes and returns the oldest element.
// Panics if the queue is empty.
func (q *Queue[T]) Dequeue() T {
	if q.ring.Empty() {
		violation("Dequeue on empty Queue")
	}
	return q.ring.PopFront()
}

// Front returns the oldest element. Panics if the queue is empty.
func (q *Queue[T]) Front() T {
	if q.ring.Empty() {
		violation("Front on empty Queue")
	}
	return q.ring.Front()
}

// Back returns the newest element. Panics if the queue is empty.
func (q *Queue[T]) Back() T {
	if q.ring.Empty() {
		violation("Back on empty Queue")
	}
	return q.ring.Back()
}

// Size returns the number of queued elements.
func (q *Queue[T]) Size() int { return q.ring.Size() }

// Capacity returns the maximum number of elements the queue can hold.
func (q *Queue[T]) Capacity() int { return q.ring.Capacity() }

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool { return q.ring.Empty() }

// Full reports whether the queue holds Capacity() elements.
func (q *Queue[T]) Full() bool { return q.ring.Full() }

// Clone returns an independent copy of q.
func (q *Queue[T]) Clone() *Queue[T] {
	c := &Queue[T]{}
	q.ring.cloneInto(&c.ring, nil)
	return c
}

// Values returns an iterator over the elements in dequeue order.
func (q *Queue[T]) Values() iter.Seq[T] { return q.ring.Values() }
