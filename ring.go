package fixed

import "iter"

// Ring is a fixed-capacity double-ended buffer. Logical position i lives in
// slot (head+i) mod capacity, so operations at either end never shift
// elements. Not goroutine-safe.
type Ring[T any] struct {
	buf  []T // backing slots, len(buf) == capacity
	head int // physical slot of logical position 0
	size int // number of live elements
}

// NewRing creates an empty Ring holding at most capacity elements.
// Panics if capacity < 1.
func NewRing[T any](capacity int) *Ring[T] {
	r := &Ring[T]{}
	r.init(capacity)
	return r
}

func (r *Ring[T]) init(capacity int) {
	r.buf = allocSlots[T](capacity)
	r.head = 0
	r.size = 0
}

// Clear removes every element. Vacated slots are reset to the zero value
// so the ring does not keep pointers alive.
func (r *Ring[T]) Clear() {
	clear(r.buf)
	r.head = 0
	r.size = 0
}

// PushFront inserts v before the first element.
// Panics if the ring is full.
func (r *Ring[T]) PushFront(v T) {
	if r.Full() {
		violation("PushFront on full Ring (capacity %d)", len(r.buf))
	}
	r.head = r.wrap(r.head - 1)
	r.buf[r.head] = v
	r.size++
}

// PushBack inserts v after the last element.
// Panics if the ring is full.
func (r *Ring[T]) PushBack(v T) {
	if r.Full() {
		violation("PushBack on full Ring (capacity %d)", len(r.buf))
	}
	r.buf[r.slot(r.size)] = v
	r.size++
}

// PopFront removes and returns the first element.
// Panics if the ring is empty.
func (r *Ring[T]) PopFront() T {
	r.panicIfEmpty("PopFront")
	var zero T
	v := r.buf[r.head]
	r.buf[r.head] = zero
	r.head = r.wrap(r.head + 1)
	r.size--
	return v
}

// PopBack removes and returns the last element.
// Panics if the ring is empty.
func (r *Ring[T]) PopBack() T {
	r.panicIfEmpty("PopBack")
	var zero T
	i := r.slot(r.size - 1)
	v := r.buf[i]
	r.buf[i] = zero
	r.size--
	return v
}

// Front returns the first element. Panics if the ring is empty.
func (r *Ring[T]) Front() T {
	r.panicIfEmpty("Front")
	return r.buf[r.head]
}

// Back returns the last element. Panics if the ring is empty.
func (r *Ring[T]) Back() T {
	r.panicIfEmpty("Back")
	return r.buf[r.slot(r.size-1)]
}

// Get returns the element at logical position i, counted from the front.
// Panics unless 0 <= i < Size(). Use At for a checked lookup.
func (r *Ring[T]) Get(i int) T {
	return r.buf[r.checked(i)]
}

// Set replaces the element at logical position i.
// Panics unless 0 <= i < Size().
func (r *Ring[T]) Set(i int, v T) {
	r.buf[r.checked(i)] = v
}

// At is the bounds-checked form of Get. It returns an error wrapping
// ErrOutOfRange when i < 0 or i >= Size().
func (r *Ring[T]) At(i int) (T, error) {
	if !inRange(i, r.size) {
		var zero T
		return zero, outOfRange(i, r.size)
	}
	return r.buf[r.slot(i)], nil
}

// Size returns the number of elements in the ring.
func (r *Ring[T]) Size() int { return r.size }

// Capacity returns the maximum number of elements the ring can hold.
func (r *Ring[T]) Capacity() int { return len(r.buf) }

// Empty reports whether the ring holds no elements.
func (r *Ring[T]) Empty() bool { return r.size == 0 }

// Full reports whether the ring holds Capacity() elements.
func (r *Ring[T]) Full() bool { return r.size == len(r.buf) }

// Clone returns an independent copy of r with the same capacity.
// Elements are copied by assignment.
func (r *Ring[T]) Clone() *Ring[T] {
	c := &Ring[T]{}
	r.cloneInto(c, nil)
	return c
}

// CloneFunc is like Clone but duplicates each element with fn, for element
// types that would otherwise share memory with the original.
func (r *Ring[T]) CloneFunc(fn func(T) T) *Ring[T] {
	c := &Ring[T]{}
	r.cloneInto(c, fn)
	return c
}

// cloneInto lays the live elements of r out in c starting at slot 0.
func (r *Ring[T]) cloneInto(c *Ring[T], fn func(T) T) {
	c.init(len(r.buf))
	for i := 0; i < r.size; i++ {
		v := r.buf[r.slot(i)]
		if fn != nil {
			v = fn(v)
		}
		c.buf[i] = v
	}
	c.size = r.size
}

// All returns an iterator over logical positions and elements, front to
// back. The ring must not be modified during iteration.
func (r *Ring[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < r.size; i++ {
			if !yield(i, r.buf[r.slot(i)]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements, front to back.
func (r *Ring[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < r.size; i++ {
			if !yield(r.buf[r.slot(i)]) {
				return
			}
		}
	}
}

// slot maps logical position i to its physical slot.
func (r *Ring[T]) slot(i int) int {
	return (r.head + i) % len(r.buf)
}

// wrap reduces a physical index that stepped one past either end.
func (r *Ring[T]) wrap(i int) int {
	n := len(r.buf)
	return (i%n + n) % n
}

// checked maps i to its physical slot, panicking when i is not live.
func (r *Ring[T]) checked(i int) int {
	if !inRange(i, r.size) {
		violation("index %d out of range [0, %d)", i, r.size)
	}
	return r.slot(i)
}

func (r *Ring[T]) panicIfEmpty(op string) {
	if r.size == 0 {
		violation("%s on empty Ring", op)
	}
}
