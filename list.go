package fixed

import "iter"

// nilSlot marks an absent link.
const nilSlot = -1

// slot is one cell of a List's pool. Its identity is its index in the pool;
// prev and next are indices into the same pool, never into another list's.
type slot[T any] struct {
	value T
	prev  int
	next  int
}

// List is a doubly-linked list whose nodes are drawn from a fixed pool of
// slots allocated once by NewList. Unused slots are tracked by a Stack of
// indices, so insertion and removal at either end are O(1) and never
// allocate. Not goroutine-safe.
//
// Invariants:
//   - every slot is either on the free stack or in the live chain, never both;
//   - free.Size() + Size() == Capacity();
//   - slots[head].prev and slots[tail].next are nilSlot.
type List[T any] struct {
	slots []slot[T]
	free  Stack[int]
	head  int
	tail  int
	size  int
}

// NewList creates an empty List with a pool of capacity slots.
// Panics if capacity < 1.
func NewList[T any](capacity int) *List[T] {
	l := &List[T]{}
	l.init(capacity)
	return l
}

func (l *List[T]) init(capacity int) {
	l.slots = allocSlots[slot[T]](capacity)
	l.free.ring.init(capacity)
	l.Clear()
}

// Clear removes every element and returns all slots to the free pool.
func (l *List[T]) Clear() {
	clear(l.slots)
	l.free.Clear()
	// Hand out low indices first.
	for i := len(l.slots) - 1; i >= 0; i-- {
		l.free.Push(i)
	}
	l.head = nilSlot
	l.tail = nilSlot
	l.size = 0
}

// PushFront inserts v before the first element.
// Panics if every slot is in use.
func (l *List[T]) PushFront(v T) {
	if l.Full() {
		violation("PushFront on full List (capacity %d)", len(l.slots))
	}
	i := l.acquire(v)
	l.slots[i].next = l.head
	if l.head == nilSlot {
		l.tail = i
	} else {
		l.slots[l.head].prev = i
	}
	l.head = i
	l.size++
}

// PushBack inserts v after the last element.
// Panics if every slot is in use.
func (l *List[T]) PushBack(v T) {
	if l.Full() {
		violation("PushBack on full List (capacity %d)", len(l.slots))
	}
	i := l.acquire(v)
	l.slots[i].prev = l.tail
	if l.tail == nilSlot {
		l.head = i
	} else {
		l.slots[l.tail].next = i
	}
	l.tail = i
	l.size++
}

// PopFront removes and returns the first element.
// Panics if the list is empty.
func (l *List[T]) PopFront() T {
	if l.size == 0 {
		violation("PopFront on empty List")
	}
	i := l.head
	v := l.slots[i].value
	if l.head == l.tail {
		l.head = nilSlot
		l.tail = nilSlot
	} else {
		l.head = l.slots[i].next
		l.slots[l.head].prev = nilSlot
	}
	l.release(i)
	l.size--
	return v
}

// PopBack removes and returns the last element.
// Panics if the list is empty.
func (l *List[T]) PopBack() T {
	if l.size == 0 {
		violation("PopBack on empty List")
	}
	i := l.tail
	v := l.slots[i].value
	if l.head == l.tail {
		l.head = nilSlot
		l.tail = nilSlot
	} else {
		l.tail = l.slots[i].prev
		l.slots[l.tail].next = nilSlot
	}
	l.release(i)
	l.size--
	return v
}

// Front returns the first element. Panics if the list is empty.
func (l *List[T]) Front() T {
	if l.size == 0 {
		violation("Front on empty List")
	}
	return l.slots[l.head].value
}

// Back returns the last element. Panics if the list is empty.
func (l *List[T]) Back() T {
	if l.size == 0 {
		violation("Back on empty List")
	}
	return l.slots[l.tail].value
}

// Get returns the element at position i. The walk starts from whichever
// end is closer, so it takes O(min(i, Size()-i)) steps.
// Panics unless 0 <= i < Size(). Use At for a checked lookup.
func (l *List[T]) Get(i int) T {
	if !inRange(i, l.size) {
		violation("index %d out of range [0, %d)", i, l.size)
	}
	return l.slots[l.walk(i)].value
}

// Set replaces the element at position i.
// Panics unless 0 <= i < Size().
func (l *List[T]) Set(i int, v T) {
	if !inRange(i, l.size) {
		violation("index %d out of range [0, %d)", i, l.size)
	}
	l.slots[l.walk(i)].value = v
}

// At is the bounds-checked form of Get. It returns an error wrapping
// ErrOutOfRange when i < 0 or i >= Size().
func (l *List[T]) At(i int) (T, error) {
	if !inRange(i, l.size) {
		var zero T
		return zero, outOfRange(i, l.size)
	}
	return l.slots[l.walk(i)].value, nil
}

// Size returns the number of elements in the list.
func (l *List[T]) Size() int { return l.size }

// Capacity returns the number of slots in the pool.
func (l *List[T]) Capacity() int { return len(l.slots) }

// Free returns the number of unused slots.
func (l *List[T]) Free() int { return l.free.Size() }

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool { return l.size == 0 }

// Full reports whether every slot is in use.
func (l *List[T]) Full() bool { return l.size == len(l.slots) }

// Clone returns a copy of l with its own pool of the same capacity. The
// copy is rebuilt by walking l front to back, so none of its links refer
// to l's slots and mutating either list never affects the other.
func (l *List[T]) Clone() *List[T] {
	c := NewList[T](len(l.slots))
	c.link(l, nil)
	return c
}

// CloneFunc is like Clone but duplicates each element with fn.
func (l *List[T]) CloneFunc(fn func(T) T) *List[T] {
	c := NewList[T](len(l.slots))
	c.link(l, fn)
	return c
}

// CopyFrom replaces the contents of l with those of src, re-linking them
// within l's own pool. Panics if src holds more elements than l can.
func (l *List[T]) CopyFrom(src *List[T]) {
	if src == l {
		return
	}
	if src.size > len(l.slots) {
		violation("CopyFrom of %d elements into List of capacity %d", src.size, len(l.slots))
	}
	l.Clear()
	l.link(src, nil)
}

// All returns an iterator over positions and elements, front to back.
// The list must not be modified during iteration.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l.size == 0 {
			return
		}
		pos := 0
		for i := l.head; i != nilSlot; i = l.slots[i].next {
			if !yield(pos, l.slots[i].value) {
				return
			}
			pos++
		}
	}
}

// Values returns an iterator over the elements, front to back.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.size == 0 {
			return
		}
		for i := l.head; i != nilSlot; i = l.slots[i].next {
			if !yield(l.slots[i].value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements, back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.size == 0 {
			return
		}
		for i := l.tail; i != nilSlot; i = l.slots[i].prev {
			if !yield(l.slots[i].value) {
				return
			}
		}
	}
}

// acquire takes a slot from the free pool and fills it with an unlinked v.
func (l *List[T]) acquire(v T) int {
	i := l.free.Pop()
	l.slots[i] = slot[T]{value: v, prev: nilSlot, next: nilSlot}
	return i
}

// release returns slot i to the free pool.
func (l *List[T]) release(i int) {
	l.slots[i] = slot[T]{prev: nilSlot, next: nilSlot}
	l.free.Push(i)
}

// walk returns the slot index of position i, which must be live.
func (l *List[T]) walk(i int) int {
	if i < l.size/2 {
		n := l.head
		for ; i > 0; i-- {
			n = l.slots[n].next
		}
		return n
	}
	n := l.tail
	for steps := l.size - 1 - i; steps > 0; steps-- {
		n = l.slots[n].prev
	}
	return n
}

// link appends src's elements to l in order. l must have room for them.
func (l *List[T]) link(src *List[T], fn func(T) T) {
	if src.size == 0 {
		return
	}
	for i := src.head; i != nilSlot; i = src.slots[i].next {
		v := src.slots[i].value
		if fn != nil {
			v = fn(v)
		}
		l.PushBack(v)
	}
}
