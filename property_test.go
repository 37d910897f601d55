package fixed

import (
	"slices"
	"testing"

	"github.com/shoenig/test/must"
	"pgregory.net/rapid"
)

// sameInts compares element-wise so that nil and empty slices are equal.
func sameInts(t *rapid.T, want, got []int) {
	t.Helper()
	must.True(t, slices.Equal(want, got), must.Sprintf("want %v, got %v", want, got))
}

// dequeModel drives a container with both ends exposed against a plain
// slice.
type dequeModel struct {
	model []int
}

func TestRing_PropTest(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		capacity := rapid.IntRange(1, 16).Draw(t, "capacity")
		r := NewRing[int](capacity)
		m := &dequeModel{}
		pushes, pops := 0, 0

		t.Repeat(map[string]func(*rapid.T){
			"PushFront": func(t *rapid.T) {
				if r.Full() {
					t.Skip("full")
				}
				v := rapid.Int().Draw(t, "v")
				r.PushFront(v)
				m.model = slices.Insert(m.model, 0, v)
				pushes++
			},
			"PushBack": func(t *rapid.T) {
				if r.Full() {
					t.Skip("full")
				}
				v := rapid.Int().Draw(t, "v")
				r.PushBack(v)
				m.model = append(m.model, v)
				pushes++
			},
			"PopFront": func(t *rapid.T) {
				if r.Empty() {
					t.Skip("empty")
				}
				must.Eq(t, m.model[0], r.PopFront())
				m.model = m.model[1:]
				pops++
			},
			"PopBack": func(t *rapid.T) {
				if r.Empty() {
					t.Skip("empty")
				}
				last := len(m.model) - 1
				must.Eq(t, m.model[last], r.PopBack())
				m.model = m.model[:last]
				pops++
			},
			"At": func(t *rapid.T) {
				i := rapid.IntRange(-1, capacity).Draw(t, "i")
				v, err := r.At(i)
				if i >= 0 && i < len(m.model) {
					must.NoError(t, err)
					must.Eq(t, m.model[i], v)
				} else {
					must.ErrorIs(t, err, ErrOutOfRange)
				}
			},
			"": func(t *rapid.T) {
				must.Eq(t, pushes-pops, r.Size())
				must.Eq(t, len(m.model), r.Size())
				must.True(t, r.Size() <= capacity)
				must.Eq(t, r.Size() == capacity, r.Full())
				must.Eq(t, r.Size() == 0, r.Empty())
				sameInts(t, m.model, slices.Collect(r.Values()))
			},
		})
	})
}

func TestList_PropTest(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		capacity := rapid.IntRange(1, 16).Draw(t, "capacity")
		l := NewList[int](capacity)
		m := &dequeModel{}

		t.Repeat(map[string]func(*rapid.T){
			"PushFront": func(t *rapid.T) {
				if l.Full() {
					t.Skip("full")
				}
				v := rapid.Int().Draw(t, "v")
				l.PushFront(v)
				m.model = slices.Insert(m.model, 0, v)
			},
			"PushBack": func(t *rapid.T) {
				if l.Full() {
					t.Skip("full")
				}
				v := rapid.Int().Draw(t, "v")
				l.PushBack(v)
				m.model = append(m.model, v)
			},
			"PopFront": func(t *rapid.T) {
				if l.Empty() {
					t.Skip("empty")
				}
				must.Eq(t, m.model[0], l.PopFront())
				m.model = m.model[1:]
			},
			"PopBack": func(t *rapid.T) {
				if l.Empty() {
					t.Skip("empty")
				}
				last := len(m.model) - 1
				must.Eq(t, m.model[last], l.PopBack())
				m.model = m.model[:last]
			},
			"Get": func(t *rapid.T) {
				if l.Empty() {
					t.Skip("empty")
				}
				i := rapid.IntRange(0, len(m.model)-1).Draw(t, "i")
				must.Eq(t, m.model[i], l.Get(i))
			},
			"CloneIsolation": func(t *rapid.T) {
				c := l.Clone()
				sameInts(t, m.model, slices.Collect(c.Values()))
				c.Clear()
				for !c.Full() {
					c.PushFront(-1)
				}
				sameInts(t, m.model, slices.Collect(l.Values()))
			},
			"": func(t *rapid.T) {
				must.Eq(t, len(m.model), l.Size())
				must.Eq(t, capacity, l.Free()+l.Size())
				sameInts(t, m.model, slices.Collect(l.Values()))
				backward := slices.Collect(l.Backward())
				slices.Reverse(backward)
				sameInts(t, m.model, backward)
			},
		})
	})
}

func TestStackQueue_PropTest(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		capacity := rapid.IntRange(1, 16).Draw(t, "capacity")
		s := NewStack[int](capacity)
		q := NewQueue[int](capacity)
		var lifo, fifo []int

		t.Repeat(map[string]func(*rapid.T){
			"Push": func(t *rapid.T) {
				if s.Full() {
					t.Skip("full")
				}
				v := rapid.Int().Draw(t, "v")
				s.Push(v)
				lifo = append(lifo, v)
			},
			"Pop": func(t *rapid.T) {
				if s.Empty() {
					t.Skip("empty")
				}
				last := len(lifo) - 1
				must.Eq(t, lifo[last], s.Pop())
				lifo = lifo[:last]
			},
			"Enqueue": func(t *rapid.T) {
				if q.Full() {
					t.Skip("full")
				}
				v := rapid.Int().Draw(t, "v")
				q.Enqueue(v)
				fifo = append(fifo, v)
			},
			"Dequeue": func(t *rapid.T) {
				if q.Empty() {
					t.Skip("empty")
				}
				must.Eq(t, fifo[0], q.Dequeue())
				fifo = fifo[1:]
			},
			"": func(t *rapid.T) {
				must.Eq(t, len(lifo), s.Size())
				must.Eq(t, len(fifo), q.Size())
				sameInts(t, fifo, slices.Collect(q.Values()))
			},
		})
	})
}
