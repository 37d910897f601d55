package main

import (
	"math/rand/v2"
	"slices"

	"github.com/pkg/errors"

	"github.com/pavanmanishd/fixed"
)

// cloneEvery is how many operations pass between List clone isolation checks.
const cloneEvery = 1000

// deque is the double-ended surface shared by fixed.Ring and fixed.List.
type deque interface {
	PushFront(int)
	PushBack(int)
	PopFront() int
	PopBack() int
	At(int) (int, error)
	Size() int
	Capacity() int
	Empty() bool
	Full() bool
}

// simulator drives random operations against one container and a slice
// model, failing on the first disagreement.
type simulator struct {
	rng   *rand.Rand
	ops   int
	model []int
	next  int
}

func newSimulator(seed uint64, ops int) *simulator {
	return &simulator{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		ops: ops,
	}
}

func (s *simulator) value() int {
	s.next++
	return s.next
}

// push reports whether the next operation should insert, honoring the
// container's preconditions.
func (s *simulator) push(size, capacity int) bool {
	switch {
	case size == 0:
		return true
	case size == capacity:
		return false
	default:
		return s.rng.IntN(2) == 0
	}
}

func (s *simulator) checkCounts(op int, size, capacity int, empty, full bool) error {
	if size != len(s.model) {
		return errors.Errorf("op %d: size %d, model has %d", op, size, len(s.model))
	}
	if size > capacity {
		return errors.Errorf("op %d: size %d exceeds capacity %d", op, size, capacity)
	}
	if empty != (size == 0) || full != (size == capacity) {
		return errors.Errorf("op %d: empty=%t full=%t at size %d/%d", op, empty, full, size, capacity)
	}
	return nil
}

func (s *simulator) expect(op int, what string, got, want int) error {
	if got != want {
		return errors.Errorf("op %d: %s returned %d, want %d", op, what, got, want)
	}
	return nil
}

// runDeque exercises both ends and checked access. after, when non-nil,
// runs after every operation.
func (s *simulator) runDeque(d deque, after func(op int) error) error {
	for op := 0; op < s.ops; op++ {
		var err error
		if s.push(d.Size(), d.Capacity()) {
			v := s.value()
			if s.rng.IntN(2) == 0 {
				d.PushFront(v)
				s.model = slices.Insert(s.model, 0, v)
			} else {
				d.PushBack(v)
				s.model = append(s.model, v)
			}
		} else if s.rng.IntN(2) == 0 {
			err = s.expect(op, "PopFront", d.PopFront(), s.model[0])
			s.model = s.model[1:]
		} else {
			last := len(s.model) - 1
			err = s.expect(op, "PopBack", d.PopBack(), s.model[last])
			s.model = s.model[:last]
		}
		if err != nil {
			return err
		}
		if err := s.checkAt(op, d); err != nil {
			return err
		}
		if err := s.checkCounts(op, d.Size(), d.Capacity(), d.Empty(), d.Full()); err != nil {
			return err
		}
		if after != nil {
			if err := after(op); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkAt probes one random live index and the first index past the end.
func (s *simulator) checkAt(op int, d deque) error {
	if n := len(s.model); n > 0 {
		i := s.rng.IntN(n)
		v, err := d.At(i)
		if err != nil {
			return errors.Wrapf(err, "op %d: At(%d) of %d", op, i, n)
		}
		if err := s.expect(op, "At", v, s.model[i]); err != nil {
			return err
		}
	}
	if _, err := d.At(len(s.model)); !errors.Is(err, fixed.ErrOutOfRange) {
		return errors.Errorf("op %d: At(%d) returned %v, want out of range", op, len(s.model), err)
	}
	return nil
}

func (s *simulator) runRing(r *fixed.Ring[int]) error {
	return s.runDeque(r, nil)
}

func (s *simulator) runList(l *fixed.List[int]) error {
	return s.runDeque(l, func(op int) error {
		if l.Free()+l.Size() != l.Capacity() {
			return errors.Errorf("op %d: free %d + size %d != capacity %d", op, l.Free(), l.Size(), l.Capacity())
		}
		if op%cloneEvery != 0 {
			return nil
		}
		return s.checkClone(op, l)
	})
}

// checkClone mutates a clone of l and verifies l is untouched.
func (s *simulator) checkClone(op int, l *fixed.List[int]) error {
	c := l.Clone()
	if !slices.Equal(slices.Collect(c.Values()), s.model) {
		return errors.Errorf("op %d: clone differs from original", op)
	}
	if c.Full() {
		c.PopFront()
	}
	c.PushBack(-1)
	if !c.Empty() {
		c.PopFront()
	}
	if got := slices.Collect(l.Values()); !slices.Equal(got, s.model) {
		return errors.Errorf("op %d: original changed after mutating clone: %v", op, got)
	}
	return nil
}

func (s *simulator) runStack(st *fixed.Stack[int]) error {
	for op := 0; op < s.ops; op++ {
		if s.push(st.Size(), st.Capacity()) {
			v := s.value()
			st.Push(v)
			s.model = append(s.model, v)
		} else {
			last := len(s.model) - 1
			if err := s.expect(op, "Peek", st.Peek(), s.model[last]); err != nil {
				return err
			}
			if err := s.expect(op, "Pop", st.Pop(), s.model[last]); err != nil {
				return err
			}
			s.model = s.model[:last]
		}
		if err := s.checkCounts(op, st.Size(), st.Capacity(), st.Empty(), st.Full()); err != nil {
			return err
		}
	}
	return nil
}

func (s *simulator) runQueue(q *fixed.Queue[int]) error {
	for op := 0; op < s.ops; op++ {
		if s.push(q.Size(), q.Capacity()) {
			v := s.value()
			q.Enqueue(v)
			s.model = append(s.model, v)
			if err := s.expect(op, "Back", q.Back(), v); err != nil {
				return err
			}
		} else {
			if err := s.expect(op, "Front", q.Front(), s.model[0]); err != nil {
				return err
			}
			if err := s.expect(op, "Dequeue", q.Dequeue(), s.model[0]); err != nil {
				return err
			}
			s.model = s.model[1:]
		}
		if err := s.checkCounts(op, q.Size(), q.Capacity(), q.Empty(), q.Full()); err != nil {
			return err
		}
	}
	return nil
}
