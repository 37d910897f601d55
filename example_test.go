package fixed

import (
	"errors"
	"fmt"
)

// Example demonstrates the arena-backed list
func Example() {
	l := NewList[int](3)
	l.PushFront(10)
	l.PushBack(20)
	l.PushFront(5)

	for v := range l.Values() {
		fmt.Println(v)
	}

	// The pool is full; free a slot before pushing again.
	fmt.Println("full:", l.Full())
	l.PopBack()
	l.PushBack(30)

	v, _ := l.At(2)
	fmt.Println("at(2):", v)

	// Output:
	// 5
	// 10
	// 20
	// full: true
	// at(2): 30
}

// ExampleRing demonstrates wrap-around in a full ring
func ExampleRing() {
	r := NewRing[int](3)
	r.PushBack(1)
	r.PushBack(2)
	r.PushBack(3)
	fmt.Println("full:", r.Full())

	fmt.Println("popped:", r.PopFront())
	r.PushBack(4)

	for i, v := range r.All() {
		fmt.Printf("%d:%d\n", i, v)
	}

	// Output:
	// full: true
	// popped: 1
	// 0:2
	// 1:3
	// 2:4
}

// ExampleStack demonstrates LIFO order
func ExampleStack() {
	s := NewStack[string](3)
	s.Push("a")
	s.Push("b")
	s.Push("c")
	for !s.Empty() {
		fmt.Print(s.Pop())
	}
	fmt.Println()

	// Output:
	// cba
}

// ExampleQueue demonstrates FIFO order
func ExampleQueue() {
	q := NewQueue[string](3)
	q.Enqueue("a")
	q.Enqueue("b")
	q.Enqueue("c")
	for !q.Empty() {
		fmt.Print(q.Dequeue())
	}
	fmt.Println()

	// Output:
	// abc
}

// ExampleList_At demonstrates the checked accessor
func ExampleList_At() {
	l := NewList[string](4)
	l.PushBack("x")

	if _, err := l.At(1); errors.Is(err, ErrOutOfRange) {
		fmt.Println(err)
	}

	// Output:
	// index 1, size 1: fixed: index out of range
}

// ExampleList_Clone demonstrates that clones do not share slots
func ExampleList_Clone() {
	l := NewList[int](4)
	l.PushBack(1)
	l.PushBack(2)

	c := l.Clone()
	c.PopFront()
	c.PushBack(3)

	fmt.Println(l.Size(), l.Front(), l.Back())
	fmt.Println(c.Size(), c.Front(), c.Back())

	// Output:
	// 2 1 2
	// 2 2 3
}

// ExampleList_Metrics demonstrates occupancy reporting
func ExampleList_Metrics() {
	l := NewList[int](8)
	for i := 0; i < 6; i++ {
		l.PushBack(i)
	}
	m := l.Metrics()
	fmt.Printf("Size: %d, Free: %d\n", m.Size, m.Free)
	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)

	// Output:
	// Size: 6, Free: 2
	// Utilization: 75.00%
}
