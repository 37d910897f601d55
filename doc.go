// Package fixed implements bounded containers whose storage is allocated
// exactly once, at construction, and never grows.
//
// # Overview
//
// The containers are meant for latency-sensitive code that must not
// allocate on the hot path:
//
//   - Ring: a double-ended circular buffer
//   - Stack: LIFO over a Ring
//   - Queue: FIFO over a Ring
//   - List: a doubly-linked list over a fixed pool of slots
//
// # Basic Usage
//
//	q := fixed.NewQueue[int](128)
//	q.Enqueue(1)
//	v := q.Dequeue()
//
//	l := fixed.NewList[string](64)
//	l.PushBack("b")
//	l.PushFront("a")
//	for v := range l.Values() {
//		fmt.Println(v)
//	}
//
// # Preconditions and Errors
//
// Pushing onto a full container, popping or peeking an empty one and
// indexing with Get or Set outside [0, Size()) are caller bugs and panic.
// At is the checked accessor: it returns an error wrapping ErrOutOfRange
// instead.
//
//	if _, err := l.At(i); errors.Is(err, fixed.ErrOutOfRange) {
//		// handle
//	}
//
// # Arena List
//
// List links its nodes by slot index rather than by pointer. Free slots
// live on an internal Stack of indices, so PushFront, PushBack, PopFront
// and PopBack are O(1). Get walks from the nearer end. Clone and CopyFrom
// rebuild the links inside the destination's own pool, so copies never
// share slots. The order in which freed slots are reused is unspecified.
//
// # Thread Safety
//
// No container is goroutine-safe. Callers sharing one across goroutines
// must serialize access themselves.
//
// # Metrics
//
// Every container reports its occupancy:
//
//	m := l.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//
// Package fixedprom exports these snapshots to Prometheus.
package fixed
