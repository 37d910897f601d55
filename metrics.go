package fixed

// Metrics is a snapshot of a container's occupancy.
type Metrics struct {
	Size         int     // Live elements
	Capacity     int     // Maximum number of elements
	Free         int     // Unused slots (Capacity - Size)
	StorageBytes int     // Bytes of backing storage, fixed at construction
	Utilization  float64 // Ratio of Size to Capacity (0.0-1.0)
}

// utilization returns size/capacity, or 0 for a zero-capacity container.
func utilization(size, capacity int) float64 {
	if capacity == 0 {
		return 0
	}
	return float64(size) / float64(capacity)
}

func snapshot(size, capacity, storage int) Metrics {
	return Metrics{
		Size:         size,
		Capacity:     capacity,
		Free:         capacity - size,
		StorageBytes: storage,
		Utilization:  utilization(size, capacity),
	}
}

// Utilization returns the ratio of elements in use to capacity (0.0 to 1.0).
func (r *Ring[T]) Utilization() float64 { return utilization(r.size, len(r.buf)) }

// Metrics returns a snapshot of ring occupancy.
func (r *Ring[T]) Metrics() Metrics {
	return snapshot(r.size, len(r.buf), storageBytes[T](len(r.buf)))
}

// Utilization returns the ratio of elements in use to capacity (0.0 to 1.0).
func (s *Stack[T]) Utilization() float64 { return s.ring.Utilization() }

// Metrics returns a snapshot of stack occupancy.
func (s *Stack[T]) Metrics() Metrics { return s.ring.Metrics() }

// Utilization returns the ratio of elements in use to capacity (0.0 to 1.0).
func (q *Queue[T]) Utilization() float64 { return q.ring.Utilization() }

// Metrics returns a snapshot of queue occupancy.
func (q *Queue[T]) Metrics() Metrics { return q.ring.Metrics() }

// Utilization returns the ratio of slots in use to pool size (0.0 to 1.0).
func (l *List[T]) Utilization() float64 { return utilization(l.size, len(l.slots)) }

// Metrics returns a snapshot of list occupancy. StorageBytes counts both
// the slot pool and the free-index stack.
func (l *List[T]) Metrics() Metrics {
	n := len(l.slots)
	m := snapshot(l.size, n, storageBytes[slot[T]](n)+storageBytes[int](n))
	m.Free = l.free.Size()
	return m
}
