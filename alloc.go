package fixed

import "unsafe"

// allocSlots returns the backing storage for a container of the given
// capacity. This is the only allocation a container ever makes; the
// returned slice is never grown or replaced afterwards.
// Panics if capacity < 1.
func allocSlots[T any](capacity int) []T {
	if capacity < 1 {
		violation("capacity must be positive, got %d", capacity)
	}
	return make([]T, capacity)
}

// storageBytes returns the number of bytes held by n slots of type T.
func storageBytes[T any](n int) int {
	var zero T
	return int(unsafe.Sizeof(zero)) * n
}
