package vector

import (
	"math/bits"
	"unsafe"
)

// Allocator hands out and reclaims raw element storage. A Vector pairs
// every Allocate with exactly one Deallocate, and only deallocates a
// block after all live elements in it have been destroyed.
type Allocator[T any] interface {
	// Allocate returns a fresh block of capacity slots, or nil when
	// capacity is zero. Every slot holds the zero value of T.
	Allocate(capacity int) []T
	// Deallocate releases a block previously returned by Allocate.
	Deallocate(slots []T)
}

// HeapAllocator is the default allocator. Blocks come straight from the
// Go heap and are reclaimed by the garbage collector once the vector
// drops them.
type HeapAllocator[T any] struct{}

// Allocate returns a zeroed block of capacity slots.
func (HeapAllocator[T]) Allocate(capacity int) []T {
	if capacity <= 0 {
		return nil
	}
	return make([]T, capacity)
}

// Deallocate drops the block reference; the garbage collector does the rest.
func (HeapAllocator[T]) Deallocate(slots []T) {}

// RawAllocator carves element storage out of a plain byte block and
// reinterprets it through unsafe.Slice. The block is allocated without
// pointer metadata, so element types that contain pointers (strings,
// slices, maps, pointers themselves) must not use it: the collector
// cannot see what such elements reference. For pointer-free types it
// avoids per-element scan cost on large buffers.
type RawAllocator[T any] struct{}

// Allocate returns a zeroed block of capacity slots backed by raw bytes.
func (RawAllocator[T]) Allocate(capacity int) []T {
	if capacity <= 0 {
		return nil
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if elemSize == 0 {
		return make([]T, capacity)
	}
	b := make([]byte, elemSize*capacity)
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), capacity)
}

// Deallocate drops the block reference.
func (RawAllocator[T]) Deallocate(slots []T) {}

// roundUpPowerOfTwo returns 0 for n <= 0 and the smallest power of two
// >= n otherwise. Every capacity a vector ever installs passes through
// here; it is the single growth-policy primitive.
func roundUpPowerOfTwo(n int) int {
	if n <= 0 {
		return 0
	}
	return 1 << bits.Len(uint(n-1))
}
