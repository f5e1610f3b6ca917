package vector

// Vector is a growable contiguous container with explicit storage
// management. Storage is a single exclusively owned block whose capacity
// is always zero or a power of two; elements live in the leading slots
// and the rest of the block is raw zeroed storage. Not goroutine-safe:
// a Vector belongs to one goroutine at a time.
type Vector[T any] struct {
	alloc Allocator[T]
	buf   []T // len(buf) is the capacity; nil while the capacity is 0
	len   int
}

// Option configures a Vector during construction.
type Option[T any] func(*Vector[T])

// WithAllocator sets the allocator backing the vector's storage.
// Vectors that exchange storage (MoveFrom) must share one allocator.
func WithAllocator[T any](alloc Allocator[T]) Option[T] {
	return func(v *Vector[T]) {
		v.alloc = alloc
	}
}

// New creates an empty vector. No storage is allocated until the first
// element arrives.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{alloc: HeapAllocator[T]{}}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewLen creates a vector of n zero-value elements with capacity
// roundUpPowerOfTwo(n). Non-positive n yields an empty vector.
func NewLen[T any](n int, opts ...Option[T]) *Vector[T] {
	if n < 0 {
		n = 0
	}
	v := New(opts...)
	v.buf = v.alloc.Allocate(roundUpPowerOfTwo(n))
	v.len = n
	return v
}

// NewFill creates a vector of n copies of value.
func NewFill[T any](n int, value T, opts ...Option[T]) *Vector[T] {
	v := NewLen[T](n, opts...)
	for i := 0; i < v.len; i++ {
		setSlot(&v.buf[i], value)
	}
	return v
}

// Reserve guarantees storage for at least n elements. It relocates when
// roundUpPowerOfTwo(n) exceeds the current capacity and is a no-op
// otherwise; the capacity never shrinks.
func (v *Vector[T]) Reserve(n int) {
	need := roundUpPowerOfTwo(n)
	if need > len(v.buf) {
		v.relocate(need)
	}
}

// Release destroys every live element and returns the block to the
// allocator, leaving the vector empty and reusable. Releasing an empty
// vector is a no-op.
func (v *Vector[T]) Release() {
	clearRange(v.buf, 0, v.len)
	v.len = 0
	v.discardBuf()
}

// relocate installs a fresh block of newCapacity slots, moving every
// live element across in ascending order, then hands the old block back
// to the allocator. A panic escaping the allocator or an element move
// leaves the vector in an unspecified but releasable state; there is no
// partial-success fallback.
func (v *Vector[T]) relocate(newCapacity int) {
	newBuf := v.alloc.Allocate(newCapacity)
	for i := 0; i < v.len; i++ {
		newBuf[i] = takeSlot(&v.buf[i])
	}
	v.discardBuf()
	v.buf = newBuf
}

// discardBuf returns the current block to the allocator. All live
// elements must already be destroyed or moved out.
func (v *Vector[T]) discardBuf() {
	if v.buf != nil {
		v.alloc.Deallocate(v.buf)
		v.buf = nil
	}
}
