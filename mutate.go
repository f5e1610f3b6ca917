package vector

// Append places value at the end, growing the storage when the block is
// full. Growth and append run as one relocation pass: the incoming
// element is constructed straight into the new block before the old
// elements move across, so it is never copied twice. Amortized O(1).
func (v *Vector[T]) Append(value T) {
	if v.len == len(v.buf) {
		newBuf := v.alloc.Allocate(roundUpPowerOfTwo(len(v.buf) + 1))
		setSlot(&newBuf[v.len], value)
		for i := 0; i < v.len; i++ {
			newBuf[i] = takeSlot(&v.buf[i])
		}
		v.discardBuf()
		v.buf = newBuf
		v.len++
		return
	}
	setSlot(&v.buf[v.len], value)
	v.len++
}

// Pop drops the last element. Unchecked: popping an empty vector is out
// of contract.
func (v *Vector[T]) Pop() {
	v.len--
	clearSlot(&v.buf[v.len])
}

// Clear destroys every live element and keeps the storage. Idempotent.
func (v *Vector[T]) Clear() {
	clearRange(v.buf, 0, v.len)
	v.len = 0
}

// Resize sets the length to n. Growth appends zero-value elements,
// relocating first when n exceeds the capacity; shrinking destroys the
// tail in place. The capacity never decreases.
func (v *Vector[T]) Resize(n int) {
	var zero T
	v.growTo(n, zero)
	v.shrinkTo(n)
}

// ResizeFill is Resize with copies of value in the newly grown slots.
func (v *Vector[T]) ResizeFill(n int, value T) {
	v.growTo(n, value)
	v.shrinkTo(n)
}

// growTo extends the vector to n elements, each constructed from proto.
// When a larger block is needed, the new tail is constructed directly
// into it and the old elements follow in the same relocation pass.
func (v *Vector[T]) growTo(n int, proto T) {
	if n <= v.len {
		return
	}
	need := roundUpPowerOfTwo(n)
	if need > len(v.buf) {
		newBuf := v.alloc.Allocate(need)
		for i := v.len; i < n; i++ {
			setSlot(&newBuf[i], proto)
		}
		for i := 0; i < v.len; i++ {
			newBuf[i] = takeSlot(&v.buf[i])
		}
		v.discardBuf()
		v.buf = newBuf
	} else {
		for i := v.len; i < n; i++ {
			setSlot(&v.buf[i], proto)
		}
	}
	v.len = n
}

// shrinkTo truncates the vector to n elements, destroying the excluded
// tail in ascending order.
func (v *Vector[T]) shrinkTo(n int) {
	if n < 0 {
		n = 0
	}
	if n >= v.len {
		return
	}
	clearRange(v.buf, n, v.len)
	v.len = n
}

// Clone returns an independent copy: a fresh block sized for the current
// length with every element copied across. The clone shares the
// receiver's allocator.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{alloc: v.alloc}
	c.buf = c.alloc.Allocate(roundUpPowerOfTwo(v.len))
	c.len = v.len
	for i := 0; i < v.len; i++ {
		setSlot(&c.buf[i], v.buf[i])
	}
	return c
}

// CopyFrom replaces the receiver's contents with copies of other's
// elements. A self-copy is a no-op. When the current block has room the
// overlapping prefix is assigned in place, the tail copy-constructed or
// destroyed depending on direction; otherwise the block is replaced
// outright. A panic out of an element copy partway through the in-place
// branch leaves the receiver with a mixture of old and new values; that
// weak guarantee is a known limitation of this operation.
func (v *Vector[T]) CopyFrom(other *Vector[T]) {
	if v == other {
		return
	}
	if len(v.buf) >= other.len {
		if v.len < other.len {
			for i := 0; i < v.len; i++ {
				v.buf[i] = other.buf[i]
			}
			for i := v.len; i < other.len; i++ {
				setSlot(&v.buf[i], other.buf[i])
			}
		} else {
			clearRange(v.buf, other.len, v.len)
			for i := 0; i < other.len; i++ {
				v.buf[i] = other.buf[i]
			}
		}
		v.len = other.len
		return
	}
	newBuf := v.alloc.Allocate(roundUpPowerOfTwo(other.len))
	clearRange(v.buf, 0, v.len)
	v.discardBuf()
	v.buf = newBuf
	v.len = other.len
	for i := 0; i < v.len; i++ {
		setSlot(&v.buf[i], other.buf[i])
	}
}

// MoveFrom transfers other's contents into the receiver. The receiver's
// own elements are destroyed first; then the two vectors exchange blocks
// and other's length drops to zero. other is left holding the receiver's
// former, already-emptied block rather than a fresh allocation, and
// returns it to the allocator whenever other is next released,
// relocated, or reassigned. A self-move behaves as Clear: elements gone,
// capacity kept. Both vectors must share one allocator.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		v.Clear()
		return
	}
	clearRange(v.buf, 0, v.len)
	v.len = other.len
	other.len = 0
	v.buf, other.buf = other.buf, v.buf
}
