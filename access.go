package vector

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.len
}

// Cap returns the number of allocated slots, always 0 or a power of two.
func (v *Vector[T]) Cap() int {
	return len(v.buf)
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.len == 0
}

func (v *Vector[T]) verifyBound(index int) error {
	if index < 0 || index >= v.len {
		return &ErrOutOfRange{Index: index, Len: v.len}
	}
	return nil
}

// At returns a pointer to the element at index for in-place reads and
// writes. It fails with *ErrOutOfRange when index is outside [0, Len()).
// The pointer is only valid until the next operation that can relocate
// storage.
func (v *Vector[T]) At(index int) (*T, error) {
	if err := v.verifyBound(index); err != nil {
		return nil, err
	}
	return &v.buf[index], nil
}

// ValueAt returns a copy of the element at index, or *ErrOutOfRange when
// index is outside [0, Len()).
func (v *Vector[T]) ValueAt(index int) (T, error) {
	if err := v.verifyBound(index); err != nil {
		var zero T
		return zero, err
	}
	return v.buf[index], nil
}

// TakeAt moves the element's value out of the vector without shrinking
// it. The slot is left holding the zero value but still counts toward
// Len; what the caller later reads from a taken slot is the caller's
// responsibility to reason about.
func (v *Vector[T]) TakeAt(index int) (T, error) {
	if err := v.verifyBound(index); err != nil {
		var zero T
		return zero, err
	}
	return takeSlot(&v.buf[index]), nil
}

// Ref is At without the bounds check. Indexes outside [0, Len()) are out
// of contract.
func (v *Vector[T]) Ref(index int) *T {
	return &v.buf[index]
}

// Value is ValueAt without the bounds check.
func (v *Vector[T]) Value(index int) T {
	return v.buf[index]
}

// Take is TakeAt without the bounds check.
func (v *Vector[T]) Take(index int) T {
	return takeSlot(&v.buf[index])
}
