package vector

// Element lifecycle over raw slots. Construction and destruction never
// touch the surrounding allocation; the storage side lives in alloc.go
// and vector.go.

// setSlot constructs value in a raw slot.
func setSlot[T any](slot *T, value T) {
	*slot = value
}

// clearSlot destroys the element in slot. The zero value replaces it so
// the buffer no longer retains anything the element referenced.
func clearSlot[T any](slot *T) {
	var zero T
	*slot = zero
}

// clearRange destroys the live elements at [begin, end) in ascending order.
func clearRange[T any](slots []T, begin, end int) {
	for i := begin; i < end; i++ {
		clearSlot(&slots[i])
	}
}

// takeSlot moves the element's value out of slot, leaving the zero value
// behind. The slot stays part of whatever range it belonged to; the
// caller owns the returned value.
func takeSlot[T any](slot *T) T {
	value := *slot
	clearSlot(slot)
	return value
}
