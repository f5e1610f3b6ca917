package vector

import "unsafe"

// ElemSize returns the in-memory size of one element slot in bytes.
func (v *Vector[T]) ElemSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// SizeInUse returns the number of bytes occupied by live elements.
func (v *Vector[T]) SizeInUse() int {
	return v.len * v.ElemSize()
}

// CapacityBytes returns the total size of the allocated block in bytes.
func (v *Vector[T]) CapacityBytes() int {
	return len(v.buf) * v.ElemSize()
}

// Utilization returns the ratio of live slots to allocated slots
// (0.0 to 1.0). Returns 0.0 when nothing is allocated.
func (v *Vector[T]) Utilization() float64 {
	if len(v.buf) == 0 {
		return 0
	}
	return float64(v.len) / float64(len(v.buf))
}

// Metrics returns a snapshot of vector storage statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:           v.len,
		Cap:           len(v.buf),
		ElemSize:      v.ElemSize(),
		SizeInUse:     v.SizeInUse(),
		CapacityBytes: v.CapacityBytes(),
		Utilization:   v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector's storage.
type VectorMetrics struct {
	Len           int     // Live elements
	Cap           int     // Allocated slots
	ElemSize      int     // Bytes per slot
	SizeInUse     int     // Bytes occupied by live elements
	CapacityBytes int     // Total bytes allocated
	Utilization   float64 // Ratio of live to allocated slots (0.0-1.0)
}
