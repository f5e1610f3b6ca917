// Package vector implements a generic growable array with explicit
// storage management.
//
// # Overview
//
// A Vector owns a single contiguous block of element slots and manages
// element lifetime inside it by hand: slots are constructed when
// elements arrive, destroyed (zeroed) when they leave, and the block is
// replaced wholesale when it fills up. The capacity is always zero or a
// power of two. This is useful for:
//
//   - Workloads that need a predictable, explicit growth policy
//   - Containers whose storage comes from a custom allocator
//   - Transferring buffer ownership between containers without copying
//
// # Basic Usage
//
//	v := vector.New[int]()
//	defer v.Release() // Return the storage when done
//
//	v.Append(1)
//	v.Append(2)
//	v.Append(3)
//
//	// Bounds-checked access
//	p, err := v.At(1) // pointer for in-place mutation
//	val, err := v.ValueAt(1)
//
//	// Unchecked access (caller guarantees index < Len())
//	val = v.Value(1)
//
//	v.Resize(10)   // grow with zero values
//	v.Reserve(100) // pre-allocate, never shrinks
//
// # Growth Policy
//
// Every capacity change rounds the requested size up to the next power
// of two. Appending to a full vector relocates all elements into a block
// of twice the size (plus the new element, constructed directly into its
// final slot), so Append is amortized O(1). Reserve and Resize use the
// same relocation path. The capacity never decreases.
//
// # Ownership Transfer
//
// MoveFrom adopts another vector's block wholesale instead of copying
// elements. The donor ends up empty but keeps the receiver's former
// (already-emptied) block, avoiding an allocate/free pair for storage
// that would be discarded immediately:
//
//	dst := vector.New[string]()
//	dst.MoveFrom(src) // dst owns src's elements; src.Len() == 0
//
// # Custom Allocators
//
// Storage comes from an Allocator. The default HeapAllocator uses plain
// Go allocation; RawAllocator backs slots with raw bytes for pointer-free
// element types. Custom allocators plug in via WithAllocator:
//
//	v := vector.New[int64](vector.WithAllocator[int64](vector.RawAllocator[int64]{}))
//
// # Thread Safety
//
// Vector has no internal synchronization. Concurrent mutation of one
// vector from multiple goroutines is out of contract.
//
// # Important Notes
//
//   - At/ValueAt/TakeAt return *ErrOutOfRange for indexes outside
//     [0, Len()); Ref/Value/Take/Pop perform no length check and are
//     undefined outside their preconditions
//   - Pointers returned by At/Ref are invalidated by any operation that
//     can relocate storage (Append, Reserve, Resize, CopyFrom, MoveFrom)
//   - A panic escaping an allocator or element copy mid-relocation or
//     mid-CopyFrom leaves the vector unspecified but releasable; the
//     container does not roll back partial work
//
// # Metrics and Monitoring
//
// The vector reports its storage usage:
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization * 100)
//	fmt.Printf("Memory in use: %d bytes\n", m.SizeInUse)
//	fmt.Printf("Total capacity: %d bytes\n", m.CapacityBytes)
package vector
