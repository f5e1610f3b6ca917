package vector

import (
	"fmt"
)

// Example demonstrates basic vector usage
func Example() {
	v := New[int]()
	defer v.Release() // Return the storage when done

	for i := 1; i <= 3; i++ {
		v.Append(i * 10)
	}
	fmt.Printf("len=%d cap=%d\n", v.Len(), v.Cap())

	// Mutate in place through a checked pointer
	p, _ := v.At(1)
	*p = 25
	fmt.Println(v.Value(1))

	// Out-of-range checked access fails instead of panicking
	_, err := v.ValueAt(5)
	fmt.Println(err)

	// Output:
	// len=3 cap=4
	// 25
	// vector: index 5 out of range with length 3
}

// ExampleVector_Resize demonstrates growing and truncating
func ExampleVector_Resize() {
	v := NewFill(5, 7)
	fmt.Printf("len=%d cap=%d\n", v.Len(), v.Cap())

	v.Resize(2)
	fmt.Printf("len=%d cap=%d %v\n", v.Len(), v.Cap(), collect(v))

	v.ResizeFill(6, 9)
	fmt.Printf("len=%d cap=%d %v\n", v.Len(), v.Cap(), collect(v))

	// Output:
	// len=5 cap=8
	// len=2 cap=8 [7 7]
	// len=6 cap=8 [7 7 9 9 9 9]
}

// ExampleVector_TakeAt demonstrates the consuming accessor
func ExampleVector_TakeAt() {
	v := New[string]()
	v.Append("alpha")
	v.Append("beta")

	s, _ := v.TakeAt(0)
	fmt.Printf("took %q, len=%d\n", s, v.Len())
	fmt.Printf("slot now holds %q\n", v.Value(0))

	// Output:
	// took "alpha", len=2
	// slot now holds ""
}

// ExampleVector_MoveFrom demonstrates wholesale ownership transfer
func ExampleVector_MoveFrom() {
	src := NewFill(3, "x")
	dst := NewFill(8, "y")

	dst.MoveFrom(src)
	fmt.Printf("dst: len=%d cap=%d\n", dst.Len(), dst.Cap())
	// src keeps dst's former (emptied) block instead of freeing it
	fmt.Printf("src: len=%d cap=%d\n", src.Len(), src.Cap())

	// Output:
	// dst: len=3 cap=4
	// src: len=0 cap=8
}

// ExampleVector_Metrics demonstrates monitoring storage usage
func ExampleVector_Metrics() {
	v := NewLen[int64](3)
	v.Reserve(5)

	m := v.Metrics()
	fmt.Printf("len=%d cap=%d\n", m.Len, m.Cap)
	fmt.Printf("in use: %d bytes\n", m.SizeInUse)
	fmt.Printf("allocated: %d bytes\n", m.CapacityBytes)
	fmt.Printf("utilization: %.1f%%\n", m.Utilization*100)

	// Output:
	// len=3 cap=8
	// in use: 24 bytes
	// allocated: 64 bytes
	// utilization: 37.5%
}

// ExampleWithAllocator demonstrates plugging in a custom allocator
func ExampleWithAllocator() {
	// RawAllocator backs slots with raw bytes; fine for pointer-free types.
	v := New[int64](WithAllocator[int64](RawAllocator[int64]{}))
	defer v.Release()

	for i := int64(0); i < 5; i++ {
		v.Append(i * i)
	}
	fmt.Println(collect(v))

	// Output:
	// [0 1 4 9 16]
}
