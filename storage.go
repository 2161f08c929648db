package vec

import "unsafe"

// RawStorage owns a single contiguous block of memory sized for a fixed
// number of elements. It allocates and releases storage only; it knows
// nothing about element lifetime. Which slots hold live values is entirely
// the owner's contract: RawStorage hands out locations, the owner decides
// what lives at them.
//
// RawStorage is move-only. Hand it around with Swap or MoveFrom, never by
// plain struct assignment, or two owners end up sharing one block.
type RawStorage[T any] struct {
	ptr *T
	cap int
}

// NewRawStorage allocates storage for capacity elements. A capacity of zero
// allocates nothing and returns a null storage (Cap() == 0, no block).
// Negative capacity panics.
//
// The block is allocated as typed memory so the collector keeps scanning it
// for any pointers the elements hold. Slots come back zeroed, but hold no
// live values until the owner places some.
func NewRawStorage[T any](capacity int) RawStorage[T] {
	if capacity < 0 {
		panic("vec: negative capacity")
	}
	if capacity == 0 {
		return RawStorage[T]{}
	}
	block := make([]T, capacity)
	return RawStorage[T]{ptr: &block[0], cap: capacity}
}

// Cap returns the number of element slots the block can hold.
func (s *RawStorage[T]) Cap() int {
	return s.cap
}

// At returns a pointer to the slot at offset i. This is location access
// only - the slot may or may not hold a live value. The offset is not
// bounds checked on the hot path; build with -tags vecdebug to assert
// i < Cap().
func (s *RawStorage[T]) At(i int) *T {
	assert(uint(i) < uint(s.cap), "vec: storage offset out of range")
	// Unsafe pointer arithmetic to avoid bounds checks
	return (*T)(unsafe.Add(unsafe.Pointer(s.ptr), uintptr(i)*unsafe.Sizeof(*s.ptr)))
}

// Slice returns a []T view over the first n slots. n must not exceed
// Cap(); a null storage yields nil for n == 0. The view aliases the block
// and is invalidated by Swap, MoveFrom and Release.
func (s *RawStorage[T]) Slice(n int) []T {
	assert(uint(n) <= uint(s.cap), "vec: storage slice out of range")
	return unsafe.Slice(s.ptr, n)
}

// Swap exchanges blocks and capacities with other in constant time. No
// memory moves; only ownership of the blocks changes sides.
func (s *RawStorage[T]) Swap(other *RawStorage[T]) {
	s.ptr, other.ptr = other.ptr, s.ptr
	s.cap, other.cap = other.cap, s.cap
}

// Release drops the block; no-op on a null storage. The memory is reclaimed
// by the collector once nothing else aliases it. Release never tears down
// elements - the owner must have destroyed every live value first, or
// whatever those values referenced stays reachable until the block itself
// is collected.
func (s *RawStorage[T]) Release() {
	s.ptr = nil
	s.cap = 0
}

// MoveFrom releases s's own block and takes ownership of other's, leaving
// other null. Self-move is a no-op.
func (s *RawStorage[T]) MoveFrom(other *RawStorage[T]) {
	if s == other {
		return
	}
	s.ptr, s.cap = other.ptr, other.cap
	other.ptr, other.cap = nil, 0
}
