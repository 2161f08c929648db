package vec

import "iter"

// Vector is a growable contiguous container. It owns one RawStorage block
// and a live-element count: slots [0, Len) hold live values, slots
// [Len, Cap) are dead and kept zeroed. Capacity doubles whenever a full
// container grows, so appends cost amortized constant time.
//
// The zero Vector is an empty container ready for use with plain element
// semantics. Use NewOps for element types that need lifecycle hooks.
//
// A Vector is not safe for concurrent use.
type Vector[T any] struct {
	ops   Ops[T]
	data  RawStorage[T]
	size  int
	grows int
}

// New returns an empty container for a plain element type.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewOps returns an empty container whose elements are managed through ops.
func NewOps[T any](ops Ops[T]) *Vector[T] {
	return &Vector[T]{ops: ops}
}

// NewLen returns a container of n zero-valued elements with capacity
// exactly n. Panics if n is negative.
func NewLen[T any](n int) *Vector[T] {
	v, _ := NewLenOps(n, Ops[T]{}) // zero-value construction cannot fail
	return v
}

// NewLenOps returns a container of n default-constructed elements with
// capacity exactly n. If ops.New fails on the k-th element, the k-1
// elements already constructed are dropped and the block released before
// the error returns: a failed construction leaves nothing behind.
// Panics if n is negative.
func NewLenOps[T any](n int, ops Ops[T]) (*Vector[T], error) {
	if n < 0 {
		panic("vec: negative length")
	}
	v := &Vector[T]{ops: ops, data: NewRawStorage[T](n)}
	for i := 0; i < n; i++ {
		if err := v.ops.construct(v.data.At(i)); err != nil {
			v.destroyRange(0, i)
			v.data.Release()
			return nil, err
		}
	}
	v.size = n
	return v, nil
}

// Of returns a container holding exactly the given values, with capacity
// equal to their count.
func Of[T any](values ...T) *Vector[T] {
	v := &Vector[T]{data: NewRawStorage[T](len(values))}
	copy(v.data.Slice(len(values)), values)
	v.size = len(values)
	return v
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of element slots currently allocated.
func (v *Vector[T]) Cap() int {
	return v.data.Cap()
}

// At returns a pointer to element i, valid until the next reallocation.
// The index is not bounds checked on the hot path; out-of-range access is
// undefined behavior. Build with -tags vecdebug to assert i < Len().
func (v *Vector[T]) At(i int) *T {
	assert(uint(i) < uint(v.size), "vec: index out of range")
	return v.data.At(i)
}

// Get returns the value of element i. Same bounds contract as At.
func (v *Vector[T]) Get(i int) T {
	return *v.At(i)
}

// Set replaces the value of element i. Same bounds contract as At.
func (v *Vector[T]) Set(i int, x T) {
	*v.At(i) = x
}

// Slice returns the live elements as a contiguous mutable view. The view
// aliases the container's storage and is valid until the next reallocation.
func (v *Vector[T]) Slice() []T {
	return v.data.Slice(v.size)
}

// All returns an iterator over index/value pairs in index order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.data.At(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the element values in index order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.data.At(i)) {
				return
			}
		}
	}
}

// Reserve grows the allocated capacity to at least n slots. It is a no-op
// when n does not exceed the current capacity; otherwise a block of exactly
// n slots is allocated, the live elements relocate into it and the old
// block is released. Pointers and views obtained earlier are invalidated.
func (v *Vector[T]) Reserve(n int) {
	if n <= v.data.Cap() {
		return
	}
	next := NewRawStorage[T](n)
	copy(next.Slice(v.size), v.data.Slice(v.size))
	v.data.Swap(&next)
	next.Release()
	v.grows++
}

// Resize changes the element count to n. Shrinking drops the excess tail
// and keeps capacity. Growing reserves capacity if needed, then default-
// constructs the added slots; if a construction fails, the tail added so
// far is dropped, the count stays unchanged and the error returns.
// Panics if n is negative.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic("vec: negative length")
	}
	if n < v.size {
		v.destroyRange(n, v.size)
		v.size = n
		return nil
	}
	v.Reserve(n)
	for i := v.size; i < n; i++ {
		if err := v.ops.construct(v.data.At(i)); err != nil {
			v.destroyRange(v.size, i)
			return err
		}
	}
	v.size = n
	return nil
}

// Append places x at the end, doubling capacity first when the container
// is full. The value is already constructed, so Append cannot fail.
func (v *Vector[T]) Append(x T) {
	if v.size == v.data.Cap() {
		v.Reserve(v.grownCap())
	}
	*v.data.At(v.size) = x
	v.size++
}

// AppendFunc constructs a new last element in place; see InsertFunc for
// the build contract and failure behavior. Returns a pointer to the new
// element, valid until the next reallocation.
func (v *Vector[T]) AppendFunc(build func(*T) error) (*T, error) {
	return v.InsertFunc(v.size, build)
}

// Pop removes the last element and returns it, transferring ownership to
// the caller; Drop is not run. Calling Pop on an empty container is
// undefined behavior.
func (v *Vector[T]) Pop() T {
	assert(v.size > 0, "vec: pop of empty vector")
	v.size--
	p := v.data.At(v.size)
	out := *p
	var zero T
	*p = zero // the slot is dead; let the collector at the references
	return out
}

// Clear drops every live element. Capacity is kept.
func (v *Vector[T]) Clear() {
	v.destroyRange(0, v.size)
	v.size = 0
}

// Release drops every live element and the backing storage, returning the
// container to the fresh empty state. The container stays usable.
func (v *Vector[T]) Release() {
	v.Clear()
	v.data.Release()
}

// Clone returns a deep, independent copy: capacity equal to Len, each
// element duplicated in order. If a duplication fails, the partial copy is
// torn down before the error returns and the source is untouched.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := NewOps[T](v.ops)
	if err := c.copyFresh(v); err != nil {
		return nil, err
	}
	return c, nil
}

// CopyFrom makes v an element-wise copy of src.
//
// When src has more elements than v has capacity, the copy is built in a
// fresh block first and swapped in, so a failed duplication leaves v
// exactly as it was. When src fits within current capacity, the copy
// happens in place with no reallocation: overlapping slots are assigned,
// then v's tail beyond src's length is dropped, or the missing tail is
// duplicated into spare slots. A failure in the in-place branch leaves the
// already assigned prefix behind - the price of skipping the fresh
// allocation.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	if src.size > v.data.Cap() {
		tmp := Vector[T]{ops: v.ops}
		if err := tmp.copyFresh(src); err != nil {
			return err
		}
		tmp.grows = v.grows + 1 // the swap below replaces v's storage
		v.Swap(&tmp)
		tmp.Release()
		return nil
	}
	n := min(v.size, src.size)
	for i := 0; i < n; i++ {
		if err := v.ops.assign(v.data.At(i), *src.data.At(i)); err != nil {
			return err
		}
	}
	switch {
	case src.size < v.size:
		v.destroyRange(src.size, v.size)
	case src.size > v.size:
		for i := v.size; i < src.size; i++ {
			if err := v.ops.duplicate(v.data.At(i), *src.data.At(i)); err != nil {
				v.destroyRange(v.size, i)
				return err
			}
		}
	}
	v.size = src.size
	return nil
}

// TakeFrom moves src's contents into v in constant time: v's own elements
// are dropped, then src's storage, count and hooks transfer over, leaving
// src empty with no storage. TakeFrom never fails. Self-move is a no-op.
func (v *Vector[T]) TakeFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.Clear()
	v.data.MoveFrom(&src.data)
	v.ops = src.ops
	v.size, src.size = src.size, 0
	v.grows, src.grows = src.grows, 0
}

// Swap exchanges the entire contents of two containers in constant time.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.ops, other.ops = other.ops, v.ops
	v.size, other.size = other.size, v.size
	v.grows, other.grows = other.grows, v.grows
}

// copyFresh fills an empty v with duplicates of src's elements in a block
// sized exactly to src's length. On failure everything built so far is
// torn down and v stays empty.
func (v *Vector[T]) copyFresh(src *Vector[T]) error {
	block := NewRawStorage[T](src.size)
	for i := 0; i < src.size; i++ {
		if err := v.ops.duplicate(block.At(i), *src.data.At(i)); err != nil {
			for j := 0; j < i; j++ {
				v.ops.dispose(block.At(j))
			}
			block.Release()
			return err
		}
	}
	v.data.MoveFrom(&block)
	v.size = src.size
	return nil
}

// destroyRange ends the lives of the elements in slots [lo, hi).
func (v *Vector[T]) destroyRange(lo, hi int) {
	for i := lo; i < hi; i++ {
		v.ops.dispose(v.data.At(i))
	}
}

// grownCap returns the doubled capacity for the next reallocation.
func (v *Vector[T]) grownCap() int {
	if v.size == 0 {
		return 1
	}
	return v.size * 2
}
