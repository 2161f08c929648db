package vec

// Insert places x at position i, shifting elements [i, Len) one slot to
// the right. i must be in [0, Len]; out-of-range positions are undefined
// behavior (asserted under -tags vecdebug). Inserting at Len is equivalent
// to Append.
func (v *Vector[T]) Insert(i int, x T) {
	v.InsertFunc(i, func(dst *T) error {
		*dst = x
		return nil
	})
}

// InsertFunc constructs a new element in place at position i: build writes
// the value directly into its destination slot. A failed build leaves the
// container untouched. When the container is full, the value is built into
// a freshly doubled block before anything relocates, so failure just
// releases that block. When inserting before the end within capacity, the
// value is built into a temporary before any element shifts. Returns a
// pointer to the new element, valid until the next reallocation.
//
// i must be in [0, Len]; out-of-range positions are undefined behavior.
func (v *Vector[T]) InsertFunc(i int, build func(*T) error) (*T, error) {
	assert(uint(i) <= uint(v.size), "vec: insert position out of range")
	if v.size == v.data.Cap() {
		return v.insertGrow(i, build)
	}
	return v.insertInPlace(i, build)
}

// insertGrow inserts into a freshly doubled block: the new element is
// built first at its final slot, then the old elements relocate around it,
// prefix before the slot and suffix after it.
func (v *Vector[T]) insertGrow(i int, build func(*T) error) (*T, error) {
	next := NewRawStorage[T](v.grownCap())
	if err := build(next.At(i)); err != nil {
		next.Release()
		return nil, err
	}
	dst := next.Slice(v.size + 1)
	src := v.data.Slice(v.size)
	copy(dst[:i], src[:i])
	copy(dst[i+1:], src[i:])
	v.data.Swap(&next)
	next.Release()
	v.grows++
	v.size++
	return v.data.At(i), nil
}

// insertInPlace inserts within existing capacity. At the end the value is
// built directly into the next free slot. Before the end it is built into
// a temporary first, then the last element relocates into the fresh
// trailing slot, (i, Len) shifts right one slot back to front, and the
// temporary lands in the vacated slot. The shift is plain assignment and
// cannot fail.
func (v *Vector[T]) insertInPlace(i int, build func(*T) error) (*T, error) {
	if i == v.size {
		dst := v.data.At(i)
		if err := build(dst); err != nil {
			var zero T
			*dst = zero // drop whatever a partial build left in the dead slot
			return nil, err
		}
		v.size++
		return dst, nil
	}
	var tmp T
	if err := build(&tmp); err != nil {
		return nil, err
	}
	s := v.data.Slice(v.size + 1)
	s[v.size] = s[v.size-1]
	for j := v.size - 1; j > i; j-- {
		s[j] = s[j-1]
	}
	s[i] = tmp
	v.size++
	return v.data.At(i), nil
}

// Remove takes the element at position i out of the container and returns
// it, shifting elements [i+1, Len) one slot to the left. Ownership of the
// value transfers to the caller; Drop is not run. i must be in [0, Len);
// out-of-range positions are undefined behavior.
func (v *Vector[T]) Remove(i int) T {
	assert(uint(i) < uint(v.size), "vec: remove position out of range")
	s := v.data.Slice(v.size)
	out := s[i]
	copy(s[i:], s[i+1:])
	v.size--
	var zero T
	s[v.size] = zero // the vacated trailing slot is dead; clear it
	return out
}
