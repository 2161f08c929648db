package vec

// Ops customizes how a Vector constructs, duplicates and tears down its
// elements. Every hook is optional. The zero Ops describes a plain type:
// default construction yields the zero value, duplication is plain
// assignment and teardown just clears the slot. None of the plain paths
// can fail.
//
// Relocating an element between slots is always a plain assignment plus
// clearing the source slot, and cannot fail. There is deliberately no Move
// hook: transfers during growth always move, never copy.
type Ops[T any] struct {
	// New produces a value for slots added by NewLenOps and Resize.
	New func() (T, error)

	// Copy produces an independent duplicate of src, used by Clone,
	// CopyFrom and element-wise copy assignment.
	Copy func(src T) (T, error)

	// Drop tears an element down right before its slot dies. The slot is
	// cleared afterwards regardless, so the collector can reclaim anything
	// the element still referenced.
	Drop func(*T)
}

// construct places a default-constructed value into the dead slot at dst.
func (o *Ops[T]) construct(dst *T) error {
	if o.New == nil {
		var zero T
		*dst = zero
		return nil
	}
	val, err := o.New()
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

// duplicate places an independent copy of src into the dead slot at dst.
func (o *Ops[T]) duplicate(dst *T, src T) error {
	if o.Copy == nil {
		*dst = src
		return nil
	}
	val, err := o.Copy(src)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

// assign replaces the live element at dst with a duplicate of src. The old
// value is torn down only after the duplicate exists, so a failed
// duplication leaves the slot holding its previous element.
func (o *Ops[T]) assign(dst *T, src T) error {
	val := src
	if o.Copy != nil {
		var err error
		if val, err = o.Copy(src); err != nil {
			return err
		}
	}
	if o.Drop != nil {
		o.Drop(dst)
	}
	*dst = val
	return nil
}

// dispose ends the life of the element at p and clears the slot.
func (o *Ops[T]) dispose(p *T) {
	if o.Drop != nil {
		o.Drop(p)
	}
	var zero T
	*p = zero
}
