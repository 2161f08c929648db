package vec

import "unsafe"

// Utilization returns the ratio of live elements to allocated slots
// (0.0 to 1.0). Returns 0.0 for a container with no storage.
func (v *Vector[T]) Utilization() float64 {
	if v.data.Cap() == 0 {
		return 0
	}
	return float64(v.size) / float64(v.data.Cap())
}

// Reallocs returns how many times the container has replaced its storage
// block. Useful for verifying that a workload stays within reserved
// capacity.
func (v *Vector[T]) Reallocs() int {
	return v.grows
}

// Stats returns a snapshot of the container's storage accounting.
func (v *Vector[T]) Stats() Stats {
	var zero T
	return Stats{
		Len:         v.size,
		Cap:         v.data.Cap(),
		Spare:       v.data.Cap() - v.size,
		ElemSize:    unsafe.Sizeof(zero),
		Reallocs:    v.grows,
		Utilization: v.Utilization(),
	}
}

// Stats contains statistical information about a container.
type Stats struct {
	Len         int     // Live elements
	Cap         int     // Allocated element slots
	Spare       int     // Dead slots left before the next reallocation
	ElemSize    uintptr // Size of one element slot in bytes
	Reallocs    int     // Storage replacements so far
	Utilization float64 // Ratio of live elements to slots (0.0-1.0)
}
