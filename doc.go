// Package vec implements a growable contiguous container (a dynamic array)
// that manages its own backing storage.
//
// # Overview
//
// Vector keeps its elements in one contiguous block and doubles that block
// whenever it fills up, giving amortized constant-time appends. Unlike a
// built-in slice, a Vector separates memory lifetime from element lifetime:
// the raw block is owned by a RawStorage, while the Vector decides which
// slots hold live values, when they are constructed, duplicated and torn
// down. This makes the container useful for:
//
//   - Element types that own resources and need teardown when slots die
//   - Element types whose duplication is deep (and can fail)
//   - Workloads that want explicit control over capacity and reallocation
//   - Keeping dead slots cleared so the collector can reclaim references
//
// # Basic Usage
//
//	v := vec.New[int]()
//	v.Append(1)
//	v.Append(2)
//	v.Insert(1, 5)      // [1 5 2]
//	x := v.Remove(0)    // x == 1, [5 2]
//	_ = v.Slice()       // contiguous view of the live elements
//
// Element types with lifecycles plug in through Ops:
//
//	v := vec.NewOps(vec.Ops[*os.File]{
//		Drop: func(f **os.File) { (*f).Close() },
//	})
//
// # Thread Safety
//
// Vector is not safe for concurrent use. There is no internal locking;
// callers that share a container across goroutines must synchronize
// externally.
//
// # Memory Layout
//
// Storage is a single typed block sized for Cap() elements. Slots
// [0, Len()) hold live values; slots [Len(), Cap()) are dead and kept
// zeroed so the collector never sees stale references. Growing allocates a
// fresh block (exactly the requested capacity for Reserve, double for a
// full append), relocates the live elements and releases the old block.
//
// # Performance Characteristics
//
//   - Append: O(1) amortized
//   - Insert/Remove at position i: O(Len - i)
//   - Index access: O(1), not bounds checked on the hot path
//   - Reserve/Clone: O(Len)
//   - Swap, TakeFrom, Clear of plain types: O(1) / O(Len)
//
// # Important Notes
//
//   - Pointers from At and views from Slice are valid only until the next
//     reallocation
//   - Out-of-range indices are undefined behavior; build with -tags
//     vecdebug to turn on assertions during development
//   - Pop and Remove transfer ownership of the value to the caller and do
//     not run the Drop hook
//
// # Stats and Monitoring
//
// The container exposes storage accounting for tests and tuning:
//
//	st := v.Stats()
//	fmt.Printf("utilization: %.2f%%\n", st.Utilization*100)
//	fmt.Printf("reallocations: %d\n", st.Reallocs)
package vec
