package vec

import (
	"fmt"
	"strings"
)

// Example demonstrates basic container usage
func Example() {
	v := New[int]()
	for i := 1; i <= 3; i++ {
		v.Append(i * 10)
	}
	fmt.Println("elements:", v.Slice())
	fmt.Println("len:", v.Len(), "cap:", v.Cap())

	// In-place edits within capacity
	v.Insert(1, 15)
	fmt.Println("after insert:", v.Slice())

	removed := v.Remove(2)
	fmt.Println("removed:", removed)
	fmt.Println("after remove:", v.Slice())

	// Output:
	// elements: [10 20 30]
	// len: 3 cap: 4
	// after insert: [10 15 20 30]
	// removed: 20
	// after remove: [10 15 30]
}

// ExampleOps demonstrates element lifecycle hooks
func ExampleOps() {
	v := NewOps(Ops[string]{
		Drop: func(s *string) { fmt.Println("dropping", *s) },
	})
	v.Append("first")
	v.Append("second")

	v.Clear()
	fmt.Println("len:", v.Len())

	// Output:
	// dropping first
	// dropping second
	// len: 0
}

// ExampleVector_Reserve demonstrates avoiding reallocation for a known size
func ExampleVector_Reserve() {
	v := New[string]()
	v.Reserve(4)
	for _, s := range []string{"a", "b", "c", "d"} {
		v.Append(s)
	}
	fmt.Println(strings.Join(v.Slice(), ""))
	fmt.Println("cap:", v.Cap(), "reallocs:", v.Reallocs())

	// Output:
	// abcd
	// cap: 4 reallocs: 1
}

// ExampleVector_Values demonstrates iterating over the live elements
func ExampleVector_Values() {
	v := Of(1, 2, 3)
	sum := 0
	for x := range v.Values() {
		sum += x
	}
	fmt.Println("sum:", sum)

	// Output:
	// sum: 6
}
