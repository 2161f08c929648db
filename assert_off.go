//go:build !vecdebug

package vec

// assert compiles to nothing unless the vecdebug build tag is set.
func assert(bool, string) {}
