//go:build vecdebug

package vec

// assert panics with msg when cond is false. Enabled with -tags vecdebug;
// release builds skip these checks entirely.
func assert(cond bool, msg string) {
	if !cond {
		panic(msg)
	}
}
