//go:build !cortexm

package profiling

// InterruptFree runs fn directly; there are no interrupts to mask on a
// hosted target.
func InterruptFree(fn func()) {
	fn()
}
