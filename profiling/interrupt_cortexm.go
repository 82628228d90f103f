//go:build cortexm

package profiling

import "device/arm"

// InterruptFree runs fn with interrupts masked, restoring the previous
// mask afterwards. SetProfiler must be called inside it on targets where
// an interrupt handler can reach the profiler.
func InterruptFree(fn func()) {
	mask := arm.DisableInterrupts()
	fn()
	arm.EnableInterrupts(mask)
}
