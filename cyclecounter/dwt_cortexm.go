//go:build cortexm

package cyclecounter

import (
	"runtime/volatile"
	"unsafe"
)

// DWT / DCB register map, common to Cortex-M3 and up
const (
	demcrAddr     = 0xE000EDFC // Debug Exception and Monitor Control
	dwtCtrlAddr   = 0xE0001000
	dwtCyccntAddr = 0xE0001004
	dwtLarAddr    = 0xE0001FB0 // Lock Access Register (Cortex-M7)

	demcrTRCENA  = 1 << 24 // enable the DWT block
	demcrMONEN   = 1 << 16 // enable DebugMonitor exceptions
	dwtCyccntEna = 1 << 0

	dwtLarUnlockKey = 0xC5ACCE55
)

var (
	demcr     = (*volatile.Register32)(unsafe.Pointer(uintptr(demcrAddr)))
	dwtCtrl   = (*volatile.Register32)(unsafe.Pointer(uintptr(dwtCtrlAddr)))
	dwtCyccnt = (*volatile.Register32)(unsafe.Pointer(uintptr(dwtCyccntAddr)))
	dwtLar    = (*volatile.Register32)(unsafe.Pointer(uintptr(dwtLarAddr)))
)

var dwtRolloverHandler func()

// dwt is the process-wide handle for the one DWT unit.
var dwt DWTCounter

var dwtTaken bool

// DWTCounter drives the Cortex-M DWT cycle counter. There is exactly
// one per core; DWT hands it out once so two adapters can never alias
// the same hardware unit.
type DWTCounter struct{}

// DWT returns the cycle-counter peripheral. It panics if called twice;
// the counter is owned by whichever profiler it was wired into first.
func DWT() *DWTCounter {
	if dwtTaken {
		panic("cyclecounter: DWT already taken")
	}
	dwtTaken = true
	return &dwt
}

// Enable switches on the DWT block and starts the cycle counter.
func (*DWTCounter) Enable() {
	demcr.SetBits(demcrTRCENA)
	dwtLar.Set(dwtLarUnlockKey)
	dwtCyccnt.Set(0)
	dwtCtrl.SetBits(dwtCyccntEna)
}

// Reset zeroes the cycle counter.
func (*DWTCounter) Reset() {
	dwtCyccnt.Set(0)
}

// Read returns the raw cycle count.
func (*DWTCounter) Read() uint32 {
	return dwtCyccnt.Get()
}

// ArmRollover enables DebugMonitor exceptions, which fire on cycle
// counter overflow, and routes them to handler.
func (*DWTCounter) ArmRollover(handler func()) {
	dwtRolloverHandler = handler
	demcr.SetBits(demcrMONEN)
}

//go:export DebugMon_Handler
func debugMonHandler() {
	if dwtRolloverHandler != nil {
		dwtRolloverHandler()
	}
}
