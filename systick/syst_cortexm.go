//go:build cortexm

package systick

import (
	"runtime/volatile"
	"unsafe"
)

// SysTick register map
const (
	systCsrAddr = 0xE000E010 // Control and Status
	systRvrAddr = 0xE000E014 // Reload Value
	systCvrAddr = 0xE000E018 // Current Value

	csrEnable    = 1 << 0 // counter enabled
	csrTickInt   = 1 << 1 // reload fires the SysTick exception
	csrClkSource = 1 << 2 // run on the core clock
)

var (
	systCsr = (*volatile.Register32)(unsafe.Pointer(uintptr(systCsrAddr)))
	systRvr = (*volatile.Register32)(unsafe.Pointer(uintptr(systRvrAddr)))
	systCvr = (*volatile.Register32)(unsafe.Pointer(uintptr(systCvrAddr)))
)

var systRolloverHandler func()

// syst is the process-wide handle for the one SysTick unit.
var syst SysTicker

var systTaken bool

// SysTicker drives the Cortex-M SysTick timer. There is exactly one per
// core; SysTick hands it out once so two adapters can never alias it.
type SysTicker struct{}

// SysTick returns the timer peripheral. It panics if called twice; the
// timer is owned by whichever profiler it was wired into first.
func SysTick() *SysTicker {
	if systTaken {
		panic("systick: SysTick already taken")
	}
	systTaken = true
	return &syst
}

// Start configures the timer to count down from reload on the core
// clock.
func (*SysTicker) Start(reload uint32) {
	systCsr.Set(0)
	systRvr.Set(reload)
	systCvr.Set(0) // any write clears to reload on next cycle
	systCsr.Set(csrClkSource | csrEnable)
}

// Current returns the raw down-counting value.
func (*SysTicker) Current() uint32 {
	return systCvr.Get()
}

// ArmRollover enables the SysTick exception, which fires on each
// reload, and routes it to handler.
func (*SysTicker) ArmRollover(handler func()) {
	systRolloverHandler = handler
	systCsr.SetBits(csrTickInt)
}

//go:export SysTick_Handler
func sysTickHandler() {
	if systRolloverHandler != nil {
		systRolloverHandler()
	}
}
