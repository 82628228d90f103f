//go:build rp2040

package main

import (
	"machine"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"

	"microprof/profiling"
)

// buildTriggerProgram creates the pulse program: block on the TX FIFO,
// take the pulse width in cycles, hold the pin high that long, drop it.
func buildTriggerProgram() []uint16 {
	asm := rp2pio.AssemblerV0{SidesetBits: 0}
	return []uint16{
		// .wrap_target
		asm.Pull(false, true).Encode(),           // 0: pull block
		asm.Out(rp2pio.OutDestY, 32).Encode(),    // 1: out y, 32 (pulse cycles)
		asm.Set(rp2pio.SetDestPins, 1).Encode(),  // 2: set pins, 1
		asm.Jmp(3, rp2pio.JmpYNZeroDec).Encode(), // 3: jmp y--, 3
		asm.Set(rp2pio.SetDestPins, 0).Encode(),  // 4: set pins, 0
		// .wrap
	}
}

const triggerPIOOrigin = 0 // Load at offset 0 for correct jump addresses

// PIOTrigger is a pin-toggle style profiler whose span markers are
// fixed-width pulses generated by a PIO state machine, so the edges get
// hardware timing regardless of scheduler jitter. Like the plain
// pin-toggle profiler it never measures time; its clock is pinned at
// zero and a logic analyzer on the pin does the measuring.
type PIOTrigger struct {
	sm          rp2pio.StateMachine
	pin         machine.Pin
	pulseCycles uint32
}

// NewPIOTrigger claims PIO0 state machine 0 and points the pulse
// program at pin. pulseCycles is the pulse width in system clock
// cycles.
func NewPIOTrigger(pin machine.Pin, pulseCycles uint32) (*PIOTrigger, error) {
	pioHW := rp2pio.PIO0
	sm := pioHW.StateMachine(0)
	sm.TryClaim()

	program := buildTriggerProgram()
	offset, err := pioHW.AddProgram(program, triggerPIOOrigin)
	if err != nil {
		return nil, err
	}

	pin.Configure(machine.PinConfig{Mode: pioHW.PinMode()})

	cfg := rp2pio.DefaultStateMachineConfig()
	cfg.SetSetPins(pin, 1)
	cfg.SetOutShift(true, false, 32)
	cfg.SetWrap(offset+uint8(len(program))-1, offset)
	cfg.SetClkDivIntFrac(1, 0) // full speed; the width is counted in sysclk cycles

	sm.Init(offset, cfg)
	sm.SetPindirsConsecutive(pin, 1, true)
	sm.SetPinsConsecutive(pin, 1, false)
	sm.SetEnabled(true)

	return &PIOTrigger{sm: sm, pin: pin, pulseCycles: pulseCycles}, nil
}

// ReadClock always returns the zero instant.
func (t *PIOTrigger) ReadClock() profiling.Instant {
	return profiling.InstantFromTicks(0)
}

// AtStart emits a pulse marking the span begin.
func (t *PIOTrigger) AtStart() { t.pulse() }

// AtEnd emits a pulse marking the span end.
func (t *PIOTrigger) AtEnd() { t.pulse() }

func (t *PIOTrigger) pulse() {
	for t.sm.IsTxFIFOFull() {
		// brief wait; the program drains one word per pulse
	}
	t.sm.TxPut(t.pulseCycles)
}
