//go:build rp2040

// Profiling demo for the RP2040: the 1 MHz hardware timer measures an
// LED blink and an integer workload, with snapshots streamed over USB
// serial. Flip usePIOTrigger to swap in the PIO pulse trigger and watch
// the span edges on a logic analyzer instead.
package main

import (
	"machine"
	"time"

	"microprof/profiling"
)

const (
	usePIOTrigger = false
	triggerPin    = machine.GP15
	pulseCycles   = 125 // 1µs at the 125 MHz system clock
)

func main() {
	time.Sleep(2 * time.Second) // let USB CDC enumerate before logging

	var err error
	if usePIOTrigger {
		var trig *PIOTrigger
		trig, err = NewPIOTrigger(triggerPin, pulseCycles)
		if err != nil {
			println("pio trigger:", err.Error())
			return
		}
		profiling.InterruptFree(func() {
			err = profiling.SetProfiler(trig)
		})
	} else {
		prof := NewTimerProfiler()
		prof.SetLogWriter(func(s string) {
			machine.Serial.Write([]byte(s + "\r\n"))
		})
		profiling.InterruptFree(func() {
			err = profiling.SetProfiler(prof)
		})
	}
	if err != nil {
		println("set profiler:", err.Error())
	}

	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	for {
		profiling.ProfileFunc("blink", func() {
			led.High()
			time.Sleep(100 * time.Millisecond)
			led.Low()
		})

		sum := profiling.Profile("checksum", func() uint32 {
			var acc uint32
			for i := uint32(0); i < 100_000; i++ {
				acc = acc*31 + i
			}
			return acc
		})
		_ = sum

		time.Sleep(time.Second)
	}
}
