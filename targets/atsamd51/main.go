//go:build atsamd51

// Profiling demo for ATSAMD51 boards (Feather M4 and friends): the DWT
// cycle counter measures a VL53L1X range-sensor read and an LED blink,
// and snapshots stream out over USB serial for profview to aggregate.
package main

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/vl53l1x"

	"microprof/cyclecounter"
	"microprof/profiling"
)

const coreFreq = 120_000_000

func main() {
	time.Sleep(2 * time.Second) // let USB CDC enumerate before logging

	prof, err := cyclecounter.New(cyclecounter.DWT(), coreFreq, uint32(machine.CPUFrequency()), false)
	if err != nil {
		// wrong clock-tree configuration; nothing sensible to do
		panic(err)
	}
	prof.SetLogWriter(func(s string) {
		machine.Serial.Write([]byte(s + "\r\n"))
	})

	profiling.InterruptFree(func() {
		err = profiling.SetProfiler(prof)
	})
	if err != nil {
		println("set profiler:", err.Error())
	}

	machine.I2C0.Configure(machine.I2CConfig{Frequency: 400 * machine.KHz})
	sensor := vl53l1x.New(machine.I2C0)
	sensor.Configure(true)
	sensor.SetMeasurementTimingBudget(50000)

	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	for {
		dist := profiling.Profile("vl53l1x-read", func() int32 {
			return sensor.Read(true)
		})
		println("distance mm:", dist)

		profiling.ProfileFunc("blink", func() {
			led.High()
			time.Sleep(50 * time.Millisecond)
			led.Low()
		})

		time.Sleep(time.Second)
	}
}
