//go:build tinygo

package pintoggle

import "machine"

// MachinePin adapts a machine.Pin to the Pin interface.
type MachinePin struct {
	pin machine.Pin
}

// NewMachinePin configures the pin as an output and wraps it.
func NewMachinePin(pin machine.Pin) MachinePin {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return MachinePin{pin: pin}
}

// Set drives the pin high or low.
func (m MachinePin) Set(high bool) {
	m.pin.Set(high)
}
