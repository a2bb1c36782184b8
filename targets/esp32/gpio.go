//go:build esp32

package main

import (
	"machine"

	"sonarsweep/core"
)

// ESPGPIODriver implements core.GPIODriver on the ESP32 machine package.
// Pin numbers map directly onto machine.Pin, so the driver carries no
// state of its own.
type ESPGPIODriver struct{}

func newESPGPIODriver() *ESPGPIODriver {
	return &ESPGPIODriver{}
}

func (d *ESPGPIODriver) ConfigureOutput(pin core.GPIOPin) error {
	machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinOutput})
	return nil
}

func (d *ESPGPIODriver) ConfigureInput(pin core.GPIOPin) error {
	machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinInput})
	return nil
}

func (d *ESPGPIODriver) SetPin(pin core.GPIOPin, value bool) error {
	machine.Pin(pin).Set(value)
	return nil
}
