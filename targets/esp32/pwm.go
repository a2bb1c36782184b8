//go:build esp32

package main

import (
	"machine"

	"sonarsweep/core"
)

// espEnableDriver implements core.PWMDriver for the motor driver's enable
// line. The sweep only ever asks for full duty or zero, so the line is
// driven as a plain gate rather than claiming an LEDC channel.
type espEnableDriver struct{}

func (espEnableDriver) ConfigurePWM(pin core.PWMPin) error {
	machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinOutput})
	return nil
}

func (espEnableDriver) SetDuty(pin core.PWMPin, duty core.PWMDuty) error {
	machine.Pin(pin).Set(duty >= core.PWMDutyMax/2)
	return nil
}
