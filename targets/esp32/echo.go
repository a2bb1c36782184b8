//go:build esp32

package main

import (
	"machine"
	"time"

	"sonarsweep/core"
)

// espEchoTimer implements core.EchoTimer with a busy wait on the echo pin.
// Both the wait for the rising edge and the pulse itself are bounded by the
// caller's timeout so a disconnected sensor cannot stall the control loop.
type espEchoTimer struct{}

func (espEchoTimer) TimePulse(pin core.GPIOPin, timeout time.Duration) (time.Duration, bool) {
	p := machine.Pin(pin)
	deadline := time.Now().Add(timeout)

	for !p.Get() {
		if time.Now().After(deadline) {
			return 0, false
		}
	}
	start := time.Now()
	for p.Get() {
		if time.Now().After(deadline) {
			return 0, false
		}
	}
	return time.Since(start), true
}
