package core

import "time"

// Clock abstracts the fixed delays in the control loop so cycle timing can
// be simulated deterministically in tests instead of sleeping wall-clock
// time.
type Clock interface {
	// Sleep pauses the calling goroutine for at least d.
	Sleep(d time.Duration)
}

// EchoTimer measures the duration of a single high pulse on an input pin.
// Unlike the bare pulse-wait it replaces, the measurement is always bounded
// by a timeout so the control loop's worst-case latency is known.
type EchoTimer interface {
	// TimePulse waits for a high pulse on pin to start and end, returning
	// its duration. ok is false if no complete pulse was observed within
	// the timeout.
	TimePulse(pin GPIOPin, timeout time.Duration) (d time.Duration, ok bool)
}

// WallClock implements Clock with real sleeps.
type WallClock struct{}

func (WallClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
