package core

// GPIOPin identifies a hardware GPIO pin number.
type GPIOPin uint32

// GPIODriver is the abstract GPIO interface core code configures pins and
// drives outputs through. Input levels are timed by the EchoTimer, not read
// here. Target-specific code provides the implementation; tests provide
// recording mocks.
type GPIODriver interface {
	// ConfigureOutput configures a pin as a digital output.
	ConfigureOutput(pin GPIOPin) error

	// ConfigureInput configures a pin as a digital input.
	ConfigureInput(pin GPIOPin) error

	// SetPin drives the pin high (true) or low (false).
	SetPin(pin GPIOPin, value bool) error
}
