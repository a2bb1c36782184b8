package core

// PWMPin identifies a hardware pin capable of PWM output.
type PWMPin uint32

// PWMDuty is an 8-bit duty cycle value (0 = fully off, 255 = fully on).
type PWMDuty uint8

// PWMDutyMax is the fully-on duty value.
const PWMDutyMax PWMDuty = 255

// PWMDriver is the abstract PWM interface used for the motor driver's
// enable line. The sweep sets a fixed duty once at startup; targets whose
// enable line is hard-wired full-on may implement this as a plain GPIO.
type PWMDriver interface {
	// ConfigurePWM configures a pin for PWM output.
	ConfigurePWM(pin PWMPin) error

	// SetDuty sets the duty cycle for a pin.
	SetDuty(pin PWMPin, duty PWMDuty) error
}
