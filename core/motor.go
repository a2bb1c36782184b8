package core

// Direction is the sweep direction, applied to the H-bridge by Resume.
type Direction uint8

const (
	DirectionForward Direction = iota
	DirectionReverse
)

func (d Direction) String() string {
	if d == DirectionReverse {
		return "reverse"
	}
	return "forward"
}

// MotorActuator commands a DC motor through an H-bridge: two direction
// lines select stopped/forward/reverse, a PWM enable line gates power.
// The motor runs open loop; there is no feedback channel and therefore no
// failure semantics.
type MotorActuator struct {
	gpio   GPIODriver
	pwm    PWMDriver
	in1    GPIOPin
	in2    GPIOPin
	enable PWMPin
	dir    Direction
}

// NewMotorActuator creates a MotorActuator on the given H-bridge pins,
// stopped and facing DirectionForward.
func NewMotorActuator(gpio GPIODriver, pwm PWMDriver, in1, in2 GPIOPin, enable PWMPin) (*MotorActuator, error) {
	if err := gpio.ConfigureOutput(in1); err != nil {
		return nil, err
	}
	if err := gpio.ConfigureOutput(in2); err != nil {
		return nil, err
	}
	if err := pwm.ConfigurePWM(enable); err != nil {
		return nil, err
	}
	m := &MotorActuator{
		gpio:   gpio,
		pwm:    pwm,
		in1:    in1,
		in2:    in2,
		enable: enable,
		dir:    DirectionForward,
	}
	m.Stop()
	return m, nil
}

// SetEnabled gates overall motor power with a fixed full duty. Set once at
// startup; the per-cycle stop/resume goes through the direction lines.
func (m *MotorActuator) SetEnabled(on bool) {
	duty := PWMDuty(0)
	if on {
		duty = PWMDutyMax
	}
	m.pwm.SetDuty(m.enable, duty)
}

// Stop forces both direction lines low, halting the motor regardless of
// the stored direction.
func (m *MotorActuator) Stop() {
	m.gpio.SetPin(m.in1, false)
	m.gpio.SetPin(m.in2, false)
}

// Resume drives the direction lines for the stored direction:
// forward is (HIGH, LOW), reverse is (LOW, HIGH).
func (m *MotorActuator) Resume() {
	if m.dir == DirectionForward {
		m.gpio.SetPin(m.in1, true)
		m.gpio.SetPin(m.in2, false)
	} else {
		m.gpio.SetPin(m.in1, false)
		m.gpio.SetPin(m.in2, true)
	}
}

// ReverseDirection flips the stored direction. Pure state mutation: the
// outputs change only on the next Resume.
func (m *MotorActuator) ReverseDirection() {
	if m.dir == DirectionForward {
		m.dir = DirectionReverse
	} else {
		m.dir = DirectionForward
	}
}

// Direction returns the stored sweep direction.
func (m *MotorActuator) Direction() Direction {
	return m.dir
}
