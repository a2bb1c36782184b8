package core

import "testing"

const in1Pin, in2Pin = GPIOPin(26), GPIOPin(27)
const enablePin = PWMPin(25)

func newTestMotor(t *testing.T) (*MotorActuator, *mockGPIO, *mockPWM) {
	t.Helper()
	gpio := newMockGPIO(&eventLog{})
	pwm := newMockPWM()
	m, err := NewMotorActuator(gpio, pwm, in1Pin, in2Pin, enablePin)
	if err != nil {
		t.Fatalf("NewMotorActuator failed: %v", err)
	}
	return m, gpio, pwm
}

func TestMotorInitialState(t *testing.T) {
	m, gpio, _ := newTestMotor(t)

	if m.Direction() != DirectionForward {
		t.Errorf("initial direction = %v, expected forward", m.Direction())
	}
	if gpio.pins[in1Pin] || gpio.pins[in2Pin] {
		t.Error("motor not stopped after construction")
	}
}

func TestMotorSetEnabled(t *testing.T) {
	m, _, pwm := newTestMotor(t)

	m.SetEnabled(true)
	if pwm.duty[enablePin] != PWMDutyMax {
		t.Errorf("enable duty = %d, expected %d", pwm.duty[enablePin], PWMDutyMax)
	}

	m.SetEnabled(false)
	if pwm.duty[enablePin] != 0 {
		t.Errorf("enable duty = %d, expected 0", pwm.duty[enablePin])
	}
}

func TestMotorResumeDrivesDirection(t *testing.T) {
	m, gpio, _ := newTestMotor(t)

	m.Resume()
	if !gpio.pins[in1Pin] || gpio.pins[in2Pin] {
		t.Errorf("forward outputs = (%v, %v), expected (high, low)", gpio.pins[in1Pin], gpio.pins[in2Pin])
	}

	m.ReverseDirection()
	// Pure state mutation: outputs unchanged until Resume.
	if !gpio.pins[in1Pin] || gpio.pins[in2Pin] {
		t.Error("ReverseDirection changed outputs before Resume")
	}
	if m.Direction() != DirectionReverse {
		t.Errorf("direction after reverse = %v, expected reverse", m.Direction())
	}

	m.Resume()
	if gpio.pins[in1Pin] || !gpio.pins[in2Pin] {
		t.Errorf("reverse outputs = (%v, %v), expected (low, high)", gpio.pins[in1Pin], gpio.pins[in2Pin])
	}
}

func TestMotorStopOverridesDirection(t *testing.T) {
	m, gpio, _ := newTestMotor(t)

	for _, dir := range []Direction{DirectionForward, DirectionReverse} {
		m.Resume()
		m.Stop()
		if gpio.pins[in1Pin] || gpio.pins[in2Pin] {
			t.Errorf("stop with stored direction %v left an output high", dir)
		}
		m.ReverseDirection()
	}

	if m.Direction() != DirectionForward {
		t.Errorf("direction after two reversals = %v, expected forward", m.Direction())
	}
}
