package core

import "time"

// HC-SR04 ranging constants.
const (
	// MinRangeCM and MaxRangeCM bound the sensor's usable range.
	// Measurements outside [MinRangeCM, MaxRangeCM] collapse to
	// InvalidSample.
	MinRangeCM = 2.0
	MaxRangeCM = 400.0

	// InvalidSample is the sentinel reported for out-of-range or missing
	// echoes. On the wire it is indistinguishable from a zero reading;
	// callers that need to tell them apart must use SampleValid.
	InvalidSample = 0.0

	// EchoTimeout bounds the echo wait. The HC-SR04 emits a ~38ms pulse
	// when no echo returns, so anything longer means the sensor is absent
	// or wedged.
	EchoTimeout = 40 * time.Millisecond

	// Trigger pulse shape, fixed by the sensor's hardware protocol.
	triggerSettle = 2 * time.Microsecond
	triggerWidth  = 10 * time.Microsecond
)

// RangeSensor drives an HC-SR04 ultrasonic ranging module: it emits a
// trigger pulse, times the echo pulse, and converts the round trip to
// centimeters.
type RangeSensor struct {
	gpio  GPIODriver
	timer EchoTimer
	clock Clock
	trig  GPIOPin
	echo  GPIOPin

	invalid  uint32
	timeouts uint32
}

// NewRangeSensor creates a RangeSensor on the given trigger and echo pins.
func NewRangeSensor(gpio GPIODriver, timer EchoTimer, clock Clock, trig, echo GPIOPin) (*RangeSensor, error) {
	if err := gpio.ConfigureOutput(trig); err != nil {
		return nil, err
	}
	if err := gpio.ConfigureInput(echo); err != nil {
		return nil, err
	}
	return &RangeSensor{
		gpio:  gpio,
		timer: timer,
		clock: clock,
		trig:  trig,
		echo:  echo,
	}, nil
}

// Sample takes one distance measurement in centimeters. Out-of-range
// measurements and missing echoes both return InvalidSample; the sensor
// gives no way to distinguish too-close, too-far, and no-echo.
func (s *RangeSensor) Sample() float64 {
	cm, _ := s.SampleValid()
	return cm
}

// SampleValid is Sample with an explicit validity flag. The returned value
// is still InvalidSample whenever valid is false, so existing consumers of
// the sentinel are unaffected.
func (s *RangeSensor) SampleValid() (cm float64, valid bool) {
	s.trigger()

	d, ok := s.timer.TimePulse(s.echo, EchoTimeout)
	if !ok {
		s.timeouts++
		s.invalid++
		return InvalidSample, false
	}

	cm = DistanceCM(d)
	if cm < MinRangeCM || cm > MaxRangeCM {
		s.invalid++
		return InvalidSample, false
	}
	return cm, true
}

// trigger emits the fixed trigger pulse: low for 2us, high for 10us, low.
func (s *RangeSensor) trigger() {
	s.gpio.SetPin(s.trig, false)
	s.clock.Sleep(triggerSettle)
	s.gpio.SetPin(s.trig, true)
	s.clock.Sleep(triggerWidth)
	s.gpio.SetPin(s.trig, false)
}

// InvalidSamples returns how many measurements were mapped to the sentinel.
func (s *RangeSensor) InvalidSamples() uint32 {
	return s.invalid
}

// Timeouts returns how many echo waits expired with no complete pulse.
func (s *RangeSensor) Timeouts() uint32 {
	return s.timeouts
}

// DistanceCM converts an echo pulse duration to centimeters. Sound travels
// about 0.034 cm/us and the pulse covers the target distance twice.
func DistanceCM(echo time.Duration) float64 {
	us := float64(echo.Nanoseconds()) / 1000.0
	return us * 0.034 / 2
}
