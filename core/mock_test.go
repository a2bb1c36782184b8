package core

import (
	"strconv"
	"strings"
	"time"
)

// eventLog collects what the mocks observe, in order, so tests can assert
// on the relative ordering of pin writes, sends, and renders.
type eventLog struct {
	events []string
}

func (l *eventLog) add(e string) {
	l.events = append(l.events, e)
}

// ofKind returns the logged events with the given prefix.
func (l *eventLog) ofKind(prefix string) []string {
	var out []string
	for _, e := range l.events {
		if strings.HasPrefix(e, prefix) {
			out = append(out, e)
		}
	}
	return out
}

// indexOf returns the position of the first occurrence of e at or after
// from, or -1.
func (l *eventLog) indexOf(e string, from int) int {
	for i := from; i < len(l.events); i++ {
		if l.events[i] == e {
			return i
		}
	}
	return -1
}

// mockGPIO records pin configuration and writes.
type mockGPIO struct {
	log  *eventLog
	pins map[GPIOPin]bool
}

func newMockGPIO(log *eventLog) *mockGPIO {
	return &mockGPIO{log: log, pins: make(map[GPIOPin]bool)}
}

func (m *mockGPIO) ConfigureOutput(pin GPIOPin) error {
	m.pins[pin] = false
	return nil
}

func (m *mockGPIO) ConfigureInput(pin GPIOPin) error {
	m.pins[pin] = false
	return nil
}

func (m *mockGPIO) SetPin(pin GPIOPin, value bool) error {
	m.pins[pin] = value
	level := "low"
	if value {
		level = "high"
	}
	m.log.add("pin" + strconv.Itoa(int(pin)) + "=" + level)
	return nil
}

// mockPWM records duty settings.
type mockPWM struct {
	duty map[PWMPin]PWMDuty
}

func newMockPWM() *mockPWM {
	return &mockPWM{duty: make(map[PWMPin]PWMDuty)}
}

func (m *mockPWM) ConfigurePWM(pin PWMPin) error {
	m.duty[pin] = 0
	return nil
}

func (m *mockPWM) SetDuty(pin PWMPin, duty PWMDuty) error {
	m.duty[pin] = duty
	return nil
}

// mockClock records requested sleeps without sleeping.
type mockClock struct {
	slept []time.Duration
}

func (c *mockClock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
}

// mockEchoTimer replays a queue of scripted pulses. An entry with ok=false
// simulates a missing echo.
type mockEchoTimer struct {
	pulses []scriptedPulse
}

type scriptedPulse struct {
	d  time.Duration
	ok bool
}

func (m *mockEchoTimer) push(d time.Duration, ok bool) {
	m.pulses = append(m.pulses, scriptedPulse{d, ok})
}

func (m *mockEchoTimer) TimePulse(pin GPIOPin, timeout time.Duration) (time.Duration, bool) {
	if len(m.pulses) == 0 {
		return 0, false
	}
	p := m.pulses[0]
	m.pulses = m.pulses[1:]
	if !p.ok || p.d > timeout {
		return 0, false
	}
	return p.d, true
}

// mockDisplay records Render calls into the shared event log.
type mockDisplay struct {
	log *eventLog
}

func (d *mockDisplay) Render(row, col uint8, text string) {
	d.log.add("render@" + strconv.Itoa(int(row)) + "," + strconv.Itoa(int(col)) + ":" + text)
}

func (d *mockDisplay) Clear() {
	d.log.add("clear")
}

// sendRecorder is an io.Writer for the protocol channel that logs each
// outbound line into the shared event log.
type sendRecorder struct {
	log *eventLog
}

func (w *sendRecorder) Write(p []byte) (int, error) {
	w.log.add("send:" + strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
