// Package sweep implements the host side of the handshake protocol: it
// releases the device with RDY, then consumes the FWR/Distance/CDR stream
// and tracks the beam position across the sweep.
package sweep

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"sonarsweep/host/serial"
	"sonarsweep/protocol"
)

const (
	// NumSteps is how many measurement steps make up one sweep leg,
	// matching the device's reversal period.
	NumSteps = 90

	// StepDegrees is the nominal angular travel per step. Descriptive
	// only: the device tracks an abstract step counter and nothing
	// enforces this mapping.
	StepDegrees = 4.0

	// DefaultSettle is how long to wait after opening the port before
	// sending RDY, giving the device time to come out of reset.
	DefaultSettle = 2 * time.Second
)

// Sample is one positioned distance measurement.
type Sample struct {
	Step       int       `json:"step"`
	AngleDeg   float64   `json:"angleDeg"`
	DistanceCM float64   `json:"distanceCm"`
	Valid      bool      `json:"valid"`
	At         time.Time `json:"at"`
}

// Client consumes the device's line stream. Not safe for concurrent use;
// Run is a single-goroutine loop.
type Client struct {
	port     serial.Port
	onSample func(Sample)
	logf     func(format string, args ...any)

	step      int
	direction int
	unknown   uint32
}

// NewClient creates a Client on an open port. onSample is invoked for
// every distance report; it may be nil.
func NewClient(port serial.Port, onSample func(Sample)) *Client {
	return &Client{
		port:      port,
		onSample:  onSample,
		logf:      func(string, ...any) {},
		direction: 1,
	}
}

// SetLogf installs a logger for protocol-level events.
func (c *Client) SetLogf(logf func(format string, args ...any)) {
	c.logf = logf
}

// Start waits out the device reset and sends the readiness signal.
func (c *Client) Start(settle time.Duration) error {
	time.Sleep(settle)
	if _, err := c.port.Write([]byte(protocol.MsgReady + "\r\n")); err != nil {
		return fmt.Errorf("failed to send %s: %w", protocol.MsgReady, err)
	}
	c.logf("sent %s", protocol.MsgReady)
	return nil
}

// Run reads the device's line stream until the port closes or fails.
func (c *Client) Run() error {
	scanner := bufio.NewScanner(c.port)
	for scanner.Scan() {
		c.handleLine(strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("serial read: %w", err)
	}
	return nil
}

// handleLine dispatches one inbound line. Unknown lines (including the
// device's wait and ack chatter) are logged and ignored.
func (c *Client) handleLine(line string) {
	switch {
	case line == protocol.MsgMeasureBegin:
		// The beam advances one step per measurement.
		c.step = (c.step + c.direction + NumSteps) % NumSteps

	case line == protocol.MsgDirectionChange:
		c.direction = -c.direction
		c.logf("direction change")

	case strings.HasPrefix(line, protocol.DistancePrefix):
		cm, ok := protocol.ParseDistance(line)
		if !ok {
			c.unknown++
			c.logf("malformed distance report: %q", line)
			return
		}
		s := Sample{
			Step:       c.step,
			AngleDeg:   float64(c.step) * StepDegrees,
			DistanceCM: cm,
			Valid:      cm != 0,
			At:         time.Now(),
		}
		if c.onSample != nil {
			c.onSample(s)
		}

	case line == "":
		// Skip blank lines.

	default:
		c.unknown++
		c.logf("device: %s", line)
	}
}

// Step returns the current beam step index in [0, NumSteps).
func (c *Client) Step() int {
	return c.step
}

// Direction returns the host-tracked sweep direction, +1 or -1.
func (c *Client) Direction() int {
	return c.direction
}

// UnknownLines returns how many inbound lines were not understood.
func (c *Client) UnknownLines() uint32 {
	return c.unknown
}
