package core

import (
	"strconv"
	"time"

	"sonarsweep/protocol"
)

// Controller states.
type SweepState uint8

const (
	// StateAwaitingReady polls the channel for the host's RDY line with
	// the motor stopped.
	StateAwaitingReady SweepState = iota

	// StateActive runs the stop-measure-report-resume cycle forever.
	StateActive
)

// SweepConfig holds the controller's timing and sweep parameters.
type SweepConfig struct {
	// StepsPerReversal is how many completed cycles make one sweep leg
	// before the direction reverses.
	StepsPerReversal int

	// CyclePause rate-limits the loop at the top of every active cycle.
	CyclePause time.Duration

	// DisplaySettle is the pause between rendering and reporting, giving
	// the display time to refresh.
	DisplaySettle time.Duration

	// ReadyPollInterval spaces the wait-message polls before RDY arrives.
	ReadyPollInterval time.Duration

	// DisplayLabel is the fixed text placed before the distance value.
	DisplayLabel string
}

// DefaultSweepConfig returns the reference sweep configuration.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		StepsPerReversal:  90,
		CyclePause:        70 * time.Millisecond,
		DisplaySettle:     60 * time.Millisecond,
		ReadyPollInterval: 100 * time.Millisecond,
		DisplayLabel:      "Distance:",
	}
}

// SweepController owns the sweep state machine: it sequences motor stop,
// measurement, reporting, and resumption each cycle, and reverses the
// sweep direction every StepsPerReversal cycles. All mutable sweep state
// (direction, step counter, last sample) lives on the instance; execution
// is strictly sequential.
type SweepController struct {
	cfg     SweepConfig
	motor   *MotorActuator
	sensor  *RangeSensor
	ch      *protocol.Channel
	display Display
	clock   Clock

	state      SweepState
	steps      int
	lastSample float64
	cycles     uint64
	reversals  uint32
}

// NewSweepController assembles a controller in StateAwaitingReady. The
// motor stays stopped until the host signals readiness.
func NewSweepController(cfg SweepConfig, motor *MotorActuator, sensor *RangeSensor, ch *protocol.Channel, display Display, clock Clock) *SweepController {
	if display == nil {
		display = NullDisplay{}
	}
	return &SweepController{
		cfg:     cfg,
		motor:   motor,
		sensor:  sensor,
		ch:      ch,
		display: display,
		clock:   clock,
		state:   StateAwaitingReady,
	}
}

// Run drives the state machine forever. The loop has no exit condition
// short of reset; sensor and protocol anomalies never halt it.
func (c *SweepController) Run() {
	for {
		if c.state == StateAwaitingReady {
			if !c.PollReady() {
				c.clock.Sleep(c.cfg.ReadyPollInterval)
			}
			continue
		}
		c.RunCycle()
	}
}

// PollReady performs one readiness poll: it sends the wait message and
// drains buffered inbound lines looking for RDY. On readiness it
// acknowledges, resumes the motor in the initial direction, and enters
// StateActive. Unrecognized lines are counted and ignored.
func (c *SweepController) PollReady() bool {
	c.ch.Send(protocol.MsgWaiting)

	for {
		line, ok := c.ch.PollLine()
		if !ok {
			return false
		}
		if !protocol.IsReady(line) {
			c.ch.MarkIgnored()
			continue
		}
		c.ch.Send(protocol.MsgReadyAck + " v" + protocol.Version)
		c.display.Clear()
		c.motor.Resume()
		c.state = StateActive
		return true
	}
}

// RunCycle performs one active sweep cycle. The ordering is a protocol
// contract: FWR precedes the distance report, and on a reversal CDR is
// sent before the direction flips and motion resumes.
func (c *SweepController) RunCycle() {
	c.clock.Sleep(c.cfg.CyclePause)

	c.motor.Stop()
	c.ch.Send(protocol.MsgMeasureBegin)

	c.lastSample = c.sensor.Sample()
	c.display.Render(0, 0, c.cfg.DisplayLabel)
	c.display.Render(0, 10, strconv.FormatFloat(c.lastSample, 'f', 2, 64))
	c.clock.Sleep(c.cfg.DisplaySettle)

	c.ch.Send(protocol.FormatDistance(c.lastSample))

	if c.steps >= c.cfg.StepsPerReversal-1 {
		// The counter would reach StepsPerReversal: reset and reverse.
		// Announce first, then flip, then resume with the new direction.
		c.steps = 0
		c.ch.Send(protocol.MsgDirectionChange)
		c.motor.ReverseDirection()
		c.reversals++
	} else {
		c.steps++
	}

	c.motor.Resume()
	c.cycles++
}

// State returns the controller state.
func (c *SweepController) State() SweepState {
	return c.state
}

// Steps returns the step counter, always in [0, StepsPerReversal).
func (c *SweepController) Steps() int {
	return c.steps
}

// LastSample returns the most recent distance sample in centimeters.
func (c *SweepController) LastSample() float64 {
	return c.lastSample
}

// Cycles returns how many active cycles have completed.
func (c *SweepController) Cycles() uint64 {
	return c.cycles
}

// Reversals returns how many direction reversals have fired.
func (c *SweepController) Reversals() uint32 {
	return c.reversals
}
