// Package protocol implements the line-based handshake protocol spoken
// between the sweep firmware and the host logger.
package protocol

import (
	"strconv"
	"strings"
)

// Version is the sonarsweep firmware version.
const Version = "0.1.0"

// Message vocabulary. All messages are single newline-terminated ASCII
// lines; inbound lines may carry a trailing carriage return.
const (
	// MsgReady is the only inbound message: the host signals it is
	// listening and the sweep may start.
	MsgReady = "RDY"

	// MsgMeasureBegin is sent immediately before a measurement is taken.
	MsgMeasureBegin = "FWR"

	// MsgDirectionChange is sent when the sweep reverses, before the
	// direction actually flips in the actuator.
	MsgDirectionChange = "CDR"

	// MsgWaiting is sent once per poll while awaiting MsgReady.
	MsgWaiting = "sweep: waiting for RDY"

	// MsgReadyAck is sent once, after MsgReady is received. Hosts that do
	// not know it ignore it like any other unrecognized line.
	MsgReadyAck = "sweep: ready signal received"

	// DistancePrefix starts every distance report line.
	DistancePrefix = "Distance: "
)

// FormatDistance renders a distance report line (without terminator).
// Six decimal places, so the invalid-sample sentinel prints as 0.000000.
func FormatDistance(cm float64) string {
	return DistancePrefix + strconv.FormatFloat(cm, 'f', 6, 64)
}

// ParseDistance extracts the value from a distance report line.
// Returns false if the line is not a distance report.
func ParseDistance(line string) (float64, bool) {
	rest, ok := strings.CutPrefix(line, DistancePrefix)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// IsReady reports whether an inbound line is the host readiness signal.
// A trailing carriage return is tolerated.
func IsReady(line string) bool {
	return strings.TrimRight(line, "\r") == MsgReady
}
