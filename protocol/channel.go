package protocol

import "io"

// InboundBufferSize is the capacity of the channel's receive FIFO. The
// host only ever sends short control lines, so this is generous.
const InboundBufferSize = 128

// Channel is the device side of the handshake link: newline-framed
// outbound writes plus a non-blocking inbound line scanner. The serial
// receive path feeds raw bytes in with Feed (typically from a reader
// goroutine or interrupt handler); the control loop polls complete lines
// out with PollLine.
//
// The link is assumed reliable and in-order. There is no acknowledgment,
// retry, or checksum layer.
type Channel struct {
	out io.Writer
	in  *FifoBuffer

	// ignored counts inbound lines the caller classified as unrecognized.
	ignored uint32
}

// NewChannel creates a Channel writing outbound messages to w.
func NewChannel(w io.Writer) *Channel {
	return &Channel{
		out: w,
		in:  NewFifoBuffer(InboundBufferSize),
	}
}

// Send writes one newline-terminated message.
func (c *Channel) Send(msg string) error {
	_, err := io.WriteString(c.out, msg+"\n")
	return err
}

// Feed appends received bytes to the inbound FIFO.
func (c *Channel) Feed(data []byte) {
	c.in.Write(data)
}

// PollLine extracts the next complete inbound line, without its newline
// and with any trailing carriage return stripped. Returns false when no
// complete line is buffered. Never blocks.
func (c *Channel) PollLine() (string, bool) {
	data := c.in.Data()
	for i, b := range data {
		if b != '\n' {
			continue
		}
		line := data[:i]
		c.in.Pop(i + 1)
		for len(line) > 0 && line[len(line)-1] == '\r' {
			line = line[:len(line)-1]
		}
		return string(line), true
	}
	// No terminator buffered. A full FIFO can never gain one (its
	// terminator was dropped along with everything after it), so an
	// oversized line would wedge the channel for good. Discard it like
	// any other unrecognized input and let the link recover.
	if c.in.Full() {
		c.in.Reset()
		c.ignored++
	}
	return "", false
}

// MarkIgnored records an inbound line that was not understood.
func (c *Channel) MarkIgnored() {
	c.ignored++
}

// IgnoredLines returns how many unrecognized inbound lines were seen.
func (c *Channel) IgnoredLines() uint32 {
	return c.ignored
}
