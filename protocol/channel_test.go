package protocol

import (
	"bytes"
	"testing"
)

func TestChannelSend(t *testing.T) {
	var out bytes.Buffer
	ch := NewChannel(&out)

	if err := ch.Send(MsgMeasureBegin); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if err := ch.Send(FormatDistance(9.928)); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	expected := "FWR\nDistance: 9.928000\n"
	if out.String() != expected {
		t.Errorf("outbound stream = %q, expected %q", out.String(), expected)
	}
}

func TestChannelPollLine(t *testing.T) {
	ch := NewChannel(&bytes.Buffer{})

	if _, ok := ch.PollLine(); ok {
		t.Error("PollLine on empty channel returned a line")
	}

	// Partial line is not returned until the newline arrives.
	ch.Feed([]byte("RD"))
	if _, ok := ch.PollLine(); ok {
		t.Error("PollLine returned an incomplete line")
	}
	ch.Feed([]byte("Y\r\n"))

	line, ok := ch.PollLine()
	if !ok {
		t.Fatal("PollLine did not return a complete line")
	}
	if line != "RDY" {
		t.Errorf("line = %q, expected %q (CR must be stripped)", line, "RDY")
	}
}

func TestChannelPollLineMultiple(t *testing.T) {
	ch := NewChannel(&bytes.Buffer{})
	ch.Feed([]byte("first\nsecond\nthird"))

	for _, expected := range []string{"first", "second"} {
		line, ok := ch.PollLine()
		if !ok {
			t.Fatalf("expected line %q, got none", expected)
		}
		if line != expected {
			t.Errorf("line = %q, expected %q", line, expected)
		}
	}
	if _, ok := ch.PollLine(); ok {
		t.Error("PollLine returned a line with no terminator buffered")
	}
}

func TestChannelRecoversFromOversizedLine(t *testing.T) {
	ch := NewChannel(&bytes.Buffer{})

	// A newline-less line longer than the inbound FIFO fills it; the
	// terminator and everything after it are dropped on arrival.
	junk := make([]byte, 200)
	for i := range junk {
		junk[i] = 'x'
	}
	ch.Feed(junk)
	ch.Feed([]byte("RDY\n"))

	// The poll must discard the junk instead of wedging forever.
	if _, ok := ch.PollLine(); ok {
		t.Fatal("PollLine fabricated a line from junk")
	}
	if ch.IgnoredLines() != 1 {
		t.Errorf("IgnoredLines = %d, expected 1 for the discarded junk", ch.IgnoredLines())
	}

	// The channel accepts input again after the discard.
	ch.Feed([]byte("RDY\r\n"))
	line, ok := ch.PollLine()
	if !ok {
		t.Fatal("channel did not recover after an oversized line")
	}
	if line != "RDY" {
		t.Errorf("line after recovery = %q, expected %q", line, "RDY")
	}
}

func TestFifoBufferWrap(t *testing.T) {
	f := NewFifoBuffer(8)

	f.Write([]byte("abcde"))
	f.Pop(4)
	f.Write([]byte("fgh")) // wraps around the end of the ring

	if got := f.Available(); got != 4 {
		t.Fatalf("Available = %d, expected 4", got)
	}
	if got := string(f.Data()); got != "efgh" {
		t.Errorf("Data = %q, expected %q", got, "efgh")
	}
}

func TestFifoBufferFullDrops(t *testing.T) {
	f := NewFifoBuffer(4)

	n := f.Write([]byte("abcdef"))
	if n != 3 {
		t.Errorf("Write accepted %d bytes, expected 3 (capacity-1)", n)
	}
	if got := string(f.Data()); got != "abc" {
		t.Errorf("Data = %q, expected %q", got, "abc")
	}
}
