package protocol

// FifoBuffer is a circular byte buffer between the serial receive path and
// the channel's line scanner. The receive side calls Write, the consumer
// side calls Data/Pop.
type FifoBuffer struct {
	buf   []byte
	read  int
	write int
	size  int
}

// NewFifoBuffer creates a FifoBuffer with the given capacity.
func NewFifoBuffer(capacity int) *FifoBuffer {
	return &FifoBuffer{
		buf:  make([]byte, capacity),
		size: capacity,
	}
}

// Write appends data, returning how many bytes fit. Bytes that do not fit
// are dropped; the protocol has no flow control and a stalled consumer must
// not block the receive path.
func (f *FifoBuffer) Write(data []byte) int {
	written := 0
	for _, b := range data {
		next := (f.write + 1) % f.size
		if next == f.read {
			break
		}
		f.buf[f.write] = b
		f.write = next
		written++
	}
	return written
}

// Full reports whether the buffer cannot accept another byte.
func (f *FifoBuffer) Full() bool {
	return (f.write+1)%f.size == f.read
}

// Available returns the number of buffered bytes.
func (f *FifoBuffer) Available() int {
	if f.write >= f.read {
		return f.write - f.read
	}
	return f.size - f.read + f.write
}

// Data returns the buffered bytes as a contiguous slice. When the buffer
// has wrapped, the two segments are copied out so line scanning sees one
// run of bytes.
func (f *FifoBuffer) Data() []byte {
	if f.read <= f.write {
		return f.buf[f.read:f.write]
	}
	out := make([]byte, f.Available())
	n := copy(out, f.buf[f.read:])
	copy(out[n:], f.buf[:f.write])
	return out
}

// Pop removes n bytes from the front.
func (f *FifoBuffer) Pop(n int) {
	for i := 0; i < n && f.read != f.write; i++ {
		f.read = (f.read + 1) % f.size
	}
}

// IsEmpty reports whether the buffer holds no bytes.
func (f *FifoBuffer) IsEmpty() bool {
	return f.read == f.write
}

// Reset discards all buffered bytes.
func (f *FifoBuffer) Reset() {
	f.read = 0
	f.write = 0
}
