// Package serial abstracts the host's serial connection to the sweep
// device so the protocol client can be tested against in-memory ports.
package serial

import "io"

// Port is a duplex byte stream to the device.
type Port interface {
	io.ReadWriteCloser
}

// Config holds serial port configuration.
type Config struct {
	// Device path (e.g. "/dev/ttyUSB0", "COM3").
	Device string

	// Baud rate. The reference link runs at 115200.
	Baud int
}

// DefaultConfig returns the reference link configuration for a device path.
func DefaultConfig(device string) *Config {
	return &Config{
		Device: device,
		Baud:   115200,
	}
}
