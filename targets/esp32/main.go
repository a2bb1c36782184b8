//go:build esp32

package main

import (
	"machine"
	"time"

	"sonarsweep/core"
	"sonarsweep/protocol"

	"tinygo.org/x/drivers/hd44780i2c"
)

// Reference board pin map.
const (
	pinEnable = 25 // motor driver enable (fixed full duty)
	pinDir1   = 26 // H-bridge direction 1
	pinDir2   = 27 // H-bridge direction 2
	pinTrig   = 13 // HC-SR04 trigger
	pinEcho   = 32 // HC-SR04 echo

	lcdAddr = 0x27 // 16x2 I2C LCD
)

var channel *protocol.Channel

func main() {
	machine.Serial.Configure(machine.UARTConfig{BaudRate: 115200})

	machine.I2C0.Configure(machine.I2CConfig{
		SDA: machine.Pin(21),
		SCL: machine.Pin(22),
	})
	lcd := hd44780i2c.New(machine.I2C0, lcdAddr)
	lcd.Configure(hd44780i2c.Config{
		Width:  16,
		Height: 2,
	})
	lcd.BacklightOn(true)
	display := &lcdDisplay{dev: &lcd}
	display.Render(0, 0, "waiting for host")

	gpio := newESPGPIODriver()
	clock := core.WallClock{}

	motor, err := core.NewMotorActuator(gpio, &espEnableDriver{}, pinDir1, pinDir2, pinEnable)
	if err != nil {
		fatal("motor init", err)
	}
	sensor, err := core.NewRangeSensor(gpio, espEchoTimer{}, clock, pinTrig, pinEcho)
	if err != nil {
		fatal("sensor init", err)
	}

	channel = protocol.NewChannel(machine.Serial)

	// Driver enable is set once; the per-cycle stop/resume goes through
	// the direction lines.
	motor.SetEnabled(true)

	go serialPump()

	ctrl := core.NewSweepController(core.DefaultSweepConfig(), motor, sensor, channel, display, clock)
	ctrl.Run()
}

// serialPump moves received bytes from the UART into the channel's inbound
// FIFO. Single producer, single consumer; the cooperative scheduler never
// interleaves the two mid-operation.
func serialPump() {
	var b [1]byte
	for {
		for machine.Serial.Buffered() > 0 {
			c, err := machine.Serial.ReadByte()
			if err != nil {
				break
			}
			b[0] = c
			channel.Feed(b[:])
		}
		time.Sleep(time.Millisecond)
	}
}

func fatal(what string, err error) {
	for {
		println("fatal:", what, err.Error())
		time.Sleep(time.Second)
	}
}
