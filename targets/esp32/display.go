//go:build esp32

package main

import "tinygo.org/x/drivers/hd44780i2c"

// lcdDisplay adapts the HD44780 I2C driver to core.Display.
type lcdDisplay struct {
	dev *hd44780i2c.Device
}

func (d *lcdDisplay) Render(row, col uint8, text string) {
	d.dev.SetCursor(col, row)
	d.dev.Print([]byte(text))
}

func (d *lcdDisplay) Clear() {
	d.dev.ClearDisplay()
}
