package core

// Display is the consumed capability for the on-device text display. The
// sweep places a fixed label and the numeric distance on it once per cycle;
// rendering details belong to the target.
type Display interface {
	// Render places text at the given row and column.
	Render(row, col uint8, text string)

	// Clear blanks the display.
	Clear()
}

// NullDisplay discards all rendering. Used when no display is attached.
type NullDisplay struct{}

func (NullDisplay) Render(row, col uint8, text string) {}

func (NullDisplay) Clear() {}
