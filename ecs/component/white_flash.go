package component

// WhiteFlash makes an entity blink while active. Timing is frame-based.
type WhiteFlash struct {
	// Frames remaining for the whole flash effect (in update ticks)
	Frames int
	// Interval in frames between toggles of the white-on state
	Interval int
	Timer    int
	On       bool
}

var WhiteFlashComponent = NewComponent[WhiteFlash]()
