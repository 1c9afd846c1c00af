package component

// Camera follows the player. ShakeFrames and ShakeIntensity hold the active
// shake; OffsetX/OffsetY is the jitter applied this frame.
type Camera struct {
	Zoom       float64
	Smoothness float64

	ShakeFrames    int
	ShakeIntensity float64
	OffsetX        float64
	OffsetY        float64
}

var CameraComponent = NewComponent[Camera]()
