package component

// Input stores per-frame input state for an entity.
type Input struct {
	MoveX float64
	MoveY float64
	// DamageBoss is a debug action that chips the serpent's health.
	DamageBoss bool
}

var InputComponent = NewComponent[Input]()
