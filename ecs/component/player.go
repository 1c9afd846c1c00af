package component

// Player holds movement and survivability settings for the arena avatar.
type Player struct {
	Speed   float64 // world units per second
	Radius  float64
	IFrames int

	// DebugDamage is applied to the serpent each frame Input.DamageBoss is set.
	DebugDamage float64
}

var PlayerComponent = NewComponent[Player]()
