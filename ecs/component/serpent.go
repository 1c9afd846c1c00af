package component

import (
	"image/color"

	"github.com/jblob-devs/rymech-sub001/serpent"
)

// SerpentBoss attaches a serpent simulation to an entity. The entity's
// Transform mirrors Boss.Position after every tick.
type SerpentBoss struct {
	Boss *serpent.Boss

	// ContactDamage is dealt to the player on body contact; BreathDamage
	// inside the breath cone.
	ContactDamage float64
	BreathDamage  float64

	// Script is an optional prefab script with an on_phase hook.
	Script string

	BodyColor    color.RGBA
	TendrilColor color.RGBA

	LastPhase serpent.PhaseKind
}

var SerpentBossComponent = NewComponent[SerpentBoss]()
