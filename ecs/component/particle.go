package component

import "image/color"

// Particle is a short-lived visual spark. Age and Lifetime are in seconds;
// renderers fade alpha by Age/Lifetime.
type Particle struct {
	Color    color.RGBA
	Size     float64
	Age      float64
	Lifetime float64
	Drag     float64
}

var ParticleComponent = NewComponent[Particle]()
