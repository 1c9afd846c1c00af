package serpent

import "math/rand"

// Rand is the random source behind phase selection, teleport placement,
// tendril layout and particle chances. *rand.Rand satisfies it.
type Rand interface {
	// Float64 returns a value in [0,1).
	Float64() float64
}

// NewRand returns a math/rand backed source for the given seed.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
