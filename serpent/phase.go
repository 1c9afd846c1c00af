package serpent

import "github.com/jakecoffman/cp"

// PhaseKind names a combat phase.
type PhaseKind int

const (
	PhaseIdle PhaseKind = iota
	PhaseDash
	PhaseTeleport
	PhaseBreath
	PhaseCoil
	PhaseTendrilStrike
)

var phaseNames = [...]string{
	PhaseIdle:          "idle",
	PhaseDash:          "dash",
	PhaseTeleport:      "teleport",
	PhaseBreath:        "breath",
	PhaseCoil:          "coil",
	PhaseTendrilStrike: "tendril_strike",
}

func (k PhaseKind) String() string {
	if k < 0 || int(k) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[k]
}

// Phase is the active combat phase. Each concrete type carries only the data
// its phase needs.
type Phase interface {
	Kind() PhaseKind
}

type Idle struct{}

// Dash locks a direction at entry and charges along it.
type Dash struct {
	Direction cp.Vector
	Elapsed   float64
}

type TeleportStage int

const (
	TeleportCharging TeleportStage = iota
	TeleportBlink
	TeleportRecovering
)

type Teleport struct {
	Stage TeleportStage
}

// Breath tracks the aim of the breath cone. Direction is an angle in radians
// from the head toward the target.
type Breath struct {
	Direction float64
	Elapsed   float64
}

// Coil steers toward Anchor, a point orbiting the target.
type Coil struct {
	Anchor cp.Vector
}

type TendrilStrike struct {
	Spawned bool
}

func (*Idle) Kind() PhaseKind          { return PhaseIdle }
func (*Dash) Kind() PhaseKind          { return PhaseDash }
func (*Teleport) Kind() PhaseKind      { return PhaseTeleport }
func (*Breath) Kind() PhaseKind        { return PhaseBreath }
func (*Coil) Kind() PhaseKind          { return PhaseCoil }
func (*TendrilStrike) Kind() PhaseKind { return PhaseTendrilStrike }
