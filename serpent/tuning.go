package serpent

// Tuning holds every number the serpent simulation runs on. Durations are in
// seconds, distances in world units and speeds in units per 60 Hz frame unless
// the field says otherwise.
type Tuning struct {
	SegmentSpacing   float64 `yaml:"segment_spacing"`
	SegmentTaper     float64 `yaml:"segment_taper"`
	FollowBlend      float64 `yaml:"follow_blend"`
	HeadGain         float64 `yaml:"head_gain"`
	HeadMaxSpeed     float64 `yaml:"head_max_speed"` // units per second
	HeadSnapDistance float64 `yaml:"head_snap_distance"`
	SpawnRate        float64 `yaml:"spawn_rate"`
	MaxStep          float64 `yaml:"max_step"`

	BaseSpeed        float64 `yaml:"base_speed"`
	IdleDecisionTime float64 `yaml:"idle_decision_time"`
	IdleChaseRange   float64 `yaml:"idle_chase_range"`
	IdleChaseFactor  float64 `yaml:"idle_chase_factor"`
	IdleOrbitFactor  float64 `yaml:"idle_orbit_factor"`

	// Cumulative upper bounds of the phase buckets; anything at or above
	// CoilBelow selects a tendril strike.
	TeleportBelow float64 `yaml:"teleport_below"`
	DashBelow     float64 `yaml:"dash_below"`
	BreathBelow   float64 `yaml:"breath_below"`
	CoilBelow     float64 `yaml:"coil_below"`

	DashSpeed          float64 `yaml:"dash_speed"`
	DashDuration       float64 `yaml:"dash_duration"`
	DashParticleChance float64 `yaml:"dash_particle_chance"`

	TeleportChargeTime     float64 `yaml:"teleport_charge_time"`
	TeleportBlinkEnd       float64 `yaml:"teleport_blink_end"`
	TeleportDuration       float64 `yaml:"teleport_duration"`
	TeleportCooldown       float64 `yaml:"teleport_cooldown"`
	TeleportMinDistance    float64 `yaml:"teleport_min_distance"`
	TeleportMaxDistance    float64 `yaml:"teleport_max_distance"`
	TeleportParticleChance float64 `yaml:"teleport_particle_chance"`

	BreathDuration       float64 `yaml:"breath_duration"`
	BreathRange          float64 `yaml:"breath_range"`
	BreathSpread         float64 `yaml:"breath_spread"` // half angle, radians
	BreathParticleChance float64 `yaml:"breath_particle_chance"`

	CoilRadius      float64 `yaml:"coil_radius"`
	CoilAngularRate float64 `yaml:"coil_angular_rate"` // radians per second of phase time
	CoilSpeedFactor float64 `yaml:"coil_speed_factor"`
	CoilDuration    float64 `yaml:"coil_duration"`

	StrikeFreezeTime  float64 `yaml:"strike_freeze_time"`
	StrikeSpawnTime   float64 `yaml:"strike_spawn_time"`
	StrikeDuration    float64 `yaml:"strike_duration"`
	TendrilMin        int     `yaml:"tendril_min"`
	TendrilMax        int     `yaml:"tendril_max"`
	TendrilJitter     float64 `yaml:"tendril_jitter"`
	TendrilMinLength  float64 `yaml:"tendril_min_length"`
	TendrilMaxLength  float64 `yaml:"tendril_max_length"`
	TendrilRevealRate float64 `yaml:"tendril_reveal_rate"`
	TendrilDamage     float64 `yaml:"tendril_damage"`
	TendrilWidth      float64 `yaml:"tendril_width"`
	HitWindowStart    float64 `yaml:"hit_window_start"`
	HitWindowEnd      float64 `yaml:"hit_window_end"`
}

// DefaultTuning returns the reference numbers for the serpent.
func DefaultTuning() Tuning {
	return Tuning{
		SegmentSpacing:   45,
		SegmentTaper:     0.35,
		FollowBlend:      0.3,
		HeadGain:         8,
		HeadMaxSpeed:     600,
		HeadSnapDistance: 0.5,
		SpawnRate:        0.8,
		MaxStep:          0.1,

		BaseSpeed:        4,
		IdleDecisionTime: 2,
		IdleChaseRange:   100,
		IdleChaseFactor:  0.7,
		IdleOrbitFactor:  0.5,

		TeleportBelow: 0.15,
		DashBelow:     0.30,
		BreathBelow:   0.50,
		CoilBelow:     0.70,

		DashSpeed:          18,
		DashDuration:       0.6,
		DashParticleChance: 0.3,

		TeleportChargeTime:     0.5,
		TeleportBlinkEnd:       0.6,
		TeleportDuration:       1.2,
		TeleportCooldown:       8,
		TeleportMinDistance:    300,
		TeleportMaxDistance:    500,
		TeleportParticleChance: 0.4,

		BreathDuration:       2.5,
		BreathRange:          320,
		BreathSpread:         0.35,
		BreathParticleChance: 0.5,

		CoilRadius:      150,
		CoilAngularRate: 2,
		CoilSpeedFactor: 1.5,
		CoilDuration:    3,

		StrikeFreezeTime:  0.8,
		StrikeSpawnTime:   0.3,
		StrikeDuration:    2,
		TendrilMin:        5,
		TendrilMax:        8,
		TendrilJitter:     0.5,
		TendrilMinLength:  400,
		TendrilMaxLength:  700,
		TendrilRevealRate: 1.5,
		TendrilDamage:     20,
		TendrilWidth:      30,
		HitWindowStart:    0.2,
		HitWindowEnd:      0.9,
	}
}

// WithDefaults fills every zero field from DefaultTuning so partially authored
// prefab specs stay playable.
func (t Tuning) WithDefaults() Tuning {
	d := DefaultTuning()
	fill := func(v *float64, def float64) {
		if *v == 0 {
			*v = def
		}
	}

	fill(&t.SegmentSpacing, d.SegmentSpacing)
	fill(&t.SegmentTaper, d.SegmentTaper)
	fill(&t.FollowBlend, d.FollowBlend)
	fill(&t.HeadGain, d.HeadGain)
	fill(&t.HeadMaxSpeed, d.HeadMaxSpeed)
	fill(&t.HeadSnapDistance, d.HeadSnapDistance)
	fill(&t.SpawnRate, d.SpawnRate)
	fill(&t.MaxStep, d.MaxStep)

	fill(&t.BaseSpeed, d.BaseSpeed)
	fill(&t.IdleDecisionTime, d.IdleDecisionTime)
	fill(&t.IdleChaseRange, d.IdleChaseRange)
	fill(&t.IdleChaseFactor, d.IdleChaseFactor)
	fill(&t.IdleOrbitFactor, d.IdleOrbitFactor)

	fill(&t.TeleportBelow, d.TeleportBelow)
	fill(&t.DashBelow, d.DashBelow)
	fill(&t.BreathBelow, d.BreathBelow)
	fill(&t.CoilBelow, d.CoilBelow)

	fill(&t.DashSpeed, d.DashSpeed)
	fill(&t.DashDuration, d.DashDuration)
	fill(&t.DashParticleChance, d.DashParticleChance)

	fill(&t.TeleportChargeTime, d.TeleportChargeTime)
	fill(&t.TeleportBlinkEnd, d.TeleportBlinkEnd)
	fill(&t.TeleportDuration, d.TeleportDuration)
	fill(&t.TeleportCooldown, d.TeleportCooldown)
	fill(&t.TeleportMinDistance, d.TeleportMinDistance)
	fill(&t.TeleportMaxDistance, d.TeleportMaxDistance)
	fill(&t.TeleportParticleChance, d.TeleportParticleChance)

	fill(&t.BreathDuration, d.BreathDuration)
	fill(&t.BreathRange, d.BreathRange)
	fill(&t.BreathSpread, d.BreathSpread)
	fill(&t.BreathParticleChance, d.BreathParticleChance)

	fill(&t.CoilRadius, d.CoilRadius)
	fill(&t.CoilAngularRate, d.CoilAngularRate)
	fill(&t.CoilSpeedFactor, d.CoilSpeedFactor)
	fill(&t.CoilDuration, d.CoilDuration)

	fill(&t.StrikeFreezeTime, d.StrikeFreezeTime)
	fill(&t.StrikeSpawnTime, d.StrikeSpawnTime)
	fill(&t.StrikeDuration, d.StrikeDuration)
	if t.TendrilMin <= 0 {
		t.TendrilMin = d.TendrilMin
	}
	if t.TendrilMax < t.TendrilMin {
		t.TendrilMax = t.TendrilMin + (d.TendrilMax - d.TendrilMin)
	}
	fill(&t.TendrilJitter, d.TendrilJitter)
	fill(&t.TendrilMinLength, d.TendrilMinLength)
	fill(&t.TendrilMaxLength, d.TendrilMaxLength)
	fill(&t.TendrilRevealRate, d.TendrilRevealRate)
	fill(&t.TendrilDamage, d.TendrilDamage)
	fill(&t.TendrilWidth, d.TendrilWidth)
	fill(&t.HitWindowStart, d.HitWindowStart)
	fill(&t.HitWindowEnd, d.HitWindowEnd)

	return t
}

// SelectPhase maps one uniform draw in [0,1) to the phase entered when the
// idle timer expires. While the teleport is cooling down its share of the
// range falls through to dash.
func (t Tuning) SelectPhase(r float64, teleportReady bool) PhaseKind {
	switch {
	case teleportReady && r < t.TeleportBelow:
		return PhaseTeleport
	case r < t.DashBelow:
		return PhaseDash
	case r < t.BreathBelow:
		return PhaseBreath
	case r < t.CoilBelow:
		return PhaseCoil
	default:
		return PhaseTendrilStrike
	}
}

func (t Tuning) inHitWindow(progress float64) bool {
	return progress > t.HitWindowStart && progress < t.HitWindowEnd
}
