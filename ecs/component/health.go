package component

// Health is a reusable health component for any entity that can take damage.
type Health struct {
	Max     float64
	Current float64
	Dead    bool
}

var HealthComponent = NewComponent[Health]()

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max float64) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// IsAlive reports whether the entity is alive.
func (h *Health) IsAlive() bool {
	return h != nil && !h.Dead && h.Current > 0
}

// ApplyDamage subtracts amount, clamping at zero. Returns true if damage was
// applied.
func (h *Health) ApplyDamage(amount float64) bool {
	if h == nil || h.Dead || amount <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current <= 0 {
		h.Current = 0
		h.Dead = true
	}
	return true
}
