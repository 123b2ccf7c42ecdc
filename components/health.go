package components

type HealthData struct {
	Current int
	Max     int
}

// Damage subtracts amount, clamping at zero, and reports whether nothing is left.
func (h *HealthData) Damage(amount int) bool {
	h.Current -= amount
	if h.Current <= 0 {
		h.Current = 0
		return true
	}
	return false
}

// Restore refills to the maximum.
func (h *HealthData) Restore() {
	h.Current = h.Max
}

// Ratio returns the remaining fraction for health bars.
func (h HealthData) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}
