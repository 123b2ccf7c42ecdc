package components

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// BodyData is the vertical motion of an actor that can leave the ground.
type BodyData struct {
	VelY     float64
	OnGround bool
	Gravity  float64
}

// Fall integrates one tick of gravity for a body whose feet are at *y and
// reports whether it touched down on this tick.
func (b *BodyData) Fall(y *float64, groundY float64) bool {
	b.VelY += b.Gravity
	*y += b.VelY
	if *y < groundY {
		b.OnGround = false
		return false
	}
	*y = groundY
	b.VelY = 0
	landed := !b.OnGround
	b.OnGround = true
	return landed
}
