package core

// Vector2 is a 2D position or velocity in arena units.
type Vector2 struct {
	X, Y float32
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Accumulate adds o to v in place.
func (v *Vector2) Accumulate(o Vector2) {
	v.X += o.X
	v.Y += o.Y
}

func (v Vector2) Scale(s float32) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}
