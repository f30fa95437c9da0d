package core

// Input is the held state of the four paddle buttons for one frame.
type Input struct {
	LeftUp, LeftDown   bool
	RightUp, RightDown bool
}

// PaddleVelocities maps held buttons to vertical paddle speeds. Up is checked first, so it wins
// when both buttons of a paddle are held.
func (in Input) PaddleVelocities() (left, right float32) {
	return paddleVelocity(in.LeftUp, in.LeftDown), paddleVelocity(in.RightUp, in.RightDown)
}

func paddleVelocity(up, down bool) float32 {
	if up {
		return -PaddleSpeed
	} else if down {
		return PaddleSpeed
	}
	return 0
}
