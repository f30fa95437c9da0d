package core

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

func (r Rect) Left() float32   { return r.X }
func (r Rect) Right() float32  { return r.X + r.Width }
func (r Rect) Top() float32    { return r.Y }
func (r Rect) Bottom() float32 { return r.Y + r.Height }

type GameObject struct {
	Position      Vector2
	Velocity      Vector2
	Width, Height float32
}

func (o *GameObject) Rect() Rect {
	return Rect{X: o.Position.X, Y: o.Position.Y, Width: o.Width, Height: o.Height}
}

func (o *GameObject) integrate(dt float32) {
	o.Position.Accumulate(o.Velocity.Scale(dt))
}

type Ball struct {
	GameObject
}

type Paddle struct {
	GameObject
}

func arenaCenter() Vector2 {
	return Vector2{X: ArenaWidth / 2, Y: ArenaHeight / 2}
}

// NewBall places a ball at the arena center heading right.
func NewBall() *Ball {
	return &Ball{
		GameObject: GameObject{
			Position: arenaCenter(),
			Velocity: Vector2{X: BallSpeed, Y: 0},
			Width:    BallWidth,
			Height:   BallHeight,
		},
	}
}

// NewPaddle places a paddle at column x, vertically centred.
func NewPaddle(x float32) *Paddle {
	return &Paddle{
		GameObject: GameObject{
			Position: Vector2{X: x, Y: ArenaHeight/2 - PaddleHeight/2},
			Width:    PaddleWidth,
			Height:   PaddleHeight,
		},
	}
}

func (b *Ball) Update(dt float32) {
	b.integrate(dt)
}

// Update moves the paddle and stops it at the top and bottom of the arena.
func (p *Paddle) Update(dt float32) {
	p.integrate(dt)

	if p.Position.Y < 0 {
		p.Position.Y = 0
	} else if p.Position.Y > ArenaHeight-p.Height {
		p.Position.Y = ArenaHeight - p.Height
	}
}

// Serve re-centres the ball and launches it towards direction (+1 right, -1 left).
func (b *Ball) Serve(direction float32) {
	b.Position = arenaCenter()
	b.Velocity = Vector2{X: direction * BallSpeed, Y: ServeBias * BallSpeed}
}
