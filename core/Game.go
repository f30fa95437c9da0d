package core

// Score holds the points of each side. It only ever grows within a session.
type Score struct {
	Left  int
	Right int
}

type EventKind int

const (
	EventPaddleHit EventKind = iota
	EventWallBounce
	EventWallScore
)

func (k EventKind) String() string {
	switch k {
	case EventPaddleHit:
		return "PaddleHit"
	case EventWallBounce:
		return "WallBounce"
	case EventWallScore:
		return "WallScore"
	}
	return "Unknown"
}

// Event is a resolved contact, reported back to the caller of Update.
type Event struct {
	Kind    EventKind
	Contact Contact
	Score   Score
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	Ball        Rect
	LeftPaddle  Rect
	RightPaddle Rect
	Score       Score
}

type Game struct {
	Ball        *Ball
	LeftPaddle  *Paddle
	RightPaddle *Paddle
	Score       Score

	stepper Stepper
}

// NewGame builds a fresh session. A nil stepper means VariableStep.
func NewGame(stepper Stepper) *Game {
	if stepper == nil {
		stepper = VariableStep{}
	}
	return &Game{
		Ball:        NewBall(),
		LeftPaddle:  NewPaddle(PaddleMargin),
		RightPaddle: NewPaddle(ArenaWidth - PaddleMargin),
		stepper:     stepper,
	}
}

// Update advances the simulation by elapsed milliseconds and returns the contacts resolved
// during the frame.
func (g *Game) Update(input Input, elapsed float32) []Event {
	var events []Event
	g.stepper.Advance(elapsed, func(dt float32) {
		if ev, ok := g.step(input, dt); ok {
			events = append(events, ev)
		}
	})
	return events
}

func (g *Game) step(input Input, dt float32) (Event, bool) {
	g.LeftPaddle.Velocity.Y, g.RightPaddle.Velocity.Y = input.PaddleVelocities()

	g.LeftPaddle.Update(dt)
	g.RightPaddle.Update(dt)
	g.Ball.Update(dt)

	if contact := CheckPaddleCollision(g.Ball, g.LeftPaddle); contact.Type != ContactNone {
		g.Ball.CollideWithPaddle(contact)
		return Event{Kind: EventPaddleHit, Contact: contact, Score: g.Score}, true
	}
	if contact := CheckPaddleCollision(g.Ball, g.RightPaddle); contact.Type != ContactNone {
		g.Ball.CollideWithPaddle(contact)
		return Event{Kind: EventPaddleHit, Contact: contact, Score: g.Score}, true
	}

	contact := CheckWallCollision(g.Ball)
	switch contact.Type {
	case ContactNone:
		return Event{}, false
	case ContactLeft:
		g.Score.Right++
	case ContactRight:
		g.Score.Left++
	}
	g.Ball.CollideWithWall(contact)

	kind := EventWallBounce
	if contact.Type == ContactLeft || contact.Type == ContactRight {
		kind = EventWallScore
	}
	return Event{Kind: kind, Contact: contact, Score: g.Score}, true
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Ball:        g.Ball.Rect(),
		LeftPaddle:  g.LeftPaddle.Rect(),
		RightPaddle: g.RightPaddle.Rect(),
		Score:       g.Score,
	}
}
