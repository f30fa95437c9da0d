package core

type ContactType int

const (
	ContactNone ContactType = iota
	ContactTop
	ContactMiddle
	ContactBottom
	ContactLeft
	ContactRight
)

var contactNames = [...]string{"None", "Top", "Middle", "Bottom", "Left", "Right"}

func (c ContactType) String() string {
	if c < 0 || int(c) >= len(contactNames) {
		return "Unknown"
	}
	return contactNames[c]
}

// Contact describes how the ball touches a paddle or a wall. It lives for one frame.
type Contact struct {
	Type        ContactType
	Penetration float32
}

// CheckPaddleCollision reports whether the ball overlaps the paddle, how far it has to be
// pushed back along x, and which third of the paddle it hit.
func CheckPaddleCollision(ball *Ball, paddle *Paddle) Contact {
	var contact Contact

	b := ball.Rect()
	p := paddle.Rect()

	if b.Left() >= p.Right() {
		return contact
	}
	if b.Right() <= p.Left() {
		return contact
	}
	if b.Top() >= p.Bottom() {
		return contact
	}
	if b.Bottom() <= p.Top() {
		return contact
	}

	if ball.Velocity.X < 0 {
		contact.Penetration = p.Right() - b.Left()
	} else if ball.Velocity.X > 0 {
		contact.Penetration = p.Left() - b.Right()
	}

	contact.Type = paddleZone(b.Bottom(), p)
	return contact
}

// paddleZone splits the paddle into three equal thirds counted from its bottom edge.
func paddleZone(ballBottom float32, p Rect) ContactType {
	third := p.Height / 3

	switch {
	case ballBottom >= p.Bottom()-third:
		return ContactBottom
	case ballBottom >= p.Bottom()-2*third:
		return ContactMiddle
	default:
		return ContactTop
	}
}

// CheckWallCollision tests the left, right, top and bottom arena edges in that order.
// Left and Right carry no penetration: the ball is re-served instead.
func CheckWallCollision(ball *Ball) Contact {
	b := ball.Rect()

	switch {
	case b.Left() <= 0:
		return Contact{Type: ContactLeft}
	case b.Right() >= ArenaWidth:
		return Contact{Type: ContactRight}
	case b.Top() < 0:
		return Contact{Type: ContactTop, Penetration: -b.Top()}
	case b.Bottom() > ArenaHeight:
		return Contact{Type: ContactBottom, Penetration: ArenaHeight - b.Bottom()}
	}
	return Contact{}
}

// CollideWithPaddle pushes the ball out of the paddle, sends it back and picks the exit angle
// from the zone that was hit.
func (b *Ball) CollideWithPaddle(contact Contact) {
	b.Position.X += contact.Penetration
	b.Velocity.X = -b.Velocity.X

	switch contact.Type {
	case ContactTop:
		b.Velocity.Y = -ServeBias * BallSpeed
	case ContactBottom:
		b.Velocity.Y = ServeBias * BallSpeed
	}
}

// CollideWithWall bounces off the top and bottom walls and re-serves after a side wall.
func (b *Ball) CollideWithWall(contact Contact) {
	switch contact.Type {
	case ContactTop, ContactBottom:
		b.Position.Y += contact.Penetration
		b.Velocity.Y = -b.Velocity.Y
	case ContactLeft:
		b.Serve(1)
	case ContactRight:
		b.Serve(-1)
	}
}
