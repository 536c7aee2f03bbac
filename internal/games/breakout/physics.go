package breakout

import (
	"github.com/vovakirdan/pico-arcade/internal/core"
)

// Ball is the ball state in whole pixels. Velocity is pixels per frame.
type Ball struct {
	X, Y   int // Center
	VX, VY int
	R      int
}

// Box returns the ball's bounding box.
func (b *Ball) Box() core.Rect {
	return core.RectAround(b.X, b.Y, b.R)
}

// Move integrates the ball by one frame and bounces it off the side and top
// walls. The floor is left to the caller.
func (b *Ball) Move(screenW int) {
	b.X += b.VX
	b.Y += b.VY

	if b.X-b.R < 0 || b.X+b.R > screenW {
		b.VX = -b.VX
		b.X = core.Clamp(b.X, b.R, screenW-b.R)
	}
	if b.Y-b.R < 0 {
		b.VY = -b.VY
		b.Y = b.R
	}
}

// BelowFloor reports whether the ball's lower edge has crossed the bottom.
func (b *Ball) BelowFloor(screenH int) bool {
	return b.Y+b.R > screenH
}

// Paddle is the player's paddle. Y is fixed for the whole game.
type Paddle struct {
	X, Y  int // Top-left corner
	W, H  int
	Speed int
}

// Box returns the paddle's bounding box.
func (p *Paddle) Box() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// CenterX returns the paddle's horizontal center.
func (p *Paddle) CenterX() int {
	return p.X + p.W/2
}

// MoveLeft steps the paddle left, stopping at the wall.
func (p *Paddle) MoveLeft() {
	p.X = core.Max(p.X-p.Speed, 0)
}

// MoveRight steps the paddle right, stopping at the wall.
func (p *Paddle) MoveRight(screenW int) {
	p.X = core.Min(p.X+p.Speed, screenW-p.W)
}

// Outcome is what happened to the ball at the floor on one frame.
type Outcome int

const (
	BallInPlay Outcome = iota // Still above the floor
	BallLost                  // Crossed the floor, a life remains
	BallOut                   // Crossed the floor with the last life
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case BallInPlay:
		return "InPlay"
	case BallLost:
		return "Lost"
	case BallOut:
		return "Out"
	default:
		return "Unknown"
	}
}

// CheckPaddleCollision bounces the ball off the paddle when its lower edge
// is inside the paddle band and its center is over the paddle. The new
// horizontal speed is proportional to the distance from the paddle center,
// reaching spinFactor at the edges.
func CheckPaddleCollision(ball *Ball, paddle *Paddle, spinFactor int) bool {
	bottom := ball.Y + ball.R
	if bottom <= paddle.Y || bottom >= paddle.Y+paddle.H {
		return false
	}
	if ball.X <= paddle.X || ball.X >= paddle.X+paddle.W {
		return false
	}

	ball.VY = -ball.VY
	ball.Y = paddle.Y - ball.R

	half := paddle.W / 2
	if half > 0 {
		ball.VX = (ball.X - paddle.CenterX()) * spinFactor / half
	}
	return true
}

// CheckBrickCollision resolves at most one brick hit per frame. Bricks are
// scanned in grid order and the first active brick overlapping the ball is
// deactivated. The ball bounces on the axis with the smaller penetration
// and is pushed just outside the brick on that axis. Returns the index of
// the hit brick, or -1.
func CheckBrickCollision(ball *Ball, bricks []Brick) int {
	box := ball.Box()

	for i := range bricks {
		brick := &bricks[i]
		if !brick.Active {
			continue
		}
		bb := brick.Box()
		if !box.Intersects(bb) {
			continue
		}

		brick.Active = false

		overlapX, overlapY := box.Penetration(bb)
		if overlapX < overlapY {
			ball.VX = -ball.VX
			if 2*ball.X < 2*bb.X+bb.W {
				ball.X = bb.X - ball.R
			} else {
				ball.X = bb.Right() + ball.R
			}
		} else {
			ball.VY = -ball.VY
			if 2*ball.Y < 2*bb.Y+bb.H {
				ball.Y = bb.Y - ball.R
			} else {
				ball.Y = bb.Bottom() + ball.R
			}
		}
		return i
	}
	return -1
}
