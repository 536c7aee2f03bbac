package breakout

// Snapshot contains the complete game state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Frame   uint64
	Phase   int
	PaddleX int
	Score   int
	Lives   int
	Holding bool

	// Ball as X, Y, VX, VY
	BallX, BallY   int
	BallVX, BallVY int

	// One entry per brick in grid order: 1 active, 0 broken
	BrickData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	bricks := make([]int, len(g.bricks))
	for i, b := range g.bricks {
		if b.Active {
			bricks[i] = 1
		}
	}

	return Snapshot{
		Frame:     g.frame,
		Phase:     int(g.phase),
		PaddleX:   g.paddle.X,
		Score:     g.score,
		Lives:     g.lives,
		Holding:   g.holding,
		BallX:     g.ball.X,
		BallY:     g.ball.Y,
		BallVX:    g.ball.VX,
		BallVY:    g.ball.VY,
		BrickData: bricks,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.Phase)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleX) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)   //#nosec G115 -- hash computation
	if snap.Holding {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.BallX)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVX) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVY) //#nosec G115 -- hash computation

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
