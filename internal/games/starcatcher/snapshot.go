package starcatcher

// Snapshot contains the complete game state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Frame     uint64
	Phase     int
	PlayerX   int
	Score     int
	Lives     int
	Level     int
	Collected int
	Misses    int

	// Stars as X, Y pairs
	StarData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	stars := make([]int, 0, len(g.stars)*2)
	for _, st := range g.stars {
		stars = append(stars, st.X, st.Y)
	}

	return Snapshot{
		Frame:     g.frame,
		Phase:     int(g.phase),
		PlayerX:   g.playerX,
		Score:     g.score,
		Lives:     g.lives,
		Level:     g.level,
		Collected: g.collected,
		Misses:    g.misses,
		StarData:  stars,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.Phase)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Collected) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Misses)    //#nosec G115 -- hash computation

	for _, v := range snap.StarData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
