package mines

//go:generate stringer -type=MoveResult
type MoveResult uint8

const (
	SafeMove MoveResult = iota
	Explosion
	AlreadyRevealed
	MakesNoSense
	OutOfBounds
)

// Reveal opens the tile at p. Without force a defused tile is left alone;
// a defused mine is never opened. Opening a tile with no mined neighbours
// cascades to every neighbour with force.
func (g Grid) Reveal(p Point, force bool) MoveResult {
	if !g.Contains(p) {
		return OutOfBounds
	}
	res := g.reveal(p, force)
	if res != SafeMove || g.At(p).Count != 0 {
		return res
	}

	/*
	 * Flood the zero region. Tiles are queued only on the transition to
	 * Open, which happens at most once per tile, so the queue holds at
	 * most width*height entries.
	 */
	todo := newCelltodo(g.Width() * g.Height())
	todo.add(g.index(p))
	for i, ok := todo.pop(); ok; i, ok = todo.pop() {
		for q := range g.Neighbours(g.point(i)) {
			if g.reveal(q, true) == SafeMove && g.At(q).Count == 0 {
				todo.add(g.index(q))
			}
		}
	}
	return SafeMove
}

func (g Grid) reveal(p Point, force bool) MoveResult {
	t := g.At(p)
	switch t.State {
	case Open:
		return AlreadyRevealed
	case Exploded:
		return MakesNoSense
	case Marked:
		if !force || t.Mine {
			return MakesNoSense
		}
	case Covered, Question:
		if t.Mine {
			g.Set(p, Tile{State: Exploded, Mine: true})
			return Explosion
		}
	}
	g.Set(p, VisibleEmpty(int(t.Count)))
	return SafeMove
}

// Defuse toggles the defuse marker on p. A suspected tile becomes defused.
func (g Grid) Defuse(p Point) MoveResult {
	return g.toggle(p, Marked)
}

// Mark toggles the suspicion marker on p. A defused tile becomes suspected.
func (g Grid) Mark(p Point) MoveResult {
	return g.toggle(p, Question)
}

func (g Grid) toggle(p Point, flag TileState) MoveResult {
	if !g.Contains(p) {
		return OutOfBounds
	}
	t := g.At(p)
	switch t.State {
	case Open:
		return AlreadyRevealed
	case Exploded:
		return MakesNoSense
	case flag:
		t.State = Covered
	default:
		t.State = flag
	}
	g.Set(p, t)
	return SafeMove
}
