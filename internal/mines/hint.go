package mines

import "math/rand/v2"

// Hint opens a random safe tile among those with the fewest mined
// neighbours. A defused tile is un-defused first. [ErrNoHint] is returned
// when every safe tile is already open.
func (g Grid) Hint(r *rand.Rand) (Point, MoveResult, error) {
	var (
		best       = -1
		candidates []Point
	)
	for p, t := range g.All() {
		if !t.Safe() {
			continue
		}
		switch c := int(t.Count); {
		case best < 0 || c < best:
			best = c
			candidates = append(candidates[:0], p)
		case c == best:
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return Point{}, MakesNoSense, ErrNoHint
	}

	p := candidates[r.IntN(len(candidates))]
	if g.At(p).State == Marked {
		g.Defuse(p)
	}
	return p, g.Reveal(p, true), nil
}
