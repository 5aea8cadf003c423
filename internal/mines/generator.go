package mines

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

const DefaultMineProbability = 0.2

type GameParams struct {
	Width, Height   int
	MineProbability float64
}

var (
	Small      = GameParams{Width: 6, Height: 5, MineProbability: DefaultMineProbability}
	Medium     = GameParams{Width: 10, Height: 8, MineProbability: DefaultMineProbability}
	Large      = GameParams{Width: 15, Height: 13, MineProbability: DefaultMineProbability}
	ExtraLarge = GameParams{Width: 35, Height: 30, MineProbability: DefaultMineProbability}
)

// PresetByName looks up a board size by its player-facing name.
func PresetByName(name string) (GameParams, bool) {
	switch strings.ToLower(name) {
	case "small":
		return Small, true
	case "medium":
		return Medium, true
	case "large":
		return Large, true
	case "xl", "extra-large", "extralarge", "huge":
		return ExtraLarge, true
	}
	return GameParams{}, false
}

func (p GameParams) Unpack() (w int, h int, prob float64) {
	return p.Width, p.Height, p.MineProbability
}

func (p GameParams) Validate() error {
	w, h, prob := p.Unpack()
	if w < 1 || w > MaxCol {
		return fmt.Errorf("%w: width %d is out of 1..%d", ErrInvalidParams, w, MaxCol)
	}
	if h < 1 || h > MaxRow+1 {
		return fmt.Errorf("%w: height %d is out of 1..%d", ErrInvalidParams, h, MaxRow+1)
	}
	if prob < 0 || prob > 1 {
		return fmt.Errorf("%w: mine probability %v is out of [0, 1]", ErrInvalidParams, prob)
	}
	return nil
}

// NewGrid places mines and computes neighbour counts.
func (p GameParams) NewGrid(r *rand.Rand) Grid {
	g := Generate(p.Width, p.Height, p.MineProbability, r)
	ComputeNeighborCounts(g)
	return g
}

// Generate turns every tile into a mine independently with probability prob.
// The mine count is not fixed: an all-mine or mine-free board is possible.
func Generate(width, height int, prob float64, r *rand.Rand) Grid {
	g := NewGrid(width, height)
	for row := range g {
		for col := range g[row] {
			if r.Float64() < prob {
				g[row][col] = MineTile()
			} else {
				g[row][col] = HiddenEmpty(0)
			}
		}
	}
	return g
}

// ComputeNeighborCounts stores into every safe tile the number of mines among
// its neighbours. It must run once, before the first move.
func ComputeNeighborCounts(g Grid) {
	for p, t := range g.All() {
		if t.Mine {
			continue
		}
		var n uint8
		for q := range g.Neighbours(p) {
			if g.At(q).Mine {
				n++
			}
		}
		t.Count = n
		g.Set(p, t)
	}
}
