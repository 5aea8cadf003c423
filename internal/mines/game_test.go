package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func single(t Tile) Grid {
	return Grid{{t}}
}

func TestRevealTransitions(t *testing.T) {
	tests := []struct {
		name  string
		tile  Tile
		force bool
		res   MoveResult
		after Tile
	}{
		{"mine", MineTile(), false, Explosion, Tile{State: Exploded, Mine: true}},
		{"defused mine", MarkedTile(-1), false, MakesNoSense, MarkedTile(-1)},
		{"defused mine forced", MarkedTile(-1), true, MakesNoSense, MarkedTile(-1)},
		{"defused safe", MarkedTile(3), false, MakesNoSense, MarkedTile(3)},
		{"defused safe forced", MarkedTile(3), true, SafeMove, VisibleEmpty(3)},
		{"hidden", HiddenEmpty(2), false, SafeMove, VisibleEmpty(2)},
		{"visible", VisibleEmpty(1), false, AlreadyRevealed, VisibleEmpty(1)},
		{"suspected mine", QuestionTile(-1), false, Explosion, Tile{State: Exploded, Mine: true}},
		{"suspected safe", QuestionTile(4), false, SafeMove, VisibleEmpty(4)},
		{"exploded", Tile{State: Exploded, Mine: true}, true, MakesNoSense, Tile{State: Exploded, Mine: true}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := single(test.tile)
			assert.Equal(t, test.res, g.Reveal(Point{0, 0}, test.force))
			assert.Equal(t, test.after, g.At(Point{0, 0}))
		})
	}
}

func TestDefuseTransitions(t *testing.T) {
	tests := []struct {
		name  string
		tile  Tile
		res   MoveResult
		after Tile
	}{
		{"mine", MineTile(), SafeMove, MarkedTile(-1)},
		{"defused mine", MarkedTile(-1), SafeMove, MineTile()},
		{"defused safe", MarkedTile(2), SafeMove, HiddenEmpty(2)},
		{"hidden", HiddenEmpty(5), SafeMove, MarkedTile(5)},
		{"visible", VisibleEmpty(0), AlreadyRevealed, VisibleEmpty(0)},
		{"suspected mine", QuestionTile(-1), SafeMove, MarkedTile(-1)},
		{"suspected safe", QuestionTile(1), SafeMove, MarkedTile(1)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := single(test.tile)
			assert.Equal(t, test.res, g.Defuse(Point{0, 0}))
			assert.Equal(t, test.after, g.At(Point{0, 0}))
		})
	}
}

func TestMarkTransitions(t *testing.T) {
	tests := []struct {
		name  string
		tile  Tile
		res   MoveResult
		after Tile
	}{
		{"mine", MineTile(), SafeMove, QuestionTile(-1)},
		{"defused mine", MarkedTile(-1), SafeMove, QuestionTile(-1)},
		{"defused safe", MarkedTile(2), SafeMove, QuestionTile(2)},
		{"hidden", HiddenEmpty(5), SafeMove, QuestionTile(5)},
		{"visible", VisibleEmpty(3), AlreadyRevealed, VisibleEmpty(3)},
		{"suspected mine", QuestionTile(-1), SafeMove, MineTile()},
		{"suspected safe", QuestionTile(1), SafeMove, HiddenEmpty(1)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := single(test.tile)
			assert.Equal(t, test.res, g.Mark(Point{0, 0}))
			assert.Equal(t, test.after, g.At(Point{0, 0}))
		})
	}
}

func TestDoubleDefuse(t *testing.T) {
	g := single(HiddenEmpty(0))
	p := Point{0, 0}
	require.Equal(t, SafeMove, g.Defuse(p))
	require.Equal(t, MarkedTile(0), g.At(p))
	require.Equal(t, SafeMove, g.Defuse(p))
	assert.Equal(t, HiddenEmpty(0), g.At(p))
}

func TestDoubleMark(t *testing.T) {
	for _, tile := range []Tile{MineTile(), HiddenEmpty(0), HiddenEmpty(7), QuestionTile(-1), QuestionTile(2)} {
		g := single(tile)
		g.Mark(Point{0, 0})
		g.Mark(Point{0, 0})
		assert.Equal(t, tile, g.At(Point{0, 0}), "mark twice on %v", tile)
	}
}

func TestOutOfBounds(t *testing.T) {
	g := NewGrid(3, 2)
	for _, p := range []Point{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		assert.Equal(t, OutOfBounds, g.Reveal(p, false), p)
		assert.Equal(t, OutOfBounds, g.Defuse(p), p)
		assert.Equal(t, OutOfBounds, g.Mark(p), p)
	}
	assert.Equal(t, NewGrid(3, 2), g)
}

func TestCascadeRevealsWholeBoard(t *testing.T) {
	g := gridFrom(
		"...*",
		"....",
		"....",
	)
	require.Equal(t, SafeMove, g.Reveal(Point{2, 0}, false))

	for p, tile := range g.All() {
		if p == (Point{0, 3}) {
			assert.Equal(t, MineTile(), tile)
			continue
		}
		assert.True(t, tile.Visible(), "%v not revealed", p)
	}
	assert.Equal(t, Progress{Visible: 11, Remaining: 0}, g.Progress())
	assert.True(t, g.Progress().Won())
}

func TestCascadeStopsAtNumbers(t *testing.T) {
	g := gridFrom(
		"..*..",
		"..*..",
		"..*..",
	)
	require.Equal(t, SafeMove, g.Reveal(Point{0, 0}, false))
	for p, tile := range g.All() {
		assert.Equal(t, p.Col < 2, tile.Visible(), "visibility of %v", p)
	}
	assert.Equal(t, Progress{Visible: 6, Remaining: 6}, g.Progress())
}

func TestCascadeThroughFlags(t *testing.T) {
	g := gridFrom(
		"...*",
		"....",
		"....",
	)
	require.Equal(t, SafeMove, g.Defuse(Point{0, 1}))
	require.Equal(t, SafeMove, g.Defuse(Point{0, 3}))
	require.Equal(t, SafeMove, g.Mark(Point{1, 1}))

	assert.Equal(t, MakesNoSense, g.Reveal(Point{0, 1}, false))
	require.Equal(t, SafeMove, g.Reveal(Point{2, 0}, false))

	assert.Equal(t, VisibleEmpty(0), g.At(Point{0, 1}))
	assert.Equal(t, VisibleEmpty(0), g.At(Point{1, 1}))
	assert.Equal(t, MarkedTile(-1), g.At(Point{0, 3}))
	assert.True(t, g.Progress().Won())
	assert.Equal(t, Tally{Visible: 11, Defused: 1, Mines: 1}, g.Tally())
}

// floodReference computes the tiles a reveal at p should open.
func floodReference(g Grid, p Point, seen map[Point]bool) {
	if seen[p] || g.At(p).Mine {
		return
	}
	seen[p] = true
	if g.At(p).Count != 0 {
		return
	}
	for q := range g.Neighbours(p) {
		floodReference(g, q, seen)
	}
}

func TestCascadeMatchesReference(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	params := GameParams{Width: 20, Height: 15, MineProbability: 0.12}
	for range 50 {
		g := params.NewGrid(r)
		var start *Point
		for p, tile := range g.All() {
			if !tile.Mine && tile.Count == 0 {
				start = &p
				break
			}
		}
		if start == nil {
			continue
		}

		want := map[Point]bool{}
		floodReference(g, *start, want)

		require.Equal(t, SafeMove, g.Reveal(*start, false))
		for p, tile := range g.All() {
			assert.Equal(t, want[p], tile.Visible(), "visibility of %v", p)
			if tile.Mine {
				assert.Equal(t, Covered, tile.State)
			}
		}
	}
}

func TestCascadeOnLargeEmptyBoard(t *testing.T) {
	g := NewGrid(MaxCol, MaxRow+1)
	require.Equal(t, SafeMove, g.Reveal(Point{128, 128}, false))
	assert.Equal(t, Progress{Visible: MaxCol * (MaxRow + 1)}, g.Progress())
}

func TestSingleTileRounds(t *testing.T) {
	mine := single(MineTile())
	assert.Equal(t, Explosion, mine.Reveal(Point{0, 0}, false))
	assert.Equal(t, Exploded, mine.At(Point{0, 0}).State)

	safe := single(HiddenEmpty(0))
	assert.Equal(t, SafeMove, safe.Reveal(Point{0, 0}, false))
	assert.Equal(t, VisibleEmpty(0), safe.At(Point{0, 0}))
	assert.Equal(t, Progress{Visible: 1, Remaining: 0}, safe.Progress())
	assert.True(t, safe.Progress().Won())
}

func TestMoveResultString(t *testing.T) {
	assert.Equal(t, "SafeMove", SafeMove.String())
	assert.Equal(t, "AlreadyRevealed", AlreadyRevealed.String())
	assert.Equal(t, "OutOfBounds", OutOfBounds.String())
	assert.Equal(t, "MoveResult(42)", MoveResult(42).String())
}
