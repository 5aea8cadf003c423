package mines

import (
	"fmt"
	"iter"
	"strings"
)

type TileState int8

const (
	Covered  TileState = iota // untouched, mine or safe
	Open                      // revealed safe tile, permanent
	Marked                    // defuse in progress
	Question                  // suspected
	Exploded                  // the mine that went off
)

// Tile is one cell of the grid. Mine and Count describe what lies beneath,
// State what the player has done to it. Count is only meaningful for safe
// tiles and never changes after [ComputeNeighborCounts].
type Tile struct {
	State TileState
	Mine  bool
	Count uint8
}

func MineTile() Tile {
	return Tile{State: Covered, Mine: true}
}

// maxCount is the most mined neighbours a tile can have.
const maxCount = 8

// HiddenEmpty returns an untouched safe tile with n mined neighbours. n is
// clamped to 0..8.
func HiddenEmpty(n int) Tile {
	return Tile{State: Covered, Count: count(n)}
}

func VisibleEmpty(n int) Tile {
	return Tile{State: Open, Count: count(n)}
}

func count(n int) uint8 {
	return uint8(min(max(n, 0), maxCount))
}

// MarkedTile returns a defused tile. A negative n means the tile is a mine,
// otherwise n is the neighbour count carried for restoration.
func MarkedTile(n int) Tile {
	return flagged(Marked, n)
}

// QuestionTile is like [MarkedTile] for suspected tiles.
func QuestionTile(n int) Tile {
	return flagged(Question, n)
}

func flagged(s TileState, n int) Tile {
	if n < 0 {
		return Tile{State: s, Mine: true}
	}
	return Tile{State: s, Count: count(n)}
}

// Signed returns the carried count, or -1 if the tile is a mine.
func (t Tile) Signed() int {
	if t.Mine {
		return -1
	}
	return int(t.Count)
}

func (t Tile) Visible() bool {
	return t.State == Open
}

// Safe reports whether t is a safe tile that has not been revealed yet.
func (t Tile) Safe() bool {
	return !t.Mine && t.State != Open
}

func (t Tile) String() string {
	switch t.State {
	case Covered:
		if t.Mine {
			return "Mine"
		}
		return fmt.Sprintf("HiddenEmpty(%d)", t.Count)
	case Open:
		return fmt.Sprintf("VisibleEmpty(%d)", t.Count)
	case Marked:
		return fmt.Sprintf("Marked(%d)", t.Signed())
	case Question:
		return fmt.Sprintf("Question(%d)", t.Signed())
	case Exploded:
		return "Exploded"
	default:
		return "!"
	}
}

// Grid is a height x width matrix of tiles addressed as g[row][col].
type Grid [][]Tile

// NewGrid returns a grid of untouched safe tiles.
func NewGrid(width, height int) Grid {
	g := make(Grid, height)
	for row := range g {
		g[row] = make([]Tile, width)
	}
	return g
}

func (g Grid) Height() int {
	return len(g)
}

func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

func (g Grid) Contains(p Point) bool {
	return 0 <= p.Row && p.Row < g.Height() && 0 <= p.Col && p.Col < g.Width()
}

func (g Grid) At(p Point) Tile {
	return g[p.Row][p.Col]
}

func (g Grid) Set(p Point, t Tile) {
	g[p.Row][p.Col] = t
}

func (g Grid) index(p Point) int {
	return p.Row*g.Width() + p.Col
}

func (g Grid) point(i int) Point {
	return Point{Row: i / g.Width(), Col: i % g.Width()}
}

var neighbourOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbours yields the up to 8 in-bounds cells around p.
func (g Grid) Neighbours(p Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, d := range neighbourOffsets {
			n := Point{Row: p.Row + d[0], Col: p.Col + d[1]}
			if !g.Contains(n) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// All yields every cell in row-major order.
func (g Grid) All() iter.Seq2[Point, Tile] {
	return func(yield func(Point, Tile) bool) {
		for row := range g {
			for col, t := range g[row] {
				if !yield(Point{Row: row, Col: col}, t) {
					return
				}
			}
		}
	}
}

func (g Grid) ToString() string {
	var b strings.Builder
	for row := range g {
		for col, t := range g[row] {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(t.String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
