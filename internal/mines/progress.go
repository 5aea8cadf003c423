package mines

type Progress struct {
	Visible   int // open tiles
	Remaining int // safe tiles not yet open, flagged or not
}

// Won reports whether every safe tile has been opened. Flagging a safe tile
// does not clear it.
func (p Progress) Won() bool {
	return p.Remaining == 0
}

func (g Grid) Progress() (p Progress) {
	for _, t := range g.All() {
		switch {
		case t.Visible():
			p.Visible++
		case !t.Mine && t.State != Exploded:
			p.Remaining++
		}
	}
	return
}

// Tally summarises a finished or abandoned round for the stats record.
type Tally struct {
	Visible int // open tiles
	Defused int // mines under a defuse marker
	Mines   int
}

func (g Grid) Tally() (t Tally) {
	for _, tile := range g.All() {
		if tile.Visible() {
			t.Visible++
		}
		if tile.Mine {
			t.Mines++
			if tile.State == Marked {
				t.Defused++
			}
		}
	}
	return
}
