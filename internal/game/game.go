// Package game runs rounds of minesweeper over a line-oriented terminal.
package game

import (
	"bufio"
	"errors"
	"fmt"
	"hash/maphash"
	"io"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-cli/internal/command"
	"github.com/vancomm/minesweeper-cli/internal/mines"
	"github.com/vancomm/minesweeper-cli/internal/render"
	"github.com/vancomm/minesweeper-cli/internal/stats"
)

const maxRegenerations = 1000

var ErrTooManyRegenerations = errors.New("could not generate a board with a safe first move")

// StatsStore persists the lifetime counters. [stats.Store] implements it.
type StatsStore interface {
	Load() stats.Record
	Add(defused, revealed int, exploded bool) (stats.Record, error)
}

type nopStats struct{}

func (nopStats) Load() stats.Record { return stats.Zero() }

func (nopStats) Add(int, int, bool) (stats.Record, error) { return stats.Zero(), nil }

type GridFunc func(mines.GameParams, *rand.Rand) mines.Grid

type Options struct {
	In       io.Reader
	Out      io.Writer
	Log      logrus.FieldLogger
	Stats    StatsStore
	Renderer *render.Renderer
	Params   mines.GameParams
	Rand     *rand.Rand // seeded from runtime entropy if nil
	NewGrid  GridFunc   // [mines.GameParams.NewGrid] if nil
}

type Session struct {
	in       io.Reader
	out      io.Writer
	log      logrus.FieldLogger
	stats    StatsStore
	renderer *render.Renderer
	rnd      *rand.Rand
	newGrid  GridFunc
	parser   *command.Parser

	round *round
}

type round struct {
	id       uuid.UUID
	params   mines.GameParams
	grid     mines.Grid
	moves    int
	revealed bool // a reveal has succeeded, the board is final
	over     bool
	log      logrus.FieldLogger
}

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func New(opts Options) (*Session, error) {
	if err := opts.Params.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		in:       opts.In,
		out:      opts.Out,
		log:      opts.Log,
		stats:    opts.Stats,
		renderer: opts.Renderer,
		rnd:      opts.Rand,
		newGrid:  opts.NewGrid,
		parser:   command.NewParser(),
	}
	if s.log == nil {
		log := logrus.New()
		log.SetOutput(io.Discard)
		s.log = log
	}
	if s.stats == nil {
		s.stats = nopStats{}
	}
	if s.renderer == nil {
		s.renderer = render.New(render.Options{})
	}
	if s.rnd == nil {
		s.rnd = createRand()
	}
	if s.newGrid == nil {
		s.newGrid = mines.GameParams.NewGrid
	}
	s.startRound(opts.Params)
	return s, nil
}

// Run reads commands until the player quits or the input ends.
func (s *Session) Run() error {
	s.print(welcome)
	s.showRound()

	scanner := bufio.NewScanner(s.in)
	for {
		s.print(prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				s.abandonRound()
				return fmt.Errorf("unable to read input: %w", err)
			}
			s.quit()
			return nil
		}
		if done := s.handle(scanner.Text()); done {
			return nil
		}
	}
}

func (s *Session) handle(line string) (done bool) {
	cmd := s.parser.Parse(line)
	switch cmd.Kind {
	case command.Quit:
		s.quit()
		return true
	case command.Restart:
		params := s.round.params
		if cmd.Size != nil {
			params = *cmd.Size
		}
		s.abandonRound()
		s.startRound(params)
		s.showRound()
	case command.Help:
		s.print(help)
	case command.Stats:
		s.print(s.stats.Load().String())
	case command.Credits:
		s.print(credits)
	case command.About:
		s.print(about)
	case command.Hint, command.Reveal, command.Defuse, command.Mark:
		s.move(cmd)
	default:
		s.log.WithError(cmd.Err).Debug("unrecognized input")
		s.printf("I don't understand %q. Type \"help\" to see every command.\n", line)
	}
	return false
}

func (s *Session) startRound(params mines.GameParams) {
	id := uuid.New()
	s.round = &round{
		id:     id,
		params: params,
		grid:   s.newGrid(params, s.rnd),
		log: s.log.WithFields(logrus.Fields{
			"round_id": id.String(),
			"width":    params.Width,
			"height":   params.Height,
		}),
	}
	s.round.log.WithField("mines", s.round.grid.Tally().Mines).Info("round started")
}

// showRound prints a fresh board. A board without safe tiles is won before
// the first move.
func (s *Session) showRound() {
	r := s.round
	s.printBoard(false)
	if r.grid.Progress().Won() {
		r.over = true
		r.log.Info("round started without safe tiles")
		s.print(noSafeTiles + "\n")
		s.print(roundOver + "\n")
	}
}

func (s *Session) quit() {
	s.abandonRound()
	s.print(bye + "\n")
}

// abandonRound records an unfinished round the player has touched.
func (s *Session) abandonRound() {
	if r := s.round; r != nil && !r.over && r.moves > 0 {
		s.finishRound(false)
	}
}

func (s *Session) finishRound(exploded bool) {
	r := s.round
	r.over = true
	tally := r.grid.Tally()
	log := r.log.WithFields(logrus.Fields{
		"moves":    r.moves,
		"revealed": tally.Visible,
		"defused":  tally.Defused,
		"exploded": exploded,
	})
	if _, err := s.stats.Add(tally.Defused, tally.Visible, exploded); err != nil {
		log.WithError(err).Warn("unable to save stats")
	}
	log.Info("round finished")
}

// ensureSafe regenerates the board until p is not a mine. Markers the
// player has already placed survive the regeneration.
func (s *Session) ensureSafe(p mines.Point) error {
	r := s.round
	for attempt := 0; r.grid.At(p).Mine; attempt++ {
		if attempt >= maxRegenerations {
			return ErrTooManyRegenerations
		}
		r.grid = carryMarkers(r.grid, s.newGrid(r.params, s.rnd))
	}
	return nil
}

func carryMarkers(old, fresh mines.Grid) mines.Grid {
	for p, t := range old.All() {
		if t.State != mines.Marked && t.State != mines.Question {
			continue
		}
		u := fresh.At(p)
		u.State = t.State
		fresh.Set(p, u)
	}
	return fresh
}

func (s *Session) move(cmd command.Command) {
	r := s.round
	if r.over {
		s.print(roundOver + "\n")
		return
	}

	var (
		p   = cmd.Point
		res mines.MoveResult
	)
	switch cmd.Kind {
	case command.Reveal:
		if !r.revealed && r.grid.Contains(p) {
			if err := s.ensureSafe(p); err != nil {
				r.log.WithError(err).Warn("first reveal is not safe")
			}
		}
		res = r.grid.Reveal(p, false)
		r.revealed = r.revealed || res == mines.SafeMove
	case command.Defuse:
		res = r.grid.Defuse(p)
	case command.Mark:
		res = r.grid.Mark(p)
	case command.Hint:
		var err error
		p, res, err = r.grid.Hint(s.rnd)
		if err != nil {
			s.print("There is nothing left to hint.\n")
			return
		}
		r.revealed = true
		s.printf("Hint: %s\n", p)
	}
	r.log.WithFields(logrus.Fields{
		"move":   cmd.Kind.String(),
		"tile":   p.String(),
		"result": res.String(),
	}).Debug("move")
	s.report(p, res)
}

func (s *Session) report(p mines.Point, res mines.MoveResult) {
	r := s.round
	switch res {
	case mines.OutOfBounds:
		s.printf("%s is outside the board: rows A-%s, columns 1-%d.\n",
			p, mines.RowLabel(r.grid.Height()-1), r.grid.Width())
	case mines.AlreadyRevealed:
		s.printf("%s is already revealed.\n", p)
	case mines.MakesNoSense:
		s.printf("Revealing %s makes no sense, it is defused. Defuse it again first.\n", p)
	case mines.Explosion:
		r.moves++
		s.printBoard(true)
		s.printf("BOOM! %s was a mine.\n", p)
		s.finishRound(true)
		s.print(roundOver + "\n")
	case mines.SafeMove:
		r.moves++
		s.printBoard(false)
		progress := r.grid.Progress()
		if progress.Won() {
			s.print("Congratulations, you revealed every safe tile!\n")
			s.finishRound(false)
			s.print(roundOver + "\n")
			return
		}
		s.printf("%d tiles revealed, %d to go.\n", progress.Visible, progress.Remaining)
	}
}

func (s *Session) printBoard(showMines bool) {
	s.print(s.renderer.Render(s.round.grid, showMines))
}

func (s *Session) print(msg string) {
	io.WriteString(s.out, msg)
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
