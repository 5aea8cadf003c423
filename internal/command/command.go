// Package command classifies player input lines into actions.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vancomm/minesweeper-cli/internal/mines"
)

//go:generate stringer -type=Kind
type Kind uint8

const (
	Unknown Kind = iota
	Quit
	Restart
	Help
	Stats
	Credits
	About
	Hint
	Reveal
	Defuse
	Mark
)

var ErrInvalidInput = errors.New("invalid input")

type Command struct {
	Kind  Kind
	Point mines.Point       // Reveal, Defuse, Mark
	Size  *mines.GameParams // Restart with an explicit size
	Err   error             // why the line was Unknown
}

// Parser holds the token tables. The zero value recognises nothing; use
// [NewParser].
type Parser struct {
	words   map[string]Kind
	actions map[string]Kind
	sizes   func(string) (mines.GameParams, bool)
}

func NewParser() *Parser {
	return &Parser{
		words: map[string]Kind{
			"q":       Quit,
			"quit":    Quit,
			"exit":    Quit,
			"r":       Restart,
			"restart": Restart,
			"new":     Restart,
			"h":       Help,
			"help":    Help,
			"?":       Help,
			"stats":   Stats,
			"credits": Credits,
			"about":   About,
			"hint":    Hint,
		},
		actions: map[string]Kind{
			"def":    Defuse,
			"defuse": Defuse,
			"d":      Defuse,
			"mark":   Mark,
			"m":      Mark,
		},
		sizes: mines.PresetByName,
	}
}

var defaultParser = NewParser()

// Parse classifies line with the default token tables.
func Parse(line string) Command {
	return defaultParser.Parse(line)
}

func (p *Parser) Parse(line string) Command {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return unknown(fmt.Errorf("%w: empty line", ErrInvalidInput))
	}
	head, args := fields[0], fields[1:]

	if kind, ok := p.words[head]; ok {
		if kind == Restart && len(args) == 1 {
			size, ok := p.size(args[0])
			if !ok {
				return unknown(fmt.Errorf("%w: unknown size %q", ErrInvalidInput, args[0]))
			}
			return Command{Kind: Restart, Size: &size}
		}
		if len(args) != 0 {
			return unknown(fmt.Errorf("%w: %q takes no arguments", ErrInvalidInput, head))
		}
		return Command{Kind: kind}
	}

	if len(args) == 0 {
		if size, ok := p.size(head); ok {
			return Command{Kind: Restart, Size: &size}
		}
	}

	kind := Reveal
	if action, ok := p.actions[head]; ok {
		if len(args) != 1 {
			return unknown(fmt.Errorf("%w: %q takes one coordinate", ErrInvalidInput, head))
		}
		kind, head, args = action, args[0], nil
	}
	if len(args) != 0 {
		return unknown(fmt.Errorf("%w: %q", ErrInvalidInput, line))
	}

	pt, err := mines.ParsePoint(head)
	if err != nil {
		return unknown(fmt.Errorf("%w: %w", ErrInvalidInput, err))
	}
	return Command{Kind: kind, Point: pt}
}

func (p *Parser) size(name string) (mines.GameParams, bool) {
	if p.sizes == nil {
		return mines.GameParams{}, false
	}
	return p.sizes(name)
}

func unknown(err error) Command {
	return Command{Kind: Unknown, Err: err}
}
