package main

import (
	"fmt"
	"os"

	"github.com/vancomm/minesweeper-cli/internal/config"
	"github.com/vancomm/minesweeper-cli/internal/game"
	"github.com/vancomm/minesweeper-cli/internal/logging"
	"github.com/vancomm/minesweeper-cli/internal/render"
	"github.com/vancomm/minesweeper-cli/internal/stats"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "minesweeper:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.ResolvePaths(); err != nil {
		return err
	}

	log, err := logging.New(logging.Options{
		Level:       cfg.Level(),
		File:        cfg.LogFile,
		Development: cfg.Development,
	})
	if err != nil {
		return err
	}
	log.WithFields(cfg.Fields()).Debug("loaded config")

	session, err := game.New(game.Options{
		In:    os.Stdin,
		Out:   os.Stdout,
		Log:   log,
		Stats: stats.NewStore(cfg.StatsPath, log),
		Renderer: render.New(render.Options{
			Color:     cfg.Color,
			MineGlyph: cfg.Glyph(),
		}),
		Params: cfg.Params(),
	})
	if err != nil {
		return err
	}

	if err := session.Run(); err != nil {
		log.WithError(err).Error("session ended")
		return err
	}
	log.Info("session ended")
	return nil
}
