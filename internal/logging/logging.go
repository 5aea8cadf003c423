// Package logging builds the logger shared by the game. The terminal belongs
// to the player, so entries go to a rotating file and reach stderr only in
// development.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

type Options struct {
	Level       logrus.Level
	File        string // rotating JSON log, disabled if empty
	Development bool
	Stderr      io.Writer
}

func New(opts Options) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetLevel(opts.Level)
	log.SetOutput(io.Discard)

	if opts.Development {
		stderr := opts.Stderr
		if stderr == nil {
			stderr = os.Stderr
		}
		log.SetOutput(stderr)
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	}

	if opts.File != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   opts.File,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      opts.Level,
			Formatter: &logrus.JSONFormatter{
				TimestampFormat: time.RFC3339,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("unable to open log file: %w", err)
		}
		log.AddHook(hook)
	}

	return log, nil
}
