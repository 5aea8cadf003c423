// Package stats keeps the lifetime counters of defused mines, revealed
// tiles and explosions in a small JSON file.
package stats

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const Version = 1

var ErrVersion = errors.New("unsupported stats version")

type Record struct {
	Version  int `json:"version"`
	Defused  int `json:"defused"`
	Revealed int `json:"revealed"`
	Exploded int `json:"exploded"`
}

func Zero() Record {
	return Record{Version: Version}
}

// Record implements [fmt.Stringer]
func (r Record) String() string {
	return fmt.Sprintf(`Stats:
    You have defused %d mines
    You have revealed %d safe tiles
    You have exploded %d times
Congrats!
`, r.Defused, r.Revealed, r.Exploded)
}

type Store struct {
	path string
	log  logrus.FieldLogger
}

func NewStore(path string, log logrus.FieldLogger) *Store {
	return &Store{path: path, log: log.WithField("stats_path", path)}
}

func (s *Store) Path() string {
	return s.path
}

// Load never fails: a missing, unreadable, corrupt or outdated file reads as
// a zero record.
func (s *Store) Load() Record {
	r, err := s.read()
	switch {
	case err == nil:
		return r
	case errors.Is(err, fs.ErrNotExist):
		s.log.Debug("no stats yet")
	default:
		s.log.WithError(err).Warn("discarding stats file")
	}
	return Zero()
}

func (s *Store) read() (Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Record{}, err
	}
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("unable to parse %s: %w", s.path, err)
	}
	if r.Version != Version {
		return Record{}, fmt.Errorf("%w: %d", ErrVersion, r.Version)
	}
	return r, nil
}

// Add increments the stored counters and rewrites the file.
func (s *Store) Add(defused, revealed int, exploded bool) (Record, error) {
	r := s.Load()
	r.Defused += defused
	r.Revealed += revealed
	if exploded {
		r.Exploded++
	}
	if err := s.write(r); err != nil {
		return r, err
	}
	s.log.WithFields(logrus.Fields{
		"defused":  r.Defused,
		"revealed": r.Revealed,
		"exploded": r.Exploded,
	}).Debug("stats saved")
	return r, nil
}

func (s *Store) write(r Record) (err error) {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("unable to create stats dir: %w", err)
	}
	f, err := os.CreateTemp(dir, ".stats-*.json")
	if err != nil {
		return fmt.Errorf("unable to create temp stats file: %w", err)
	}
	defer func() {
		if err != nil {
			os.Remove(f.Name())
		}
	}()
	if _, err = f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("unable to write stats: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("unable to write stats: %w", err)
	}
	return os.Rename(f.Name(), s.path)
}
