package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
)

// ResolvePaths fills in the per-user data and state locations for paths the
// user left empty. The parent directories are created.
func (c *Config) ResolvePaths() error {
	if c.StatsPath == "" {
		path, err := xdg.DataFile(filepath.Join(appName, "stats.json"))
		if err != nil {
			return fmt.Errorf("unable to locate stats file: %w", err)
		}
		c.StatsPath = path
	}
	if c.LogFile == "" {
		path, err := xdg.StateFile(filepath.Join(appName, appName+".log"))
		if err != nil {
			return fmt.Errorf("unable to locate log file: %w", err)
		}
		c.LogFile = path
	}
	return nil
}
