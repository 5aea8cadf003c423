package config

import "os"

// Development reports whether MINESWEEPER_DEVELOPMENT, or failing that
// DEVELOPMENT, is set to anything but "0".
func Development() bool {
	for _, key := range []string{envPrefix + "_DEVELOPMENT", "DEVELOPMENT"} {
		if value, ok := os.LookupEnv(key); ok {
			return value != "0"
		}
	}
	return false
}
