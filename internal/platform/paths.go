package platform

import (
	"os"
	"path/filepath"
)

// LocalDataFile is the per-directory blob name. A campaign kept next to
// its handouts and maps can carry its notes in the same folder.
const LocalDataFile = "lorekeep.json"

// DefaultDataPath resolves the blob location when the caller gives none:
// $LOREKEEP_DATA if set, otherwise <user config dir>/lorekeep/notes.json.
func DefaultDataPath() (string, error) {
	if p := os.Getenv("LOREKEEP_DATA"); p != "" {
		return p, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "lorekeep", "notes.json"), nil
}

// FindDataFile walks upward from startDir looking for a lorekeep.json.
// Returns the absolute path and true when found.
func FindDataFile(startDir string) (string, bool) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false
	}

	for {
		candidate := filepath.Join(dir, LocalDataFile)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
