package domain

import "path/filepath"

const (
	// PackDirName is the name of the internal workspace directory.
	PackDirName = ".pack"

	// StoreDirName is the name of the output record store directory.
	StoreDirName = "store"

	// PackFileName is the name of the project configuration file.
	PackFileName = "pack.yaml"

	// DefaultOutDir is the output directory used when the configuration names none.
	DefaultOutDir = "dist"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStorePath returns the default path for the output record store.
// It joins .pack and store.
func DefaultStorePath() string {
	return filepath.Join(PackDirName, StoreDirName)
}
