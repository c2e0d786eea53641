// fsutil/paths.go
package fsutil

import (
	"path/filepath"
)

// SplitPath splits a path into its directory and file components
func SplitPath(path string) (dir, file string) {
	return filepath.Split(path)
}

// GetDir returns the directory component of a path
func GetDir(path string) string {
	return filepath.Dir(path)
}

// JoinPath joins path elements using the OS-specific separator
func JoinPath(elem ...string) string {
	return filepath.Join(elem...)
}
