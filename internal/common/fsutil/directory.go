// fsutil/directory.go
package fsutil

import (
	"os"
)

// DirExists checks if a directory exists
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// CreateDir creates a directory with the given permissions
func CreateDir(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// CreateDirIfNotExists creates a directory if it doesn't already exist
func CreateDirIfNotExists(path string) error {
	if DirExists(path) {
		return nil
	}
	return os.MkdirAll(path, 0755)
}

// CreateNewDir creates a directory that must not exist yet
func CreateNewDir(path string, perm os.FileMode) error {
	return os.Mkdir(path, perm)
}
