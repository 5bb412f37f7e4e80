package utils

import (
	"os"
	"path/filepath"
)

// DefaultFileMode is used for files that did not exist before
const DefaultFileMode os.FileMode = 0644

// EnsureDir ensures the parent directory of path exists, creating it if necessary
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}

// FileMode returns the permission bits of an existing file, or DefaultFileMode
func FileMode(path string) os.FileMode {
	info, err := os.Stat(path)
	if err != nil {
		return DefaultFileMode
	}
	return info.Mode().Perm()
}

// WriteFile writes data to path, keeping the permissions of any file it replaces
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, FileMode(path))
}
