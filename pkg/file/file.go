// Package file provides the file checks of the command line.
package file

import (
	"os"
	"path/filepath"
)

// Exists check is file exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	if err != nil {
		return os.IsExist(err)
	}
	return true
}

// Abs returns the absolute path of a file that must exist.
func Abs(path string) (string, error) {
	p, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if !Exists(p) {
		return "", &os.PathError{Op: "stat", Path: p, Err: os.ErrNotExist}
	}
	return p, nil
}
