// Package organizer performs the actual rename for normalize-filename.
package organizer

import (
	"fmt"
	"os"
	"path/filepath"
)

// MoveErrorType represents the type of rename error.
type MoveErrorType string

const (
	// SourceNotFound indicates the source file does not exist.
	SourceNotFound MoveErrorType = "SOURCE_NOT_FOUND"
	// DestinationExists indicates a file already exists at the destination.
	DestinationExists MoveErrorType = "DESTINATION_EXISTS"
	// PermissionDenied indicates insufficient permissions for the operation.
	PermissionDenied MoveErrorType = "PERMISSION_DENIED"
)

// MoveError represents an error that occurred during a rename.
type MoveError struct {
	Type MoveErrorType
	Path string
	Err  error
}

func (e *MoveError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Path)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// Rename moves oldPath to newName within the same directory. It refuses
// to overwrite an existing file and maps permission failures to a typed
// error. Returns the full destination path.
func Rename(oldPath, newName string) (string, error) {
	if _, err := os.Lstat(oldPath); os.IsNotExist(err) {
		return "", &MoveError{Type: SourceNotFound, Path: oldPath, Err: err}
	}

	newPath := filepath.Join(filepath.Dir(oldPath), newName)

	if _, err := os.Lstat(newPath); err == nil {
		return "", &MoveError{Type: DestinationExists, Path: newPath}
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		if os.IsPermission(err) {
			return "", &MoveError{Type: PermissionDenied, Path: oldPath, Err: err}
		}
		return "", err
	}

	return newPath, nil
}
