// Package scanner enumerates rename candidates for normalize-filename.
package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ScanErrorType represents the type of scanning error.
type ScanErrorType string

const (
	// PathNotFound indicates the path does not exist.
	PathNotFound ScanErrorType = "PATH_NOT_FOUND"
	// PermissionDenied indicates insufficient permissions to read a path.
	PermissionDenied ScanErrorType = "PERMISSION_DENIED"
	// NotRegularFile indicates a special file (socket, device, ...) was given.
	NotRegularFile ScanErrorType = "NOT_REGULAR_FILE"
)

// ScanError represents an error that occurred during enumeration.
type ScanError struct {
	Type ScanErrorType
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return string(e.Type) + ": " + e.Path
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// FileEntry represents one rename candidate.
type FileEntry struct {
	Name     string // Base name only
	FullPath string // Path as derived from the arguments
	IsDir    bool
}

// Collect expands the argument list into rename candidates. File
// arguments become entries directly. Directory arguments have their
// immediate children enumerated in sorted order; with recursive set,
// subdirectories are descended depth-first so children are listed
// before the directory that contains them. The directory argument
// itself is also a candidate (renaming it last keeps child paths valid).
//
// Excluded names are silently dropped. Per-path errors are collected and
// returned alongside the entries; one bad argument never aborts the rest.
func Collect(paths []string, recursive bool, excludes []string) ([]FileEntry, []error) {
	var entries []FileEntry
	var errs []error

	for _, path := range paths {
		info, err := os.Lstat(path)
		if err != nil {
			errs = append(errs, classify(path, err))
			continue
		}

		if info.IsDir() {
			children, childErrs := collectDir(path, recursive, excludes)
			entries = append(entries, children...)
			errs = append(errs, childErrs...)
			if !excluded(filepath.Base(path), excludes) {
				entries = append(entries, FileEntry{
					Name:     filepath.Base(path),
					FullPath: path,
					IsDir:    true,
				})
			}
			continue
		}

		if !info.Mode().IsRegular() && info.Mode()&os.ModeSymlink == 0 {
			errs = append(errs, &ScanError{Type: NotRegularFile, Path: path})
			continue
		}

		if excluded(filepath.Base(path), excludes) {
			continue
		}
		entries = append(entries, FileEntry{
			Name:     filepath.Base(path),
			FullPath: path,
		})
	}

	return entries, errs
}

// collectDir enumerates one directory, recursing when asked.
func collectDir(dir string, recursive bool, excludes []string) ([]FileEntry, []error) {
	listing, err := os.ReadDir(dir)
	if err != nil {
		return nil, []error{classify(dir, err)}
	}

	sort.Slice(listing, func(i, j int) bool {
		return listing[i].Name() < listing[j].Name()
	})

	var entries []FileEntry
	var errs []error
	for _, item := range listing {
		name := item.Name()
		full := filepath.Join(dir, name)

		if excluded(name, excludes) {
			continue
		}

		if item.IsDir() {
			if recursive {
				children, childErrs := collectDir(full, true, excludes)
				entries = append(entries, children...)
				errs = append(errs, childErrs...)
				entries = append(entries, FileEntry{Name: name, FullPath: full, IsDir: true})
			}
			continue
		}

		entries = append(entries, FileEntry{Name: name, FullPath: full})
	}

	return entries, errs
}

// excluded reports whether a base name matches any exclusion pattern.
// Patterns are tried as globs first, then as plain substrings.
func excluded(name string, excludes []string) bool {
	for _, pattern := range excludes {
		if matched, err := filepath.Match(pattern, name); err == nil && matched {
			return true
		}
		if strings.Contains(name, pattern) {
			return true
		}
	}
	return false
}

// classify maps filesystem errors to typed scan errors.
func classify(path string, err error) error {
	if os.IsNotExist(err) {
		return &ScanError{Type: PathNotFound, Path: path, Err: err}
	}
	if os.IsPermission(err) {
		return &ScanError{Type: PermissionDenied, Path: path, Err: err}
	}
	return err
}
