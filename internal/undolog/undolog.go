// Package undolog records inverse shell commands for completed renames.
// The log is an append-only shell script; replaying its mv commands in
// reverse order undoes a run.
package undolog

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Log appends undo entries to a shell script. The file is opened lazily
// on the first recorded rename, so a run that renames nothing leaves the
// log untouched.
type Log struct {
	path string
	file *os.File
	now  func() time.Time
}

// New creates a Log writing to path.
func New(path string) *Log {
	return &Log{path: path, now: time.Now}
}

// Record appends one undo entry: a header comment describing the rename,
// and an mv command that restores the original path.
func (l *Log) Record(oldPath, newPath string) error {
	if l.file == nil {
		if err := l.open(); err != nil {
			return err
		}
	}

	entry := fmt.Sprintf("# %s renamed %s to %s\nmv -i -- %s %s\n",
		l.now().Format(time.RFC3339),
		Quote(oldPath), Quote(newPath),
		Quote(newPath), Quote(oldPath))

	if _, err := l.file.WriteString(entry); err != nil {
		return fmt.Errorf("failed to append undo entry: %w", err)
	}
	return nil
}

// Close closes the log file if it was opened.
func (l *Log) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func (l *Log) open() error {
	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open undo log: %w", err)
	}
	l.file = file

	header := fmt.Sprintf("# normalize-filename run started %s; replay mv commands in reverse order to undo\n",
		l.now().Format(time.RFC3339))
	if _, err := l.file.WriteString(header); err != nil {
		return fmt.Errorf("failed to write undo log header: %w", err)
	}
	return nil
}

// Quote wraps a path in single quotes for safe use in a shell script.
// Embedded single quotes are closed, escaped, and reopened.
func Quote(path string) string {
	return "'" + strings.ReplaceAll(path, "'", `'\''`) + "'"
}
