// Package prompter handles interactive confirmation of renames.
package prompter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// IsInteractive returns true if stdin is a terminal. Piped or redirected
// input is treated as non-interactive.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Decision represents the user's choice when prompted for a rename.
type Decision int

const (
	// DecisionYes accepts the proposed rename.
	DecisionYes Decision = iota
	// DecisionNo skips this file.
	DecisionNo
	// DecisionEdit accepts a rename to a user-supplied name.
	DecisionEdit
	// DecisionQuit stops processing the remaining files.
	DecisionQuit
)

// Prompter asks the user to confirm each rename.
type Prompter struct {
	scanner *bufio.Scanner
	writer  io.Writer
}

// New creates a Prompter with the given reader and writer. Use os.Stdin
// and os.Stdout for normal operation, or buffers for testing.
func New(reader io.Reader, writer io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(reader),
		writer:  writer,
	}
}

// Confirm asks whether to rename oldName to newName. When the user
// chooses edit, the returned string is the replacement name. EOF is
// treated as quit.
func (p *Prompter) Confirm(oldName, newName string) (Decision, string, error) {
	for {
		fmt.Fprintf(p.writer, "Rename %q to %q? (y)es, (n)o, (e)dit, (q)uit: ", oldName, newName)

		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return DecisionQuit, "", fmt.Errorf("error reading input: %w", err)
			}
			return DecisionQuit, "", nil
		}

		input := strings.TrimSpace(strings.ToLower(p.scanner.Text()))
		switch input {
		case "y", "yes", "":
			return DecisionYes, "", nil
		case "n", "no":
			return DecisionNo, "", nil
		case "e", "edit":
			edited, err := p.edit(newName)
			if err != nil {
				return DecisionQuit, "", err
			}
			if edited == "" {
				return DecisionNo, "", nil
			}
			return DecisionEdit, edited, nil
		case "q", "quit":
			return DecisionQuit, "", nil
		default:
			fmt.Fprintf(p.writer, "Invalid input %q.\n", input)
		}
	}
}

// edit reads a replacement target name. An empty line cancels the edit.
func (p *Prompter) edit(proposed string) (string, error) {
	fmt.Fprintf(p.writer, "New name [%s]: ", proposed)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("error reading input: %w", err)
		}
		return "", nil
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}
