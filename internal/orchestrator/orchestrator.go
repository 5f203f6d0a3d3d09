// Package orchestrator coordinates the normalize-filename workflow.
package orchestrator

import (
	"fmt"
	"time"

	"github.com/andrewferrier/normalize-filename/internal/config"
	"github.com/andrewferrier/normalize-filename/internal/extractor"
	"github.com/andrewferrier/normalize-filename/internal/normalizer"
	"github.com/andrewferrier/normalize-filename/internal/organizer"
	"github.com/andrewferrier/normalize-filename/internal/output"
	"github.com/andrewferrier/normalize-filename/internal/prompter"
	"github.com/andrewferrier/normalize-filename/internal/scanner"
	"github.com/andrewferrier/normalize-filename/internal/timestamp"
	"github.com/andrewferrier/normalize-filename/internal/undolog"
)

// Status classifies the outcome for one file.
type Status string

const (
	StatusRenamed     Status = "RENAMED"
	StatusWouldRename Status = "WOULD_RENAME"
	StatusUnchanged   Status = "UNCHANGED"
	StatusDeclined    Status = "DECLINED"
	StatusFailed      Status = "FAILED"
)

// Result represents the outcome of processing a single file.
type Result struct {
	SourcePath string
	NewPath    string
	Status     Status
	Err        error
}

// Confirmer asks the user to approve one rename. prompter.Prompter
// satisfies this; tests supply scripted implementations.
type Confirmer interface {
	Confirm(oldName, newName string) (prompter.Decision, string, error)
}

// Runner executes one normalization run over a fixed configuration.
type Runner struct {
	cfg     config.Configuration
	extract *extractor.Extractor
	out     *output.Output

	// Confirm, when non-nil, gates every rename. A nil Confirm means
	// every proposed rename is accepted.
	Confirm Confirmer

	// Now supplies the current time; replaced in tests.
	Now func() time.Time
}

// New validates the configuration and compiles the extraction patterns
// for one run.
func New(cfg config.Configuration, out *output.Output) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	ex, err := extractor.New(extractor.Config{
		ValidYears:          config.ValidYears(now, cfg.MaxYearsBehind, cfg.MaxYearsAhead),
		DiscardExistingName: cfg.DiscardExistingName,
		AddTime:             cfg.AddTime,
		Months:              cfg.Months(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build extractor: %w", err)
	}

	return &Runner{
		cfg:     cfg,
		extract: ex,
		out:     out,
		Now:     time.Now,
	}, nil
}

// Run processes the given paths and returns a summary. Errors on one
// file never abort the rest of the run.
func (r *Runner) Run(paths []string) (*Summary, error) {
	start := r.Now()

	entries, scanErrs := scanner.Collect(paths, r.cfg.Recursive, r.cfg.Excludes)

	summary := &Summary{ScanErrors: scanErrs}

	var undo *undolog.Log
	if r.cfg.UndoLogFile != "" && !r.cfg.DryRun {
		undo = undolog.New(r.cfg.UndoLogFile)
		defer func() {
			if err := undo.Close(); err != nil {
				r.out.Error("failed to close undo log: %v", err)
			}
		}()
	}

	for i, entry := range entries {
		result, quit := r.processEntry(entry, undo)
		summary.add(result)
		if quit {
			summary.Skipped += len(entries) - i - 1
			break
		}
	}

	summary.Duration = r.Now().Sub(start)
	return summary, nil
}

// processEntry computes and applies the rename for one entry. The second
// return value is true when the user asked to stop.
func (r *Runner) processEntry(entry scanner.FileEntry, undo *undolog.Log) (Result, bool) {
	newName, err := r.proposedName(entry)
	if err != nil {
		return Result{SourcePath: entry.FullPath, Status: StatusFailed, Err: err}, false
	}

	if newName == entry.Name {
		r.out.Verbose("%s: already normalized", entry.FullPath)
		return Result{SourcePath: entry.FullPath, Status: StatusUnchanged}, false
	}

	if r.cfg.DryRun {
		r.out.Info("would rename %q to %q", entry.FullPath, newName)
		return Result{SourcePath: entry.FullPath, NewPath: newName, Status: StatusWouldRename}, false
	}

	if r.Confirm != nil {
		decision, edited, err := r.Confirm.Confirm(entry.Name, newName)
		if err != nil {
			return Result{SourcePath: entry.FullPath, Status: StatusFailed, Err: err}, true
		}
		switch decision {
		case prompter.DecisionNo:
			return Result{SourcePath: entry.FullPath, Status: StatusDeclined}, false
		case prompter.DecisionQuit:
			return Result{SourcePath: entry.FullPath, Status: StatusDeclined}, true
		case prompter.DecisionEdit:
			newName = edited
		}
	}

	newPath, err := organizer.Rename(entry.FullPath, newName)
	if err != nil {
		return Result{SourcePath: entry.FullPath, Status: StatusFailed, Err: err}, false
	}
	r.out.Verbose("renamed %q to %q", entry.FullPath, newPath)

	if undo != nil {
		if err := undo.Record(entry.FullPath, newPath); err != nil {
			r.out.Error("rename succeeded but undo entry failed: %v", err)
		}
	}

	return Result{SourcePath: entry.FullPath, NewPath: newPath, Status: StatusRenamed}, false
}

// proposedName computes the normalized filename for one entry.
func (r *Runner) proposedName(entry scanner.FileEntry) (string, error) {
	body, ext := normalizer.SplitExtension(entry.Name)

	if r.cfg.PrefixDate {
		instant, err := r.fallbackInstant(entry.FullPath)
		if err != nil {
			return "", err
		}
		body, err = r.extract.Rewrite(body, instant)
		if err != nil {
			return "", err
		}
	}

	return normalizer.Assemble(body, ext, r.cfg.LowercaseExtension, entry.IsDir), nil
}

// fallbackInstant resolves the clock value used when the name carries no
// date. File times are only consulted when the policy needs them.
func (r *Runner) fallbackInstant(path string) (time.Time, error) {
	if r.cfg.TimeSource == timestamp.PolicyNow {
		return r.Now(), nil
	}
	ctime, mtime, err := timestamp.FileTimes(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read file times: %w", err)
	}
	return timestamp.Resolve(r.cfg.TimeSource, r.Now(), ctime, mtime), nil
}
