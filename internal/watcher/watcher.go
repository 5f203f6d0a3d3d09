// Package watcher monitors directories and normalizes newly created files.
package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Config contains watch mode settings.
type Config struct {
	Debounce        time.Duration // Quiet period before a new file is processed
	StableThreshold time.Duration // How long the file size must hold still
	IgnorePatterns  []string      // Base-name globs for files never processed
}

// DefaultConfig returns the default watch mode settings.
func DefaultConfig() *Config {
	return &Config{
		Debounce:        2 * time.Second,
		StableThreshold: time.Second,
		IgnorePatterns:  DefaultIgnorePatterns(),
	}
}

// Handler processes one settled file. It reports whether the file was
// renamed.
type Handler func(path string) (renamed bool, err error)

// Summary contains counters for one watch session.
type Summary struct {
	Renamed   int
	Unchanged int
	Skipped   int
	Duration  time.Duration
}

// Watcher monitors directories for newly created files and hands each
// one to the handler once it has settled.
type Watcher struct {
	cfg       *Config
	handler   Handler
	fs        *fsnotify.Watcher
	filter    *Filter
	debounce  *Debouncer
	stability *StabilityChecker
	done      chan struct{}
	wg        sync.WaitGroup
	started   time.Time

	mu        sync.Mutex
	renamed   int
	unchanged int
	skipped   int
}

// New creates a Watcher. A nil cfg selects the defaults.
func New(cfg *Config, handler Handler) *Watcher {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	w := &Watcher{
		cfg:       cfg,
		handler:   handler,
		filter:    NewFilter(cfg.IgnorePatterns),
		stability: NewStabilityChecker(cfg.StableThreshold),
		done:      make(chan struct{}),
	}
	w.debounce = NewDebouncer(cfg.Debounce, w.processFile)
	return w
}

// Start begins watching the given directories. The watcher runs until
// Stop is called.
func (w *Watcher) Start(dirs []string) error {
	var err error
	w.fs, err = fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	for _, dir := range dirs {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			w.fs.Close()
			return err
		}
		if err := w.fs.Add(absDir); err != nil {
			w.fs.Close()
			return err
		}
	}

	w.started = time.Now()
	w.done = make(chan struct{})

	w.wg.Add(1)
	go w.loop()

	return nil
}

// Stop shuts the watcher down and returns the session summary. Files
// still waiting out their debounce delay are abandoned.
func (w *Watcher) Stop() *Summary {
	w.debounce.CancelAll()
	close(w.done)
	w.wg.Wait()

	if w.fs != nil {
		w.fs.Close()
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	return &Summary{
		Renamed:   w.renamed,
		Unchanged: w.unchanged,
		Skipped:   w.skipped,
		Duration:  time.Since(w.started),
	}
}

// loop dispatches fsnotify events until Stop is called.
func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			// Only newly created files are interesting; writes to
			// existing files reset nothing.
			if event.Op&fsnotify.Create == fsnotify.Create {
				w.handleCreate(event.Name)
			}
		case _, ok := <-w.fs.Errors:
			if !ok {
				return
			}
		}
	}
}

// handleCreate filters the new path and schedules it for processing.
func (w *Watcher) handleCreate(path string) {
	if w.filter.ShouldIgnore(path) {
		w.count(func() { w.skipped++ })
		return
	}
	w.debounce.Add(path)
}

// processFile runs once the debounce delay for a path has expired. It
// waits for the file size to settle before invoking the handler, so a
// file still being downloaded is not renamed mid-write.
func (w *Watcher) processFile(path string) {
	if err := w.stability.WaitForStable(path); err != nil {
		w.count(func() { w.skipped++ })
		return
	}

	if w.handler == nil {
		w.count(func() { w.skipped++ })
		return
	}

	renamed, err := w.handler(path)
	switch {
	case err != nil:
		w.count(func() { w.skipped++ })
	case renamed:
		w.count(func() { w.renamed++ })
	default:
		w.count(func() { w.unchanged++ })
	}
}

func (w *Watcher) count(update func()) {
	w.mu.Lock()
	update()
	w.mu.Unlock()
}

// IsRunning returns true while the watcher is active.
func (w *Watcher) IsRunning() bool {
	select {
	case <-w.done:
		return false
	default:
		return w.fs != nil
	}
}
