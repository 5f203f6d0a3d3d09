package watcher

import (
	"context"
	"errors"
	"os"
	"time"
)

// ErrFileVanished is returned when the file disappears while waiting.
var ErrFileVanished = errors.New("file vanished before it stabilized")

// ErrFileUnstable is returned when the file keeps growing past the timeout.
var ErrFileUnstable = errors.New("file did not stabilize within timeout")

// StabilityChecker waits for a file's size to hold still, which is the
// only portable signal that a download or copy has finished writing.
type StabilityChecker struct {
	threshold time.Duration // Time the size must remain unchanged
	timeout   time.Duration // Maximum time to wait overall
	interval  time.Duration // Polling cadence
}

// NewStabilityChecker creates a checker with a 30 second timeout and a
// polling interval derived from the threshold.
func NewStabilityChecker(threshold time.Duration) *StabilityChecker {
	interval := threshold / 4
	if interval < 50*time.Millisecond {
		interval = 50 * time.Millisecond
	}
	return &StabilityChecker{
		threshold: threshold,
		timeout:   30 * time.Second,
		interval:  interval,
	}
}

// NewStabilityCheckerWithOptions creates a checker with explicit timing.
func NewStabilityCheckerWithOptions(threshold, timeout, interval time.Duration) *StabilityChecker {
	return &StabilityChecker{
		threshold: threshold,
		timeout:   timeout,
		interval:  interval,
	}
}

// WaitForStable blocks until the file size has been unchanged for the
// threshold duration, or fails with ErrFileVanished or ErrFileUnstable.
func (s *StabilityChecker) WaitForStable(path string) error {
	return s.WaitForStableContext(context.Background(), path)
}

// WaitForStableContext is WaitForStable with cancellation support.
func (s *StabilityChecker) WaitForStableContext(ctx context.Context, path string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	lastSize, err := s.size(path)
	if err != nil {
		return err
	}
	lastChange := time.Now()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return ErrFileUnstable
			}
			return ctx.Err()
		case <-ticker.C:
			current, err := s.size(path)
			if err != nil {
				return err
			}
			if current != lastSize {
				lastSize = current
				lastChange = time.Now()
			} else if time.Since(lastChange) >= s.threshold {
				return nil
			}
		}
	}
}

func (s *StabilityChecker) size(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, ErrFileVanished
		}
		return 0, err
	}
	return info.Size(), nil
}
