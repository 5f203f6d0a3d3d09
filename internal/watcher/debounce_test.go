package watcher

import (
	"sync"
	"testing"
	"time"
)

func TestDebouncerInvokesCallbackAfterDelay(t *testing.T) {
	var mu sync.Mutex
	var got []string

	d := NewDebouncer(20*time.Millisecond, func(path string) {
		mu.Lock()
		got = append(got, path)
		mu.Unlock()
	})

	d.Add("/tmp/a.txt")

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 1 || got[0] != "/tmp/a.txt" {
		t.Errorf("callback paths = %v, want [/tmp/a.txt]", got)
	}
}

func TestDebouncerCoalescesRapidEvents(t *testing.T) {
	var mu sync.Mutex
	calls := 0

	d := NewDebouncer(30*time.Millisecond, func(path string) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	for i := 0; i < 5; i++ {
		d.Add("/tmp/a.txt")
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Errorf("callback invoked %d times, want 1", calls)
	}
}

func TestDebouncerTracksDistinctPaths(t *testing.T) {
	d := NewDebouncer(time.Hour, nil)

	d.Add("/tmp/a.txt")
	d.Add("/tmp/b.txt")

	if d.PendingCount() != 2 {
		t.Errorf("PendingCount() = %d, want 2", d.PendingCount())
	}
	if !d.IsPending("/tmp/a.txt") {
		t.Error("IsPending(/tmp/a.txt) = false, want true")
	}
}

func TestDebouncerCancel(t *testing.T) {
	fired := make(chan string, 1)
	d := NewDebouncer(20*time.Millisecond, func(path string) {
		fired <- path
	})

	d.Add("/tmp/a.txt")
	d.Cancel("/tmp/a.txt")

	select {
	case path := <-fired:
		t.Errorf("callback fired for %q after Cancel", path)
	case <-time.After(100 * time.Millisecond):
	}

	if d.IsPending("/tmp/a.txt") {
		t.Error("path still pending after Cancel")
	}
}

func TestDebouncerCancelAll(t *testing.T) {
	fired := make(chan string, 2)
	d := NewDebouncer(20*time.Millisecond, func(path string) {
		fired <- path
	})

	d.Add("/tmp/a.txt")
	d.Add("/tmp/b.txt")
	d.CancelAll()

	select {
	case path := <-fired:
		t.Errorf("callback fired for %q after CancelAll", path)
	case <-time.After(100 * time.Millisecond):
	}

	if d.PendingCount() != 0 {
		t.Errorf("PendingCount() = %d after CancelAll, want 0", d.PendingCount())
	}
}
