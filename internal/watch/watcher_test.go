package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestTestWatcher(t *testing.T) {
	tw := NewTestWatcher()
	var _ WatcherInterface = tw

	tw.SendChange("layout.yaml")
	select {
	case path := <-tw.Changes():
		if path != "layout.yaml" {
			t.Errorf("Changes() = %q, want layout.yaml", path)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("Did not receive sent change")
	}

	tw.SendError(os.ErrNotExist)
	select {
	case err := <-tw.Errors():
		if err != os.ErrNotExist {
			t.Errorf("Expected os.ErrNotExist, got %v", err)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("Did not receive sent error")
	}

	if err := tw.Close(); err != nil {
		t.Errorf("Close() returned error: %v", err)
	}
	if err := tw.Close(); err != nil {
		t.Errorf("second Close() returned error: %v", err)
	}
	if _, ok := <-tw.Changes(); ok {
		t.Error("Changes() should be closed after Close()")
	}
}

func TestNewWatcherMissingFile(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("NewWatcher() expected error for missing file")
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.yaml")
	if err := os.WriteFile(path, []byte("version: \"1.0\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcherWithDebounce(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcherWithDebounce() error = %v", err)
	}
	defer w.Close()

	// a burst of writes settles into one notification
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("version: \"1.1\"\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case got := <-w.Changes():
		if got != w.Path() {
			t.Errorf("Changes() = %q, want %q", got, w.Path())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.yaml")
	if err := os.WriteFile(path, []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcherWithDebounce(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcherWithDebounce() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("b"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Changes():
		t.Errorf("unexpected change for %q", got)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(path, []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	select {
	case _, ok := <-w.Changes():
		if ok {
			t.Error("Changes() should be closed")
		}
	case <-time.After(time.Second):
		t.Error("Changes() was not closed after Close()")
	}
}
