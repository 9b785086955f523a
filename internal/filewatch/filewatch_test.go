package filewatch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchDeliversWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watched.txt")
	if err := os.WriteFile(path, []byte("before"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	changed := make(chan string, 1)
	w := New(func(p string) {
		select {
		case changed <- p:
		default:
		}
	})
	defer w.Stop()

	if err := w.Watch(path); err != nil {
		t.Fatalf("Failed to watch: %v", err)
	}

	if err := os.WriteFile(path, []byte("after"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	select {
	case got := <-changed:
		if got != path {
			t.Errorf("Expected a notification for %s, got %s", path, got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for the change notification")
	}
}

func TestWatchMissingFile(t *testing.T) {
	w := New(nil)
	defer w.Stop()

	if err := w.Watch(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("Expected an error watching a missing file")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	w := New(nil)
	w.Stop()
	w.Stop()
}
