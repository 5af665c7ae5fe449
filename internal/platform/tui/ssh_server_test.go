package tui

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/carrot-jump/internal/storage"
)

// drainingListener saves a score while it shuts down, like a session that
// reaches game over during the grace period.
type drainingListener struct {
	store    *storage.Store
	saveErr  error
	shutdown int
}

func (l *drainingListener) ListenAndServe() error { return nil }

func (l *drainingListener) Shutdown(context.Context) error {
	l.shutdown++
	_, l.saveErr = l.store.SaveScore("jumper", 12, "alice", "late-session")
	return nil
}

func TestShutdownDrainsSessionsBeforeClosingStore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	l := &drainingListener{store: store}
	srv := &SSHServer{server: l, store: store, logger: log.New(io.Discard)}

	if err := srv.Shutdown(); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}
	if l.saveErr != nil {
		t.Fatalf("score saved during shutdown was lost: %v", l.saveErr)
	}
	if srv.store == nil {
		t.Error("store field should not be cleared while sessions may read it")
	}
	if _, err := store.HighScore("jumper"); err == nil {
		t.Error("store should be closed after shutdown")
	}

	// A second shutdown must not close the store again.
	if err := srv.Shutdown(); err != nil {
		t.Fatalf("second Shutdown() failed: %v", err)
	}
	if l.shutdown != 2 {
		t.Errorf("listener shut down %d times, expected 2", l.shutdown)
	}
}
