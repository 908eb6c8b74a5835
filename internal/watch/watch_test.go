package watch

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stlalpha/nfoview/internal/nfo"
)

func newLoaded(t *testing.T, content string) (string, *nfo.Document) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "release.nfo")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	doc := nfo.New()
	if err := doc.Load(path); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return path, doc
}

func classic(w *Watcher) string {
	var s string
	w.View(func(d *nfo.Document) { s = d.ClassicText() })
	return s
}

func TestReloadOnWrite(t *testing.T) {
	path, doc := newLoaded(t, "first\n")

	reloaded := make(chan error, 4)
	w, err := New(path, doc, WithDebounce(20*time.Millisecond), WithOnReload(func(err error) {
		reloaded <- err
	}))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("second\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-reloaded:
		if err != nil {
			t.Fatalf("reload error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
	if got := classic(w); got != "second\n" {
		t.Errorf("ClassicText() = %q, want %q", got, "second\n")
	}
}

func TestIgnoresOtherFiles(t *testing.T) {
	path, doc := newLoaded(t, "first\n")

	reloaded := make(chan error, 1)
	w, err := New(path, doc, WithDebounce(10*time.Millisecond), WithOnReload(func(err error) {
		reloaded <- err
	}))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()

	os.WriteFile(filepath.Join(filepath.Dir(path), "other.txt"), []byte("x"), 0644)

	select {
	case <-reloaded:
		t.Fatal("reloaded after a change to another file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestFailedReloadKeepsContent(t *testing.T) {
	path, doc := newLoaded(t, "first\n")
	w, err := New(path, doc)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()

	os.Remove(path)
	err = w.Reload()
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Reload() error = %v, want not-exist", err)
	}
	if got := classic(w); got != "first\n" {
		t.Errorf("ClassicText() = %q after failed reload", got)
	}
}

func TestStopTwice(t *testing.T) {
	path, doc := newLoaded(t, "x\n")
	w, err := New(path, doc)
	if err != nil {
		t.Fatal(err)
	}
	w.Stop()
	w.Stop()
}

func TestNewMissingDirectory(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "nope", "a.nfo"), nfo.New()); err == nil {
		t.Error("expected error watching a missing directory")
	}
}
