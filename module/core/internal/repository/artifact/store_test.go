package artifact

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_WriteReadRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	payload := []byte(`{"kind":"linear","weights":[1,2],"bias":0.5}`)
	if err := store.Write("model.json", payload); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := store.Read("model.json")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("expected %s, got %s", payload, got)
	}
}

func TestFileStore_ReadMissing(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if _, err := store.Read("absent.json"); err == nil {
		t.Error("expected error for missing artifact")
	}
}

func TestFileStore_WriteReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.Write("model.json", []byte("first")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := store.Write("model.json", []byte("second")); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := store.Read("model.json")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("expected second write to win, got %s", got)
	}

	// No temp files may survive a completed write.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, e := range entries {
		if e.Name() != "model.json" {
			t.Errorf("unexpected leftover file %s", e.Name())
		}
	}
}

func TestNewFileStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "models")
	if _, err := NewFileStore(dir); err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("expected directory to exist: %v", err)
	}
}
