package dock

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	store := NewStore(path)
	st, err := DecodeState([]byte(sampleLayout))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if err := store.Save(st); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !loaded.Equal(st) {
		t.Fatalf("loaded state should equal saved state")
	}
	if _, err := os.Stat(path + ".tmp"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("temp file should not linger after save")
	}
}

func TestStoreLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent", "layout.json"))
	if _, err := store.Load(); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("missing file should surface fs.ErrNotExist, got %v", err)
	}
}

func TestStoreLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := NewStore(path).Load(); err == nil {
		t.Fatalf("corrupt file should fail to parse")
	}
}

func TestStoreSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "layout.json")
	st, _ := DecodeState([]byte(sampleLayout))
	if err := NewStore(path).Save(st); err != nil {
		t.Fatalf("save into missing dir: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat: %v", err)
	}
}
