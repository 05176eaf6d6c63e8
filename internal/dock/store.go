package dock

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store reads and writes layout snapshots at a single well-known path.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// Load reads and parses the persisted layout. A missing file surfaces
// as an error wrapping fs.ErrNotExist; callers recover by rebuilding
// the default layout.
func (s *Store) Load() (*State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read layout file: %w", err)
	}
	st, err := DecodeState(data)
	if err != nil {
		return nil, fmt.Errorf("parse layout file %s: %w", s.path, err)
	}
	return st, nil
}

// Save replaces the layout file with the given snapshot. The document
// goes to a temp file in the same directory first and is renamed over
// the target so a crash mid-write cannot corrupt the previous layout.
func (s *Store) Save(st *State) error {
	data, err := st.Encode()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir layout dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write layout file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace layout file: %w", err)
	}
	return nil
}
