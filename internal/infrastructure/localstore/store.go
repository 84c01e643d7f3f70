// Package localstore keeps the client-side overlays (session snapshot,
// profile overlays, document annotations) as JSON buckets on disk. Writes are
// last-write-wins, serialized by a single mutex per store.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/lexidocs/lexi-cli/internal/core/ports"
)

var (
	_ ports.SessionStore    = (*Store)(nil)
	_ ports.ProfileStore    = (*Store)(nil)
	_ ports.AnnotationStore = (*Store)(nil)
)

const (
	sessionBucket     = "session.json"
	profilesBucket    = "profiles.json"
	annotationsBucket = "annotations.json"
)

type Store struct {
	dir string
	mu  sync.Mutex
}

func New(dir string) (*Store, error) {
	if dir == "" {
		dir = ".lexi"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// readBucket decodes a bucket into out. Returns false when the bucket does
// not exist yet.
func (s *Store) readBucket(name string, out any) (bool, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", name, err)
	}
	return true, nil
}

// writeBucket replaces a bucket atomically via temp file and rename.
func (s *Store) writeBucket(name string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}

func (s *Store) removeBucket(name string) error {
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", name, err)
	}
	return nil
}
