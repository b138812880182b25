package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"stagehand/internal/fileutil"
)

const lockTimeout = 5 * time.Second

// document is the on-disk shape. The desktop UI reads the same file, so
// the encoding stays plain JSON with stable keys.
type document struct {
	Pins   []string          `json:"pins"`
	Recent map[string]string `json:"recent"`
}

// Store reads and writes one prefs file. Mutations take a sibling flock so
// concurrent invocations serialize; reads skip the lock because the file
// is only ever replaced by rename.
type Store struct {
	path string
	lock *flock.Flock
}

// NewStore binds a store to path. The file need not exist yet.
func NewStore(path string) *Store {
	return &Store{path: path, lock: flock.New(path + ".lock")}
}

// Path returns the backing file location.
func (s *Store) Path() string { return s.path }

// Pins returns the pinned chains in pin order.
func (s *Store) Pins() ([]string, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.Pins, nil
}

// AddPin appends chain to the pin list unless it is already pinned.
func (s *Store) AddPin(chain string) error {
	return s.update(func(doc *document) {
		for _, pin := range doc.Pins {
			if pin == chain {
				return
			}
		}
		doc.Pins = append(doc.Pins, chain)
	})
}

// RemovePin drops chain from the pin list; removing an absent pin is not
// an error.
func (s *Store) RemovePin(chain string) error {
	return s.update(func(doc *document) {
		kept := doc.Pins[:0]
		for _, pin := range doc.Pins {
			if pin != chain {
				kept = append(kept, pin)
			}
		}
		doc.Pins = kept
	})
}

// Recent returns the last-used value recorded under key.
func (s *Store) Recent(key string) (string, bool, error) {
	doc, err := s.load()
	if err != nil {
		return "", false, err
	}
	value, ok := doc.Recent[key]
	return value, ok, nil
}

// Recents returns every last-used selection.
func (s *Store) Recents() (map[string]string, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.Recent, nil
}

// SetRecent records value as the last-used selection under key.
func (s *Store) SetRecent(key, value string) error {
	return s.update(func(doc *document) {
		doc.Recent[key] = value
	})
}

func (s *Store) load() (*document, error) {
	doc := &document{Pins: []string{}, Recent: map[string]string{}}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return doc, nil
		}
		return nil, fmt.Errorf("read prefs: %w", err)
	}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("parse prefs %s: %w", s.path, err)
	}
	if doc.Pins == nil {
		doc.Pins = []string{}
	}
	if doc.Recent == nil {
		doc.Recent = map[string]string{}
	}
	return doc, nil
}

func (s *Store) update(mutate func(*document)) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create prefs directory: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()
	locked, err := s.lock.TryLockContext(ctx, 50*time.Millisecond)
	if err != nil {
		return fmt.Errorf("lock prefs: %w", err)
	}
	if !locked {
		return fmt.Errorf("prefs file %s is locked by another process", s.path)
	}
	defer func() {
		_ = s.lock.Unlock()
	}()

	doc, err := s.load()
	if err != nil {
		return err
	}
	mutate(doc)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	data = append(data, '\n')
	if err := fileutil.AtomicWrite(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}
