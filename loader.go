package clinicbook

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
)

// Persister is the durable mirror of a Book. Save is called after every
// mutation with the full current state.
type Persister interface {
	Save(s *Snapshot) error
}

// ErrNotLoaded is returned when Save is attempted before Load has run, which
// would overwrite durable data with an empty startup state.
var ErrNotLoaded = errors.New("store not loaded yet")

// FileStore persists snapshots to a single file, the durable slot of the book.
type FileStore struct {
	path   string
	loaded bool
}

// NewFileStore returns a store over the given file path. Load must be called
// before Save.
func NewFileStore(path string) *FileStore { return &FileStore{path: path} }

// Path returns the file backing the store.
func (f *FileStore) Path() string { return f.path }

// Load reads the durable slot. A missing file and a malformed blob both yield
// a fresh empty snapshot: the application must always be able to start, at
// worst data-empty. A malformed blob is logged, never fatal.
func (f *FileStore) Load() (*Snapshot, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		f.loaded = true
		return NewSnapshot(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read data file %q: %w", f.path, err)
	}

	s, err := DecodeSnapshot(bytes.NewReader(data))
	if err != nil {
		log.Printf("warning: data file %q is corrupt, starting empty: %v", f.path, err)
		f.loaded = true
		return NewSnapshot(), nil
	}
	f.loaded = true
	return s, nil
}

// Save overwrites the durable slot with the full state. It refuses to run
// before Load so a startup race can never clobber durable data.
func (f *FileStore) Save(s *Snapshot) error {
	if !f.loaded {
		return ErrNotLoaded
	}
	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, s); err != nil {
		return err
	}
	if err := os.WriteFile(f.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("cannot write data file %q: %w", f.path, err)
	}
	return nil
}

var _ Persister = (*FileStore)(nil)

// MemoryStore is an in-memory Persister for tests and dry runs.
type MemoryStore struct {
	Last  *Snapshot
	Saves int
}

func (m *MemoryStore) Save(s *Snapshot) error {
	m.Last = s
	m.Saves++
	return nil
}

var _ Persister = (*MemoryStore)(nil)
