package clinicbook

import (
	"encoding/json"
	"fmt"
	"io"
)

// SchemaVersion is the current version of the storage blob. Version bumps get
// an explicit migration in migrate instead of the historical practice of
// renaming the storage key and silently discarding old data.
const SchemaVersion = 2

// Snapshot is the full serialized state of a Book: one JSON object, one slot.
// Any missing field decodes to an empty collection.
type Snapshot struct {
	Version       int               `json:"schemaVersion"`
	Professionals []Professional    `json:"professionals"`
	Patients      []Patient         `json:"patients"`
	Receipts      []Receipt         `json:"receipts"`
	Expenses      []Expense         `json:"expenses"`
	Products      []Product         `json:"products"`
	DailyConfigs  []DailyCashConfig `json:"dailyConfigs"`
	ServiceTypes  []ServiceType     `json:"serviceTypes"`
}

// NewSnapshot returns the state of a fresh book: empty collections and the
// default service type catalog.
func NewSnapshot() *Snapshot {
	s := &Snapshot{Version: SchemaVersion}
	s.normalize()
	s.ServiceTypes = DefaultServiceTypes()
	return s
}

// normalize replaces nil collections with empty ones so a partially decoded
// snapshot behaves like a fresh book.
func (s *Snapshot) normalize() {
	if s.Professionals == nil {
		s.Professionals = []Professional{}
	}
	if s.Patients == nil {
		s.Patients = []Patient{}
	}
	if s.Receipts == nil {
		s.Receipts = []Receipt{}
	}
	if s.Expenses == nil {
		s.Expenses = []Expense{}
	}
	if s.Products == nil {
		s.Products = []Product{}
	}
	if s.DailyConfigs == nil {
		s.DailyConfigs = []DailyCashConfig{}
	}
	if s.ServiceTypes == nil {
		s.ServiceTypes = []ServiceType{}
	}
}

// DecodeSnapshot decodes a snapshot, tolerating missing fields and migrating
// older schema versions. A malformed blob is an error; callers decide whether
// that means "start empty" (load) or "reject" (import).
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("malformed snapshot: %w", err)
	}
	if err := s.migrate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// migrate upgrades a decoded snapshot to the current schema version.
func (s *Snapshot) migrate() error {
	if s.Version > SchemaVersion {
		return fmt.Errorf("snapshot schema version %d is newer than supported version %d", s.Version, SchemaVersion)
	}
	s.normalize()
	// Version 1 blobs (and version 0, blobs written before the field existed)
	// predate the editable service type catalog.
	if s.Version < 2 && len(s.ServiceTypes) == 0 {
		s.ServiceTypes = DefaultServiceTypes()
	}
	s.Version = SchemaVersion
	return nil
}

// EncodeSnapshot writes the snapshot as a single compact JSON object.
func EncodeSnapshot(w io.Writer, s *Snapshot) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("cannot encode snapshot: %w", err)
	}
	return nil
}
