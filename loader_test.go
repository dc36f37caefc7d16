package clinicbook

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "clinicbook.json"))
	s, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(s.Receipts) != 0 || len(s.ServiceTypes) != 4 {
		t.Errorf("missing file must load as a fresh book, got %+v", s)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clinicbook.json")
	if err := os.WriteFile(path, []byte("{corrupt"), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewFileStore(path)
	s, err := store.Load()
	if err != nil {
		t.Fatalf("Load() on corrupt file error = %v, want empty state", err)
	}
	if len(s.Receipts) != 0 {
		t.Errorf("corrupt file must load as a fresh book")
	}
}

func TestFileStoreSaveBeforeLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clinicbook.json")
	if err := os.WriteFile(path, []byte(`{"schemaVersion":2,"patients":[{"id":"p1","name":"Maria"}]}`), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewFileStore(path)
	if err := store.Save(NewSnapshot()); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("Save() before Load() error = %v, want ErrNotLoaded", err)
	}

	// the durable slot must be intact
	s, err := NewFileStore(path).Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Patients) != 1 {
		t.Errorf("refused save still clobbered the slot")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clinicbook.json")

	store := NewFileStore(path)
	s, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	s.Patients = append(s.Patients, Patient{ID: "p1", Name: "Maria", Phone: "555-0000"})
	if err := store.Save(s); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	back, err := NewFileStore(path).Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(back.Patients) != 1 || back.Patients[0].Name != "Maria" {
		t.Errorf("round trip lost the patient: %+v", back.Patients)
	}
}

func TestLoadBook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clinicbook.json")

	b, err := LoadBook(NewFileStore(path))
	if err != nil {
		t.Fatalf("LoadBook() error = %v", err)
	}
	if _, err := b.AddPatient("Maria", "555-0000"); err != nil {
		t.Fatalf("AddPatient() error = %v", err)
	}

	again, err := LoadBook(NewFileStore(path))
	if err != nil {
		t.Fatalf("LoadBook() reload error = %v", err)
	}
	if len(again.Patients()) != 1 {
		t.Errorf("mutation was not mirrored to the data file")
	}
}
