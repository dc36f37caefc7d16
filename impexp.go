package clinicbook

// this file contains functions to handle the backup import/export format.
// It must remain human readable and a single file the user can carry around.

import (
	"encoding/json"
	"fmt"
	"io"
)

// ExportFileName returns the suggested backup file name for a reference date,
// e.g. "clinicbook-2024-05-01.json".
func ExportFileName(day Date) string {
	return fmt.Sprintf("clinicbook-%s.json", day)
}

// ExportSnapshot writes the snapshot as indented JSON for a manual backup
// download. No compression, the file is meant to be read by people.
func ExportSnapshot(w io.Writer, s *Snapshot) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal snapshot for export: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write export: %w", err)
	}
	return nil
}

// ImportSnapshot parses an externally supplied backup. The returned snapshot
// is meant to wholesale-replace the book's state after explicit user
// confirmation; on parse failure the caller's state stays untouched because
// nothing is returned to apply.
func ImportSnapshot(r io.Reader) (*Snapshot, error) {
	s, err := DecodeSnapshot(r)
	if err != nil {
		return nil, fmt.Errorf("cannot import snapshot: %w", err)
	}
	return s, nil
}
