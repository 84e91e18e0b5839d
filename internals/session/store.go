// Package session persists the last signed-in identity. The record only
// mirrors the display identity – it is not a credential and holds no token.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/dchest/uniuri"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// Record is the on-disk session record
type Record struct {
	AccountID   string    `json:"accountId"`
	DisplayName string    `json:"displayName"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Valid reports whether the record is structurally usable
func (r *Record) Valid() bool {
	return r != nil && r.AccountID != "" && r.DisplayName != ""
}

// Age renders how long ago this record was written ("2 hours ago")
func (r *Record) Age() string {
	if r.UpdatedAt.IsZero() {
		return "unknown"
	}
	return humanize.Time(r.UpdatedAt)
}

// Store reads and writes the record as a whole file, atomically
type Store struct {
	path string
}

// NewStore returns a store backed by the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file location
func (s *Store) Path() string { return s.path }

// Read returns the stored record or nil. A missing, unreadable or
// corrupt file all read as "no session".
func (s *Store) Read() *Record {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	record := &Record{}
	if err := json.Unmarshal(raw, record); err != nil {
		return nil
	}
	return record
}

// Write replaces the record on disk. The write goes to a temp file
// first and gets renamed into place, so readers never see half a record.
func (s *Store) Write(record *Record) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return errors.Wrap(err, "creating session directory")
	}
	raw, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding session record")
	}

	tmp := s.path + "." + uniuri.NewLen(6)
	if err := os.WriteFile(tmp, raw, 0600); err != nil {
		return errors.Wrap(err, "writing session record")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return errors.Wrap(err, "replacing session record")
	}
	return nil
}

// Delete removes the record. A record that never existed is fine.
func (s *Store) Delete() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "removing session record")
	}
	return nil
}
