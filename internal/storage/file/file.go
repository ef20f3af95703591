// Package file stores contacts and notes as JSON documents in a data directory.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	dto "gitlab.com/dirk.krummacker/assistant/pkg/model"
)

const (
	// ContactsFile is the name of the file holding the address book.
	ContactsFile = "contacts.json"

	// NotesFile is the name of the file holding the notes.
	NotesFile = "notes.json"

	dirPermission = 0755
)

// Store keeps one JSON file per collection.
type Store struct {
	dir string
}

// New creates the data directory if necessary and returns a store for it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, dirPermission); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// LoadContacts reads the contacts file. A missing file yields no contacts.
func (s *Store) LoadContacts(_ context.Context) ([]dto.Contact, error) {
	var contacts []dto.Contact
	if err := s.read(ContactsFile, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// SaveContacts replaces the contacts file.
func (s *Store) SaveContacts(_ context.Context, contacts []dto.Contact) error {
	return s.write(ContactsFile, contacts)
}

// LoadNotes reads the notes file. A missing file yields no notes.
func (s *Store) LoadNotes(_ context.Context) ([]dto.Note, error) {
	var notes []dto.Note
	if err := s.read(NotesFile, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// SaveNotes replaces the notes file.
func (s *Store) SaveNotes(_ context.Context, notes []dto.Note) error {
	return s.write(NotesFile, notes)
}

// Close does nothing; the store holds no open files between calls.
func (s *Store) Close() error {
	return nil
}

// read decodes the named file into v. A missing file leaves v untouched.
func (s *Store) read(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name)) // nosemgrep
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("could not parse %s: %w", name, err)
	}
	return nil
}

// write marshals v into a temporary file next to the target and renames it, so a crash never
// leaves a half written file behind.
func (s *Store) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, "."+name+"-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filepath.Join(s.dir, name))
}
