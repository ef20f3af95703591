// Package storage loads and saves the address book and the notes book. A Backend persists plain
// documents; the Repository converts between documents and the domain collections and validates
// everything it loads.
package storage

import (
	"context"
	"fmt"

	"gitlab.com/dirk.krummacker/assistant/internal/addressbook"
	"gitlab.com/dirk.krummacker/assistant/internal/config"
	"gitlab.com/dirk.krummacker/assistant/internal/notesbook"
	"gitlab.com/dirk.krummacker/assistant/internal/storage/file"
	"gitlab.com/dirk.krummacker/assistant/internal/storage/sqlstore"
	dto "gitlab.com/dirk.krummacker/assistant/pkg/model"
)

// Backend persists contact and note documents. Loading from a backend without prior state returns
// empty slices, not an error. Saving replaces the whole collection.
type Backend interface {
	LoadContacts(ctx context.Context) ([]dto.Contact, error)
	SaveContacts(ctx context.Context, contacts []dto.Contact) error
	LoadNotes(ctx context.Context) ([]dto.Note, error)
	SaveNotes(ctx context.Context, notes []dto.Note) error
	Close() error
}

// Repository loads and saves the domain collections through a Backend.
type Repository struct {
	backend Backend
}

// New creates a repository on top of the backend.
func New(backend Backend) *Repository {
	return &Repository{backend: backend}
}

// Open creates the backend selected by the storage configuration and returns a repository for it.
func Open(cfg *config.ConfigStorage) (*Repository, error) {
	switch cfg.Driver {
	case config.DriverFile:
		backend, err := file.New(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("file.New: %w", err)
		}
		return New(backend), nil
	case config.DriverMySQL, config.DriverPostgres:
		backend, err := sqlstore.Open(cfg.Driver, cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("sqlstore.Open: %w", err)
		}
		return New(backend), nil
	default:
		return nil, fmt.Errorf("unknown storage driver '%s'", cfg.Driver)
	}
}

// LoadContacts returns the stored address book, or an empty one if nothing was stored yet.
func (r *Repository) LoadContacts(ctx context.Context, opts ...addressbook.Option) (*addressbook.AddressBook, error) {
	docs, err := r.backend.LoadContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load contacts: %w", err)
	}
	book := addressbook.New(opts...)
	for _, doc := range docs {
		record, err := recordFromDocument(doc)
		if err != nil {
			return nil, fmt.Errorf("load contacts: %w", err)
		}
		if err := book.AddRecord(record); err != nil {
			return nil, fmt.Errorf("load contacts: %w", err)
		}
	}
	return book, nil
}

// SaveContacts stores the address book.
func (r *Repository) SaveContacts(ctx context.Context, book *addressbook.AddressBook) error {
	records := book.Records()
	docs := make([]dto.Contact, 0, len(records))
	for _, record := range records {
		docs = append(docs, contactDocument(record))
	}
	if err := r.backend.SaveContacts(ctx, docs); err != nil {
		return fmt.Errorf("save contacts: %w", err)
	}
	return nil
}

// LoadNotes returns the stored notes book, or an empty one if nothing was stored yet.
func (r *Repository) LoadNotes(ctx context.Context) (*notesbook.NotesBook, error) {
	docs, err := r.backend.LoadNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load notes: %w", err)
	}
	book := notesbook.New()
	for _, doc := range docs {
		note, err := noteFromDocument(doc)
		if err != nil {
			return nil, fmt.Errorf("load notes: %w", err)
		}
		if err := book.Add(note); err != nil {
			return nil, fmt.Errorf("load notes: %w", err)
		}
	}
	return book, nil
}

// SaveNotes stores the notes book.
func (r *Repository) SaveNotes(ctx context.Context, book *notesbook.NotesBook) error {
	notes := book.Notes()
	docs := make([]dto.Note, 0, len(notes))
	for _, note := range notes {
		docs = append(docs, noteDocument(note))
	}
	if err := r.backend.SaveNotes(ctx, docs); err != nil {
		return fmt.Errorf("save notes: %w", err)
	}
	return nil
}

// Close releases the resources of the backend.
func (r *Repository) Close() error {
	return r.backend.Close()
}
