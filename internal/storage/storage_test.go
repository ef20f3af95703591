package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/dirk.krummacker/assistant/internal/addressbook"
	"gitlab.com/dirk.krummacker/assistant/internal/config"
	"gitlab.com/dirk.krummacker/assistant/internal/model"
	"gitlab.com/dirk.krummacker/assistant/internal/notesbook"
	"gitlab.com/dirk.krummacker/assistant/internal/storage/file"
	dto "gitlab.com/dirk.krummacker/assistant/pkg/model"
)

// memoryBackend keeps the documents in memory.
type memoryBackend struct {
	contacts []dto.Contact
	notes    []dto.Note
	err      error
}

func (m *memoryBackend) LoadContacts(context.Context) ([]dto.Contact, error) { return m.contacts, m.err }
func (m *memoryBackend) LoadNotes(context.Context) ([]dto.Note, error)       { return m.notes, m.err }
func (m *memoryBackend) Close() error                                       { return nil }

func (m *memoryBackend) SaveContacts(_ context.Context, contacts []dto.Contact) error {
	m.contacts = contacts
	return m.err
}

func (m *memoryBackend) SaveNotes(_ context.Context, notes []dto.Note) error {
	m.notes = notes
	return m.err
}

// newFileRepository returns a repository on a file backend in a temporary directory.
func newFileRepository(t *testing.T) *Repository {
	backend, err := file.New(t.TempDir())
	require.NoError(t, err)
	return New(backend)
}

// TestLoadEmpty expects empty collections when nothing was saved before.
func TestLoadEmpty(t *testing.T) {
	repo := newFileRepository(t)

	book, err := repo.LoadContacts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, book.Len())

	notes, err := repo.LoadNotes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, notes.Len())
}

// TestContactsRoundTrip saves contacts with every combination of absent and present fields and
// expects the loaded address book to render identically.
func TestContactsRoundTrip(t *testing.T) {
	repo := newFileRepository(t)

	book := addressbook.New()
	_, err := book.AddContact("jose maria carrero", "0116538866")
	require.NoError(t, err)
	_, err = book.AddContact("Jose Maria Carrero", "0116538866")
	require.NoError(t, err)
	require.NoError(t, book.AddEmail("Jose Maria Carrero", "jose@Example.COM"))
	require.NoError(t, book.AddBirthday("Jose Maria Carrero", "31.03.1979"))
	require.NoError(t, book.AddAddress("Jose Maria Carrero", []string{"Apt 4", "12 High St", "Springfield", "IL", "62701"}))
	_, err = book.AddContact("Anna", "")
	require.NoError(t, err)
	require.NoError(t, repo.SaveContacts(context.Background(), book))

	loaded, err := repo.LoadContacts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, book.ShowAll(), loaded.ShowAll())

	anna, found := loaded.Find("anna")
	require.True(t, found)
	_, set := anna.Email()
	assert.False(t, set)
	_, set = anna.Birthday()
	assert.False(t, set)
	_, set = anna.Address()
	assert.False(t, set)
	assert.Empty(t, anna.Phones())

	jose, found := loaded.Find("jose maria carrero")
	require.True(t, found)
	assert.Len(t, jose.Phones(), 2)
	address, set := jose.Address()
	require.True(t, set)
	assert.Equal(t, "Apt 4, 12 High St", address.Street())
}

// TestNotesRoundTrip saves notes and expects ids, order and tags to survive.
func TestNotesRoundTrip(t *testing.T) {
	repo := newFileRepository(t)

	book := notesbook.New()
	meeting, err := book.AddNote("Meeting Notes", "Discuss roadmap")
	require.NoError(t, err)
	require.NoError(t, book.AddTag("Meeting Notes", "work"))
	require.NoError(t, book.AddTag("Meeting Notes", "important"))
	_, err = book.AddNote("Todo List", "Buy milk")
	require.NoError(t, err)
	require.NoError(t, repo.SaveNotes(context.Background(), book))

	loaded, err := repo.LoadNotes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, book.ShowAll(), loaded.ShowAll())
	note, found := loaded.Find("Meeting Notes")
	require.True(t, found)
	assert.Equal(t, meeting.ID(), note.ID())
	assert.Equal(t, []string{"work", "important"}, note.Tags())
}

// TestLoadNormalizesNames expects stored names to be normalized on load.
func TestLoadNormalizesNames(t *testing.T) {
	repo := New(&memoryBackend{contacts: []dto.Contact{{Name: "  anna   maria ", Phones: []string{"0123456789"}}}})

	book, err := repo.LoadContacts(context.Background())
	require.NoError(t, err)
	record, found := book.Find("Anna Maria")
	require.True(t, found)
	assert.Equal(t, "Anna Maria", record.Name().String())
}

// TestLoadInvalidContact expects stored data that fails validation to be rejected.
func TestLoadInvalidContact(t *testing.T) {
	repo := New(&memoryBackend{contacts: []dto.Contact{{Name: "Anna", Phones: []string{"12345"}}}})

	_, err := repo.LoadContacts(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrValidation)
	assert.Contains(t, err.Error(), "contact 'Anna'")
}

// TestLoadDuplicateNote expects two stored notes with the same title to be rejected.
func TestLoadDuplicateNote(t *testing.T) {
	repo := New(&memoryBackend{notes: []dto.Note{
		{ID: "1", Title: "Todo", Content: "a"},
		{ID: "2", Title: "Todo", Content: "b"},
	}})

	_, err := repo.LoadNotes(context.Background())
	assert.ErrorIs(t, err, model.ErrAlreadyExists)
}

// TestLoadDuplicateContact expects two stored contacts with the same normalized name to be
// rejected instead of merged.
func TestLoadDuplicateContact(t *testing.T) {
	repo := New(&memoryBackend{contacts: []dto.Contact{
		{Name: "Anna Maria", Phones: []string{"0123456789"}},
		{Name: "anna  MARIA", Phones: []string{"0987654321"}},
	}})

	_, err := repo.LoadContacts(context.Background())
	assert.ErrorIs(t, err, model.ErrAlreadyExists)
	assert.EqualError(t, err, "load contacts: contact 'Anna Maria' already exists")
}

// TestLoadKeepsClock expects the options to be applied to the loaded address book.
func TestLoadKeepsClock(t *testing.T) {
	birthday := time.Date(1990, time.January, 2, 0, 0, 0, 0, time.UTC)
	repo := New(&memoryBackend{contacts: []dto.Contact{{Name: "Anna", Birthday: &birthday}}})

	book, err := repo.LoadContacts(context.Background(),
		addressbook.WithClock(fixedClock(time.Date(2025, time.December, 28, 10, 0, 0, 0, time.UTC))))
	require.NoError(t, err)
	upcoming := book.UpcomingBirthdays(7)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "02.01.2026", upcoming[0].Birthday)
}

// TestBackendError expects backend errors to be wrapped.
func TestBackendError(t *testing.T) {
	backendErr := errors.New("connection refused")
	repo := New(&memoryBackend{err: backendErr})

	_, err := repo.LoadContacts(context.Background())
	assert.ErrorIs(t, err, backendErr)
	assert.Contains(t, err.Error(), "load contacts")

	err = repo.SaveNotes(context.Background(), notesbook.New())
	assert.ErrorIs(t, err, backendErr)
	assert.Contains(t, err.Error(), "save notes")
}

// TestOpenFile expects the file driver to create the data directory.
func TestOpenFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	repo, err := Open(&config.ConfigStorage{Driver: config.DriverFile, DataDir: dir})
	require.NoError(t, err)
	defer repo.Close()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

// TestOpenUnknownDriver expects an error for an unsupported driver.
func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(&config.ConfigStorage{Driver: "sqlite"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite")
}

type fixedClock time.Time

func (c fixedClock) Now() time.Time {
	return time.Time(c)
}
