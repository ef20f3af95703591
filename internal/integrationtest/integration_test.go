package integrationtest

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/dirk.krummacker/assistant/internal/addressbook"
	"gitlab.com/dirk.krummacker/assistant/internal/config"
	"gitlab.com/dirk.krummacker/assistant/internal/notesbook"
	"gitlab.com/dirk.krummacker/assistant/internal/storage"
	"gitlab.com/dirk.krummacker/assistant/internal/storage/sqlstore"
)

// openRepository connects to the database given by the environment, applies the schema and
// returns a repository for it. The test is skipped if no database host is configured.
func openRepository(t *testing.T) *storage.Repository {
	if os.Getenv("DBHOST") == "" {
		t.Skip("DBHOST is not set")
	}
	cfg, err := config.Load("")
	require.NoError(t, err)
	driver := cfg.Storage.Driver
	if driver == config.DriverFile {
		driver = config.DriverMySQL
	}

	store, err := sqlstore.Open(driver, cfg.Storage.DSN)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, store.Ping(ctx))
	require.NoError(t, store.Migrate(ctx))

	repo := storage.New(store)
	t.Cleanup(func() { repo.Close() })
	return repo
}

// TestContactsHappyPath saves an address book to the database, loads it again and expects the same
// contacts. A second save replaces the first.
func TestContactsHappyPath(t *testing.T) {
	repo := openRepository(t)
	ctx := context.Background()

	book := addressbook.New()
	_, err := book.AddContact("Erika Mustermann", "0815471100")
	require.NoError(t, err)
	require.NoError(t, book.AddEmail("Erika Mustermann", "erika@example.com"))
	require.NoError(t, book.AddBirthday("Erika Mustermann", "02.03.1969"))
	require.NoError(t, book.AddAddress("Erika Mustermann", []string{"Heidestrasse 17", "Koeln", "NRW", "51147"}))
	_, err = book.AddContact("Rudi Voeller", "")
	require.NoError(t, err)
	require.NoError(t, repo.SaveContacts(ctx, book))

	loaded, err := repo.LoadContacts(ctx)
	require.NoError(t, err)
	assert.Equal(t, book.ShowAll(), loaded.ShowAll())

	require.NoError(t, book.Delete("Rudi Voeller"))
	require.NoError(t, repo.SaveContacts(ctx, book))
	loaded, err = repo.LoadContacts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Len())
	birthday, err := loaded.ShowBirthday("erika mustermann")
	require.NoError(t, err)
	assert.Equal(t, "02.03.1969", birthday)
}

// TestNotesHappyPath saves notes with tags to the database and loads them again.
func TestNotesHappyPath(t *testing.T) {
	repo := openRepository(t)
	ctx := context.Background()

	book := notesbook.New()
	_, err := book.AddNote("Meeting Notes", "Discuss roadmap")
	require.NoError(t, err)
	require.NoError(t, book.AddTag("Meeting Notes", "work"))
	require.NoError(t, book.AddTag("Meeting Notes", "important"))
	_, err = book.AddNote("Todo List", "Buy milk")
	require.NoError(t, err)
	require.NoError(t, repo.SaveNotes(ctx, book))

	loaded, err := repo.LoadNotes(ctx)
	require.NoError(t, err)
	assert.Equal(t, book.ShowAll(), loaded.ShowAll())
	assert.Len(t, loaded.FindNotesByTag("IMPORTANT"), 1)
}
