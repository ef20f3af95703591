// Package sqlstore stores contacts and notes in a relational database. The schema works on MySQL
// and on PostgreSQL; every table carries a seq column that preserves the order of the collection.
package sqlstore

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	dto "gitlab.com/dirk.krummacker/assistant/pkg/model"
)

// Schema contains the CREATE TABLE statements, separated by semicolons.
//
//go:embed schema.sql
var Schema string

// Store is a handle to the database.
type Store struct {
	db *sqlx.DB
}

// contactRow is one line of the contacts table. The address columns are either all set or all
// NULL.
type contactRow struct {
	Seq        int        `db:"seq"`
	Name       string     `db:"name"`
	Email      *string    `db:"email"`
	Birthday   *time.Time `db:"birthday"`
	Street     *string    `db:"street"`
	City       *string    `db:"city"`
	Region     *string    `db:"region"`
	PostalCode *string    `db:"postal_code"`
}

// phoneRow is one line of the phones table.
type phoneRow struct {
	ContactSeq int    `db:"contact_seq"`
	Phone      string `db:"phone"`
}

// noteRow is one line of the notes table.
type noteRow struct {
	Seq     int    `db:"seq"`
	ID      string `db:"id"`
	Title   string `db:"title"`
	Content string `db:"content"`
}

// tagRow is one line of the note_tags table.
type tagRow struct {
	NoteSeq int    `db:"note_seq"`
	Tag     string `db:"tag"`
}

// Open connects to the database. The driver is either "mysql" or "postgres".
func Open(driver string, dsn string) (*Store, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// NewStore wraps an existing database handle. The database argument can be a real database for
// production use or a mock database within unit tests.
func NewStore(sqlDB *sql.DB, driver string) *Store {
	return &Store{db: sqlx.NewDb(sqlDB, driver)}
}

// Ping verifies that the database answers.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate executes the statements of the schema one after the other. Tables that exist already
// are left untouched.
func (s *Store) Migrate(ctx context.Context) error {
	for _, statement := range Statements(Schema) {
		if _, err := s.db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// Statements splits an SQL script into its statements. Lines are joined with a space until a
// line contains a semicolon.
func Statements(script string) []string {
	var statements []string
	builder := strings.Builder{}
	for _, line := range strings.Split(script, "\n") {
		before, _, found := strings.Cut(line, ";")
		builder.WriteString(before)
		builder.WriteString(" ")
		if found {
			if statement := strings.TrimSpace(builder.String()); statement != "" {
				statements = append(statements, statement)
			}
			builder = strings.Builder{}
		}
	}
	if statement := strings.TrimSpace(builder.String()); statement != "" {
		statements = append(statements, statement)
	}
	return statements
}

// LoadContacts reads all contacts in the order they were saved.
func (s *Store) LoadContacts(ctx context.Context) ([]dto.Contact, error) {
	var rows []contactRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT seq, name, email, birthday, street, city, region, postal_code
		FROM contacts
		ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	var phones []phoneRow
	err = s.db.SelectContext(ctx, &phones, `
		SELECT contact_seq, phone
		FROM phones
		ORDER BY contact_seq, seq`)
	if err != nil {
		return nil, err
	}
	phonesBySeq := make(map[int][]string)
	for _, p := range phones {
		phonesBySeq[p.ContactSeq] = append(phonesBySeq[p.ContactSeq], p.Phone)
	}

	contacts := make([]dto.Contact, 0, len(rows))
	for _, row := range rows {
		contact := dto.Contact{
			Name:     row.Name,
			Phones:   phonesBySeq[row.Seq],
			Email:    row.Email,
			Birthday: row.Birthday,
		}
		if row.Street != nil && row.City != nil && row.Region != nil && row.PostalCode != nil {
			contact.Address = &dto.Address{
				Street:     *row.Street,
				City:       *row.City,
				Region:     *row.Region,
				PostalCode: *row.PostalCode,
			}
		}
		contacts = append(contacts, contact)
	}
	return contacts, nil
}

// SaveContacts replaces all contacts within one transaction.
func (s *Store) SaveContacts(ctx context.Context, contacts []dto.Contact) error {
	return s.inTransaction(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM phones"); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM contacts"); err != nil {
			return err
		}
		insertPhone := tx.Rebind("INSERT INTO phones (contact_seq, seq, phone) VALUES (?, ?, ?)")
		for i, contact := range contacts {
			row := contactRow{
				Seq:      i + 1,
				Name:     contact.Name,
				Email:    contact.Email,
				Birthday: contact.Birthday,
			}
			if a := contact.Address; a != nil {
				row.Street, row.City, row.Region, row.PostalCode = &a.Street, &a.City, &a.Region, &a.PostalCode
			}
			_, err := tx.NamedExecContext(ctx, `
				INSERT INTO contacts (seq, name, email, birthday, street, city, region, postal_code)
				VALUES (:seq, :name, :email, :birthday, :street, :city, :region, :postal_code)`, row)
			if err != nil {
				return err
			}
			for j, phone := range contact.Phones {
				if _, err := tx.ExecContext(ctx, insertPhone, row.Seq, j+1, phone); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// LoadNotes reads all notes in the order they were saved.
func (s *Store) LoadNotes(ctx context.Context) ([]dto.Note, error) {
	var rows []noteRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT seq, id, title, content
		FROM notes
		ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	var tags []tagRow
	err = s.db.SelectContext(ctx, &tags, `
		SELECT note_seq, tag
		FROM note_tags
		ORDER BY note_seq, seq`)
	if err != nil {
		return nil, err
	}
	tagsBySeq := make(map[int][]string)
	for _, t := range tags {
		tagsBySeq[t.NoteSeq] = append(tagsBySeq[t.NoteSeq], t.Tag)
	}

	notes := make([]dto.Note, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, dto.Note{
			ID:      row.ID,
			Title:   row.Title,
			Content: row.Content,
			Tags:    tagsBySeq[row.Seq],
		})
	}
	return notes, nil
}

// SaveNotes replaces all notes within one transaction.
func (s *Store) SaveNotes(ctx context.Context, notes []dto.Note) error {
	return s.inTransaction(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM note_tags"); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM notes"); err != nil {
			return err
		}
		insertTag := tx.Rebind("INSERT INTO note_tags (note_seq, seq, tag) VALUES (?, ?, ?)")
		for i, note := range notes {
			row := noteRow{Seq: i + 1, ID: note.ID, Title: note.Title, Content: note.Content}
			_, err := tx.NamedExecContext(ctx, `
				INSERT INTO notes (seq, id, title, content)
				VALUES (:seq, :id, :title, :content)`, row)
			if err != nil {
				return err
			}
			for j, tag := range note.Tags {
				if _, err := tx.ExecContext(ctx, insertTag, row.Seq, j+1, tag); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// inTransaction runs fn in a transaction. The transaction is committed if fn succeeds and rolled
// back otherwise.
func (s *Store) inTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rollbackErr)
		}
		return err
	}
	return tx.Commit()
}
