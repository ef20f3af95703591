// Package notesbook contains the collection of notes. Notes are keyed by their title without the
// surrounding whitespace, and every lookup trims its title the same way.
package notesbook

import (
	"slices"
	"strings"

	"gitlab.com/dirk.krummacker/assistant/internal/model"
)

// emptyMessage is returned by ShowAll for a notes book without notes.
const emptyMessage = "No notes available."

// NotesBook maps titles to notes and keeps the order in which the notes were added.
type NotesBook struct {
	notes map[string]*model.Note
	order []string
}

// New creates an empty notes book.
func New() *NotesBook {
	return &NotesBook{notes: make(map[string]*model.Note)}
}

// Len returns the number of notes.
func (b *NotesBook) Len() int {
	return len(b.order)
}

// Notes returns all notes in the order they were added.
func (b *NotesBook) Notes() []*model.Note {
	notes := make([]*model.Note, 0, len(b.order))
	for _, title := range b.order {
		notes = append(notes, b.notes[title])
	}
	return notes
}

// Add stores the note. It fails if a note with the same title exists.
func (b *NotesBook) Add(note *model.Note) error {
	if _, exists := b.notes[note.Title()]; exists {
		return &model.AlreadyExistsError{Kind: model.KindNote, Key: note.Title()}
	}
	b.notes[note.Title()] = note
	b.order = append(b.order, note.Title())
	return nil
}

// AddNote validates title and content and stores a new note. It fails if a note with the same
// title exists.
func (b *NotesBook) AddNote(title string, content string) (*model.Note, error) {
	note, err := model.NewNote(title, content)
	if err != nil {
		return nil, err
	}
	if err := b.Add(note); err != nil {
		return nil, err
	}
	return note, nil
}

// Find returns the note with the title and whether it exists.
func (b *NotesBook) Find(title string) (*model.Note, bool) {
	note, found := b.notes[strings.TrimSpace(title)]
	return note, found
}

// lookup returns the note with the title or a note NotFoundError.
func (b *NotesBook) lookup(title string) (*model.Note, error) {
	title = strings.TrimSpace(title)
	note, found := b.notes[title]
	if !found {
		return nil, &model.NotFoundError{Kind: model.KindNote, Key: title}
	}
	return note, nil
}

// EditNote replaces the content of the note.
func (b *NotesBook) EditNote(title string, content string) error {
	note, err := b.lookup(title)
	if err != nil {
		return err
	}
	return note.SetContent(content)
}

// DeleteNote removes the note.
func (b *NotesBook) DeleteNote(title string) error {
	note, err := b.lookup(title)
	if err != nil {
		return err
	}
	delete(b.notes, note.Title())
	if i := slices.Index(b.order, note.Title()); i >= 0 {
		b.order = slices.Delete(b.order, i, i+1)
	}
	return nil
}

// AddTag adds the tag to the note.
func (b *NotesBook) AddTag(title string, tag string) error {
	note, err := b.lookup(title)
	if err != nil {
		return err
	}
	return note.AddTag(tag)
}

// RemoveTag removes the tag from the note.
func (b *NotesBook) RemoveTag(title string, tag string) error {
	note, err := b.lookup(title)
	if err != nil {
		return err
	}
	return note.RemoveTag(tag)
}

// HasTag reports whether the note carries exactly this tag.
func (b *NotesBook) HasTag(title string, tag string) (bool, error) {
	note, err := b.lookup(title)
	if err != nil {
		return false, err
	}
	return note.HasTag(tag), nil
}

// FindNotesByKeyword returns the notes whose title or content contains the keyword, ignoring case.
func (b *NotesBook) FindNotesByKeyword(keyword string) []*model.Note {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	var found []*model.Note
	for _, note := range b.Notes() {
		if strings.Contains(strings.ToLower(note.Title()), keyword) ||
			strings.Contains(strings.ToLower(note.Content()), keyword) {
			found = append(found, note)
		}
	}
	return found
}

// FindNotesByTag returns the notes that carry the tag, ignoring case.
func (b *NotesBook) FindNotesByTag(tag string) []*model.Note {
	tag = strings.TrimSpace(tag)
	var found []*model.Note
	for _, note := range b.Notes() {
		if note.HasTagFold(tag) {
			found = append(found, note)
		}
	}
	return found
}

// ShowAll returns the summary lines of all notes, or a message that there are none.
func (b *NotesBook) ShowAll() string {
	if len(b.order) == 0 {
		return emptyMessage
	}
	lines := make([]string, 0, len(b.order))
	for _, note := range b.Notes() {
		lines = append(lines, note.String())
	}
	return strings.Join(lines, "\n")
}
