package storage

import (
	"fmt"

	"gitlab.com/dirk.krummacker/assistant/internal/addressbook"
	"gitlab.com/dirk.krummacker/assistant/internal/model"
	dto "gitlab.com/dirk.krummacker/assistant/pkg/model"
)

// contactDocument converts a record into its persisted form.
func contactDocument(record *model.Record) dto.Contact {
	doc := dto.Contact{Name: record.Name().String()}
	for _, phone := range record.Phones() {
		doc.Phones = append(doc.Phones, phone.String())
	}
	if email, set := record.Email(); set {
		value := email.String()
		doc.Email = &value
	}
	if birthday, set := record.Birthday(); set {
		value := birthday.Time()
		doc.Birthday = &value
	}
	if address, set := record.Address(); set {
		doc.Address = &dto.Address{
			Street:     address.Street(),
			City:       address.City(),
			Region:     address.Region(),
			PostalCode: address.PostalCode(),
		}
	}
	return doc
}

// recordFromDocument rebuilds a record. Every value passes the same validation as user input, and
// absent optional fields stay absent.
func recordFromDocument(doc dto.Contact) (*model.Record, error) {
	record, err := model.NewRecord(addressbook.Normalize(doc.Name))
	if err != nil {
		return nil, fmt.Errorf("contact '%s': %w", doc.Name, err)
	}
	for _, phone := range doc.Phones {
		if err := record.AddPhone(phone); err != nil {
			return nil, fmt.Errorf("contact '%s': %w", doc.Name, err)
		}
	}
	if doc.Email != nil {
		if err := record.AddEmail(*doc.Email); err != nil {
			return nil, fmt.Errorf("contact '%s': %w", doc.Name, err)
		}
	}
	if doc.Birthday != nil {
		birthday := model.BirthdayFromTime(*doc.Birthday)
		if err := record.AddBirthday(birthday.String()); err != nil {
			return nil, fmt.Errorf("contact '%s': %w", doc.Name, err)
		}
	}
	if doc.Address != nil {
		a := doc.Address
		if err := record.AddAddress([]string{a.Street, a.City, a.Region, a.PostalCode}); err != nil {
			return nil, fmt.Errorf("contact '%s': %w", doc.Name, err)
		}
	}
	return record, nil
}

// noteDocument converts a note into its persisted form.
func noteDocument(note *model.Note) dto.Note {
	return dto.Note{
		ID:      note.ID(),
		Title:   note.Title(),
		Content: note.Content(),
		Tags:    note.Tags(),
	}
}

// noteFromDocument rebuilds a note.
func noteFromDocument(doc dto.Note) (*model.Note, error) {
	note, err := model.RestoreNote(doc.ID, doc.Title, doc.Content, doc.Tags)
	if err != nil {
		return nil, fmt.Errorf("note '%s': %w", doc.Title, err)
	}
	return note, nil
}
