// Package addressbook contains the contact directory. Contacts are stored under their normalized
// name, and every lookup normalizes its query the same way, so a contact can be found by any
// casing or spacing of its name.
package addressbook

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"gitlab.com/dirk.krummacker/assistant/internal/model"
)

// emptyMessage is returned by ShowAll for a directory without contacts.
const emptyMessage = "No contacts available."

// Status tells whether AddContact created a new contact or updated an existing one.
type Status int

const (
	Created Status = iota + 1
	Updated
)

// String returns the message printed for the status.
func (s Status) String() string {
	switch s {
	case Created:
		return "Contact added."
	case Updated:
		return "Contact updated."
	default:
		return "Unknown status."
	}
}

// AddressBook maps normalized names to records. The order in which contacts were added is kept for
// display.
type AddressBook struct {
	records map[string]*model.Record
	order   []string
	clock   Clock
}

// Option configures an AddressBook.
type Option func(*AddressBook)

// WithClock sets the clock that determines "today" for the upcoming birthdays.
func WithClock(clock Clock) Option {
	return func(b *AddressBook) {
		b.clock = clock
	}
}

// New creates an empty address book.
func New(opts ...Option) *AddressBook {
	b := &AddressBook{
		records: make(map[string]*model.Record),
		clock:   systemClock{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Normalize splits the name on whitespace, capitalizes the first letter of every part, lowers the
// rest and joins the parts with single spaces. Normalize is idempotent.
func Normalize(name string) string {
	parts := strings.Fields(name)
	for i, part := range parts {
		first, size := utf8.DecodeRuneInString(part)
		parts[i] = string(unicode.ToTitle(first)) + strings.ToLower(part[size:])
	}
	return strings.Join(parts, " ")
}

// Len returns the number of contacts.
func (b *AddressBook) Len() int {
	return len(b.order)
}

// Records returns all records in the order they were added.
func (b *AddressBook) Records() []*model.Record {
	records := make([]*model.Record, 0, len(b.order))
	for _, key := range b.order {
		records = append(records, b.records[key])
	}
	return records
}

// AddRecord stores the record under its normalized name. It fails if a contact with the same
// normalized name exists.
func (b *AddressBook) AddRecord(record *model.Record) error {
	key := Normalize(record.Name().String())
	if _, exists := b.records[key]; exists {
		return &model.AlreadyExistsError{Kind: model.KindContact, Key: key}
	}
	b.records[key] = record
	b.order = append(b.order, key)
	return nil
}

// AddContact creates the contact if its normalized name is unknown. If phone is not empty, it is
// validated and appended to the contact. Nothing is changed when validation fails.
func (b *AddressBook) AddContact(name string, phone string) (Status, error) {
	key := Normalize(name)
	record, exists := b.records[key]
	status := Updated
	if !exists {
		var err error
		record, err = model.NewRecord(key)
		if err != nil {
			return 0, err
		}
		status = Created
	}
	if phone != "" {
		if err := record.AddPhone(phone); err != nil {
			return 0, err
		}
	}
	if !exists {
		b.records[key] = record
		b.order = append(b.order, key)
	}
	return status, nil
}

// Find returns the record for the name and whether it exists.
func (b *AddressBook) Find(name string) (*model.Record, bool) {
	record, found := b.records[Normalize(name)]
	return record, found
}

// Delete removes the contact.
func (b *AddressBook) Delete(name string) error {
	key := Normalize(name)
	if _, found := b.records[key]; !found {
		return &model.NotFoundError{Kind: model.KindContact, Key: key}
	}
	delete(b.records, key)
	for i, k := range b.order {
		if k == key {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// lookup returns the record for the name or a contact NotFoundError.
func (b *AddressBook) lookup(name string) (*model.Record, error) {
	key := Normalize(name)
	record, found := b.records[key]
	if !found {
		return nil, &model.NotFoundError{Kind: model.KindContact, Key: key}
	}
	return record, nil
}

// ChangeContact replaces the first phone number of the contact that equals oldPhone. A missing
// contact and a missing phone number are reported with different NotFoundError kinds.
func (b *AddressBook) ChangeContact(name string, oldPhone string, newPhone string) error {
	record, err := b.lookup(name)
	if err != nil {
		return err
	}
	return record.EditPhone(oldPhone, newPhone)
}

// RemovePhone removes the first phone number of the contact that equals phone.
func (b *AddressBook) RemovePhone(name string, phone string) error {
	record, err := b.lookup(name)
	if err != nil {
		return err
	}
	return record.RemovePhone(phone)
}

// ShowPhone returns the phone numbers of the contact.
func (b *AddressBook) ShowPhone(name string) ([]model.Phone, error) {
	record, err := b.lookup(name)
	if err != nil {
		return nil, err
	}
	return record.Phones(), nil
}

// AddEmail sets the email address of the contact.
func (b *AddressBook) AddEmail(name string, email string) error {
	record, err := b.lookup(name)
	if err != nil {
		return err
	}
	return record.AddEmail(email)
}

// ShowEmail returns the email address of the contact.
func (b *AddressBook) ShowEmail(name string) (string, error) {
	record, err := b.lookup(name)
	if err != nil {
		return "", err
	}
	return record.ShowEmail()
}

// RemoveEmail clears the email address of the contact.
func (b *AddressBook) RemoveEmail(name string) error {
	record, err := b.lookup(name)
	if err != nil {
		return err
	}
	return record.RemoveEmail()
}

// AddBirthday sets the birthday of the contact from a DD.MM.YYYY date.
func (b *AddressBook) AddBirthday(name string, date string) error {
	record, err := b.lookup(name)
	if err != nil {
		return err
	}
	return record.AddBirthday(date)
}

// ShowBirthday returns the birthday of the contact as DD.MM.YYYY.
func (b *AddressBook) ShowBirthday(name string) (string, error) {
	record, err := b.lookup(name)
	if err != nil {
		return "", err
	}
	return record.ShowBirthday()
}

// DeleteBirthday clears the birthday of the contact.
func (b *AddressBook) DeleteBirthday(name string) (string, error) {
	record, err := b.lookup(name)
	if err != nil {
		return "", err
	}
	return record.DeleteBirthday()
}

// AddAddress sets the address of the contact. It fails if the contact already has one.
func (b *AddressBook) AddAddress(name string, components []string) error {
	record, err := b.lookup(name)
	if err != nil {
		return err
	}
	return record.AddAddress(components)
}

// ShowAddress returns the address of the contact.
func (b *AddressBook) ShowAddress(name string) (string, error) {
	record, err := b.lookup(name)
	if err != nil {
		return "", err
	}
	return record.ShowAddress()
}

// DeleteAddress clears the address of the contact.
func (b *AddressBook) DeleteAddress(name string) (string, error) {
	record, err := b.lookup(name)
	if err != nil {
		return "", err
	}
	return record.DeleteAddress()
}

// FindContacts returns every record whose name, phone numbers, email address or birthday contains
// the query, ignoring case. Each record appears at most once, in the order the records were added.
func (b *AddressBook) FindContacts(query string) []*model.Record {
	query = strings.ToLower(strings.TrimSpace(query))
	var found []*model.Record
	for _, record := range b.Records() {
		if matches(record, query) {
			found = append(found, record)
		}
	}
	return found
}

// matches reports whether any searchable field of the record contains the lower-case query.
func matches(record *model.Record, query string) bool {
	if strings.Contains(strings.ToLower(record.Name().String()), query) {
		return true
	}
	for _, phone := range record.Phones() {
		if strings.Contains(phone.String(), query) {
			return true
		}
	}
	if email, set := record.Email(); set && strings.Contains(strings.ToLower(email.String()), query) {
		return true
	}
	if birthday, set := record.Birthday(); set && strings.Contains(birthday.String(), query) {
		return true
	}
	return false
}

// ShowAll returns the summary lines of all contacts, or a message that there are none.
func (b *AddressBook) ShowAll() string {
	if len(b.order) == 0 {
		return emptyMessage
	}
	lines := make([]string, 0, len(b.order))
	for _, record := range b.Records() {
		lines = append(lines, record.String())
	}
	return strings.Join(lines, "\n")
}
