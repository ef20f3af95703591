package model

import (
	"fmt"
	"strings"
)

// Record is the aggregate state of one contact. It owns any number of phone numbers and at most one
// email address, birthday and address. A record is identified by its name, which never changes.
type Record struct {
	name     Name
	phones   []Phone
	email    *Email
	birthday *Birthday
	address  *Address
}

// NewRecord creates an empty record for the given name.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the name of the contact.
func (r *Record) Name() Name {
	return r.name
}

// Phones returns a copy of the phone numbers in the order they were added.
func (r *Record) Phones() []Phone {
	return append([]Phone(nil), r.phones...)
}

// Email returns the email address and whether one is set.
func (r *Record) Email() (Email, bool) {
	if r.email == nil {
		return Email{}, false
	}
	return *r.email, true
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// Address returns the address and whether one is set.
func (r *Record) Address() (Address, bool) {
	if r.address == nil {
		return Address{}, false
	}
	return *r.address, true
}

// AddPhone validates the value and appends it. The same number may be added more than once.
func (r *Record) AddPhone(value string) error {
	phone, err := NewPhone(value)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, phone)
	return nil
}

// EditPhone replaces the first phone number equal to oldValue with the validated newValue.
func (r *Record) EditPhone(oldValue string, newValue string) error {
	i := r.phoneIndex(oldValue)
	if i < 0 {
		return &NotFoundError{Kind: KindPhone, Key: oldValue}
	}
	phone, err := NewPhone(newValue)
	if err != nil {
		return err
	}
	r.phones[i] = phone
	return nil
}

// RemovePhone removes the first phone number equal to value.
func (r *Record) RemovePhone(value string) error {
	i := r.phoneIndex(value)
	if i < 0 {
		return &NotFoundError{Kind: KindPhone, Key: value}
	}
	r.phones = append(r.phones[:i], r.phones[i+1:]...)
	return nil
}

// phoneIndex returns the position of the first phone number equal to value, or -1.
func (r *Record) phoneIndex(value string) int {
	for i, p := range r.phones {
		if p.value == value {
			return i
		}
	}
	return -1
}

// AddEmail validates the value and sets it as the email address, replacing any previous one.
func (r *Record) AddEmail(value string) error {
	email, err := NewEmail(value)
	if err != nil {
		return err
	}
	r.email = &email
	return nil
}

// ShowEmail returns the email address.
func (r *Record) ShowEmail() (string, error) {
	if r.email == nil {
		return "", &NotSetError{Field: "email", Contact: r.name.value}
	}
	return r.email.value, nil
}

// RemoveEmail clears the email address.
func (r *Record) RemoveEmail() error {
	if r.email == nil {
		return &NotFoundError{Kind: KindEmail, Key: r.name.value}
	}
	r.email = nil
	return nil
}

// AddBirthday validates the value and sets it as the birthday. An existing birthday is replaced.
func (r *Record) AddBirthday(value string) error {
	birthday, err := NewBirthday(value)
	if err != nil {
		return err
	}
	r.birthday = &birthday
	return nil
}

// ShowBirthday returns the birthday formatted as DD.MM.YYYY.
func (r *Record) ShowBirthday() (string, error) {
	if r.birthday == nil {
		return "", &NotSetError{Field: "birthday", Contact: r.name.value}
	}
	return r.birthday.String(), nil
}

// DeleteBirthday clears the birthday and returns a confirmation.
func (r *Record) DeleteBirthday() (string, error) {
	if r.birthday == nil {
		return "", &NotSetError{Field: "birthday", Contact: r.name.value}
	}
	r.birthday = nil
	return fmt.Sprintf("Birthday deleted for %s.", r.name.value), nil
}

// AddAddress validates the components and sets the address. It fails if the record already has an
// address; the existing one has to be deleted first.
func (r *Record) AddAddress(components []string) error {
	if r.address != nil {
		return &AlreadyExistsError{Kind: KindAddress, Key: r.name.value}
	}
	address, err := NewAddress(components)
	if err != nil {
		return err
	}
	r.address = &address
	return nil
}

// ShowAddress returns the address as comma separated components.
func (r *Record) ShowAddress() (string, error) {
	if r.address == nil {
		return "", &NotSetError{Field: "address", Contact: r.name.value}
	}
	return r.address.String(), nil
}

// DeleteAddress clears the address and returns a confirmation.
func (r *Record) DeleteAddress() (string, error) {
	if r.address == nil {
		return "", &NotSetError{Field: "address", Contact: r.name.value}
	}
	r.address = nil
	return fmt.Sprintf("Address deleted for %s.", r.name.value), nil
}

// String returns the one-line summary of the contact. Optional fields that are not set are left
// out.
func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.value
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Contact name: %s, phone(s): %s", r.name.value, strings.Join(phones, "; "))
	if r.email != nil {
		fmt.Fprintf(&sb, ", email: %s", r.email.value)
	}
	if r.birthday != nil {
		fmt.Fprintf(&sb, ", birthday: %s", r.birthday)
	}
	if r.address != nil {
		fmt.Fprintf(&sb, ", address: %s", r.address)
	}
	return sb.String()
}
