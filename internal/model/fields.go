package model

import (
	"strings"
	"time"
)

// DateLayout is the textual pattern of a birthday: two digit day, two digit month and four digit
// year, separated by dots.
const DateLayout = "02.01.2006"

// minAddressComponents is the number of components an address needs: street, city, region and
// postal code.
const minAddressComponents = 4

// Name is the name of a contact. It contains letters, spaces, hyphens and apostrophes only.
type Name struct {
	value string
}

// NewName validates the value and returns it as a Name. Surrounding whitespace is removed.
func NewName(value string) (Name, error) {
	value = strings.TrimSpace(value)
	if err := check("name", value, "required,personname",
		"name must contain only letters, spaces, hyphens and apostrophes"); err != nil {
		return Name{}, err
	}
	return Name{value: value}, nil
}

func (n Name) String() string {
	return n.value
}

// Phone is a phone number consisting of exactly ten decimal digits.
type Phone struct {
	value string
}

// NewPhone validates the value and returns it as a Phone.
func NewPhone(value string) (Phone, error) {
	value = strings.TrimSpace(value)
	if err := check("phone", value, "required,len=10,number", "phone number must be 10 digits"); err != nil {
		return Phone{}, err
	}
	return Phone{value: value}, nil
}

func (p Phone) String() string {
	return p.value
}

// Email is an email address in canonical form: the local part is kept as entered, the domain is
// lower-cased.
type Email struct {
	value string
}

// NewEmail validates the value and returns the canonical Email.
func NewEmail(value string) (Email, error) {
	value = strings.TrimSpace(value)
	if err := check("email", value, "required,email", "invalid email address: "+value); err != nil {
		return Email{}, err
	}
	at := strings.LastIndex(value, "@")
	return Email{value: value[:at] + "@" + strings.ToLower(value[at+1:])}, nil
}

func (e Email) String() string {
	return e.value
}

// Birthday is a calendar date without time of day, stored in UTC.
type Birthday struct {
	date time.Time
}

// NewBirthday parses a date in the DD.MM.YYYY pattern. Other separators or orderings and dates
// that do not exist in the calendar are rejected.
func NewBirthday(value string) (Birthday, error) {
	date, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return Birthday{}, &ValidationError{Field: "birthday", Reason: "invalid date format: " + value + ", use DD.MM.YYYY"}
	}
	return Birthday{date: date}, nil
}

// BirthdayFromTime returns the Birthday for the calendar date of t.
func BirthdayFromTime(t time.Time) Birthday {
	year, month, day := t.Date()
	return Birthday{date: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Time returns the date as midnight UTC.
func (b Birthday) Time() time.Time {
	return b.date
}

func (b Birthday) String() string {
	return b.date.Format(DateLayout)
}

// Address is a postal address. The postal code consists of digits only.
type Address struct {
	street     string
	city       string
	region     string
	postalCode string
}

// NewAddress builds an Address from its components in the order street, city, region, postal
// code. When more than four components are given, the leading ones together form the street, so
// a street may itself contain commas.
func NewAddress(components []string) (Address, error) {
	if len(components) < minAddressComponents {
		return Address{}, &ValidationError{Field: "address",
			Reason: "please provide all address fields: street, city, region and postal code"}
	}
	parts := make([]string, len(components))
	for i, c := range components {
		parts[i] = strings.TrimSpace(c)
		if parts[i] == "" {
			return Address{}, &ValidationError{Field: "address", Reason: "address fields must not be empty"}
		}
	}
	n := len(parts)
	address := Address{
		street:     strings.Join(parts[:n-3], ", "),
		city:       parts[n-3],
		region:     parts[n-2],
		postalCode: parts[n-1],
	}
	if err := check("postal code", address.postalCode, "required,number",
		"postal code must contain only digits"); err != nil {
		return Address{}, err
	}
	return address, nil
}

func (a Address) Street() string     { return a.street }
func (a Address) City() string       { return a.city }
func (a Address) Region() string     { return a.region }
func (a Address) PostalCode() string { return a.postalCode }

// Components returns street, city, region and postal code in this order.
func (a Address) Components() []string {
	return []string{a.street, a.city, a.region, a.postalCode}
}

func (a Address) String() string {
	return strings.Join(a.Components(), ", ")
}
