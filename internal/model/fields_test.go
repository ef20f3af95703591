package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewName checks which characters are accepted in a contact name.
func TestNewName(t *testing.T) {
	valid := []string{"John", "Jose Maria Carrero", "O'Brien", "Mary-Jane", "  Ron  ", "Jürgen"}
	for _, value := range valid {
		name, err := NewName(value)
		assert.NoError(t, err, value)
		assert.Equal(t, strings.TrimSpace(value), name.String())
	}

	invalid := []string{"", "   ", "John3", "john@doe", "R2-D2", "Ann_Marie"}
	for _, value := range invalid {
		_, err := NewName(value)
		assert.ErrorIs(t, err, ErrValidation, value)
	}
}

// TestNewPhone checks that a phone number consists of exactly ten digits.
func TestNewPhone(t *testing.T) {
	phone, err := NewPhone("0116538866")
	require.NoError(t, err)
	assert.Equal(t, "0116538866", phone.String())

	for _, value := range []string{"", "123456789", "12345678901", "01165388a6", "+116538866", "011 653 886"} {
		_, err := NewPhone(value)
		var validationErr *ValidationError
		if assert.ErrorAs(t, err, &validationErr, value) {
			assert.Equal(t, "phone", validationErr.Field)
			assert.Equal(t, "phone number must be 10 digits", validationErr.Error())
		}
	}
}

// TestNewEmail checks the syntax check and the canonical form of an email address.
func TestNewEmail(t *testing.T) {
	email, err := NewEmail("ron@mail.co.uk")
	require.NoError(t, err)
	assert.Equal(t, "ron@mail.co.uk", email.String())

	email, err = NewEmail(" Ron.Whisley@Mail.CO.UK ")
	require.NoError(t, err)
	assert.Equal(t, "Ron.Whisley@mail.co.uk", email.String())

	for _, value := range []string{"", "ron", "ron@", "@mail.com", "ron mail@mail.com", "Ron <ron@mail.com>"} {
		_, err := NewEmail(value)
		assert.ErrorIs(t, err, ErrValidation, value)
	}
}

// TestBirthdayRoundTrip checks that formatting a parsed birthday gives back the input.
func TestBirthdayRoundTrip(t *testing.T) {
	birthday, err := NewBirthday("31.03.1979")
	require.NoError(t, err)
	assert.Equal(t, "31.03.1979", birthday.String())
	assert.Equal(t, time.Date(1979, time.March, 31, 0, 0, 0, 0, time.UTC), birthday.Time())

	leap, err := NewBirthday("29.02.2000")
	require.NoError(t, err)
	assert.Equal(t, "29.02.2000", leap.String())
}

// TestBirthdayRejectsOtherPatterns checks that only the DD.MM.YYYY pattern of an existing date is
// accepted.
func TestBirthdayRejectsOtherPatterns(t *testing.T) {
	for _, value := range []string{"1979-03-31", "31/03/1979", "03.31.1979", "31.02.2000", "29.02.2001",
		"1.3.1979", "31.03.79", "", "birthday"} {
		_, err := NewBirthday(value)
		assert.ErrorIs(t, err, ErrValidation, value)
	}
}

// TestBirthdayFromTime checks that the time of day is dropped.
func TestBirthdayFromTime(t *testing.T) {
	birthday := BirthdayFromTime(time.Date(1960, time.September, 25, 17, 30, 0, 0, time.UTC))
	assert.Equal(t, "25.09.1960", birthday.String())
	assert.Equal(t, time.Date(1960, time.September, 25, 0, 0, 0, 0, time.UTC), birthday.Time())
}

// TestNewAddress checks the component rules of an address.
func TestNewAddress(t *testing.T) {
	address, err := NewAddress([]string{"123 Main St", " Anytown", " USA ", " 12345"})
	require.NoError(t, err)
	assert.Equal(t, "123 Main St", address.Street())
	assert.Equal(t, "Anytown", address.City())
	assert.Equal(t, "USA", address.Region())
	assert.Equal(t, "12345", address.PostalCode())
	assert.Equal(t, "123 Main St, Anytown, USA, 12345", address.String())

	address, err = NewAddress([]string{"Apt 4", "12 High St", "Leeds", "Yorkshire", "54321"})
	require.NoError(t, err)
	assert.Equal(t, "Apt 4, 12 High St", address.Street())
	assert.Equal(t, []string{"Apt 4, 12 High St", "Leeds", "Yorkshire", "54321"}, address.Components())

	invalid := [][]string{
		nil,
		{"123 Main St", "Anytown", "12345"},
		{"123 Main St", " ", "USA", "12345"},
		{"123 Main St", "Anytown", "USA", "AB12"},
		{"123 Main St", "Anytown", "USA", ""},
	}
	for _, components := range invalid {
		_, err := NewAddress(components)
		assert.ErrorIs(t, err, ErrValidation, components)
	}
}
