// Package model contains the persisted form of the assistant's data. The types carry json tags
// for the file backend and db tags for the SQL backend.
package model

import "time"

// Contact is the data structure for a person that we know.
// All fields with the exception of the Name field are optional.
type Contact struct {
	Name     string     `json:"name"               db:"name"`
	Phones   []string   `json:"phones,omitempty"   db:"-"`
	Email    *string    `json:"email,omitempty"    db:"email"`
	Birthday *time.Time `json:"birthday,omitempty" db:"birthday"`
	Address  *Address   `json:"address,omitempty"  db:"-"`
}

// Address is the postal address of a contact.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Region     string `json:"region"`
	PostalCode string `json:"postal_code"`
}

// Note is a free-text note. Tags keep the order in which they were added.
type Note struct {
	ID      string   `json:"id"             db:"id"`
	Title   string   `json:"title"          db:"title"`
	Content string   `json:"content"        db:"content"`
	Tags    []string `json:"tags,omitempty" db:"-"`
}
