package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for the error kinds of the assistant. The structured error types below match
// them through errors.Is, so callers can test the kind without knowing the concrete type.
var (
	ErrValidation      = errors.New("validation failed")
	ErrNotFound        = errors.New("not found")
	ErrTagNotFound     = errors.New("tag not found")
	ErrNotSet          = errors.New("not set")
	ErrAlreadyExists   = errors.New("already exists")
	ErrDuplicateTag    = errors.New("duplicate tag")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Kind names the sort of thing that was looked up or that already exists.
type Kind string

const (
	KindContact Kind = "contact"
	KindPhone   Kind = "phone number"
	KindEmail   Kind = "email"
	KindAddress Kind = "address"
	KindNote    Kind = "note"
	KindTag     Kind = "tag"
)

// ValidationError is returned when a field value violates its construction rule.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError is returned when a lookup by name, title, phone or tag fails. Kind tells what was
// not found, Key is the value that was searched for.
type NotFoundError struct {
	Kind Kind
	Key  string
}

func (e *NotFoundError) Error() string {
	switch e.Kind {
	case KindPhone:
		return fmt.Sprintf("phone number %s not found", e.Key)
	case KindEmail:
		return fmt.Sprintf("no email set for %s", e.Key)
	case KindTag:
		return fmt.Sprintf("tag '%s' not found", e.Key)
	default:
		return fmt.Sprintf("%s '%s' not found", e.Kind, e.Key)
	}
}

// Is reports whether target is ErrNotFound, or ErrTagNotFound for a missing tag.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound || (target == ErrTagNotFound && e.Kind == KindTag)
}

// NotSetError is returned when an optional field of a contact is read or deleted while absent.
type NotSetError struct {
	Field   string
	Contact string
}

func (e *NotSetError) Error() string {
	return fmt.Sprintf("%s not set for %s", e.Field, e.Contact)
}

// Is reports whether target is ErrNotSet.
func (e *NotSetError) Is(target error) bool {
	return target == ErrNotSet
}

// AlreadyExistsError is returned by operations that assume absence but find presence instead.
type AlreadyExistsError struct {
	Kind Kind
	Key  string
}

func (e *AlreadyExistsError) Error() string {
	if e.Kind == KindAddress {
		return fmt.Sprintf("address already exists for %s", e.Key)
	}
	return fmt.Sprintf("%s '%s' already exists", e.Kind, e.Key)
}

// Is reports whether target is ErrAlreadyExists.
func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// DuplicateTagError is returned when a note already carries the tag that is being added.
type DuplicateTagError struct {
	Tag   string
	Title string
}

func (e *DuplicateTagError) Error() string {
	return fmt.Sprintf("tag '%s' already exists in note '%s'", e.Tag, e.Title)
}

// Is reports whether target is ErrDuplicateTag or ErrAlreadyExists.
func (e *DuplicateTagError) Is(target error) bool {
	return target == ErrDuplicateTag || target == ErrAlreadyExists
}
