package model

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

const (
	// MaxTitleLength is the maximum number of characters of a note title.
	MaxTitleLength = 100

	// MaxContentLength is the maximum number of characters of a note's content.
	MaxContentLength = 1000
)

// Note is a free-text note with a unique title and an ordered set of tags. Tags are case-sensitive.
type Note struct {
	id      string
	title   string
	content string
	tags    []string
}

// NewNote validates title and content and creates a note without tags. The note gets a new UUID.
func NewNote(title string, content string) (*Note, error) {
	return RestoreNote(uuid.NewString(), title, content, nil)
}

// RestoreNote rebuilds a note that was persisted before. All values are validated again; a missing
// id is replaced by a new one.
func RestoreNote(id string, title string, content string, tags []string) (*Note, error) {
	t, err := validTitle(title)
	if err != nil {
		return nil, err
	}
	c, err := validContent(content)
	if err != nil {
		return nil, err
	}
	if id == "" {
		id = uuid.NewString()
	}
	note := &Note{id: id, title: t, content: c}
	for _, tag := range tags {
		if err := note.AddTag(tag); err != nil {
			return nil, err
		}
	}
	return note, nil
}

// validTitle trims the title and checks that it is neither empty nor too long.
func validTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if err := check("title", title, "required", "note title cannot be empty"); err != nil {
		return "", err
	}
	if err := check("title", title, fmt.Sprintf("max=%d", MaxTitleLength),
		fmt.Sprintf("note title must not exceed %d characters", MaxTitleLength)); err != nil {
		return "", err
	}
	return title, nil
}

// validContent trims the content and checks that it is neither empty nor too long.
func validContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if err := check("content", content, "required", "note content cannot be empty"); err != nil {
		return "", err
	}
	if err := check("content", content, fmt.Sprintf("max=%d", MaxContentLength),
		fmt.Sprintf("note content must not exceed %d characters", MaxContentLength)); err != nil {
		return "", err
	}
	return content, nil
}

// ID returns the identifier the note was stored with.
func (n *Note) ID() string {
	return n.id
}

// Title returns the title, which is also the key of the note.
func (n *Note) Title() string {
	return n.title
}

// Content returns the text of the note.
func (n *Note) Content() string {
	return n.content
}

// Tags returns a copy of the tags in the order they were added.
func (n *Note) Tags() []string {
	return slices.Clone(n.tags)
}

// SetContent replaces the content of the note with the validated value.
func (n *Note) SetContent(content string) error {
	c, err := validContent(content)
	if err != nil {
		return err
	}
	n.content = c
	return nil
}

// CleanTag removes the surrounding whitespace of a tag. Every tag operation compares cleaned tags.
func CleanTag(tag string) string {
	return strings.TrimSpace(tag)
}

// AddTag appends the tag. It fails if the note already carries exactly this tag.
func (n *Note) AddTag(tag string) error {
	tag = CleanTag(tag)
	if tag == "" {
		return &ValidationError{Field: "tag", Reason: "tag cannot be empty"}
	}
	if n.HasTag(tag) {
		return &DuplicateTagError{Tag: tag, Title: n.title}
	}
	n.tags = append(n.tags, tag)
	return nil
}

// RemoveTag removes the tag.
func (n *Note) RemoveTag(tag string) error {
	tag = CleanTag(tag)
	i := slices.Index(n.tags, tag)
	if i < 0 {
		return &NotFoundError{Kind: KindTag, Key: tag}
	}
	n.tags = slices.Delete(n.tags, i, i+1)
	return nil
}

// HasTag reports whether the note carries exactly this tag.
func (n *Note) HasTag(tag string) bool {
	return slices.Contains(n.tags, CleanTag(tag))
}

// HasTagFold reports whether the note carries the tag, ignoring case.
func (n *Note) HasTagFold(tag string) bool {
	tag = CleanTag(tag)
	return slices.ContainsFunc(n.tags, func(t string) bool {
		return strings.EqualFold(t, tag)
	})
}

// String returns the summary line of the note.
func (n *Note) String() string {
	if len(n.tags) == 0 {
		return fmt.Sprintf("%s: %s | No tags", n.title, n.content)
	}
	return fmt.Sprintf("%s: %s | Tags: %s", n.title, n.content, strings.Join(n.tags, ", "))
}
