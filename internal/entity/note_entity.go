package entity

import (
	"time"
)

// NoteID is the canonical text form of a note identifier: a decimal integer
// in sequential mode, a UUID string in random mode. The mode is fixed at
// process start, so every call site handles the same concrete type.
type NoteID string

func (id NoteID) String() string {
	return string(id)
}

type Note struct {
	Id        NoteID
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
