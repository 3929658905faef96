package dto

import (
	"time"

	"notes-backend/internal/entity"
)

// NoteEventMessage is the payload published on the note-events topic for
// every successful create/update/delete.
type NoteEventMessage struct {
	Event      string        `json:"event"`
	NoteId     entity.NoteID `json:"note_id"`
	OccurredAt time.Time     `json:"occurred_at"`
}

const (
	NoteEventCreated = "note.created"
	NoteEventUpdated = "note.updated"
	NoteEventDeleted = "note.deleted"
)
