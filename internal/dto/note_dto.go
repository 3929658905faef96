package dto

import (
	"time"

	"notes-backend/internal/entity"
)

type CreateNoteRequest struct {
	Title string `json:"title" validate:"required,min=1,max=500"`
	// Content must be present in the request body, but may be empty.
	Content *string `json:"content" validate:"required"`
}

// UpdateNoteRequest is a partial update: nil fields keep their current
// values. A supplied title must still satisfy the length constraint.
type UpdateNoteRequest struct {
	Title   *string `json:"title" validate:"omitempty,min=1,max=500"`
	Content *string `json:"content"`
}

type NoteResponse struct {
	Id        entity.NoteID `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
