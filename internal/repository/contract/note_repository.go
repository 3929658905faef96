package contract

import (
	"context"

	"notes-backend/internal/entity"
)

type INoteRepository interface {
	// Save inserts or replaces the note under its id.
	Save(ctx context.Context, note *entity.Note) error
	// FindById returns nil (no error) when no note exists for id.
	FindById(ctx context.Context, id entity.NoteID) (*entity.Note, error)
	FindAll(ctx context.Context) ([]*entity.Note, error)
	// Delete reports whether a note was actually removed.
	Delete(ctx context.Context, id entity.NoteID) (bool, error)
}
