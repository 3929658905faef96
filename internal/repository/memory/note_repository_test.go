package memory

import (
	"context"
	"testing"
	"time"

	"notes-backend/internal/entity"

	"github.com/stretchr/testify/assert"
)

func newNote(id, title string) *entity.Note {
	now := time.Now().UTC()
	return &entity.Note{
		Id:        entity.NoteID(id),
		Title:     title,
		Content:   "body",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestSaveAndFindById(t *testing.T) {
	repo := NewNoteRepository()
	ctx := context.Background()

	err := repo.Save(ctx, newNote("n1", "first"))
	assert.NoError(t, err)

	got, err := repo.FindById(ctx, "n1")
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, "first", got.Title)

	missing, err := repo.FindById(ctx, "nope")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFindByIdReturnsCopy(t *testing.T) {
	repo := NewNoteRepository()
	ctx := context.Background()

	assert.NoError(t, repo.Save(ctx, newNote("n1", "original")))

	got, _ := repo.FindById(ctx, "n1")
	got.Title = "mutated locally"

	// Stored record must be untouched until an explicit Save.
	again, _ := repo.FindById(ctx, "n1")
	assert.Equal(t, "original", again.Title)
}

func TestSaveReplacesExisting(t *testing.T) {
	repo := NewNoteRepository()
	ctx := context.Background()

	assert.NoError(t, repo.Save(ctx, newNote("n1", "before")))
	assert.NoError(t, repo.Save(ctx, newNote("n1", "after")))

	got, _ := repo.FindById(ctx, "n1")
	assert.Equal(t, "after", got.Title)

	all, _ := repo.FindAll(ctx)
	assert.Len(t, all, 1)
}

func TestDelete(t *testing.T) {
	repo := NewNoteRepository()
	ctx := context.Background()

	assert.NoError(t, repo.Save(ctx, newNote("n1", "first")))

	deleted, err := repo.Delete(ctx, "n1")
	assert.NoError(t, err)
	assert.True(t, deleted)

	got, _ := repo.FindById(ctx, "n1")
	assert.Nil(t, got)

	// Second delete reports nothing removed.
	deleted, err = repo.Delete(ctx, "n1")
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestFindAll(t *testing.T) {
	repo := NewNoteRepository()
	ctx := context.Background()

	all, err := repo.FindAll(ctx)
	assert.NoError(t, err)
	assert.Empty(t, all)

	assert.NoError(t, repo.Save(ctx, newNote("n1", "a")))
	assert.NoError(t, repo.Save(ctx, newNote("n2", "b")))
	assert.NoError(t, repo.Save(ctx, newNote("n3", "c")))

	all, err = repo.FindAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 3)
}
