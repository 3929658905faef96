package memory

import (
	"context"

	"notes-backend/internal/entity"
	"notes-backend/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// NoteRepository keeps notes in an in-process cache with no expiration and
// no janitor. State is intentionally ephemeral: its lifetime equals the
// process lifetime. Individual mapping operations are locked by the cache.
type NoteRepository struct {
	cache *cache.Cache
}

func NewNoteRepository() contract.INoteRepository {
	return &NoteRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (r *NoteRepository) Save(_ context.Context, note *entity.Note) error {
	stored := *note
	r.cache.Set(note.Id.String(), &stored, cache.NoExpiration)
	return nil
}

func (r *NoteRepository) FindById(_ context.Context, id entity.NoteID) (*entity.Note, error) {
	x, found := r.cache.Get(id.String())
	if !found {
		return nil, nil
	}
	// Hand out a copy so callers cannot mutate the stored record in place.
	note := *(x.(*entity.Note))
	return &note, nil
}

func (r *NoteRepository) FindAll(_ context.Context) ([]*entity.Note, error) {
	items := r.cache.Items()
	notes := make([]*entity.Note, 0, len(items))
	for _, item := range items {
		note := *(item.Object.(*entity.Note))
		notes = append(notes, &note)
	}
	return notes, nil
}

func (r *NoteRepository) Delete(_ context.Context, id entity.NoteID) (bool, error) {
	if _, found := r.cache.Get(id.String()); !found {
		return false, nil
	}
	r.cache.Delete(id.String())
	return true, nil
}
