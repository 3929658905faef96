package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"notes-backend/internal/dto"
	"notes-backend/internal/entity"
	"notes-backend/internal/pkg/identifier"
	"notes-backend/internal/pkg/serverutils"
	"notes-backend/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }

type capturingPublisher struct {
	payloads [][]byte
}

func (p *capturingPublisher) Publish(_ context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

func newTestService(useIntIds bool) (INoteService, *capturingPublisher) {
	pub := &capturingPublisher{}
	svc := NewNoteService(memory.NewNoteRepository(), identifier.New(useIntIds), pub, noopLogger{})
	return svc, pub
}

func strPtr(s string) *string {
	return &s
}

func TestCreateThenShow(t *testing.T) {
	svc, pub := newTestService(false)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateNoteRequest{Title: "A", Content: strPtr("x")})
	require.NoError(t, err)
	assert.NotEmpty(t, created.Id)
	assert.Equal(t, "A", created.Title)
	assert.Equal(t, "x", created.Content)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := svc.Show(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, created.Id, got.Id)
	assert.Equal(t, "A", got.Title)
	assert.Equal(t, "x", got.Content)

	require.Len(t, pub.payloads, 1)
	var evt dto.NoteEventMessage
	require.NoError(t, json.Unmarshal(pub.payloads[0], &evt))
	assert.Equal(t, dto.NoteEventCreated, evt.Event)
	assert.Equal(t, created.Id, evt.NoteId)
}

func TestShowUnknownIdIsNotFound(t *testing.T) {
	svc, _ := newTestService(false)

	_, err := svc.Show(context.Background(), entity.NoteID("9f4c1c2e-60c4-4d3a-9c7a-0b8f6f8e1a11"))
	assert.True(t, errors.Is(err, serverutils.ErrNotFound))
}

func TestUpdatePartial(t *testing.T) {
	svc, _ := newTestService(false)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateNoteRequest{Title: "A", Content: strPtr("x")})
	require.NoError(t, err)

	// Content-only update keeps the title.
	updated, err := svc.Update(ctx, created.Id, &dto.UpdateNoteRequest{Content: strPtr("y")})
	require.NoError(t, err)
	assert.Equal(t, "A", updated.Title)
	assert.Equal(t, "y", updated.Content)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	// Title-only update keeps the content.
	updated, err = svc.Update(ctx, created.Id, &dto.UpdateNoteRequest{Title: strPtr("B")})
	require.NoError(t, err)
	assert.Equal(t, "B", updated.Title)
	assert.Equal(t, "y", updated.Content)
}

func TestUpdateWithNoFieldsStillRefreshesTimestamp(t *testing.T) {
	svc, _ := newTestService(false)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateNoteRequest{Title: "A", Content: strPtr("x")})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.Id, &dto.UpdateNoteRequest{})
	require.NoError(t, err)
	assert.Equal(t, "A", updated.Title)
	assert.Equal(t, "x", updated.Content)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestUpdateUnknownIdIsNotFound(t *testing.T) {
	svc, pub := newTestService(true)

	_, err := svc.Update(context.Background(), entity.NoteID("99"), &dto.UpdateNoteRequest{Title: strPtr("B")})
	assert.True(t, errors.Is(err, serverutils.ErrNotFound))
	assert.Empty(t, pub.payloads)
}

func TestDeleteLifecycle(t *testing.T) {
	svc, _ := newTestService(false)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateNoteRequest{Title: "A", Content: strPtr("x")})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.Id))

	_, err = svc.Show(ctx, created.Id)
	assert.True(t, errors.Is(err, serverutils.ErrNotFound))

	// Deleting twice fails the same way.
	err = svc.Delete(ctx, created.Id)
	assert.True(t, errors.Is(err, serverutils.ErrNotFound))
}

func TestListTracksCreatesAndDeletes(t *testing.T) {
	svc, _ := newTestService(false)
	ctx := context.Background()

	notes, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)

	first, _ := svc.Create(ctx, &dto.CreateNoteRequest{Title: "one", Content: strPtr("")})
	svc.Create(ctx, &dto.CreateNoteRequest{Title: "two", Content: strPtr("")})
	svc.Create(ctx, &dto.CreateNoteRequest{Title: "three", Content: strPtr("")})

	notes, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, notes, 3)

	require.NoError(t, svc.Delete(ctx, first.Id))

	notes, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, notes, 2)
}

func TestSequentialIdsNeverReused(t *testing.T) {
	svc, _ := newTestService(true)
	ctx := context.Background()

	first, err := svc.Create(ctx, &dto.CreateNoteRequest{Title: "first", Content: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, entity.NoteID("1"), first.Id)

	// Deleting the first note must not free its id for reuse.
	require.NoError(t, svc.Delete(ctx, first.Id))

	second, err := svc.Create(ctx, &dto.CreateNoteRequest{Title: "second", Content: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, entity.NoteID("2"), second.Id)
}
