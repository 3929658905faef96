package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"notes-backend/internal/dto"
	"notes-backend/internal/entity"
	"notes-backend/internal/mapper"
	"notes-backend/internal/pkg/identifier"
	"notes-backend/internal/pkg/logger"
	"notes-backend/internal/pkg/serverutils"
	"notes-backend/internal/repository/contract"
)

type INoteService interface {
	List(ctx context.Context) ([]*dto.NoteResponse, error)
	Show(ctx context.Context, id entity.NoteID) (*dto.NoteResponse, error)
	Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Update(ctx context.Context, id entity.NoteID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, id entity.NoteID) error
}

type noteService struct {
	noteRepository   contract.INoteRepository
	idGenerator      identifier.Generator
	publisherService IPublisherService
	log              logger.ILogger
}

func NewNoteService(
	noteRepository contract.INoteRepository,
	idGenerator identifier.Generator,
	publisherService IPublisherService,
	log logger.ILogger,
) INoteService {
	return &noteService{
		noteRepository:   noteRepository,
		idGenerator:      idGenerator,
		publisherService: publisherService,
		log:              log,
	}
}

func (s *noteService) List(ctx context.Context) ([]*dto.NoteResponse, error) {
	notes, err := s.noteRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// The mapping is unordered; sort for stable responses.
	sort.Slice(notes, func(i, j int) bool {
		if notes[i].CreatedAt.Equal(notes[j].CreatedAt) {
			return notes[i].Id < notes[j].Id
		}
		return notes[i].CreatedAt.Before(notes[j].CreatedAt)
	})

	return mapper.ToNoteResponses(notes), nil
}

func (s *noteService) Show(ctx context.Context, id entity.NoteID) (*dto.NoteResponse, error) {
	note, err := s.noteRepository.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, serverutils.ErrNotFound
	}

	return mapper.ToNoteResponse(note), nil
}

func (s *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	content := ""
	if req.Content != nil {
		content = *req.Content
	}

	now := time.Now().UTC()
	note := entity.Note{
		Id:        s.idGenerator.Next(),
		Title:     req.Title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.noteRepository.Save(ctx, &note); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, dto.NoteEventCreated, note.Id)

	return mapper.ToNoteResponse(&note), nil
}

func (s *noteService) Update(ctx context.Context, id entity.NoteID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	note, err := s.noteRepository.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, serverutils.ErrNotFound
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	// Refreshed unconditionally: an empty patch still bumps the timestamp.
	note.UpdatedAt = time.Now().UTC()

	if err := s.noteRepository.Save(ctx, note); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, dto.NoteEventUpdated, note.Id)

	return mapper.ToNoteResponse(note), nil
}

func (s *noteService) Delete(ctx context.Context, id entity.NoteID) error {
	deleted, err := s.noteRepository.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return serverutils.ErrNotFound
	}

	s.publishEvent(ctx, dto.NoteEventDeleted, id)

	return nil
}

// publishEvent emits a lifecycle message. Eventing is auxiliary: failures
// are logged and never fail the request.
func (s *noteService) publishEvent(ctx context.Context, event string, id entity.NoteID) {
	payload, err := json.Marshal(dto.NoteEventMessage{
		Event:      event,
		NoteId:     id,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		s.log.Warn("note_service", "failed to marshal note event", map[string]interface{}{
			"event": event,
			"error": err.Error(),
		})
		return
	}

	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.log.Warn("note_service", "failed to publish note event", map[string]interface{}{
			"event":   event,
			"note_id": id.String(),
			"error":   err.Error(),
		})
	}
}
