package mapper

import (
	"notes-backend/internal/dto"
	"notes-backend/internal/entity"
)

func ToNoteResponse(note *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		Id:        note.Id,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

func ToNoteResponses(notes []*entity.Note) []*dto.NoteResponse {
	res := make([]*dto.NoteResponse, 0, len(notes))
	for _, note := range notes {
		res = append(res, ToNoteResponse(note))
	}
	return res
}
