package note

import "github.com/frahmantamala/budget-tracker/internal"

// CreateNoteDTO is the request payload for creating a note.
type CreateNoteDTO struct {
	CategoryID int64  `json:"categoryId"`
	Category   string `json:"category"`
	Note       string `json:"note"`
}

func (dto CreateNoteDTO) Validate() error {
	if dto.CategoryID == 0 {
		return internal.NewValidationError("categoryId is required")
	}
	if dto.Category == "" {
		return internal.NewValidationError("category is required")
	}
	if dto.Note == "" {
		return internal.NewValidationError("note is required")
	}
	return nil
}

// UpdateNoteDTO replaces the category label and the note text. The
// categoryId is immutable after creation: a note cannot move to another
// category through this operation.
type UpdateNoteDTO struct {
	NoteID   int64  `json:"noteId"`
	Category string `json:"category"`
	Note     string `json:"note"`
}

func (dto UpdateNoteDTO) Validate() error {
	if dto.NoteID == 0 {
		return internal.NewValidationError("noteId is required")
	}
	if dto.Category == "" {
		return internal.NewValidationError("category is required")
	}
	if dto.Note == "" {
		return internal.NewValidationError("note is required")
	}
	return nil
}
