package note

import (
	"errors"
	"log/slog"

	"github.com/frahmantamala/budget-tracker/internal"
)

var ErrNoteNotFound = errors.New("note not found")

type RepositoryAPI interface {
	List() ([]*Note, error)
	Create(n *Note) error
	Update(n *Note) (*Note, error)
	Delete(id int64) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) ListNotes() ([]*Note, error) {
	notes, err := s.repo.List()
	if err != nil {
		s.logger.Error("failed to list notes", "error", err)
		return nil, internal.NewInternalError(internal.GenericStoreError, err)
	}
	if notes == nil {
		notes = []*Note{}
	}
	return notes, nil
}

// CreateNote inserts a note and returns the inserted row directly; there is
// no derived field to re-read.
func (s *Service) CreateNote(dto *CreateNoteDTO) (*Note, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("note validation failed", "error", err)
		return nil, err
	}

	n := &Note{
		CategoryID: dto.CategoryID,
		Category:   dto.Category,
		Note:       dto.Note,
	}

	if err := s.repo.Create(n); err != nil {
		s.logger.Error("failed to create note", "error", err, "categoryId", dto.CategoryID)
		return nil, internal.NewInternalError(internal.GenericStoreError, err)
	}

	s.logger.Info("note created", "noteId", n.NoteID, "categoryId", n.CategoryID)
	return n, nil
}

// UpdateNote replaces the category label and the note text of an existing
// note.
func (s *Service) UpdateNote(dto *UpdateNoteDTO) (*Note, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("note validation failed", "error", err)
		return nil, err
	}

	n := &Note{
		NoteID:   dto.NoteID,
		Category: dto.Category,
		Note:     dto.Note,
	}

	updated, err := s.repo.Update(n)
	if err != nil {
		if errors.Is(err, ErrNoteNotFound) {
			return nil, internal.NewNotFoundError("note not found")
		}
		s.logger.Error("failed to update note", "error", err, "noteId", dto.NoteID)
		return nil, internal.NewInternalError(internal.GenericStoreError, err)
	}

	return updated, nil
}

func (s *Service) DeleteNote(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete note", "error", err, "noteId", id)
		return internal.NewInternalError(internal.GenericStoreError, err)
	}
	return nil
}
