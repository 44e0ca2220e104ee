package note

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/frahmantamala/budget-tracker/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	ListNotes() ([]*Note, error)
	CreateNote(dto *CreateNoteDTO) (*Note, error)
	UpdateNote(dto *UpdateNoteDTO) (*Note, error)
	DeleteNote(id int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.Service.ListNotes()
	if err != nil {
		h.Logger.Error("ListNotes: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, notes)
}

func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var dto CreateNoteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateNote: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.CreateNote(&dto)
	if err != nil {
		h.Logger.Error("CreateNote: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	var dto UpdateNoteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateNote: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.Service.UpdateNote(&dto)
	if err != nil {
		h.Logger.Error("UpdateNote: service error", "error", err, "noteId", dto.NoteID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, updated)
}

func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "noteId")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.Logger.Error("DeleteNote: invalid note ID", "noteId", idStr)
		h.WriteError(w, http.StatusBadRequest, "invalid noteId")
		return
	}

	if err := h.Service.DeleteNote(id); err != nil {
		h.Logger.Error("DeleteNote: service error", "error", err, "noteId", id)
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
