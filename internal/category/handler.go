package category

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/frahmantamala/budget-tracker/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	ListCategoriesWithSpend() ([]*CategoryWithSpend, error)
	CreateCategory(dto *CreateCategoryDTO) (*CategoryWithSpend, error)
	UpdateCategory(dto *UpdateCategoryDTO) (*Category, error)
	DeleteCategory(id int64) error
	BudgetVsSpend() ([]*BudgetRow, []*SpendRow, error)
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

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Service.ListCategoriesWithSpend()
	if err != nil {
		h.Logger.Error("ListCategories: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, categories)
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var dto CreateCategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateCategory: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.CreateCategory(&dto)
	if err != nil {
		h.Logger.Error("CreateCategory: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var dto UpdateCategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateCategory: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.Service.UpdateCategory(&dto)
	if err != nil {
		h.Logger.Error("UpdateCategory: service error", "error", err, "categoryId", dto.CategoryID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, updated)
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "categoryId")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.Logger.Error("DeleteCategory: invalid category ID", "categoryId", idStr)
		h.WriteError(w, http.StatusBadRequest, "invalid categoryId")
		return
	}

	if err := h.Service.DeleteCategory(id); err != nil {
		h.Logger.Error("DeleteCategory: service error", "error", err, "categoryId", id)
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// BudgetVsSpend responds with a two-element array: summed budget ceilings per
// category name, then summed actual spend per category name.
func (h *Handler) BudgetVsSpend(w http.ResponseWriter, r *http.Request) {
	budgets, spends, err := h.Service.BudgetVsSpend()
	if err != nil {
		h.Logger.Error("BudgetVsSpend: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, [2]interface{}{budgets, spends})
}
