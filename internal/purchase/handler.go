package purchase

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/frahmantamala/budget-tracker/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	ListPurchases() ([]*JoinedPurchase, error)
	CreatePurchase(dto *CreatePurchaseDTO) (*JoinedPurchase, error)
	UpdatePurchase(dto *UpdatePurchaseDTO) (*JoinedPurchase, error)
	DeletePurchase(id int64) error
	CountPurchasesByDate() ([]*DateCount, error)
	SumAmountByDate() ([]*DateAmount, error)
	SpendingByCategory() ([]*CategorySpending, error)
	CountPurchasesByCategory() ([]*CategoryCount, error)
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

func (h *Handler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	purchases, err := h.Service.ListPurchases()
	if err != nil {
		h.Logger.Error("ListPurchases: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, purchases)
}

func (h *Handler) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	var dto CreatePurchaseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreatePurchase: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.CreatePurchase(&dto)
	if err != nil {
		h.Logger.Error("CreatePurchase: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdatePurchase(w http.ResponseWriter, r *http.Request) {
	var dto UpdatePurchaseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdatePurchase: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.Service.UpdatePurchase(&dto)
	if err != nil {
		h.Logger.Error("UpdatePurchase: service error", "error", err, "purchaseId", dto.PurchaseID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeletePurchase(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "purchaseId")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.Logger.Error("DeletePurchase: invalid purchase ID", "purchaseId", idStr)
		h.WriteError(w, http.StatusBadRequest, "invalid purchaseId")
		return
	}

	if err := h.Service.DeletePurchase(id); err != nil {
		h.Logger.Error("DeletePurchase: service error", "error", err, "purchaseId", id)
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CountPurchasesByDate(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Service.CountPurchasesByDate()
	if err != nil {
		h.Logger.Error("CountPurchasesByDate: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, counts)
}

func (h *Handler) SumAmountByDate(w http.ResponseWriter, r *http.Request) {
	amounts, err := h.Service.SumAmountByDate()
	if err != nil {
		h.Logger.Error("SumAmountByDate: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, amounts)
}

func (h *Handler) SpendingByCategory(w http.ResponseWriter, r *http.Request) {
	spending, err := h.Service.SpendingByCategory()
	if err != nil {
		h.Logger.Error("SpendingByCategory: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, spending)
}

func (h *Handler) CountPurchasesByCategory(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Service.CountPurchasesByCategory()
	if err != nil {
		h.Logger.Error("CountPurchasesByCategory: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, counts)
}
