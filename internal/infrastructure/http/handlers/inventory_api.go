package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platefull/mealplanner/internal/domain/inventory"
	"github.com/platefull/mealplanner/internal/ports/outbound"
	apperrors "github.com/platefull/mealplanner/pkg/errors"
)

// InventoryHandlers handles ingredient inventory requests
type InventoryHandlers struct {
	items    outbound.InventoryRepository
	validate *validator.Validate
	logger   *zap.Logger
}

// NewInventoryHandlers creates a new inventory handlers instance
func NewInventoryHandlers(items outbound.InventoryRepository, logger *zap.Logger) *InventoryHandlers {
	return &InventoryHandlers{
		items:    items,
		validate: validator.New(),
		logger:   logger,
	}
}

type createItemRequest struct {
	ItemName string `json:"item_name" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0"`
	Unit     string `json:"unit"`
}

type itemResponse struct {
	ID       uuid.UUID `json:"id"`
	ItemName string    `json:"item_name"`
	Quantity int       `json:"quantity"`
	Unit     string    `json:"unit"`
}

func toItemResponse(it *inventory.Item) itemResponse {
	return itemResponse{
		ID:       it.ID(),
		ItemName: it.ItemName(),
		Quantity: it.Quantity(),
		Unit:     it.Unit(),
	}
}

// CreateItem handles POST /api/v1/inventory
func (h *InventoryHandlers) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := decodeJSON(r, h.validate, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	it, err := inventory.NewItem(req.ItemName, req.Quantity, req.Unit)
	if err != nil {
		writeError(w, r, h.logger, apperrors.NewValidationError(err.Error()))
		return
	}

	if err := h.items.Create(r.Context(), it); err != nil {
		writeError(w, r, h.logger, apperrors.NewDatabaseError("create inventory item", err))
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{
		Success: true,
		Data:    toItemResponse(it),
		Message: "Inventory item created successfully",
	})
}

// ListItems handles GET /api/v1/inventory
func (h *InventoryHandlers) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.items.FindAll(r.Context())
	if err != nil {
		writeError(w, r, h.logger, apperrors.NewDatabaseError("list inventory", err))
		return
	}

	out := make([]itemResponse, len(items))
	for i, it := range items {
		out[i] = toItemResponse(it)
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: out})
}

// GetItem handles GET /api/v1/inventory/{id}
func (h *InventoryHandlers) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, apperrors.NewBadRequestError("invalid inventory item id"))
		return
	}

	it, err := h.items.FindByID(r.Context(), id)
	if errors.Is(err, outbound.ErrNotFound) {
		writeError(w, r, h.logger, apperrors.NewInventoryItemNotFoundError(id.String()))
		return
	}
	if err != nil {
		writeError(w, r, h.logger, apperrors.NewDatabaseError("load inventory item", err))
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: toItemResponse(it)})
}

// DeleteItem handles DELETE /api/v1/inventory/{id}
func (h *InventoryHandlers) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, apperrors.NewBadRequestError("invalid inventory item id"))
		return
	}

	err = h.items.Delete(r.Context(), id)
	if errors.Is(err, outbound.ErrNotFound) {
		writeError(w, r, h.logger, apperrors.NewInventoryItemNotFoundError(id.String()))
		return
	}
	if err != nil {
		writeError(w, r, h.logger, apperrors.NewDatabaseError("delete inventory item", err))
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Message: "Inventory item deleted successfully",
	})
}
