package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platefull/mealplanner/internal/domain/user"
	"github.com/platefull/mealplanner/internal/ports/outbound"
	apperrors "github.com/platefull/mealplanner/pkg/errors"
)

// UserHandlers handles user CRUD requests
type UserHandlers struct {
	users    outbound.UserRepository
	validate *validator.Validate
	logger   *zap.Logger
}

// NewUserHandlers creates a new user handlers instance
func NewUserHandlers(users outbound.UserRepository, logger *zap.Logger) *UserHandlers {
	return &UserHandlers{
		users:    users,
		validate: validator.New(),
		logger:   logger,
	}
}

type createUserRequest struct {
	Name          string `json:"name" validate:"required"`
	IsVegetarian  bool   `json:"is_vegetarian"`
	ProteinTarget int    `json:"protein_target" validate:"required,gt=0"`
	FiberTarget   int    `json:"fiber_target" validate:"required,gt=0"`
}

type userResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	IsVegetarian  bool      `json:"is_vegetarian"`
	ProteinTarget int       `json:"protein_target"`
	FiberTarget   int       `json:"fiber_target"`
}

func toUserResponse(u *user.User) userResponse {
	return userResponse{
		ID:            u.ID(),
		Name:          u.Name(),
		IsVegetarian:  u.IsVegetarian(),
		ProteinTarget: u.ProteinTarget(),
		FiberTarget:   u.FiberTarget(),
	}
}

// CreateUser handles POST /api/v1/users
func (h *UserHandlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, h.validate, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	u, err := user.NewUser(req.Name, req.IsVegetarian, req.ProteinTarget, req.FiberTarget)
	if err != nil {
		writeError(w, r, h.logger, apperrors.NewValidationError(err.Error()))
		return
	}

	if err := h.users.Create(r.Context(), u); err != nil {
		writeError(w, r, h.logger, apperrors.NewDatabaseError("create user", err))
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{
		Success: true,
		Data:    toUserResponse(u),
		Message: "User created successfully",
	})
}

// ListUsers handles GET /api/v1/users
func (h *UserHandlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.FindAll(r.Context())
	if err != nil {
		writeError(w, r, h.logger, apperrors.NewDatabaseError("list users", err))
		return
	}

	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: out})
}

// GetUser handles GET /api/v1/users/{id}
func (h *UserHandlers) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, apperrors.NewBadRequestError("invalid user id"))
		return
	}

	u, err := h.users.FindByID(r.Context(), id)
	if errors.Is(err, outbound.ErrNotFound) {
		writeError(w, r, h.logger, apperrors.NewUserNotFoundError(id.String()))
		return
	}
	if err != nil {
		writeError(w, r, h.logger, apperrors.NewDatabaseError("load user", err))
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: toUserResponse(u)})
}
