package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platefull/mealplanner/internal/domain/mealplan"
	"github.com/platefull/mealplanner/internal/ports/inbound"
	apperrors "github.com/platefull/mealplanner/pkg/errors"
)

// MealPlanHandlers handles meal plan generation and listing requests
type MealPlanHandlers struct {
	planner  inbound.PlannerService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewMealPlanHandlers creates a new meal plan handlers instance
func NewMealPlanHandlers(planner inbound.PlannerService, logger *zap.Logger) *MealPlanHandlers {
	return &MealPlanHandlers{
		planner:  planner,
		validate: validator.New(),
		logger:   logger,
	}
}

type planResponse struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	Date         string     `json:"date"`
	MealType     string     `json:"meal_type"`
	MealID       *uuid.UUID `json:"meal_id"`
	EatenOutside bool       `json:"eaten_outside"`
}

func toPlanResponse(e *mealplan.Entry) planResponse {
	return planResponse{
		ID:           e.ID(),
		UserID:       e.UserID(),
		Date:         e.Date().Format("2006-01-02"),
		MealType:     string(e.Slot()),
		MealID:       e.MealID(),
		EatenOutside: e.EatenOutside(),
	}
}

type generateResponse struct {
	Message string         `json:"message"`
	Plans   []planResponse `json:"plans"`
}

type eatenOutsideRequest struct {
	EatenOutside *bool `json:"eaten_outside" validate:"required"`
}

// GenerateDailyMeals handles POST /api/v1/meal-plans/generate/{userID}.
// The target date defaults to today and can be overridden with ?date=YYYY-MM-DD.
func (h *MealPlanHandlers) GenerateDailyMeals(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, r, h.logger, apperrors.NewBadRequestError("invalid user id"))
		return
	}

	targetDate := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		targetDate, err = time.Parse("2006-01-02", raw)
		if err != nil {
			writeError(w, r, h.logger, apperrors.NewBadRequestError("date must be formatted YYYY-MM-DD"))
			return
		}
	}

	entries, err := h.planner.GenerateDailyMeals(r.Context(), userID, targetDate)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	plans := make([]planResponse, len(entries))
	for i, e := range entries {
		plans[i] = toPlanResponse(e)
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{
		Success: true,
		Data: generateResponse{
			Message: "Meals generated successfully",
			Plans:   plans,
		},
	})
}

// ListUserPlans handles GET /api/v1/meal-plans/user/{userID}.
// Optional ?start_date and ?end_date bound the range; defaults cover the
// current week starting today.
func (h *MealPlanHandlers) ListUserPlans(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, r, h.logger, apperrors.NewBadRequestError("invalid user id"))
		return
	}

	from := mealplan.DateOnly(time.Now())
	to := from.AddDate(0, 0, 6)

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		from, err = time.Parse("2006-01-02", raw)
		if err != nil {
			writeError(w, r, h.logger, apperrors.NewBadRequestError("start_date must be formatted YYYY-MM-DD"))
			return
		}
	}
	if raw := r.URL.Query().Get("end_date"); raw != "" {
		to, err = time.Parse("2006-01-02", raw)
		if err != nil {
			writeError(w, r, h.logger, apperrors.NewBadRequestError("end_date must be formatted YYYY-MM-DD"))
			return
		}
	}
	if to.Before(from) {
		writeError(w, r, h.logger, apperrors.NewBadRequestError("end_date must not precede start_date"))
		return
	}

	entries, err := h.planner.ListUserPlans(r.Context(), userID, from, to)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	out := make([]planResponse, len(entries))
	for i, e := range entries {
		out[i] = toPlanResponse(e)
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: out})
}

// SetEatenOutside handles PATCH /api/v1/meal-plans/{id}/eaten-outside
func (h *MealPlanHandlers) SetEatenOutside(w http.ResponseWriter, r *http.Request) {
	entryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, apperrors.NewBadRequestError("invalid meal plan id"))
		return
	}

	var req eatenOutsideRequest
	if err := decodeJSON(r, h.validate, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	entry, err := h.planner.SetEatenOutside(r.Context(), entryID, *req.EatenOutside)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    toPlanResponse(entry),
		Message: "Meal plan updated successfully",
	})
}
