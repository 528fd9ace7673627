package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platefull/mealplanner/internal/domain/meal"
	"github.com/platefull/mealplanner/internal/ports/outbound"
	apperrors "github.com/platefull/mealplanner/pkg/errors"
)

// MealHandlers handles meal catalog requests
type MealHandlers struct {
	meals    outbound.MealRepository
	validate *validator.Validate
	logger   *zap.Logger
}

// NewMealHandlers creates a new meal handlers instance
func NewMealHandlers(meals outbound.MealRepository, logger *zap.Logger) *MealHandlers {
	return &MealHandlers{
		meals:    meals,
		validate: validator.New(),
		logger:   logger,
	}
}

type createMealRequest struct {
	Name            string            `json:"name" validate:"required"`
	Description     string            `json:"description"`
	CuisineType     string            `json:"cuisine_type"`
	IsVegetarian    bool              `json:"is_vegetarian"`
	Calories        float64           `json:"calories" validate:"gte=0"`
	Protein         float64           `json:"protein" validate:"gte=0"`
	Fiber           float64           `json:"fiber" validate:"gte=0"`
	Carbs           float64           `json:"carbs" validate:"gte=0"`
	Fats            float64           `json:"fats" validate:"gte=0"`
	Ingredients     []meal.Ingredient `json:"ingredients"`
	Instructions    string            `json:"instructions"`
	PrepTimeMinutes int               `json:"prep_time_minutes" validate:"gte=0"`
}

type mealResponse struct {
	ID              uuid.UUID         `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	CuisineType     string            `json:"cuisine_type"`
	IsVegetarian    bool              `json:"is_vegetarian"`
	Calories        float64           `json:"calories"`
	Protein         float64           `json:"protein"`
	Fiber           float64           `json:"fiber"`
	Carbs           float64           `json:"carbs"`
	Fats            float64           `json:"fats"`
	Ingredients     []meal.Ingredient `json:"ingredients"`
	Instructions    string            `json:"instructions"`
	PrepTimeMinutes int               `json:"prep_time_minutes"`
	CreatedAt       time.Time         `json:"created_at"`
}

func toMealResponse(m *meal.Meal) mealResponse {
	n := m.Nutrition()
	return mealResponse{
		ID:              m.ID(),
		Name:            m.Name(),
		Description:     m.Description(),
		CuisineType:     m.CuisineType(),
		IsVegetarian:    m.IsVegetarian(),
		Calories:        n.Calories,
		Protein:         n.Protein,
		Fiber:           n.Fiber,
		Carbs:           n.Carbs,
		Fats:            n.Fats,
		Ingredients:     m.Ingredients(),
		Instructions:    m.Instructions(),
		PrepTimeMinutes: m.PrepTimeMinutes(),
		CreatedAt:       m.CreatedAt(),
	}
}

// CreateMeal handles POST /api/v1/meals
func (h *MealHandlers) CreateMeal(w http.ResponseWriter, r *http.Request) {
	var req createMealRequest
	if err := decodeJSON(r, h.validate, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	m, err := meal.NewMeal(
		req.Name,
		req.Description,
		req.CuisineType,
		req.IsVegetarian,
		meal.Nutrition{
			Calories: req.Calories,
			Protein:  req.Protein,
			Fiber:    req.Fiber,
			Carbs:    req.Carbs,
			Fats:     req.Fats,
		},
		req.Ingredients,
		req.Instructions,
		req.PrepTimeMinutes,
	)
	if err != nil {
		writeError(w, r, h.logger, apperrors.NewValidationError(err.Error()))
		return
	}

	if err := h.meals.Create(r.Context(), m); err != nil {
		writeError(w, r, h.logger, apperrors.NewDatabaseError("create meal", err))
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{
		Success: true,
		Data:    toMealResponse(m),
		Message: "Meal created successfully",
	})
}

// ListMeals handles GET /api/v1/meals
func (h *MealHandlers) ListMeals(w http.ResponseWriter, r *http.Request) {
	meals, err := h.meals.FindAll(r.Context())
	if err != nil {
		writeError(w, r, h.logger, apperrors.NewDatabaseError("list meals", err))
		return
	}

	out := make([]mealResponse, len(meals))
	for i, m := range meals {
		out[i] = toMealResponse(m)
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: out})
}

// GetMeal handles GET /api/v1/meals/{id}
func (h *MealHandlers) GetMeal(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, apperrors.NewBadRequestError("invalid meal id"))
		return
	}

	m, err := h.meals.FindByID(r.Context(), id)
	if errors.Is(err, outbound.ErrNotFound) {
		writeError(w, r, h.logger, apperrors.NewMealNotFoundError(id.String()))
		return
	}
	if err != nil {
		writeError(w, r, h.logger, apperrors.NewDatabaseError("load meal", err))
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: toMealResponse(m)})
}
