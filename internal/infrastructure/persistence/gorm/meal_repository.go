package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platefull/mealplanner/internal/domain/meal"
	"github.com/platefull/mealplanner/internal/ports/outbound"
)

// MealRepository implements the meal repository interface using GORM
type MealRepository struct {
	db *gorm.DB
}

// NewMealRepository creates a new meal repository
func NewMealRepository(db *gorm.DB) outbound.MealRepository {
	return &MealRepository{db: db}
}

// Create creates a new meal
func (r *MealRepository) Create(ctx context.Context, m *meal.Meal) error {
	model := MealToModel(m)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID finds a meal by ID
func (r *MealRepository) FindByID(ctx context.Context, id uuid.UUID) (*meal.Meal, error) {
	var model MealModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, outbound.ErrNotFound
		}
		return nil, result.Error
	}

	return ModelToMeal(&model), nil
}

// FindByIDs finds meals by multiple IDs
func (r *MealRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*meal.Meal, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var models []MealModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, err
	}

	meals := make([]*meal.Meal, len(models))
	for i := range models {
		meals[i] = ModelToMeal(&models[i])
	}
	return meals, nil
}

// FindByName finds a meal by exact name. Matching is case-sensitive; the
// name column collation must not fold case.
func (r *MealRepository) FindByName(ctx context.Context, name string) (*meal.Meal, error) {
	var model MealModel

	result := r.db.WithContext(ctx).First(&model, "name = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, outbound.ErrNotFound
		}
		return nil, result.Error
	}

	return ModelToMeal(&model), nil
}

// FindAll returns all meals
func (r *MealRepository) FindAll(ctx context.Context) ([]*meal.Meal, error) {
	var models []MealModel

	if err := r.db.WithContext(ctx).Order("created_at").Find(&models).Error; err != nil {
		return nil, err
	}

	meals := make([]*meal.Meal, len(models))
	for i := range models {
		meals[i] = ModelToMeal(&models[i])
	}
	return meals, nil
}
