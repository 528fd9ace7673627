package gorm

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platefull/mealplanner/internal/domain/mealplan"
	"github.com/platefull/mealplanner/internal/ports/outbound"
)

// MealPlanRepository implements the meal plan repository interface using GORM
type MealPlanRepository struct {
	db *gorm.DB
}

// NewMealPlanRepository creates a new meal plan repository
func NewMealPlanRepository(db *gorm.DB) outbound.MealPlanRepository {
	return &MealPlanRepository{db: db}
}

// Create creates a new meal plan entry
func (r *MealPlanRepository) Create(ctx context.Context, e *mealplan.Entry) error {
	model := EntryToModel(e)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID finds a meal plan entry by ID
func (r *MealPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*mealplan.Entry, error) {
	var model MealPlanModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, outbound.ErrNotFound
		}
		return nil, result.Error
	}

	return ModelToEntry(&model), nil
}

// FindByUserAndDateRange returns a user's entries with dates in [from, to]
func (r *MealPlanRepository) FindByUserAndDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*mealplan.Entry, error) {
	var models []MealPlanModel

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, mealplan.DateOnly(from), mealplan.DateOnly(to)).
		Order("date, created_at").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*mealplan.Entry, len(models))
	for i := range models {
		entries[i] = ModelToEntry(&models[i])
	}
	return entries, nil
}

// Update saves an entry's mutable state (the eaten-outside flag)
func (r *MealPlanRepository) Update(ctx context.Context, e *mealplan.Entry) error {
	result := r.db.WithContext(ctx).
		Model(&MealPlanModel{}).
		Where("id = ?", e.ID()).
		Update("eaten_outside", e.EatenOutside())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return outbound.ErrNotFound
	}
	return nil
}
