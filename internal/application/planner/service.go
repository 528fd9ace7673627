// Package planner implements daily meal plan generation: constraint
// resolution, slot-by-slot generation, meal deduplication, and atomic
// persistence of the day's entries.
package planner

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platefull/mealplanner/internal/domain/meal"
	"github.com/platefull/mealplanner/internal/domain/mealplan"
	"github.com/platefull/mealplanner/internal/ports/outbound"
	apperrors "github.com/platefull/mealplanner/pkg/errors"
)

// historyWindowDays is the trailing lookback for the repetition hint
const historyWindowDays = 7

// Service orchestrates daily meal generation. It implements
// inbound.PlannerService.
type Service struct {
	repos     outbound.Repositories
	uow       outbound.UnitOfWork
	generator outbound.MealGenerator
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates a planner service
func NewService(
	repos outbound.Repositories,
	uow outbound.UnitOfWork,
	generator outbound.MealGenerator,
	logger *zap.Logger,
) *Service {
	return &Service{
		repos:     repos,
		uow:       uow,
		generator: generator,
		logger:    logger.Named("planner"),
		now:       time.Now,
	}
}

// GenerateDailyMeals generates breakfast, lunch, and dinner for a user on
// targetDate. The recent-meals and inventory snapshot is taken once and
// shared by all three slots; a meal generated for one slot is not added to
// the exclusion list before the next. All inserts commit in a single
// transaction: a storage error at any slot persists nothing.
func (s *Service) GenerateDailyMeals(ctx context.Context, userID uuid.UUID, targetDate time.Time) ([]*mealplan.Entry, error) {
	var entries []*mealplan.Entry

	err := s.uow.Do(ctx, func(r outbound.Repositories) error {
		u, err := r.Users.FindByID(ctx, userID)
		if errors.Is(err, outbound.ErrNotFound) {
			return apperrors.NewUserNotFoundError(userID.String())
		}
		if err != nil {
			return apperrors.NewDatabaseError("load user", err)
		}

		recentMeals, err := s.recentMealNames(ctx, r, userID)
		if err != nil {
			return err
		}

		items, err := r.Inventory.FindAll(ctx)
		if err != nil {
			return apperrors.NewDatabaseError("list inventory", err)
		}
		ingredients := make([]string, len(items))
		for i, item := range items {
			ingredients[i] = item.ItemName()
		}

		for _, slot := range mealplan.Slots() {
			record := s.generator.GenerateMeal(ctx, outbound.MealRequest{
				IsVegetarian:         u.IsVegetarian(),
				ProteinTarget:        u.ProteinTarget(),
				FiberTarget:          u.FiberTarget(),
				RecentMeals:          recentMeals,
				AvailableIngredients: ingredients,
				Slot:                 slot,
			})

			resolved, err := s.resolveMeal(ctx, r, record)
			if err != nil {
				return err
			}

			mealID := resolved.ID()
			entry, err := mealplan.NewEntry(userID, targetDate, slot, &mealID)
			if err != nil {
				return apperrors.Wrap(err, "build meal plan entry")
			}
			if err := r.MealPlans.Create(ctx, entry); err != nil {
				return apperrors.NewDatabaseError("insert meal plan entry", err)
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		// A missing user is the caller's error; anything else failed the
		// generation itself and is reported as such.
		if apperrors.Is(err, apperrors.CodeUserNotFound) {
			return nil, err
		}
		return nil, apperrors.NewGenerationFailedError(err)
	}

	s.logger.Info("daily meals generated",
		zap.String("user_id", userID.String()),
		zap.Time("date", mealplan.DateOnly(targetDate)),
		zap.Int("entries", len(entries)))

	return entries, nil
}

// recentMealNames returns the distinct names of meals served to the user in
// the trailing window. The window is anchored to now, not to the target
// date, so generating for a past or future day still avoids recent repeats.
func (s *Service) recentMealNames(ctx context.Context, r outbound.Repositories, userID uuid.UUID) ([]string, error) {
	to := mealplan.DateOnly(s.now())
	from := to.AddDate(0, 0, -historyWindowDays)

	plans, err := r.MealPlans.FindByUserAndDateRange(ctx, userID, from, to)
	if err != nil {
		return nil, apperrors.NewDatabaseError("load meal history", err)
	}

	var mealIDs []uuid.UUID
	for _, p := range plans {
		if p.MealID() != nil {
			mealIDs = append(mealIDs, *p.MealID())
		}
	}
	if len(mealIDs) == 0 {
		return nil, nil
	}

	meals, err := r.Meals.FindByIDs(ctx, mealIDs)
	if err != nil {
		return nil, apperrors.NewDatabaseError("load recent meals", err)
	}

	seen := make(map[string]bool, len(meals))
	var names []string
	for _, m := range meals {
		if !seen[m.Name()] {
			seen[m.Name()] = true
			names = append(names, m.Name())
		}
	}
	return names, nil
}

// resolveMeal deduplicates a generated candidate against persisted meals by
// exact name. On a hit the existing row wins over the candidate's data; on
// a miss the candidate is inserted and returned with its assigned identity.
// Matching is case-sensitive as produced by the model: near-duplicates
// (casing, pluralization) are distinct meals.
func (s *Service) resolveMeal(ctx context.Context, r outbound.Repositories, record outbound.MealRecord) (*meal.Meal, error) {
	existing, err := r.Meals.FindByName(ctx, record.Name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, outbound.ErrNotFound) {
		return nil, apperrors.NewDatabaseError("look up meal by name", err)
	}

	candidate, err := meal.NewMeal(
		record.Name,
		record.Description,
		record.CuisineType,
		record.IsVegetarian,
		meal.Nutrition{
			Calories: record.Calories,
			Protein:  record.Protein,
			Fiber:    record.Fiber,
			Carbs:    record.Carbs,
			Fats:     record.Fats,
		},
		record.Ingredients,
		record.Instructions,
		record.PrepTimeMinutes,
	)
	if err != nil {
		return nil, apperrors.Wrap(err, "build meal from generated record")
	}

	if err := r.Meals.Create(ctx, candidate); err != nil {
		return nil, apperrors.NewDatabaseError("insert meal", err)
	}
	return candidate, nil
}

// ListUserPlans returns a user's entries with dates in [from, to]
func (s *Service) ListUserPlans(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*mealplan.Entry, error) {
	plans, err := s.repos.MealPlans.FindByUserAndDateRange(ctx, userID, mealplan.DateOnly(from), mealplan.DateOnly(to))
	if err != nil {
		return nil, apperrors.NewDatabaseError("list meal plans", err)
	}
	return plans, nil
}

// SetEatenOutside toggles the eaten-outside flag on one entry
func (s *Service) SetEatenOutside(ctx context.Context, entryID uuid.UUID, eaten bool) (*mealplan.Entry, error) {
	entry, err := s.repos.MealPlans.FindByID(ctx, entryID)
	if errors.Is(err, outbound.ErrNotFound) {
		return nil, apperrors.NewMealPlanNotFoundError(entryID.String())
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError("load meal plan entry", err)
	}

	entry.SetEatenOutside(eaten)
	if err := s.repos.MealPlans.Update(ctx, entry); err != nil {
		return nil, apperrors.NewDatabaseError("update meal plan entry", err)
	}
	return entry, nil
}
