// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/platefull/mealplanner/internal/domain/mealplan"
)

// PlannerService is the entry point the HTTP layer uses for meal planning
type PlannerService interface {
	// GenerateDailyMeals generates and persists breakfast, lunch, and
	// dinner for a user on a date. All three entries commit atomically.
	GenerateDailyMeals(ctx context.Context, userID uuid.UUID, targetDate time.Time) ([]*mealplan.Entry, error)

	// ListUserPlans returns a user's entries with dates in [from, to].
	ListUserPlans(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*mealplan.Entry, error)

	// SetEatenOutside toggles the eaten-outside flag on one entry.
	SetEatenOutside(ctx context.Context, entryID uuid.UUID, eaten bool) (*mealplan.Entry, error)
}
