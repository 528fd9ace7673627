// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/platefull/mealplanner/internal/domain/inventory"
	"github.com/platefull/mealplanner/internal/domain/meal"
	"github.com/platefull/mealplanner/internal/domain/mealplan"
	"github.com/platefull/mealplanner/internal/domain/user"
)

// ErrNotFound is returned by repositories when a record is absent
var ErrNotFound = errors.New("record not found")

// UserRepository defines the interface for user persistence
type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindAll(ctx context.Context) ([]*user.User, error)
}

// MealRepository defines the interface for meal persistence
type MealRepository interface {
	Create(ctx context.Context, m *meal.Meal) error
	FindByID(ctx context.Context, id uuid.UUID) (*meal.Meal, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*meal.Meal, error)
	// FindByName looks a meal up by its exact, case-sensitive name.
	FindByName(ctx context.Context, name string) (*meal.Meal, error)
	FindAll(ctx context.Context) ([]*meal.Meal, error)
}

// MealPlanRepository defines the interface for meal plan persistence
type MealPlanRepository interface {
	Create(ctx context.Context, e *mealplan.Entry) error
	FindByID(ctx context.Context, id uuid.UUID) (*mealplan.Entry, error)
	// FindByUserAndDateRange returns entries for a user with dates in
	// [from, to] inclusive, in storage order.
	FindByUserAndDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*mealplan.Entry, error)
	Update(ctx context.Context, e *mealplan.Entry) error
}

// InventoryRepository defines the interface for inventory persistence
type InventoryRepository interface {
	Create(ctx context.Context, item *inventory.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*inventory.Item, error)
	FindAll(ctx context.Context) ([]*inventory.Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Repositories bundles the per-entity repositories bound to one storage
// session, so a unit of work can hand a transactional set to a callback.
type Repositories struct {
	Users     UserRepository
	Meals     MealRepository
	MealPlans MealPlanRepository
	Inventory InventoryRepository
}

// UnitOfWork runs a function against a transactional repository set.
// The transaction commits when fn returns nil and rolls back otherwise.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(r Repositories) error) error
}
