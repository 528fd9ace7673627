package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/platefull/mealplanner/internal/ports/outbound"
)

// UnitOfWork runs callbacks inside one database transaction, handing them a
// repository set bound to that transaction. The transaction commits when
// the callback returns nil and rolls back on any error or panic.
type UnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a unit of work over the given connection
func NewUnitOfWork(db *gorm.DB) outbound.UnitOfWork {
	return &UnitOfWork{db: db}
}

// NewRepositories builds a repository set bound to the given connection
func NewRepositories(db *gorm.DB) outbound.Repositories {
	return outbound.Repositories{
		Users:     NewUserRepository(db),
		Meals:     NewMealRepository(db),
		MealPlans: NewMealPlanRepository(db),
		Inventory: NewInventoryRepository(db),
	}
}

// Do runs fn inside a transaction
func (u *UnitOfWork) Do(ctx context.Context, fn func(r outbound.Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
