package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platefull/mealplanner/internal/domain/inventory"
	"github.com/platefull/mealplanner/internal/ports/outbound"
)

// InventoryRepository implements the inventory repository interface using GORM
type InventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) outbound.InventoryRepository {
	return &InventoryRepository{db: db}
}

// Create creates a new inventory item
func (r *InventoryRepository) Create(ctx context.Context, item *inventory.Item) error {
	model := ItemToModel(item)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID finds an inventory item by ID
func (r *InventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Item, error) {
	var model InventoryItemModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, outbound.ErrNotFound
		}
		return nil, result.Error
	}

	return ModelToItem(&model), nil
}

// FindAll returns all inventory items in storage order
func (r *InventoryRepository) FindAll(ctx context.Context) ([]*inventory.Item, error) {
	var models []InventoryItemModel

	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}

	items := make([]*inventory.Item, len(models))
	for i := range models {
		items[i] = ModelToItem(&models[i])
	}
	return items, nil
}

// Delete removes an inventory item
func (r *InventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&InventoryItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return outbound.ErrNotFound
	}
	return nil
}
