// Package inventory defines the ingredient inventory entity
package inventory

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrItemNameRequired is returned when an item has no name
var ErrItemNameRequired = errors.New("inventory item name is required")

// Item is a named ingredient available for meal generation. Quantity and
// unit are stored for display; generation only reads the name and never
// depletes quantities.
type Item struct {
	id        uuid.UUID
	itemName  string
	quantity  int
	unit      string
	createdAt time.Time
}

// NewItem creates an inventory item. Callers are expected to normalize
// casing before insert; names are unique at the storage layer.
func NewItem(itemName string, quantity int, unit string) (*Item, error) {
	itemName = strings.TrimSpace(itemName)
	if itemName == "" {
		return nil, ErrItemNameRequired
	}
	if unit == "" {
		unit = "units"
	}

	return &Item{
		id:        uuid.New(),
		itemName:  itemName,
		quantity:  quantity,
		unit:      unit,
		createdAt: time.Now(),
	}, nil
}

// Reconstruct rebuilds an item from persisted state
func Reconstruct(id uuid.UUID, itemName string, quantity int, unit string, createdAt time.Time) *Item {
	return &Item{
		id:        id,
		itemName:  itemName,
		quantity:  quantity,
		unit:      unit,
		createdAt: createdAt,
	}
}

func (i *Item) ID() uuid.UUID        { return i.id }
func (i *Item) ItemName() string     { return i.itemName }
func (i *Item) Quantity() int        { return i.quantity }
func (i *Item) Unit() string         { return i.unit }
func (i *Item) CreatedAt() time.Time { return i.createdAt }
