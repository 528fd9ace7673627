// Package gorm provides GORM model definitions and repository
// implementations for the application
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platefull/mealplanner/internal/domain/meal"
)

// UserModel represents the GORM model for users
type UserModel struct {
	ID            uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name          string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	IsVegetarian  bool      `gorm:"default:false"`
	ProteinTarget int       `gorm:"default:80"`
	FiberTarget   int       `gorm:"default:30"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// MealModel represents the GORM model for meals
type MealModel struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null;index"`
	Description  string    `gorm:"type:text"`
	CuisineType  string    `gorm:"type:varchar(100)"`
	IsVegetarian bool      `gorm:"default:false"`

	// Nutrition per meal (grams, calories in kcal)
	Calories float64 `gorm:"default:0"`
	Protein  float64 `gorm:"default:0"`
	Fiber    float64 `gorm:"default:0"`
	Carbs    float64 `gorm:"default:0"`
	Fats     float64 `gorm:"default:0"`

	// Ingredients stored as JSON: [{"name":"tomato","quantity":"2","unit":"whole"}]
	Ingredients IngredientList `gorm:"type:json"`

	Instructions    string `gorm:"type:text"`
	PrepTimeMinutes int    `gorm:"default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// MealPlanModel represents the GORM model for meal plan entries. There is
// deliberately no uniqueness constraint on (user, date, slot).
type MealPlanModel struct {
	ID           uuid.UUID  `gorm:"type:char(36);primaryKey"`
	UserID       uuid.UUID  `gorm:"type:char(36);not null;index"`
	Date         time.Time  `gorm:"index;not null"`
	MealType     string     `gorm:"type:varchar(20);not null"`
	MealID       *uuid.UUID `gorm:"type:char(36);index"`
	EatenOutside bool       `gorm:"default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Relationships
	User UserModel  `gorm:"foreignKey:UserID"`
	Meal *MealModel `gorm:"foreignKey:MealID"`
}

// InventoryItemModel represents the GORM model for inventory items
type InventoryItemModel struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	ItemName  string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Quantity  int       `gorm:"default:0"`
	Unit      string    `gorm:"type:varchar(50);default:'units'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IngredientList custom type for handling ingredient arrays as JSON
type IngredientList []meal.Ingredient

// Scan implements the sql.Scanner interface
func (l *IngredientList) Scan(value interface{}) error {
	if value == nil {
		*l = IngredientList{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into IngredientList", value)
	}
}

// Value implements the driver.Valuer interface
func (l IngredientList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// BeforeCreate hook for UserModel
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for MealModel
func (m *MealModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for MealPlanModel
func (p *MealPlanModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for InventoryItemModel
func (i *InventoryItemModel) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName methods for custom table names
func (UserModel) TableName() string {
	return "users"
}

func (MealModel) TableName() string {
	return "meals"
}

func (MealPlanModel) TableName() string {
	return "meal_plans"
}

func (InventoryItemModel) TableName() string {
	return "inventory"
}
