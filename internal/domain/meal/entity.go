// Package meal defines the meal domain entity
package meal

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Domain errors for meal operations
var (
	ErrNameRequired      = errors.New("meal name is required")
	ErrNegativeNutrition = errors.New("nutrition values must not be negative")
	ErrInvalidPrepTime   = errors.New("prep time must not be negative")
)

// Ingredient is one line of a meal's ingredient list.
// Quantity is free text as produced by the generator ("100", "0.5", "a pinch").
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

// Nutrition holds the per-meal nutrition facts in grams (calories in kcal)
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fiber    float64 `json:"fiber"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// Meal is a generated or hand-entered dish. The name is the deduplication
// key: the generation pipeline reuses an existing meal with the same name
// instead of inserting a second row. Meals are never mutated after creation.
type Meal struct {
	id              uuid.UUID
	name            string
	description     string
	cuisineType     string
	isVegetarian    bool
	nutrition       Nutrition
	ingredients     []Ingredient
	instructions    string
	prepTimeMinutes int
	createdAt       time.Time
}

// NewMeal creates a new meal with validated nutrition values
func NewMeal(
	name, description, cuisineType string,
	isVegetarian bool,
	nutrition Nutrition,
	ingredients []Ingredient,
	instructions string,
	prepTimeMinutes int,
) (*Meal, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	if nutrition.Calories < 0 || nutrition.Protein < 0 || nutrition.Fiber < 0 ||
		nutrition.Carbs < 0 || nutrition.Fats < 0 {
		return nil, ErrNegativeNutrition
	}
	if prepTimeMinutes < 0 {
		return nil, ErrInvalidPrepTime
	}

	return &Meal{
		id:              uuid.New(),
		name:            name,
		description:     description,
		cuisineType:     cuisineType,
		isVegetarian:    isVegetarian,
		nutrition:       nutrition,
		ingredients:     ingredients,
		instructions:    instructions,
		prepTimeMinutes: prepTimeMinutes,
		createdAt:       time.Now(),
	}, nil
}

// Reconstruct rebuilds a meal from persisted state
func Reconstruct(
	id uuid.UUID,
	name, description, cuisineType string,
	isVegetarian bool,
	nutrition Nutrition,
	ingredients []Ingredient,
	instructions string,
	prepTimeMinutes int,
	createdAt time.Time,
) *Meal {
	return &Meal{
		id:              id,
		name:            name,
		description:     description,
		cuisineType:     cuisineType,
		isVegetarian:    isVegetarian,
		nutrition:       nutrition,
		ingredients:     ingredients,
		instructions:    instructions,
		prepTimeMinutes: prepTimeMinutes,
		createdAt:       createdAt,
	}
}

func (m *Meal) ID() uuid.UUID             { return m.id }
func (m *Meal) Name() string              { return m.name }
func (m *Meal) Description() string       { return m.description }
func (m *Meal) CuisineType() string       { return m.cuisineType }
func (m *Meal) IsVegetarian() bool        { return m.isVegetarian }
func (m *Meal) Nutrition() Nutrition      { return m.nutrition }
func (m *Meal) Ingredients() []Ingredient { return m.ingredients }
func (m *Meal) Instructions() string      { return m.instructions }
func (m *Meal) PrepTimeMinutes() int      { return m.prepTimeMinutes }
func (m *Meal) CreatedAt() time.Time      { return m.createdAt }
