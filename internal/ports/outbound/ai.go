package outbound

import (
	"context"

	"github.com/platefull/mealplanner/internal/domain/meal"
	"github.com/platefull/mealplanner/internal/domain/mealplan"
)

// TextCompleter is the capability both LLM backends expose: a prompt in,
// the raw response text out. The gateway depends only on this interface.
type TextCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// MealRequest carries the constraints for one slot's generation
type MealRequest struct {
	IsVegetarian         bool
	ProteinTarget        int
	FiberTarget          int
	RecentMeals          []string
	AvailableIngredients []string
	Slot                 mealplan.Slot
}

// MealRecord is the structured output of one generation call. Field names
// and JSON tags match the schema embedded in the prompt, so the record
// unmarshals directly from the model's JSON payload.
type MealRecord struct {
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	CuisineType     string            `json:"cuisine_type"`
	IsVegetarian    bool              `json:"is_vegetarian"`
	Calories        float64           `json:"calories"`
	Protein         float64           `json:"protein"`
	Fiber           float64           `json:"fiber"`
	Carbs           float64           `json:"carbs"`
	Fats            float64           `json:"fats"`
	Ingredients     []meal.Ingredient `json:"ingredients"`
	Instructions    string            `json:"instructions"`
	PrepTimeMinutes int               `json:"prep_time_minutes"`
}

// MealGenerator produces a meal record for a slot. Implementations never
// return an error: any internal failure yields a static fallback record,
// so callers can treat generation as infallible.
type MealGenerator interface {
	GenerateMeal(ctx context.Context, req MealRequest) MealRecord
}
