package ai

import (
	"fmt"
	"strings"

	"github.com/platefull/mealplanner/internal/ports/outbound"
)

// BuildMealPrompt renders the generation instruction for one slot. The
// recent-meal list is an exclusion hint to reduce repetition, not a hard
// constraint. The embedded schema matches outbound.MealRecord so the
// parser has a fixed target shape.
func BuildMealPrompt(req outbound.MealRequest) string {
	dietType := "any"
	if req.IsVegetarian {
		dietType = "vegetarian (no meat, fish, or eggs)"
	}

	prevMeals := "None"
	if len(req.RecentMeals) > 0 {
		prevMeals = strings.Join(req.RecentMeals, ", ")
	}

	ingredients := "any common ingredients"
	if len(req.AvailableIngredients) > 0 {
		ingredients = strings.Join(req.AvailableIngredients, ", ")
	}

	return fmt.Sprintf(`Create a %s meal plan with the following requirements:

Diet: %s
Target: High protein (%dg) and high fiber (%dg)
Previous meals to avoid repetition: %s
Available ingredients to prioritize: %s
Do not use any ingredients not listed as available and do not use all the ingredients in one meal.
Return the actual values of protein, fiber, calories, etc. Do not return estimates or placeholder values.

Return ONLY a JSON object with this exact structure:
{
    "name": "Meal name",
    "description": "Brief description",
    "cuisine_type": "Cuisine type",
    "is_vegetarian": %t,
    "calories": 500,
    "protein": %d,
    "fiber": %d,
    "carbs": 60,
    "fats": 20,
    "ingredients": [
        {"name": "ingredient1", "quantity": "100", "unit": "g"},
        {"name": "ingredient2", "quantity": "2", "unit": "cups"}
    ],
    "instructions": "Step by step cooking instructions",
    "prep_time_minutes": 30
}

Make it nutritious, varied, and delicious. Ensure protein and fiber targets are met.`,
		req.Slot,
		dietType,
		req.ProteinTarget,
		req.FiberTarget,
		prevMeals,
		ingredients,
		req.IsVegetarian,
		req.ProteinTarget/3,
		req.FiberTarget/3,
	)
}
