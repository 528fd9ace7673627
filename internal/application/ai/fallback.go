package ai

import (
	"github.com/platefull/mealplanner/internal/domain/meal"
	"github.com/platefull/mealplanner/internal/ports/outbound"
)

// FallbackMeal returns the static record served when generation fails.
// Selection depends on the vegetarian flag only; slot and targets are
// ignored so the orchestrator always receives a schema-valid meal.
func FallbackMeal(isVegetarian bool) outbound.MealRecord {
	if isVegetarian {
		return outbound.MealRecord{
			Name:         "Quinoa Buddha Bowl",
			Description:  "Protein-rich quinoa bowl with vegetables",
			CuisineType:  "Healthy",
			IsVegetarian: true,
			Calories:     450,
			Protein:      25,
			Fiber:        12,
			Carbs:        55,
			Fats:         15,
			Ingredients: []meal.Ingredient{
				{Name: "quinoa", Quantity: "1", Unit: "cup"},
				{Name: "chickpeas", Quantity: "150", Unit: "g"},
				{Name: "spinach", Quantity: "2", Unit: "cups"},
				{Name: "avocado", Quantity: "0.5", Unit: "whole"},
			},
			Instructions:    "Cook quinoa, roast chickpeas, assemble with fresh veggies",
			PrepTimeMinutes: 25,
		}
	}

	return outbound.MealRecord{
		Name:         "Grilled Chicken with Veggies",
		Description:  "High protein meal with mixed vegetables",
		CuisineType:  "Healthy",
		IsVegetarian: false,
		Calories:     500,
		Protein:      40,
		Fiber:        10,
		Carbs:        35,
		Fats:         18,
		Ingredients: []meal.Ingredient{
			{Name: "chicken breast", Quantity: "200", Unit: "g"},
			{Name: "broccoli", Quantity: "1", Unit: "cup"},
			{Name: "sweet potato", Quantity: "1", Unit: "medium"},
		},
		Instructions:    "Grill chicken, steam vegetables, serve together",
		PrepTimeMinutes: 30,
	}
}
