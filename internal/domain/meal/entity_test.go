package meal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMeal_Valid(t *testing.T) {
	m, err := NewMeal("Pasta Pomodoro", "classic", "Italian", false,
		Nutrition{Calories: 520, Protein: 18, Fiber: 6, Carbs: 80, Fats: 12},
		[]Ingredient{{Name: "pasta", Quantity: "200", Unit: "g"}},
		"Boil and combine", 25)

	require.NoError(t, err)
	assert.Equal(t, "Pasta Pomodoro", m.Name())
	assert.Equal(t, 520.0, m.Nutrition().Calories)
	assert.Len(t, m.Ingredients(), 1)
	assert.Equal(t, 25, m.PrepTimeMinutes())
}

func TestNewMeal_EmptyName(t *testing.T) {
	_, err := NewMeal("  ", "", "", false, Nutrition{}, nil, "", 0)
	assert.Equal(t, ErrNameRequired, err)
}

func TestNewMeal_NegativeNutrition(t *testing.T) {
	_, err := NewMeal("Something", "", "", false, Nutrition{Protein: -1}, nil, "", 0)
	assert.Equal(t, ErrNegativeNutrition, err)
}

func TestNewMeal_NegativePrepTime(t *testing.T) {
	_, err := NewMeal("Something", "", "", false, Nutrition{}, nil, "", -10)
	assert.Equal(t, ErrInvalidPrepTime, err)
}
