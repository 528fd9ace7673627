package gorm

import (
	"github.com/platefull/mealplanner/internal/domain/inventory"
	"github.com/platefull/mealplanner/internal/domain/meal"
	"github.com/platefull/mealplanner/internal/domain/mealplan"
	"github.com/platefull/mealplanner/internal/domain/user"
)

// UserToModel converts a domain user to its GORM model
func UserToModel(u *user.User) *UserModel {
	return &UserModel{
		ID:            u.ID(),
		Name:          u.Name(),
		IsVegetarian:  u.IsVegetarian(),
		ProteinTarget: u.ProteinTarget(),
		FiberTarget:   u.FiberTarget(),
		CreatedAt:     u.CreatedAt(),
	}
}

// ModelToUser converts a GORM model to a domain user
func ModelToUser(m *UserModel) *user.User {
	return user.Reconstruct(m.ID, m.Name, m.IsVegetarian, m.ProteinTarget, m.FiberTarget, m.CreatedAt)
}

// MealToModel converts a domain meal to its GORM model
func MealToModel(m *meal.Meal) *MealModel {
	n := m.Nutrition()
	return &MealModel{
		ID:              m.ID(),
		Name:            m.Name(),
		Description:     m.Description(),
		CuisineType:     m.CuisineType(),
		IsVegetarian:    m.IsVegetarian(),
		Calories:        n.Calories,
		Protein:         n.Protein,
		Fiber:           n.Fiber,
		Carbs:           n.Carbs,
		Fats:            n.Fats,
		Ingredients:     IngredientList(m.Ingredients()),
		Instructions:    m.Instructions(),
		PrepTimeMinutes: m.PrepTimeMinutes(),
		CreatedAt:       m.CreatedAt(),
	}
}

// ModelToMeal converts a GORM model to a domain meal
func ModelToMeal(m *MealModel) *meal.Meal {
	return meal.Reconstruct(
		m.ID,
		m.Name,
		m.Description,
		m.CuisineType,
		m.IsVegetarian,
		meal.Nutrition{
			Calories: m.Calories,
			Protein:  m.Protein,
			Fiber:    m.Fiber,
			Carbs:    m.Carbs,
			Fats:     m.Fats,
		},
		[]meal.Ingredient(m.Ingredients),
		m.Instructions,
		m.PrepTimeMinutes,
		m.CreatedAt,
	)
}

// EntryToModel converts a domain meal plan entry to its GORM model
func EntryToModel(e *mealplan.Entry) *MealPlanModel {
	return &MealPlanModel{
		ID:           e.ID(),
		UserID:       e.UserID(),
		Date:         e.Date(),
		MealType:     string(e.Slot()),
		MealID:       e.MealID(),
		EatenOutside: e.EatenOutside(),
		CreatedAt:    e.CreatedAt(),
	}
}

// ModelToEntry converts a GORM model to a domain meal plan entry
func ModelToEntry(m *MealPlanModel) *mealplan.Entry {
	return mealplan.Reconstruct(m.ID, m.UserID, m.Date, mealplan.Slot(m.MealType), m.MealID, m.EatenOutside, m.CreatedAt)
}

// ItemToModel converts a domain inventory item to its GORM model
func ItemToModel(i *inventory.Item) *InventoryItemModel {
	return &InventoryItemModel{
		ID:        i.ID(),
		ItemName:  i.ItemName(),
		Quantity:  i.Quantity(),
		Unit:      i.Unit(),
		CreatedAt: i.CreatedAt(),
	}
}

// ModelToItem converts a GORM model to a domain inventory item
func ModelToItem(m *InventoryItemModel) *inventory.Item {
	return inventory.Reconstruct(m.ID, m.ItemName, m.Quantity, m.Unit, m.CreatedAt)
}
