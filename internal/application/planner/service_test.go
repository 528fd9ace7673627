package planner

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/platefull/mealplanner/internal/domain/inventory"
	"github.com/platefull/mealplanner/internal/domain/meal"
	"github.com/platefull/mealplanner/internal/domain/mealplan"
	"github.com/platefull/mealplanner/internal/domain/user"
	gormpersistence "github.com/platefull/mealplanner/internal/infrastructure/persistence/gorm"
	"github.com/platefull/mealplanner/internal/ports/outbound"
	apperrors "github.com/platefull/mealplanner/pkg/errors"
)

// scriptedGenerator returns records in sequence and captures the requests
// it was given. When the script runs out it repeats the last record.
type scriptedGenerator struct {
	records  []outbound.MealRecord
	requests []outbound.MealRequest
}

func (g *scriptedGenerator) GenerateMeal(_ context.Context, req outbound.MealRequest) outbound.MealRecord {
	g.requests = append(g.requests, req)
	idx := len(g.requests) - 1
	if idx >= len(g.records) {
		idx = len(g.records) - 1
	}
	return g.records[idx]
}

func testRecord(name string) outbound.MealRecord {
	return outbound.MealRecord{
		Name:         name,
		Description:  gofakeit.Sentence(5),
		CuisineType:  "Healthy",
		IsVegetarian: true,
		Calories:     450,
		Protein:      30,
		Fiber:        12,
		Carbs:        50,
		Fats:         14,
		Ingredients: []meal.Ingredient{
			{Name: "quinoa", Quantity: "1", Unit: "cup"},
		},
		Instructions:    "Cook and serve",
		PrepTimeMinutes: 20,
	}
}

type PlannerSuite struct {
	suite.Suite
	db    *gorm.DB
	repos outbound.Repositories
	uow   outbound.UnitOfWork
	now   time.Time
}

func (s *PlannerSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(s.T(), err)

	sqlDB, err := db.DB()
	require.NoError(s.T(), err)
	// A single connection keeps the in-memory database alive for the test
	sqlDB.SetMaxOpenConns(1)

	require.NoError(s.T(), gormpersistence.Migrate(db))

	s.db = db
	s.repos = gormpersistence.NewRepositories(db)
	s.uow = gormpersistence.NewUnitOfWork(db)
	s.now = time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
}

func (s *PlannerSuite) newService(gen outbound.MealGenerator) *Service {
	svc := NewService(s.repos, s.uow, gen, zaptest.NewLogger(s.T()))
	svc.now = func() time.Time { return s.now }
	return svc
}

func (s *PlannerSuite) createUser(vegetarian bool) *user.User {
	u, err := user.NewUser(gofakeit.Name(), vegetarian, 120, 30)
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.repos.Users.Create(context.Background(), u))
	return u
}

func (s *PlannerSuite) createMealRow(name string) *meal.Meal {
	m, err := meal.NewMeal(name, "stored", "Healthy", true, meal.Nutrition{
		Calories: 400, Protein: 25, Fiber: 10, Carbs: 45, Fats: 12,
	}, nil, "cook", 15)
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.repos.Meals.Create(context.Background(), m))
	return m
}

func (s *PlannerSuite) createEntry(userID, mealID uuid.UUID, date time.Time, slot mealplan.Slot) *mealplan.Entry {
	e, err := mealplan.NewEntry(userID, date, slot, &mealID)
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.repos.MealPlans.Create(context.Background(), e))
	return e
}

func (s *PlannerSuite) TestGenerateDailyMeals_CoversAllThreeSlots() {
	u := s.createUser(true)
	gen := &scriptedGenerator{records: []outbound.MealRecord{
		testRecord("Oat Porridge"),
		testRecord("Lentil Curry"),
		testRecord("Tofu Stir Fry"),
	}}
	svc := s.newService(gen)

	entries, err := svc.GenerateDailyMeals(context.Background(), u.ID(), s.now)

	require.NoError(s.T(), err)
	require.Len(s.T(), entries, 3)

	assert.Equal(s.T(), mealplan.SlotBreakfast, entries[0].Slot())
	assert.Equal(s.T(), mealplan.SlotLunch, entries[1].Slot())
	assert.Equal(s.T(), mealplan.SlotDinner, entries[2].Slot())

	wantDate := mealplan.DateOnly(s.now)
	for _, e := range entries {
		assert.Equal(s.T(), u.ID(), e.UserID())
		assert.Equal(s.T(), wantDate, e.Date())
		assert.False(s.T(), e.EatenOutside())
		require.NotNil(s.T(), e.MealID())
	}

	// Slot order also reaches the generator
	require.Len(s.T(), gen.requests, 3)
	assert.Equal(s.T(), mealplan.SlotBreakfast, gen.requests[0].Slot)
	assert.Equal(s.T(), mealplan.SlotDinner, gen.requests[2].Slot)

	stored, err := s.repos.MealPlans.FindByUserAndDateRange(context.Background(), u.ID(), s.now, s.now)
	require.NoError(s.T(), err)
	assert.Len(s.T(), stored, 3)
}

func (s *PlannerSuite) TestGenerateDailyMeals_ReusesExistingMealByName() {
	u := s.createUser(true)
	existing := s.createMealRow("Lentil Curry")

	gen := &scriptedGenerator{records: []outbound.MealRecord{
		testRecord("Oat Porridge"),
		testRecord("Lentil Curry"),
		testRecord("Tofu Stir Fry"),
	}}
	svc := s.newService(gen)

	entries, err := svc.GenerateDailyMeals(context.Background(), u.ID(), s.now)
	require.NoError(s.T(), err)

	assert.Equal(s.T(), existing.ID(), *entries[1].MealID())

	meals, err := s.repos.Meals.FindAll(context.Background())
	require.NoError(s.T(), err)
	// One pre-existing plus the two new names
	assert.Len(s.T(), meals, 3)
}

func (s *PlannerSuite) TestGenerateDailyMeals_RepeatedFallbackYieldsOneMealRow() {
	// All three slots producing the identical record (the fallback case)
	// must store the meal once and point all entries at it.
	u := s.createUser(true)
	gen := &scriptedGenerator{records: []outbound.MealRecord{testRecord("Quinoa Buddha Bowl")}}
	svc := s.newService(gen)

	entries, err := svc.GenerateDailyMeals(context.Background(), u.ID(), s.now)
	require.NoError(s.T(), err)
	require.Len(s.T(), entries, 3)

	meals, err := s.repos.Meals.FindAll(context.Background())
	require.NoError(s.T(), err)
	require.Len(s.T(), meals, 1)

	for _, e := range entries {
		assert.Equal(s.T(), meals[0].ID(), *e.MealID())
	}
}

func (s *PlannerSuite) TestGenerateDailyMeals_FailedSlotPersistsNothing() {
	u := s.createUser(true)
	// Third slot yields an unusable record, failing inside the transaction
	gen := &scriptedGenerator{records: []outbound.MealRecord{
		testRecord("Oat Porridge"),
		testRecord("Lentil Curry"),
		{Name: ""},
	}}
	svc := s.newService(gen)

	_, err := svc.GenerateDailyMeals(context.Background(), u.ID(), s.now)
	require.Error(s.T(), err)
	assert.True(s.T(), apperrors.Is(err, apperrors.CodeGenerationFailed))

	meals, err := s.repos.Meals.FindAll(context.Background())
	require.NoError(s.T(), err)
	assert.Empty(s.T(), meals)

	plans, err := s.repos.MealPlans.FindByUserAndDateRange(context.Background(), u.ID(), s.now, s.now)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), plans)
}

func (s *PlannerSuite) TestGenerateDailyMeals_StorageFailureReportsGenerationError() {
	u := s.createUser(true)
	require.NoError(s.T(), s.db.Migrator().DropTable("meals"))

	gen := &scriptedGenerator{records: []outbound.MealRecord{testRecord("Oat Porridge")}}
	svc := s.newService(gen)

	_, err := svc.GenerateDailyMeals(context.Background(), u.ID(), s.now)

	require.Error(s.T(), err)
	assert.True(s.T(), apperrors.Is(err, apperrors.CodeGenerationFailed))
	assert.Contains(s.T(), err.Error(), "Error generating meals")
}

func (s *PlannerSuite) TestGenerateDailyMeals_UnknownUser() {
	gen := &scriptedGenerator{records: []outbound.MealRecord{testRecord("Anything")}}
	svc := s.newService(gen)

	_, err := svc.GenerateDailyMeals(context.Background(), uuid.New(), s.now)

	require.Error(s.T(), err)
	assert.True(s.T(), apperrors.Is(err, apperrors.CodeUserNotFound))
	assert.Empty(s.T(), gen.requests)
}

func (s *PlannerSuite) TestGenerateDailyMeals_HistoryWindowIsSevenDays() {
	u := s.createUser(true)
	recent := s.createMealRow("Recent Meal")
	stale := s.createMealRow("Stale Meal")

	// Exactly seven days back is inside the window, eight is outside
	s.createEntry(u.ID(), recent.ID(), s.now.AddDate(0, 0, -7), mealplan.SlotDinner)
	s.createEntry(u.ID(), stale.ID(), s.now.AddDate(0, 0, -8), mealplan.SlotDinner)

	// An entry without a meal reference contributes no name
	eatenOut, err := mealplan.NewEntry(u.ID(), s.now.AddDate(0, 0, -2), mealplan.SlotLunch, nil)
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.repos.MealPlans.Create(context.Background(), eatenOut))

	gen := &scriptedGenerator{records: []outbound.MealRecord{testRecord("New Meal")}}
	svc := s.newService(gen)

	_, err = svc.GenerateDailyMeals(context.Background(), u.ID(), s.now)
	require.NoError(s.T(), err)

	require.Len(s.T(), gen.requests, 3)
	assert.Equal(s.T(), []string{"Recent Meal"}, gen.requests[0].RecentMeals)
}

func (s *PlannerSuite) TestGenerateDailyMeals_SnapshotSharedAcrossSlots() {
	u := s.createUser(true)
	prior := s.createMealRow("Yesterday Dinner")
	s.createEntry(u.ID(), prior.ID(), s.now.AddDate(0, 0, -1), mealplan.SlotDinner)

	gen := &scriptedGenerator{records: []outbound.MealRecord{
		testRecord("Oat Porridge"),
		testRecord("Lentil Curry"),
		testRecord("Tofu Stir Fry"),
	}}
	svc := s.newService(gen)

	_, err := svc.GenerateDailyMeals(context.Background(), u.ID(), s.now)
	require.NoError(s.T(), err)

	require.Len(s.T(), gen.requests, 3)
	// The breakfast generated in slot one does not appear in the lunch or
	// dinner exclusion lists; all three see the same snapshot.
	for _, req := range gen.requests {
		assert.Equal(s.T(), []string{"Yesterday Dinner"}, req.RecentMeals)
	}
}

func (s *PlannerSuite) TestGenerateDailyMeals_PassesUserConstraintsAndInventory() {
	u := s.createUser(true)

	for _, name := range []string{"rice", "beans"} {
		it, err := inventory.NewItem(name, 2, "cups")
		require.NoError(s.T(), err)
		require.NoError(s.T(), s.repos.Inventory.Create(context.Background(), it))
	}

	gen := &scriptedGenerator{records: []outbound.MealRecord{testRecord("New Meal")}}
	svc := s.newService(gen)

	_, err := svc.GenerateDailyMeals(context.Background(), u.ID(), s.now)
	require.NoError(s.T(), err)

	req := gen.requests[0]
	assert.True(s.T(), req.IsVegetarian)
	assert.Equal(s.T(), 120, req.ProteinTarget)
	assert.Equal(s.T(), 30, req.FiberTarget)
	assert.ElementsMatch(s.T(), []string{"rice", "beans"}, req.AvailableIngredients)
}

func (s *PlannerSuite) TestGenerateDailyMeals_RegenerationAppendsEntries() {
	// A second generation for the same user and date adds three more
	// entries; nothing deduplicates at the (user, date, slot) level.
	u := s.createUser(true)
	gen := &scriptedGenerator{records: []outbound.MealRecord{testRecord("Quinoa Buddha Bowl")}}
	svc := s.newService(gen)

	_, err := svc.GenerateDailyMeals(context.Background(), u.ID(), s.now)
	require.NoError(s.T(), err)
	_, err = svc.GenerateDailyMeals(context.Background(), u.ID(), s.now)
	require.NoError(s.T(), err)

	plans, err := s.repos.MealPlans.FindByUserAndDateRange(context.Background(), u.ID(), s.now, s.now)
	require.NoError(s.T(), err)
	assert.Len(s.T(), plans, 6)

	meals, err := s.repos.Meals.FindAll(context.Background())
	require.NoError(s.T(), err)
	assert.Len(s.T(), meals, 1)
}

func (s *PlannerSuite) TestListUserPlans_RangeIsInclusive() {
	u := s.createUser(false)
	m := s.createMealRow("Some Meal")

	inRange := s.createEntry(u.ID(), m.ID(), s.now, mealplan.SlotLunch)
	s.createEntry(u.ID(), m.ID(), s.now.AddDate(0, 0, 3), mealplan.SlotLunch)

	svc := s.newService(&scriptedGenerator{records: []outbound.MealRecord{testRecord("x")}})

	plans, err := svc.ListUserPlans(context.Background(), u.ID(), s.now, s.now)
	require.NoError(s.T(), err)
	require.Len(s.T(), plans, 1)
	assert.Equal(s.T(), inRange.ID(), plans[0].ID())
}

func (s *PlannerSuite) TestSetEatenOutside() {
	u := s.createUser(false)
	m := s.createMealRow("Some Meal")
	entry := s.createEntry(u.ID(), m.ID(), s.now, mealplan.SlotDinner)

	svc := s.newService(&scriptedGenerator{records: []outbound.MealRecord{testRecord("x")}})

	updated, err := svc.SetEatenOutside(context.Background(), entry.ID(), true)
	require.NoError(s.T(), err)
	assert.True(s.T(), updated.EatenOutside())

	reloaded, err := s.repos.MealPlans.FindByID(context.Background(), entry.ID())
	require.NoError(s.T(), err)
	assert.True(s.T(), reloaded.EatenOutside())
}

func (s *PlannerSuite) TestSetEatenOutside_UnknownEntry() {
	svc := s.newService(&scriptedGenerator{records: []outbound.MealRecord{testRecord("x")}})

	_, err := svc.SetEatenOutside(context.Background(), uuid.New(), true)

	require.Error(s.T(), err)
	assert.True(s.T(), apperrors.Is(err, apperrors.CodeMealPlanNotFound))
}

func TestPlannerSuite(t *testing.T) {
	suite.Run(t, new(PlannerSuite))
}
