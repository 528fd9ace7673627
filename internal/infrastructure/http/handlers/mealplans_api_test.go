package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/platefull/mealplanner/internal/domain/mealplan"
	apperrors "github.com/platefull/mealplanner/pkg/errors"
)

// stubPlanner scripts the planner service responses
type stubPlanner struct {
	entries []*mealplan.Entry
	entry   *mealplan.Entry
	err     error

	generateUser uuid.UUID
	generateDate time.Time
	listFrom     time.Time
	listTo       time.Time
	eatenValue   bool
}

func (s *stubPlanner) GenerateDailyMeals(_ context.Context, userID uuid.UUID, targetDate time.Time) ([]*mealplan.Entry, error) {
	s.generateUser = userID
	s.generateDate = targetDate
	return s.entries, s.err
}

func (s *stubPlanner) ListUserPlans(_ context.Context, _ uuid.UUID, from, to time.Time) ([]*mealplan.Entry, error) {
	s.listFrom = from
	s.listTo = to
	return s.entries, s.err
}

func (s *stubPlanner) SetEatenOutside(_ context.Context, _ uuid.UUID, eaten bool) (*mealplan.Entry, error) {
	s.eatenValue = eaten
	return s.entry, s.err
}

func newPlanRouter(planner *stubPlanner, t *testing.T) *chi.Mux {
	h := NewMealPlanHandlers(planner, zaptest.NewLogger(t))
	r := chi.NewRouter()
	r.Post("/meal-plans/generate/{userID}", h.GenerateDailyMeals)
	r.Get("/meal-plans/user/{userID}", h.ListUserPlans)
	r.Patch("/meal-plans/{id}/eaten-outside", h.SetEatenOutside)
	return r
}

func dayEntries(t *testing.T, userID uuid.UUID, date time.Time) []*mealplan.Entry {
	mealID := uuid.New()
	var entries []*mealplan.Entry
	for _, slot := range mealplan.Slots() {
		e, err := mealplan.NewEntry(userID, date, slot, &mealID)
		require.NoError(t, err)
		entries = append(entries, e)
	}
	return entries
}

func TestGenerateDailyMeals_Success(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	planner := &stubPlanner{entries: dayEntries(t, userID, date)}

	req := httptest.NewRequest(http.MethodPost, "/meal-plans/generate/"+userID.String()+"?date=2026-03-10", nil)
	rec := httptest.NewRecorder()
	newPlanRouter(planner, t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, userID, planner.generateUser)
	assert.Equal(t, date, planner.generateDate)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Message string `json:"message"`
			Plans   []struct {
				Date     string `json:"date"`
				MealType string `json:"meal_type"`
			} `json:"plans"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Meals generated successfully", resp.Data.Message)
	require.Len(t, resp.Data.Plans, 3)
	assert.Equal(t, "2026-03-10", resp.Data.Plans[0].Date)
	assert.Equal(t, "breakfast", resp.Data.Plans[0].MealType)
	assert.Equal(t, "dinner", resp.Data.Plans[2].MealType)
}

func TestGenerateDailyMeals_UnknownUserIs404(t *testing.T) {
	userID := uuid.New()
	planner := &stubPlanner{err: apperrors.NewUserNotFoundError(userID.String())}

	req := httptest.NewRequest(http.MethodPost, "/meal-plans/generate/"+userID.String(), nil)
	rec := httptest.NewRecorder()
	newPlanRouter(planner, t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_NOT_FOUND")
}

func TestGenerateDailyMeals_GenerationFailureIs500(t *testing.T) {
	planner := &stubPlanner{err: apperrors.NewGenerationFailedError(nil)}

	req := httptest.NewRequest(http.MethodPost, "/meal-plans/generate/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()
	newPlanRouter(planner, t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error generating meals")
}

func TestGenerateDailyMeals_BadUserID(t *testing.T) {
	planner := &stubPlanner{}

	req := httptest.NewRequest(http.MethodPost, "/meal-plans/generate/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	newPlanRouter(planner, t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateDailyMeals_BadDate(t *testing.T) {
	planner := &stubPlanner{}

	req := httptest.NewRequest(http.MethodPost, "/meal-plans/generate/"+uuid.New().String()+"?date=10-03-2026", nil)
	rec := httptest.NewRecorder()
	newPlanRouter(planner, t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListUserPlans_ExplicitRange(t *testing.T) {
	userID := uuid.New()
	planner := &stubPlanner{}

	url := "/meal-plans/user/" + userID.String() + "?start_date=2026-03-01&end_date=2026-03-07"
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	newPlanRouter(planner, t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), planner.listFrom)
	assert.Equal(t, time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC), planner.listTo)
}

func TestListUserPlans_InvertedRange(t *testing.T) {
	planner := &stubPlanner{}

	url := "/meal-plans/user/" + uuid.New().String() + "?start_date=2026-03-07&end_date=2026-03-01"
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	newPlanRouter(planner, t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetEatenOutside_Success(t *testing.T) {
	userID := uuid.New()
	mealID := uuid.New()
	entry, err := mealplan.NewEntry(userID, time.Now(), mealplan.SlotLunch, &mealID)
	require.NoError(t, err)
	entry.SetEatenOutside(true)

	planner := &stubPlanner{entry: entry}

	body := strings.NewReader(`{"eaten_outside": true}`)
	req := httptest.NewRequest(http.MethodPatch, "/meal-plans/"+entry.ID().String()+"/eaten-outside", body)
	rec := httptest.NewRecorder()
	newPlanRouter(planner, t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, planner.eatenValue)
	assert.Contains(t, rec.Body.String(), `"eaten_outside":true`)
}

func TestSetEatenOutside_MissingField(t *testing.T) {
	planner := &stubPlanner{}

	body := strings.NewReader(`{}`)
	req := httptest.NewRequest(http.MethodPatch, "/meal-plans/"+uuid.New().String()+"/eaten-outside", body)
	rec := httptest.NewRecorder()
	newPlanRouter(planner, t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetEatenOutside_UnknownEntryIs404(t *testing.T) {
	entryID := uuid.New()
	planner := &stubPlanner{err: apperrors.NewMealPlanNotFoundError(entryID.String())}

	body := strings.NewReader(`{"eaten_outside": false}`)
	req := httptest.NewRequest(http.MethodPatch, "/meal-plans/"+entryID.String()+"/eaten-outside", body)
	rec := httptest.NewRecorder()
	newPlanRouter(planner, t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
