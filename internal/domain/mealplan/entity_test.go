package mealplan

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlots_OrderIsStable(t *testing.T) {
	assert.Equal(t, []Slot{SlotBreakfast, SlotLunch, SlotDinner}, Slots())
}

func TestParseSlot(t *testing.T) {
	slot, err := ParseSlot("lunch")
	require.NoError(t, err)
	assert.Equal(t, SlotLunch, slot)

	_, err = ParseSlot("brunch")
	assert.Equal(t, ErrInvalidSlot, err)

	_, err = ParseSlot("Breakfast")
	assert.Equal(t, ErrInvalidSlot, err)
}

func TestNewEntry_TruncatesDate(t *testing.T) {
	mealID := uuid.New()
	stamp := time.Date(2026, 3, 10, 18, 45, 12, 0, time.UTC)

	e, err := NewEntry(uuid.New(), stamp, SlotDinner, &mealID)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), e.Date())
	assert.False(t, e.EatenOutside())
	assert.Equal(t, mealID, *e.MealID())
}

func TestNewEntry_RequiresUser(t *testing.T) {
	_, err := NewEntry(uuid.Nil, time.Now(), SlotLunch, nil)
	assert.Equal(t, ErrUserRequired, err)
}

func TestNewEntry_RejectsUnknownSlot(t *testing.T) {
	_, err := NewEntry(uuid.New(), time.Now(), Slot("supper"), nil)
	assert.Equal(t, ErrInvalidSlot, err)
}

func TestSetEatenOutside(t *testing.T) {
	e, err := NewEntry(uuid.New(), time.Now(), SlotBreakfast, nil)
	require.NoError(t, err)

	e.SetEatenOutside(true)
	assert.True(t, e.EatenOutside())

	e.SetEatenOutside(false)
	assert.False(t, e.EatenOutside())
}

func TestDateOnly_NormalizesToUTCMidnight(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	stamp := time.Date(2026, 3, 11, 2, 30, 0, 0, loc)

	// 02:30 at UTC+5 is still March 10 in UTC
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), DateOnly(stamp))
}
