// Package mealplan defines the per-day meal assignment entity
package mealplan

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Domain errors for meal plan operations
var (
	ErrInvalidSlot  = errors.New("meal slot must be breakfast, lunch, or dinner")
	ErrUserRequired = errors.New("meal plan entry requires a user")
)

// Slot is the unit of meal assignment per day
type Slot string

const (
	SlotBreakfast Slot = "breakfast"
	SlotLunch     Slot = "lunch"
	SlotDinner    Slot = "dinner"
)

// Slots returns the three daily slots in generation order
func Slots() []Slot {
	return []Slot{SlotBreakfast, SlotLunch, SlotDinner}
}

// ParseSlot validates a slot label
func ParseSlot(s string) (Slot, error) {
	switch Slot(s) {
	case SlotBreakfast, SlotLunch, SlotDinner:
		return Slot(s), nil
	default:
		return "", ErrInvalidSlot
	}
}

// Entry links a user and calendar date to a meal for one slot.
// The eaten-outside flag is the only field mutated after creation.
type Entry struct {
	id           uuid.UUID
	userID       uuid.UUID
	date         time.Time
	slot         Slot
	mealID       *uuid.UUID
	eatenOutside bool
	createdAt    time.Time
}

// NewEntry creates a meal plan entry for one slot of a day
func NewEntry(userID uuid.UUID, date time.Time, slot Slot, mealID *uuid.UUID) (*Entry, error) {
	if userID == uuid.Nil {
		return nil, ErrUserRequired
	}
	if _, err := ParseSlot(string(slot)); err != nil {
		return nil, err
	}

	return &Entry{
		id:           uuid.New(),
		userID:       userID,
		date:         DateOnly(date),
		slot:         slot,
		mealID:       mealID,
		eatenOutside: false,
		createdAt:    time.Now(),
	}, nil
}

// Reconstruct rebuilds an entry from persisted state
func Reconstruct(id, userID uuid.UUID, date time.Time, slot Slot, mealID *uuid.UUID, eatenOutside bool, createdAt time.Time) *Entry {
	return &Entry{
		id:           id,
		userID:       userID,
		date:         DateOnly(date),
		slot:         slot,
		mealID:       mealID,
		eatenOutside: eatenOutside,
		createdAt:    createdAt,
	}
}

// SetEatenOutside flips the eaten-outside flag
func (e *Entry) SetEatenOutside(eaten bool) {
	e.eatenOutside = eaten
}

func (e *Entry) ID() uuid.UUID        { return e.id }
func (e *Entry) UserID() uuid.UUID    { return e.userID }
func (e *Entry) Date() time.Time      { return e.date }
func (e *Entry) Slot() Slot           { return e.slot }
func (e *Entry) MealID() *uuid.UUID   { return e.mealID }
func (e *Entry) EatenOutside() bool   { return e.eatenOutside }
func (e *Entry) CreatedAt() time.Time { return e.createdAt }

// DateOnly truncates a timestamp to its calendar date in UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
