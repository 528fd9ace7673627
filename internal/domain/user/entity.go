// Package user defines the user domain entity
package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Domain errors for user operations
var (
	ErrNameRequired         = errors.New("user name is required")
	ErrInvalidProteinTarget = errors.New("protein target must be a positive number of grams")
	ErrInvalidFiberTarget   = errors.New("fiber target must be a positive number of grams")
)

// User represents an account with daily nutrition targets.
// Targets are read-only to the generation pipeline.
type User struct {
	id            uuid.UUID
	name          string
	isVegetarian  bool
	proteinTarget int
	fiberTarget   int
	createdAt     time.Time
}

// NewUser creates a new user with validated nutrition targets
func NewUser(name string, isVegetarian bool, proteinTarget, fiberTarget int) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if proteinTarget <= 0 {
		return nil, ErrInvalidProteinTarget
	}
	if fiberTarget <= 0 {
		return nil, ErrInvalidFiberTarget
	}

	return &User{
		id:            uuid.New(),
		name:          name,
		isVegetarian:  isVegetarian,
		proteinTarget: proteinTarget,
		fiberTarget:   fiberTarget,
		createdAt:     time.Now(),
	}, nil
}

// Reconstruct rebuilds a user from persisted state
func Reconstruct(id uuid.UUID, name string, isVegetarian bool, proteinTarget, fiberTarget int, createdAt time.Time) *User {
	return &User{
		id:            id,
		name:          name,
		isVegetarian:  isVegetarian,
		proteinTarget: proteinTarget,
		fiberTarget:   fiberTarget,
		createdAt:     createdAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) IsVegetarian() bool   { return u.isVegetarian }
func (u *User) ProteinTarget() int   { return u.proteinTarget }
func (u *User) FiberTarget() int     { return u.fiberTarget }
func (u *User) CreatedAt() time.Time { return u.createdAt }
