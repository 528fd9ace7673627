package user

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser_Valid(t *testing.T) {
	u, err := NewUser("  Alex  ", true, 120, 30)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, u.ID())
	assert.Equal(t, "Alex", u.Name())
	assert.True(t, u.IsVegetarian())
	assert.Equal(t, 120, u.ProteinTarget())
	assert.Equal(t, 30, u.FiberTarget())
	assert.NotZero(t, u.CreatedAt())
}

func TestNewUser_EmptyName(t *testing.T) {
	u, err := NewUser("   ", false, 120, 30)

	assert.Nil(t, u)
	assert.Equal(t, ErrNameRequired, err)
}

func TestNewUser_InvalidTargets(t *testing.T) {
	_, err := NewUser("Alex", false, 0, 30)
	assert.Equal(t, ErrInvalidProteinTarget, err)

	_, err = NewUser("Alex", false, 120, -5)
	assert.Equal(t, ErrInvalidFiberTarget, err)
}
