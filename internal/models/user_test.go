package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "john@example.com", NormalizeEmail("  John@Example.COM "))
}

func TestUser_PrepareForInsert(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	u := &User{
		FirstName: " John ",
		LastName:  "Doe",
		Email:     "John@Example.com",
		Password:  "password123",
	}
	require.NoError(t, u.PrepareForInsert(now))

	assert.Equal(t, "John", u.FirstName)
	assert.Equal(t, "john@example.com", u.Email)
	assert.True(t, IsValidID(u.ID))
	assert.Equal(t, now, u.CreatedAt)
	assert.Empty(t, u.Password)
	assert.NotEqual(t, "password123", u.PasswordHash)
	assert.True(t, u.CheckPassword("password123"))
	assert.False(t, u.CheckPassword("wrongpassword"))
}

func TestUser_HashPasswordIsIdempotent(t *testing.T) {
	u := &User{Password: "password123"}
	require.NoError(t, u.HashPassword())
	hash := u.PasswordHash

	require.NoError(t, u.HashPassword())
	assert.Equal(t, hash, u.PasswordHash)
}

func TestUser_PrepareForInsertRequiresFields(t *testing.T) {
	u := &User{Email: "a@b.com"}
	err := u.PrepareForInsert(time.Now())
	require.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, u.ID)

	noPassword := &User{FirstName: "A", LastName: "B", Email: "a@b.com"}
	assert.ErrorIs(t, noPassword.PrepareForInsert(time.Now()), ErrValidation)
}
