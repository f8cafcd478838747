package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/ubereats-api/internal/domain/user"
	"github.com/BruksfildServices01/ubereats-api/internal/models"
)

func storedUser(t *testing.T) *models.User {
	t.Helper()
	u := &models.User{ID: models.NewID(), Email: "jane@example.com", Password: "password123"}
	require.NoError(t, u.HashPassword())
	return u
}

func TestLoginUser(t *testing.T) {
	ctx := context.Background()
	u := storedUser(t)

	users := new(mockUserRepo)
	users.On("GetByEmail", ctx, "jane@example.com").Return(u, nil)
	users.On("GetByEmail", ctx, "notfound@example.com").Return(nil, user.ErrNotFound)

	tokens := new(mockTokens)
	tokens.On("Generate", u).Return("signed", nil)

	uc := NewLoginUser(users, tokens)

	t.Run("success", func(t *testing.T) {
		session, err := uc.Execute(ctx, "jane@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "signed", session.Token)
		assert.Same(t, u, session.User)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := uc.Execute(ctx, "jane@example.com", "wrongpassword")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := uc.Execute(ctx, "notfound@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	tokens.AssertNumberOfCalls(t, "Generate", 1)
}

func TestGetCurrentUser(t *testing.T) {
	ctx := context.Background()
	u := &models.User{ID: models.NewID()}

	users := new(mockUserRepo)
	users.On("GetByID", ctx, u.ID).Return(u, nil)
	users.On("GetByID", ctx, mock.Anything).Return(nil, user.ErrNotFound)

	uc := NewGetCurrentUser(users)

	got, err := uc.Execute(ctx, u.ID)
	require.NoError(t, err)
	assert.Same(t, u, got)

	_, err = uc.Execute(ctx, models.NewID())
	assert.ErrorIs(t, err, user.ErrNotFound)
}
