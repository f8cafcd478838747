package auth

import (
	"context"

	"github.com/BruksfildServices01/ubereats-api/internal/domain/user"
	"github.com/BruksfildServices01/ubereats-api/internal/models"
)

type GetCurrentUser struct {
	users user.Repository
}

func NewGetCurrentUser(users user.Repository) *GetCurrentUser {
	return &GetCurrentUser{users: users}
}

func (uc *GetCurrentUser) Execute(
	ctx context.Context,
	userID string,
) (*models.User, error) {
	return uc.users.GetByID(ctx, userID)
}
