package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/BruksfildServices01/ubereats-api/internal/domain/user"
)

type LoginUser struct {
	users  user.Repository
	tokens TokenIssuer
}

func NewLoginUser(users user.Repository, tokens TokenIssuer) *LoginUser {
	return &LoginUser{users: users, tokens: tokens}
}

// Execute returns ErrInvalidCredentials for both an unknown email and a
// wrong password.
func (uc *LoginUser) Execute(
	ctx context.Context,
	email string,
	password string,
) (*Session, error) {

	u, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	if !u.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	token, err := uc.tokens.Generate(u)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &Session{User: u, Token: token}, nil
}
