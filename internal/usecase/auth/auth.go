package auth

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/ubereats-api/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidEmailDomain = errors.New("email domain does not resolve")
)

type TokenIssuer interface {
	Generate(user *models.User) (string, error)
}

type DomainChecker interface {
	DomainResolves(ctx context.Context, email string) bool
}

// Session is what register and login hand back to the caller.
type Session struct {
	User  *models.User
	Token string
}
