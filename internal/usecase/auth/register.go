package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/BruksfildServices01/ubereats-api/internal/domain/user"
	"github.com/BruksfildServices01/ubereats-api/internal/models"
)

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
	Marketing bool
}

type RegisterUser struct {
	users   user.Repository
	tokens  TokenIssuer
	domains DomainChecker
}

// NewRegisterUser wires the use case. domains may be nil to skip the DNS
// check on the email domain.
func NewRegisterUser(
	users user.Repository,
	tokens TokenIssuer,
	domains DomainChecker,
) *RegisterUser {
	return &RegisterUser{
		users:   users,
		tokens:  tokens,
		domains: domains,
	}
}

func (uc *RegisterUser) Execute(
	ctx context.Context,
	in RegisterInput,
) (*Session, error) {

	email := models.NormalizeEmail(in.Email)

	existing, err := uc.users.GetByEmail(ctx, email)
	switch {
	case err == nil && existing != nil:
		return nil, user.ErrEmailExists
	case err != nil && !errors.Is(err, user.ErrNotFound):
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	if uc.domains != nil && !uc.domains.DomainResolves(ctx, email) {
		return nil, ErrInvalidEmailDomain
	}

	u := &models.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     email,
		Phone:     in.Phone,
		Password:  in.Password,
		Marketing: in.Marketing,
	}

	if err := uc.users.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrEmailExists) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := uc.tokens.Generate(u)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &Session{User: u, Token: token}, nil
}
