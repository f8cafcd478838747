package auth

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/BruksfildServices01/ubereats-api/internal/models"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *models.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

type mockTokens struct {
	mock.Mock
}

func (m *mockTokens) Generate(u *models.User) (string, error) {
	args := m.Called(u)
	return args.String(0), args.Error(1)
}

type stubDomains bool

func (s stubDomains) DomainResolves(context.Context, string) bool { return bool(s) }
