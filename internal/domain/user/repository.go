package user

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/ubereats-api/internal/models"
)

var (
	ErrNotFound    = errors.New("user not found")
	ErrEmailExists = errors.New("email already exists")
)

type Repository interface {
	// Create runs the password hashing hook and inserts u. A duplicate
	// email yields ErrEmailExists.
	Create(
		ctx context.Context,
		u *models.User,
	) error

	GetByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	GetByID(
		ctx context.Context,
		id string,
	) (*models.User, error)
}
