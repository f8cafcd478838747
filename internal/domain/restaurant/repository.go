package restaurant

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/ubereats-api/internal/models"
)

var (
	ErrNotFound  = errors.New("restaurant not found")
	ErrInvalidID = errors.New("invalid restaurant id")
)

type Repository interface {
	// List returns the restaurants matching f, highest rating first.
	List(
		ctx context.Context,
		f Filter,
	) ([]models.Restaurant, error)

	Get(
		ctx context.Context,
		id string,
	) (*models.Restaurant, error)

	Create(
		ctx context.Context,
		r *models.Restaurant,
	) error

	// Update persists every field of r over the record with the same id.
	Update(
		ctx context.Context,
		r *models.Restaurant,
	) error

	Delete(
		ctx context.Context,
		id string,
	) error
}
