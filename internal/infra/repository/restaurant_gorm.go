package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/ubereats-api/internal/domain/restaurant"
	"github.com/BruksfildServices01/ubereats-api/internal/models"
)

type RestaurantGormRepository struct {
	db *gorm.DB
}

func NewRestaurantGormRepository(db *gorm.DB) *RestaurantGormRepository {
	return &RestaurantGormRepository{db: db}
}

var _ domain.Repository = (*RestaurantGormRepository)(nil)

func (r *RestaurantGormRepository) List(
	ctx context.Context,
	f domain.Filter,
) ([]models.Restaurant, error) {

	q := r.db.WithContext(ctx).Model(&models.Restaurant{})

	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.MinRating != nil {
		q = q.Where("rating >= ?", *f.MinRating)
	}
	if f.MaxDeliveryFee != nil {
		q = q.Where("delivery_fee <= ?", *f.MaxDeliveryFee)
	}
	if f.MaxTime != nil {
		q = q.Where("time_minutes <= ?", *f.MaxTime)
	}

	restaurants := []models.Restaurant{}
	if err := q.
		Order("rating DESC").
		Order("created_at ASC").
		Find(&restaurants).Error; err != nil {
		return nil, err
	}

	return restaurants, nil
}

func (r *RestaurantGormRepository) Get(
	ctx context.Context,
	id string,
) (*models.Restaurant, error) {

	if !models.IsValidID(id) {
		return nil, domain.ErrInvalidID
	}

	var rest models.Restaurant
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&rest).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &rest, nil
}

func (r *RestaurantGormRepository) Create(
	ctx context.Context,
	rest *models.Restaurant,
) error {
	return r.db.WithContext(ctx).Create(rest).Error
}

func (r *RestaurantGormRepository) Update(
	ctx context.Context,
	rest *models.Restaurant,
) error {

	if !models.IsValidID(rest.ID) {
		return domain.ErrInvalidID
	}

	res := r.db.WithContext(ctx).
		Model(rest).
		Select("*").
		Omit("ID", "CreatedAt").
		Updates(rest)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *RestaurantGormRepository) Delete(
	ctx context.Context,
	id string,
) error {

	if !models.IsValidID(id) {
		return domain.ErrInvalidID
	}

	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Restaurant{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
