package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	MinRating = 0.0
	MaxRating = 5.0
)

type Restaurant struct {
	ID string `gorm:"primaryKey;size:24" bson:"_id" json:"id"`

	Name        string  `gorm:"size:150;not null" bson:"name" json:"name"`
	Rating      float64 `gorm:"not null;index" bson:"rating" json:"rating"`
	Category    string  `gorm:"size:80;not null;index" bson:"category" json:"category"`
	Time        float64 `gorm:"column:time_minutes;not null" bson:"time" json:"time"`
	DeliveryFee float64 `gorm:"not null" bson:"deliveryFee" json:"deliveryFee"`
	Promo       string  `gorm:"size:255" bson:"promo,omitempty" json:"promo,omitempty"`
	Color1      string  `gorm:"size:20;not null" bson:"color1" json:"color1"`
	Color2      string  `gorm:"size:20;not null" bson:"color2" json:"color2"`
	Image       string  `gorm:"size:500;not null" bson:"image" json:"image"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Normalize trims the free-text fields the same way on every write path.
func (r *Restaurant) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Category = strings.TrimSpace(r.Category)
	r.Promo = strings.TrimSpace(r.Promo)
}

func (r *Restaurant) Validate() error {
	var errs []error

	required := []struct {
		field string
		value string
	}{
		{"name", r.Name},
		{"category", r.Category},
		{"color1", r.Color1},
		{"color2", r.Color2},
		{"image", r.Image},
	}
	for _, f := range required {
		if f.value == "" {
			errs = append(errs, fmt.Errorf("%w: %s is required", ErrValidation, f.field))
		}
	}

	if r.Rating < MinRating || r.Rating > MaxRating {
		errs = append(errs, fmt.Errorf("%w: rating must be between %.0f and %.0f", ErrValidation, MinRating, MaxRating))
	}
	if r.Time < 0 {
		errs = append(errs, fmt.Errorf("%w: time must be >= 0", ErrValidation))
	}
	if r.DeliveryFee < 0 {
		errs = append(errs, fmt.Errorf("%w: deliveryFee must be >= 0", ErrValidation))
	}

	return errors.Join(errs...)
}

func (r *Restaurant) PrepareForInsert(now time.Time) error {
	r.Normalize()
	if err := r.Validate(); err != nil {
		return err
	}
	if r.ID == "" {
		r.ID = NewID()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	return nil
}

func (r *Restaurant) BeforeCreate(tx *gorm.DB) error {
	return r.PrepareForInsert(time.Now().UTC())
}

func (r *Restaurant) BeforeUpdate(tx *gorm.DB) error {
	r.Normalize()
	return r.Validate()
}
