package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRestaurant() Restaurant {
	return Restaurant{
		Name:        "Test Restaurant",
		Category:    "Italien",
		Rating:      4.5,
		Time:        30,
		DeliveryFee: 2.99,
		Color1:      "#FF0000",
		Color2:      "#00FF00",
		Image:       "test.jpg",
	}
}

func TestRestaurant_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Restaurant)
		wantErr bool
	}{
		{"valid", func(r *Restaurant) {}, false},
		{"rating lower bound", func(r *Restaurant) { r.Rating = 0 }, false},
		{"rating upper bound", func(r *Restaurant) { r.Rating = 5 }, false},
		{"rating above five", func(r *Restaurant) { r.Rating = 5.01 }, true},
		{"negative rating", func(r *Restaurant) { r.Rating = -0.1 }, true},
		{"negative time", func(r *Restaurant) { r.Time = -1 }, true},
		{"negative fee", func(r *Restaurant) { r.DeliveryFee = -1 }, true},
		{"free delivery", func(r *Restaurant) { r.DeliveryFee = 0 }, false},
		{"missing name", func(r *Restaurant) { r.Name = "" }, true},
		{"missing image", func(r *Restaurant) { r.Image = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRestaurant()
			tt.mutate(&r)

			err := r.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRestaurant_PrepareForInsert(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	r := validRestaurant()
	r.Name = "  Pizza Roma  "
	r.Promo = "  "
	require.NoError(t, r.PrepareForInsert(now))

	assert.Equal(t, "Pizza Roma", r.Name)
	assert.Empty(t, r.Promo)
	assert.True(t, IsValidID(r.ID))
	assert.Equal(t, now, r.CreatedAt)

	blank := validRestaurant()
	blank.Name = "   "
	assert.ErrorIs(t, blank.PrepareForInsert(now), ErrValidation)
}

func TestIDs(t *testing.T) {
	a, b := NewID(), NewID()
	assert.Len(t, a, 24)
	assert.NotEqual(t, a, b)
	assert.True(t, IsValidID(a))

	for _, bad := range []string{"", "invalid-id", "123", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		assert.False(t, IsValidID(bad), bad)
	}
}
