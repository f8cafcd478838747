package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	domain "github.com/BruksfildServices01/ubereats-api/internal/domain/restaurant"
	"github.com/BruksfildServices01/ubereats-api/internal/models"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int { return &v }

func TestRestaurantQuery(t *testing.T) {
	tests := []struct {
		name string
		f    domain.Filter
		want bson.M
	}{
		{
			name: "no filter",
			f:    domain.Filter{},
			want: bson.M{},
		},
		{
			name: "Tout matches every category",
			f:    domain.NewFilter(domain.AllCategories, nil, nil, nil),
			want: bson.M{},
		},
		{
			name: "category",
			f:    domain.NewFilter("Japonais", nil, nil, nil),
			want: bson.M{"category": "Japonais"},
		},
		{
			name: "min rating is inclusive",
			f:    domain.Filter{MinRating: fptr(4)},
			want: bson.M{"rating": bson.M{"$gte": 4.0}},
		},
		{
			name: "upper bounds are inclusive",
			f:    domain.Filter{MaxDeliveryFee: fptr(2.5), MaxTime: iptr(30)},
			want: bson.M{
				"deliveryFee": bson.M{"$lte": 2.5},
				"time":        bson.M{"$lte": 30},
			},
		},
		{
			name: "bounds combine",
			f:    domain.NewFilter("Italien", fptr(4), fptr(3), iptr(25)),
			want: bson.M{
				"category":    "Italien",
				"rating":      bson.M{"$gte": 4.0},
				"deliveryFee": bson.M{"$lte": 3.0},
				"time":        bson.M{"$lte": 25},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, restaurantQuery(tt.f))
		})
	}
}

func TestRestaurantUpdate(t *testing.T) {
	base := models.Restaurant{
		ID:          models.NewID(),
		Name:        "Roma",
		Category:    "Italien",
		Rating:      4.5,
		Time:        25.5,
		DeliveryFee: 2.99,
		Color1:      "#FF0000",
		Color2:      "#00FF00",
		Image:       "test.jpg",
	}

	t.Run("promo set", func(t *testing.T) {
		r := base
		r.Promo = "-20%"

		update := restaurantUpdate(&r)

		set := update["$set"].(bson.M)
		assert.Equal(t, "-20%", set["promo"])
		assert.Equal(t, 25.5, set["time"])
		assert.Equal(t, 4.5, set["rating"])
		assert.NotContains(t, update, "$unset")
	})

	t.Run("empty promo is unset", func(t *testing.T) {
		r := base

		update := restaurantUpdate(&r)

		set := update["$set"].(bson.M)
		assert.NotContains(t, set, "promo")
		assert.Equal(t, bson.M{"promo": ""}, update["$unset"])
	})

	t.Run("id and createdAt are never written", func(t *testing.T) {
		r := base

		set := restaurantUpdate(&r)["$set"].(bson.M)
		assert.NotContains(t, set, "_id")
		assert.NotContains(t, set, "createdAt")
		assert.Len(t, set, 8)
	})
}

func TestUserByEmail(t *testing.T) {
	assert.Equal(t, bson.M{"email": "john@example.com"}, userByEmail("  John@Example.com "))
}
