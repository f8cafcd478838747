package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	domain "github.com/BruksfildServices01/ubereats-api/internal/domain/restaurant"
	"github.com/BruksfildServices01/ubereats-api/internal/models"
)

const RestaurantsCollection = "restaurants"

type RestaurantMongoRepository struct {
	coll *mongo.Collection
}

func NewRestaurantMongoRepository(db *mongo.Database) *RestaurantMongoRepository {
	return &RestaurantMongoRepository{coll: db.Collection(RestaurantsCollection)}
}

var _ domain.Repository = (*RestaurantMongoRepository)(nil)

// EnsureIndexes backs the list query (category match, rating sort).
func (r *RestaurantMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "rating", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "rating", Value: -1}}},
	})
	return err
}

func restaurantQuery(f domain.Filter) bson.M {
	q := bson.M{}
	if f.Category != "" {
		q["category"] = f.Category
	}
	if f.MinRating != nil {
		q["rating"] = bson.M{"$gte": *f.MinRating}
	}
	if f.MaxDeliveryFee != nil {
		q["deliveryFee"] = bson.M{"$lte": *f.MaxDeliveryFee}
	}
	if f.MaxTime != nil {
		q["time"] = bson.M{"$lte": *f.MaxTime}
	}
	return q
}

// restaurantUpdate overwrites every mutable field. An empty promo is
// removed rather than stored as "".
func restaurantUpdate(rest *models.Restaurant) bson.M {
	set := bson.M{
		"name":        rest.Name,
		"rating":      rest.Rating,
		"category":    rest.Category,
		"time":        rest.Time,
		"deliveryFee": rest.DeliveryFee,
		"color1":      rest.Color1,
		"color2":      rest.Color2,
		"image":       rest.Image,
	}
	update := bson.M{"$set": set}
	if rest.Promo != "" {
		set["promo"] = rest.Promo
	} else {
		update["$unset"] = bson.M{"promo": ""}
	}
	return update
}

func (r *RestaurantMongoRepository) List(
	ctx context.Context,
	f domain.Filter,
) ([]models.Restaurant, error) {

	opts := options.Find().SetSort(bson.D{
		{Key: "rating", Value: -1},
		{Key: "createdAt", Value: 1},
	})

	cur, err := r.coll.Find(ctx, restaurantQuery(f), opts)
	if err != nil {
		return nil, err
	}

	restaurants := []models.Restaurant{}
	if err := cur.All(ctx, &restaurants); err != nil {
		return nil, err
	}

	return restaurants, nil
}

func (r *RestaurantMongoRepository) Get(
	ctx context.Context,
	id string,
) (*models.Restaurant, error) {

	if !models.IsValidID(id) {
		return nil, domain.ErrInvalidID
	}

	var rest models.Restaurant
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rest); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &rest, nil
}

func (r *RestaurantMongoRepository) Create(
	ctx context.Context,
	rest *models.Restaurant,
) error {

	if err := rest.PrepareForInsert(time.Now().UTC()); err != nil {
		return err
	}

	_, err := r.coll.InsertOne(ctx, rest)
	return err
}

func (r *RestaurantMongoRepository) Update(
	ctx context.Context,
	rest *models.Restaurant,
) error {

	if !models.IsValidID(rest.ID) {
		return domain.ErrInvalidID
	}

	rest.Normalize()
	if err := rest.Validate(); err != nil {
		return err
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": rest.ID}, restaurantUpdate(rest))
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *RestaurantMongoRepository) Delete(
	ctx context.Context,
	id string,
) error {

	if !models.IsValidID(id) {
		return domain.ErrInvalidID
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}

	return nil
}
