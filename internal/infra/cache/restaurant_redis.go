package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	domain "github.com/BruksfildServices01/ubereats-api/internal/domain/restaurant"
	"github.com/BruksfildServices01/ubereats-api/internal/models"
)

// ErrMiss is returned by a KV when the key is absent.
var ErrMiss = errors.New("cache miss")

// KV is the slice of redis the restaurant cache needs.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

type redisKV struct {
	client *redis.Client
}

func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}

func NewRedisKV(client *redis.Client) KV {
	return &redisKV{client: client}
}

func (r *redisKV) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrMiss
	}
	return val, err
}

func (r *redisKV) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *redisKV) Del(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// RestaurantRepository serves Get from the cache and drops entries on
// every write attempt to the same id. Cache failures never fail a request.
type RestaurantRepository struct {
	next domain.Repository
	kv   KV
	ttl  time.Duration
}

func NewRestaurantRepository(next domain.Repository, kv KV, ttl time.Duration) *RestaurantRepository {
	return &RestaurantRepository{next: next, kv: kv, ttl: ttl}
}

var _ domain.Repository = (*RestaurantRepository)(nil)

func restaurantKey(id string) string {
	return "restaurant:" + id
}

func (c *RestaurantRepository) List(ctx context.Context, f domain.Filter) ([]models.Restaurant, error) {
	return c.next.List(ctx, f)
}

func (c *RestaurantRepository) Get(ctx context.Context, id string) (*models.Restaurant, error) {
	key := restaurantKey(id)

	if raw, err := c.kv.Get(ctx, key); err == nil {
		var rest models.Restaurant
		if err := json.Unmarshal([]byte(raw), &rest); err == nil {
			return &rest, nil
		}
	} else if !errors.Is(err, ErrMiss) {
		log.Warn().Err(err).Str("key", key).Msg("restaurant cache read failed")
	}

	rest, err := c.next.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(rest); err == nil {
		if err := c.kv.Set(ctx, key, string(raw), c.ttl); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("restaurant cache write failed")
		}
	}

	return rest, nil
}

func (c *RestaurantRepository) Create(ctx context.Context, r *models.Restaurant) error {
	return c.next.Create(ctx, r)
}

// Update and Delete drop the entry before and after the write, so a read
// that filled the cache while the write was in flight is not kept.
func (c *RestaurantRepository) Update(ctx context.Context, r *models.Restaurant) error {
	c.invalidate(ctx, r.ID)
	if err := c.next.Update(ctx, r); err != nil {
		return err
	}
	c.invalidate(ctx, r.ID)
	return nil
}

func (c *RestaurantRepository) Delete(ctx context.Context, id string) error {
	c.invalidate(ctx, id)
	if err := c.next.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

func (c *RestaurantRepository) invalidate(ctx context.Context, id string) {
	if err := c.kv.Del(ctx, restaurantKey(id)); err != nil {
		log.Warn().Err(err).Str("id", id).Msg("restaurant cache invalidation failed")
	}
}
