package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	domain "social-network-service/internal/domain/user"
)

// UserCache defines the interface for user caching operations.
type UserCache interface {
	// Get retrieves a user from cache by ID.
	// Returns nil if the user is not cached.
	Get(ctx context.Context, id string) (*domain.User, error)

	// Set stores a user in cache with the configured TTL.
	Set(ctx context.Context, user *domain.User) error

	// Delete removes a user from cache by ID.
	Delete(ctx context.Context, id string) error
}

// RedisUserCache implements UserCache using Redis as the backing store.
// Only the flat profile is cached; relation expansions always go to the
// database.
type RedisUserCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedisUserCache creates a new Redis-backed user cache.
func NewRedisUserCache(client *redis.Client, ttl time.Duration, log *zap.Logger) UserCache {
	return &RedisUserCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

// cachedUser is the wire shape of a cached profile. The password hash is
// deliberately excluded so it never lands in Redis.
type cachedUser struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Bio         string     `json:"bio,omitempty"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Location    string     `json:"location,omitempty"`
	AvatarURL   string     `json:"avatarUrl,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// cacheKey generates a Redis key for a user ID.
func (c *RedisUserCache) cacheKey(id string) string {
	return "user:" + id
}

// Get retrieves a user from Redis cache.
func (c *RedisUserCache) Get(ctx context.Context, id string) (*domain.User, error) {
	key := c.cacheKey(id)

	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		// Cache miss - not an error
		c.log.Debug("cache miss", zap.String("user_id", id))
		return nil, nil
	}
	if err != nil {
		c.log.Error("failed to get from cache", zap.String("user_id", id), zap.Error(err))
		return nil, err
	}

	var cu cachedUser
	if err := json.Unmarshal(data, &cu); err != nil {
		c.log.Error("failed to unmarshal cached user", zap.String("user_id", id), zap.Error(err))
		return nil, err
	}

	c.log.Debug("cache hit", zap.String("user_id", id))
	return &domain.User{
		ID:          cu.ID,
		Email:       cu.Email,
		Name:        cu.Name,
		Bio:         cu.Bio,
		DateOfBirth: cu.DateOfBirth,
		Location:    cu.Location,
		AvatarURL:   cu.AvatarURL,
		CreatedAt:   cu.CreatedAt,
		UpdatedAt:   cu.UpdatedAt,
	}, nil
}

// Set stores a user in Redis cache with TTL.
func (c *RedisUserCache) Set(ctx context.Context, user *domain.User) error {
	if user == nil {
		return fmt.Errorf("cannot cache nil user")
	}

	cu := cachedUser{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		Bio:         user.Bio,
		DateOfBirth: user.DateOfBirth,
		Location:    user.Location,
		AvatarURL:   user.AvatarURL,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}

	data, err := json.Marshal(cu)
	if err != nil {
		c.log.Error("failed to marshal user for cache", zap.String("user_id", user.ID), zap.Error(err))
		return err
	}

	if err := c.client.Set(ctx, c.cacheKey(user.ID), data, c.ttl).Err(); err != nil {
		c.log.Error("failed to set cache", zap.String("user_id", user.ID), zap.Error(err))
		return err
	}

	c.log.Debug("cached user", zap.String("user_id", user.ID), zap.Duration("ttl", c.ttl))
	return nil
}

// Delete removes a user from Redis cache.
func (c *RedisUserCache) Delete(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, c.cacheKey(id)).Err(); err != nil {
		c.log.Error("failed to delete from cache", zap.String("user_id", id), zap.Error(err))
		return err
	}

	c.log.Debug("deleted from cache", zap.String("user_id", id))
	return nil
}
