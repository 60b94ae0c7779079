package cached

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"social-network-service/internal/adapter/cache"
	domain "social-network-service/internal/domain/user"
	"social-network-service/internal/usecase/user"
)

// CachedUserRepository implements user.Repository with cache-aside reads.
// It wraps a persistent repository (DB) and a cache implementation. Reads
// that expand follow edges bypass the cache since only the flat profile is
// cached.
type CachedUserRepository struct {
	dbRepo user.Repository
	cache  cache.UserCache
	log    *zap.Logger
	group  singleflight.Group
}

// NewCachedUserRepository creates a new instance of CachedUserRepository.
func NewCachedUserRepository(dbRepo user.Repository, cache cache.UserCache, log *zap.Logger) user.Repository {
	return &CachedUserRepository{
		dbRepo: dbRepo,
		cache:  cache,
		log:    log,
	}
}

// Create delegates to the DB repository.
func (r *CachedUserRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	return r.dbRepo.Create(ctx, u)
}

// GetByID retrieves a user by ID using the cache-aside pattern. Concurrent
// misses for the same key collapse into a single database read.
func (r *CachedUserRepository) GetByID(ctx context.Context, id string, withEdges bool) (*domain.User, error) {
	if withEdges || r.cache == nil {
		return r.dbRepo.GetByID(ctx, id, withEdges)
	}

	cachedUser, err := r.cache.Get(ctx, id)
	if err != nil {
		r.log.Warn("cache get error, falling back to database", zap.String("id", id), zap.Error(err))
	} else if cachedUser != nil {
		return cachedUser, nil
	}

	result, err, _ := r.group.Do("user:"+id, func() (any, error) {
		// Double-check cache in case another request populated it while we
		// were waiting
		cachedUser, err := r.cache.Get(ctx, id)
		if err == nil && cachedUser != nil {
			return cachedUser, nil
		}

		u, err := r.dbRepo.GetByID(ctx, id, false)
		if err != nil {
			return nil, err
		}

		if err := r.cache.Set(ctx, u); err != nil {
			r.log.Warn("failed to cache user", zap.String("id", id), zap.Error(err))
		}

		return u, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*domain.User), nil
}

// GetByEmail delegates to the DB repository.
func (r *CachedUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.dbRepo.GetByEmail(ctx, email)
}

// Update updates the user in the DB and invalidates the cached profile.
func (r *CachedUserRepository) Update(ctx context.Context, id string, patch domain.Patch) (*domain.User, error) {
	updated, err := r.dbRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.Delete(ctx, id); err != nil {
			r.log.Warn("failed to invalidate cache after update", zap.String("id", id), zap.Error(err))
		}
	}

	return updated, nil
}
