package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"social-network-service/internal/domain/user"
	pkgerrors "social-network-service/pkg/errors"
)

// UserRepoPG implements the user repository interface using PostgreSQL and GORM.
type UserRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewUserRepoPG creates a new instance of UserRepoPG.
func NewUserRepoPG(db *gorm.DB, log *zap.Logger) *UserRepoPG {
	return &UserRepoPG{db: db, log: log}
}

// Create inserts a new user row. The unique index on email turns a lost
// uniqueness race into an AlreadyExists error instead of a second row.
func (r *UserRepoPG) Create(ctx context.Context, u *user.User) (*user.User, error) {
	if u == nil {
		return nil, errors.New("user cannot be nil")
	}

	model := UserSchema{
		ID:           uuid.New().String(),
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		Bio:          u.Bio,
		DateOfBirth:  u.DateOfBirth,
		Location:     u.Location,
		AvatarURL:    u.AvatarURL,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			r.log.Warn("duplicate email on insert", zap.String("email", u.Email))
			return nil, pkgerrors.NewAlreadyExistsError("user", "user with this email already exists")
		}
		r.log.Error("failed to create user in db", zap.Error(err), zap.String("email", u.Email))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	r.log.Info("user created in db", zap.String("id", model.ID))
	return toDomainUser(&model), nil
}

// GetByID retrieves a user by their unique ID. When withEdges is set, the
// follower and following edges are expanded together with the counterpart
// user of each edge.
func (r *UserRepoPG) GetByID(ctx context.Context, id string, withEdges bool) (*user.User, error) {
	var model UserSchema

	q := r.db.WithContext(ctx)
	if withEdges {
		q = q.Preload("Followers.Follower").Preload("Following.Following")
	}

	if err := q.First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warn("user not found", zap.String("id", id))
			return nil, pkgerrors.NewNotFoundError("user", "user not found")
		}
		r.log.Error("failed to get user from db", zap.Error(err), zap.String("id", id))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toDomainUser(&model), nil
}

// GetByEmail retrieves a user by email using an exact, case-sensitive match.
// Returns (nil, nil) when no row matches so callers can distinguish absence
// from a query failure.
func (r *UserRepoPG) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("user not found by email", zap.String("email", email))
			return nil, nil
		}
		r.log.Error("failed to get user by email from db", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return toDomainUser(&model), nil
}

// Update applies a partial update: only fields supplied in the patch change,
// every other column keeps its prior value. The avatar reference is not part
// of the patch and is therefore never reassigned here.
func (r *UserRepoPG) Update(ctx context.Context, id string, patch user.Patch) (*user.User, error) {
	updates := map[string]any{}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Bio != nil {
		updates["bio"] = *patch.Bio
	}
	if patch.DateOfBirth != nil {
		updates["date_of_birth"] = *patch.DateOfBirth
	}
	if patch.Location != nil {
		updates["location"] = *patch.Location
	}

	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&UserSchema{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
				r.log.Warn("duplicate email on update", zap.String("id", id))
				return nil, pkgerrors.NewAlreadyExistsError("user", "user with this email already exists")
			}
			r.log.Error("failed to update user in db", zap.Error(res.Error), zap.String("id", id))
			return nil, fmt.Errorf("failed to update user: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, pkgerrors.NewNotFoundError("user", "user not found")
		}
	}

	r.log.Info("user updated in db", zap.String("id", id))
	return r.GetByID(ctx, id, false)
}
