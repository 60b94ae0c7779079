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

// FollowRepoPG implements the follow repository interface using PostgreSQL and GORM.
type FollowRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewFollowRepoPG creates a new instance of FollowRepoPG.
func NewFollowRepoPG(db *gorm.DB, log *zap.Logger) *FollowRepoPG {
	return &FollowRepoPG{db: db, log: log}
}

// Create inserts a directed follow edge. The composite unique index rejects
// duplicate edges that slip past the caller's existence check.
func (r *FollowRepoPG) Create(ctx context.Context, followerID, followingID string) (*user.FollowEdge, error) {
	model := FollowSchema{
		ID:          uuid.New().String(),
		FollowerID:  followerID,
		FollowingID: followingID,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			r.log.Warn("duplicate follow edge",
				zap.String("follower_id", followerID),
				zap.String("following_id", followingID))
			return nil, pkgerrors.NewAlreadyExistsError("follow", "already following this user")
		}
		r.log.Error("failed to create follow edge", zap.Error(err),
			zap.String("follower_id", followerID),
			zap.String("following_id", followingID))
		return nil, fmt.Errorf("failed to create follow: %w", err)
	}

	edge := toDomainFollowEdge(model)
	return &edge, nil
}

// Delete removes the edge for the given ordered pair
func (r *FollowRepoPG) Delete(ctx context.Context, followerID, followingID string) error {
	res := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&FollowSchema{})
	if res.Error != nil {
		r.log.Error("failed to delete follow edge", zap.Error(res.Error),
			zap.String("follower_id", followerID),
			zap.String("following_id", followingID))
		return fmt.Errorf("failed to delete follow: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return pkgerrors.NewNotFoundError("follow", "follow relationship not found")
	}
	return nil
}

// Exists reports whether an edge exists for the given ordered pair
func (r *FollowRepoPG) Exists(ctx context.Context, followerID, followingID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&FollowSchema{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	if err != nil {
		r.log.Error("failed to check follow edge", zap.Error(err),
			zap.String("follower_id", followerID),
			zap.String("following_id", followingID))
		return false, fmt.Errorf("failed to check follow: %w", err)
	}
	return count > 0, nil
}
