package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"social-network-service/internal/domain/post"
	pkgerrors "social-network-service/pkg/errors"
)

// LikeRepoPG implements the like repository interface using PostgreSQL and GORM.
type LikeRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewLikeRepoPG creates a new instance of LikeRepoPG.
func NewLikeRepoPG(db *gorm.DB, log *zap.Logger) *LikeRepoPG {
	return &LikeRepoPG{db: db, log: log}
}

// Create inserts a like for the given (post, user) pair. The composite
// unique index rejects a second like for the same pair.
func (r *LikeRepoPG) Create(ctx context.Context, postID, userID string) (*post.Like, error) {
	model := LikeSchema{
		ID:     uuid.New().String(),
		PostID: postID,
		UserID: userID,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			r.log.Warn("duplicate like", zap.String("post_id", postID), zap.String("user_id", userID))
			return nil, pkgerrors.NewAlreadyExistsError("like", "post already liked")
		}
		r.log.Error("failed to create like in db", zap.Error(err),
			zap.String("post_id", postID), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to create like: %w", err)
	}

	return toDomainLike(&model), nil
}

// Delete removes the like for the given (post, user) pair
func (r *LikeRepoPG) Delete(ctx context.Context, postID, userID string) error {
	res := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&LikeSchema{})
	if res.Error != nil {
		r.log.Error("failed to delete like in db", zap.Error(res.Error),
			zap.String("post_id", postID), zap.String("user_id", userID))
		return fmt.Errorf("failed to delete like: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return pkgerrors.NewNotFoundError("like", "like not found")
	}
	return nil
}

// Exists reports whether the given user already liked the given post
func (r *LikeRepoPG) Exists(ctx context.Context, postID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&LikeSchema{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	if err != nil {
		r.log.Error("failed to check like existence", zap.Error(err),
			zap.String("post_id", postID), zap.String("user_id", userID))
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return count > 0, nil
}
