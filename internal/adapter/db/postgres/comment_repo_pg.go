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

// CommentRepoPG implements the comment repository interface using PostgreSQL and GORM.
type CommentRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewCommentRepoPG creates a new instance of CommentRepoPG.
func NewCommentRepoPG(db *gorm.DB, log *zap.Logger) *CommentRepoPG {
	return &CommentRepoPG{db: db, log: log}
}

// Create inserts a new comment
func (r *CommentRepoPG) Create(ctx context.Context, c *post.Comment) (*post.Comment, error) {
	if c == nil {
		return nil, errors.New("comment cannot be nil")
	}

	model := CommentSchema{
		ID:      uuid.New().String(),
		PostID:  c.PostID,
		UserID:  c.UserID,
		Content: c.Content,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create comment in db", zap.Error(err), zap.String("post_id", c.PostID))
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	r.log.Info("comment created in db", zap.String("id", model.ID))
	return toDomainComment(&model), nil
}

// GetByID retrieves a comment by its unique ID
func (r *CommentRepoPG) GetByID(ctx context.Context, id string) (*post.Comment, error) {
	var model CommentSchema
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warn("comment not found", zap.String("id", id))
			return nil, pkgerrors.NewNotFoundError("comment", "comment not found")
		}
		r.log.Error("failed to get comment from db", zap.Error(err), zap.String("id", id))
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return toDomainComment(&model), nil
}

// Delete removes a comment by ID
func (r *CommentRepoPG) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&CommentSchema{})
	if res.Error != nil {
		r.log.Error("failed to delete comment in db", zap.Error(res.Error), zap.String("id", id))
		return fmt.Errorf("failed to delete comment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return pkgerrors.NewNotFoundError("comment", "comment not found")
	}

	r.log.Info("comment deleted in db", zap.String("id", id))
	return nil
}
