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

// PostRepoPG implements the post repository interface using PostgreSQL and GORM.
type PostRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewPostRepoPG creates a new instance of PostRepoPG.
func NewPostRepoPG(db *gorm.DB, log *zap.Logger) *PostRepoPG {
	return &PostRepoPG{db: db, log: log}
}

// Create inserts a new post
func (r *PostRepoPG) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if p == nil {
		return nil, errors.New("post cannot be nil")
	}

	model := PostSchema{
		ID:       uuid.New().String(),
		AuthorID: p.AuthorID,
		Content:  p.Content,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create post in db", zap.Error(err), zap.String("author_id", p.AuthorID))
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	r.log.Info("post created in db", zap.String("id", model.ID))
	return toDomainPost(&model), nil
}

// GetByID retrieves a post with its author, comments (each with its author)
// and likes expanded.
func (r *PostRepoPG) GetByID(ctx context.Context, id string) (*post.Post, error) {
	var model PostSchema
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Comments.User").
		Preload("Likes.User").
		First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warn("post not found", zap.String("id", id))
			return nil, pkgerrors.NewNotFoundError("post", "post not found")
		}
		r.log.Error("failed to get post from db", zap.Error(err), zap.String("id", id))
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return toDomainPost(&model), nil
}

// List returns all posts, newest first, with authors and likes expanded
func (r *PostRepoPG) List(ctx context.Context) ([]post.Post, error) {
	var models []PostSchema
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Likes").
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		r.log.Error("failed to list posts from db", zap.Error(err))
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	posts := make([]post.Post, len(models))
	for i := range models {
		posts[i] = *toDomainPost(&models[i])
	}
	return posts, nil
}

// Delete removes a post together with its comments and likes in a single
// transaction so a partial failure cannot strand orphaned rows.
func (r *PostRepoPG) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&CommentSchema{}).Error; err != nil {
			return fmt.Errorf("failed to delete post comments: %w", err)
		}
		if err := tx.Where("post_id = ?", id).Delete(&LikeSchema{}).Error; err != nil {
			return fmt.Errorf("failed to delete post likes: %w", err)
		}

		res := tx.Where("id = ?", id).Delete(&PostSchema{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete post: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return pkgerrors.NewNotFoundError("post", "post not found")
		}
		return nil
	})
	if err != nil {
		var nf *pkgerrors.NotFoundError
		if !errors.As(err, &nf) {
			r.log.Error("failed to delete post in db", zap.Error(err), zap.String("id", id))
		}
		return err
	}

	r.log.Info("post deleted in db", zap.String("id", id))
	return nil
}

// Exists reports whether a post row exists
func (r *PostRepoPG) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&PostSchema{}).Where("id = ?", id).Count(&count).Error; err != nil {
		r.log.Error("failed to check post existence", zap.Error(err), zap.String("id", id))
		return false, fmt.Errorf("failed to check post: %w", err)
	}
	return count > 0, nil
}
