package comment

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domain "social-network-service/internal/domain/post"
	pkgerrors "social-network-service/pkg/errors"
)

// Repository defines the interface for comment data access operations.
type Repository interface {
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	Delete(ctx context.Context, id string) error
}

// PostChecker exposes the post existence lookup used before attaching a
// comment.
type PostChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// CreateRequest represents the request payload for creating a comment.
type CreateRequest struct {
	ActingID string `validate:"required"`
	PostID   string `validate:"required"`
	Content  string `validate:"required,max=1000"`
}

// CommentUsecase implements the business logic for comments.
type CommentUsecase struct {
	repo     Repository
	posts    PostChecker
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a new comment usecase.
func New(repo Repository, posts PostChecker, log *zap.Logger) *CommentUsecase {
	return &CommentUsecase{repo: repo, posts: posts, log: log, validate: validator.New()}
}

// Create attaches a comment by the acting user to an existing post.
func (uc *CommentUsecase) Create(ctx context.Context, in CreateRequest) (*domain.Comment, error) {
	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("create comment validation failed", zap.Error(err))
		return nil, pkgerrors.NewValidationError("", "postId and content are required")
	}

	exists, err := uc.posts.Exists(ctx, in.PostID)
	if err != nil {
		uc.log.Error("failed to check post existence", zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to check post", err)
	}
	if !exists {
		uc.log.Warn("comment target post not found", zap.String("post_id", in.PostID))
		return nil, pkgerrors.NewNotFoundError("post", "post not found")
	}

	created, err := uc.repo.Create(ctx, &domain.Comment{
		PostID:  in.PostID,
		UserID:  in.ActingID,
		Content: in.Content,
	})
	if err != nil {
		uc.log.Error("failed to create comment", zap.Error(err))
		return nil, err
	}

	return created, nil
}

// Delete removes a comment after the ownership check.
func (uc *CommentUsecase) Delete(ctx context.Context, id, actingID string) error {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.log.Warn("failed to get comment for delete", zap.String("id", id), zap.Error(err))
		return err
	}
	if c.UserID != actingID {
		uc.log.Warn("comment delete ownership check failed",
			zap.String("id", id), zap.String("acting_id", actingID))
		return pkgerrors.ErrPermissionDenied
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.log.Error("failed to delete comment", zap.String("id", id), zap.Error(err))
		return err
	}

	uc.log.Info("comment deleted", zap.String("id", id))
	return nil
}
