package post

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domain "social-network-service/internal/domain/post"
	pkgerrors "social-network-service/pkg/errors"
)

// Repository defines the interface for post data access operations.
type Repository interface {
	Create(ctx context.Context, p *domain.Post) (*domain.Post, error)
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
	Delete(ctx context.Context, id string) error
}

// CreateRequest represents the request payload for creating a post.
type CreateRequest struct {
	ActingID string `validate:"required"`
	Content  string `validate:"required,max=2000"`
}

// PostUsecase implements the business logic for posts.
type PostUsecase struct {
	repo     Repository
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a new post usecase.
func New(repo Repository, log *zap.Logger) *PostUsecase {
	return &PostUsecase{repo: repo, log: log, validate: validator.New()}
}

// Create publishes a new post authored by the acting user.
func (uc *PostUsecase) Create(ctx context.Context, in CreateRequest) (*domain.Post, error) {
	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("create post validation failed", zap.Error(err))
		return nil, pkgerrors.NewValidationError("content", "content is required")
	}

	created, err := uc.repo.Create(ctx, &domain.Post{
		AuthorID: in.ActingID,
		Content:  in.Content,
	})
	if err != nil {
		uc.log.Error("failed to create post", zap.Error(err))
		return nil, err
	}

	return created, nil
}

// Feed returns all posts, newest first, each annotated with whether the
// acting user has liked it.
func (uc *PostUsecase) Feed(ctx context.Context, actingID string) ([]domain.Post, error) {
	posts, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error("failed to list posts", zap.Error(err))
		return nil, err
	}

	for i := range posts {
		posts[i].LikedByUser = likedBy(&posts[i], actingID)
	}
	return posts, nil
}

// GetByID retrieves a post with comments and likes expanded, annotated with
// whether the acting user has liked it.
func (uc *PostUsecase) GetByID(ctx context.Context, id, actingID string) (*domain.Post, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.log.Warn("failed to get post", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	p.LikedByUser = likedBy(p, actingID)
	return p, nil
}

// Delete removes a post after the ownership check. Comments and likes are
// deleted with it.
func (uc *PostUsecase) Delete(ctx context.Context, id, actingID string) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.log.Warn("failed to get post for delete", zap.String("id", id), zap.Error(err))
		return err
	}
	if p.AuthorID != actingID {
		uc.log.Warn("post delete ownership check failed",
			zap.String("id", id), zap.String("acting_id", actingID))
		return pkgerrors.ErrPermissionDenied
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.log.Error("failed to delete post", zap.String("id", id), zap.Error(err))
		return err
	}

	uc.log.Info("post deleted", zap.String("id", id))
	return nil
}

func likedBy(p *domain.Post, userID string) bool {
	for _, l := range p.Likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}
