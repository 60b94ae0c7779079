package post

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	domain "social-network-service/internal/domain/post"
	pkgerrors "social-network-service/pkg/errors"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]domain.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Post), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupTestUsecase(t *testing.T) (*PostUsecase, *MockRepository) {
	repo := new(MockRepository)
	return New(repo, zaptest.NewLogger(t)), repo
}

func TestCreate_Success(t *testing.T) {
	uc, repo := setupTestUsecase(t)
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(p *domain.Post) bool {
		return p.AuthorID == "u1" && p.Content == "hello world"
	})).Return(&domain.Post{ID: "p1", AuthorID: "u1", Content: "hello world"}, nil)

	created, err := uc.Create(ctx, CreateRequest{ActingID: "u1", Content: "hello world"})

	assert.NoError(t, err)
	assert.Equal(t, "p1", created.ID)
	repo.AssertExpectations(t)
}

func TestCreate_EmptyContentRejected(t *testing.T) {
	uc, repo := setupTestUsecase(t)

	created, err := uc.Create(context.Background(), CreateRequest{ActingID: "u1"})

	assert.Error(t, err)
	assert.Nil(t, created)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_ContentTooLong(t *testing.T) {
	uc, _ := setupTestUsecase(t)

	created, err := uc.Create(context.Background(), CreateRequest{
		ActingID: "u1",
		Content:  strings.Repeat("a", 2001),
	})

	assert.Error(t, err)
	assert.Nil(t, created)
}

func TestFeed_AnnotatesLikedByUser(t *testing.T) {
	uc, repo := setupTestUsecase(t)
	ctx := context.Background()

	repo.On("List", ctx).Return([]domain.Post{
		{ID: "p1", Likes: []domain.Like{{PostID: "p1", UserID: "u1"}}},
		{ID: "p2", Likes: []domain.Like{{PostID: "p2", UserID: "u2"}}},
		{ID: "p3"},
	}, nil)

	posts, err := uc.Feed(ctx, "u1")

	assert.NoError(t, err)
	assert.Len(t, posts, 3)
	assert.True(t, posts[0].LikedByUser)
	assert.False(t, posts[1].LikedByUser)
	assert.False(t, posts[2].LikedByUser)
}

func TestGetByID_NotFound(t *testing.T) {
	uc, repo := setupTestUsecase(t)
	ctx := context.Background()

	repo.On("GetByID", ctx, "missing").
		Return(nil, pkgerrors.NewNotFoundError("post", "post not found"))

	p, err := uc.GetByID(ctx, "missing", "u1")

	assert.Error(t, err)
	assert.Nil(t, p)
}

func TestDelete_Success(t *testing.T) {
	uc, repo := setupTestUsecase(t)
	ctx := context.Background()

	repo.On("GetByID", ctx, "p1").Return(&domain.Post{ID: "p1", AuthorID: "u1"}, nil)
	repo.On("Delete", ctx, "p1").Return(nil)

	err := uc.Delete(ctx, "p1", "u1")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDelete_Forbidden_WhenNotAuthor(t *testing.T) {
	uc, repo := setupTestUsecase(t)
	ctx := context.Background()

	repo.On("GetByID", ctx, "p1").Return(&domain.Post{ID: "p1", AuthorID: "u2"}, nil)

	err := uc.Delete(ctx, "p1", "u1")

	assert.ErrorIs(t, err, pkgerrors.ErrPermissionDenied)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
