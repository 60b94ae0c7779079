package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"social-network-service/internal/domain/post"
	"social-network-service/internal/domain/user"
	pkgerrors "social-network-service/pkg/errors"
)

type postFixture struct {
	users    *UserRepoPG
	posts    *PostRepoPG
	comments *CommentRepoPG
	likes    *LikeRepoPG
	db       *gorm.DB
}

func setupPostFixture(t *testing.T) *postFixture {
	db := setupTestDB(t)
	log := zaptest.NewLogger(t)
	return &postFixture{
		users:    NewUserRepoPG(db, log),
		posts:    NewPostRepoPG(db, log),
		comments: NewCommentRepoPG(db, log),
		likes:    NewLikeRepoPG(db, log),
		db:       db,
	}
}

func (f *postFixture) createUser(t *testing.T, email, name string) *user.User {
	u, err := f.users.Create(context.Background(), &user.User{Email: email, Name: name})
	require.NoError(t, err)
	return u
}

func TestPostRepoPG_CreateAndGetByID(t *testing.T) {
	f := setupPostFixture(t)
	ctx := context.Background()
	author := f.createUser(t, "alice@example.com", "Alice")

	created, err := f.posts.Create(ctx, &post.Post{AuthorID: author.ID, Content: "hello"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := f.posts.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Content)
	require.NotNil(t, got.Author)
	assert.Equal(t, "Alice", got.Author.Name)
}

func TestPostRepoPG_GetByID_ExpandsCommentsAndLikes(t *testing.T) {
	f := setupPostFixture(t)
	ctx := context.Background()
	author := f.createUser(t, "alice@example.com", "Alice")
	reader := f.createUser(t, "bob@example.com", "Bob")

	p, err := f.posts.Create(ctx, &post.Post{AuthorID: author.ID, Content: "hello"})
	require.NoError(t, err)

	_, err = f.comments.Create(ctx, &post.Comment{PostID: p.ID, UserID: reader.ID, Content: "nice"})
	require.NoError(t, err)
	_, err = f.likes.Create(ctx, p.ID, reader.ID)
	require.NoError(t, err)

	got, err := f.posts.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "nice", got.Comments[0].Content)
	require.NotNil(t, got.Comments[0].User)
	assert.Equal(t, "Bob", got.Comments[0].User.Name)
	require.Len(t, got.Likes, 1)
	assert.Equal(t, reader.ID, got.Likes[0].UserID)
}

func TestPostRepoPG_List_NewestFirst(t *testing.T) {
	f := setupPostFixture(t)
	ctx := context.Background()
	author := f.createUser(t, "alice@example.com", "Alice")

	first, err := f.posts.Create(ctx, &post.Post{AuthorID: author.ID, Content: "first"})
	require.NoError(t, err)
	second, err := f.posts.Create(ctx, &post.Post{AuthorID: author.ID, Content: "second"})
	require.NoError(t, err)

	// Force distinct timestamps, sqlite time resolution can collapse them
	require.NoError(t, f.db.Model(&PostSchema{}).Where("id = ?", first.ID).
		Update("created_at", gorm.Expr("datetime(created_at, '-1 hour')")).Error)

	posts, err := f.posts.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, second.ID, posts[0].ID)
	assert.Equal(t, first.ID, posts[1].ID)
}

func TestPostRepoPG_Delete_CascadesCommentsAndLikes(t *testing.T) {
	f := setupPostFixture(t)
	ctx := context.Background()
	author := f.createUser(t, "alice@example.com", "Alice")
	reader := f.createUser(t, "bob@example.com", "Bob")

	p, err := f.posts.Create(ctx, &post.Post{AuthorID: author.ID, Content: "hello"})
	require.NoError(t, err)
	c, err := f.comments.Create(ctx, &post.Comment{PostID: p.ID, UserID: reader.ID, Content: "nice"})
	require.NoError(t, err)
	_, err = f.likes.Create(ctx, p.ID, reader.ID)
	require.NoError(t, err)

	require.NoError(t, f.posts.Delete(ctx, p.ID))

	_, err = f.posts.GetByID(ctx, p.ID)
	var notFound *pkgerrors.NotFoundError
	assert.ErrorAs(t, err, &notFound)

	_, err = f.comments.GetByID(ctx, c.ID)
	assert.ErrorAs(t, err, &notFound)

	liked, err := f.likes.Exists(ctx, p.ID, reader.ID)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestPostRepoPG_Delete_NotFound(t *testing.T) {
	f := setupPostFixture(t)

	err := f.posts.Delete(context.Background(), "missing")
	require.Error(t, err)
	var notFound *pkgerrors.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestLikeRepoPG_DuplicatePair(t *testing.T) {
	f := setupPostFixture(t)
	ctx := context.Background()
	author := f.createUser(t, "alice@example.com", "Alice")

	p, err := f.posts.Create(ctx, &post.Post{AuthorID: author.ID, Content: "hello"})
	require.NoError(t, err)

	_, err = f.likes.Create(ctx, p.ID, author.ID)
	require.NoError(t, err)

	_, err = f.likes.Create(ctx, p.ID, author.ID)
	require.Error(t, err)
	var existsErr *pkgerrors.AlreadyExistsError
	assert.ErrorAs(t, err, &existsErr)
}

func TestLikeRepoPG_Delete_NotFound(t *testing.T) {
	f := setupPostFixture(t)

	err := f.likes.Delete(context.Background(), "p1", "u1")
	require.Error(t, err)
	var notFound *pkgerrors.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestCommentRepoPG_DeleteRemovesRow(t *testing.T) {
	f := setupPostFixture(t)
	ctx := context.Background()
	author := f.createUser(t, "alice@example.com", "Alice")

	p, err := f.posts.Create(ctx, &post.Post{AuthorID: author.ID, Content: "hello"})
	require.NoError(t, err)
	c, err := f.comments.Create(ctx, &post.Comment{PostID: p.ID, UserID: author.ID, Content: "hi"})
	require.NoError(t, err)

	require.NoError(t, f.comments.Delete(ctx, c.ID))

	_, err = f.comments.GetByID(ctx, c.ID)
	var notFound *pkgerrors.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
