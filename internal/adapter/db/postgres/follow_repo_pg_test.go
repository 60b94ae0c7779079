package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"social-network-service/internal/domain/user"
	pkgerrors "social-network-service/pkg/errors"
)

func TestFollowRepoPG_CreateExistsDelete(t *testing.T) {
	db := setupTestDB(t)
	log := zaptest.NewLogger(t)
	users := NewUserRepoPG(db, log)
	repo := NewFollowRepoPG(db, log)
	ctx := context.Background()

	alice, err := users.Create(ctx, &user.User{Email: "alice@example.com", Name: "Alice"})
	require.NoError(t, err)
	bob, err := users.Create(ctx, &user.User{Email: "bob@example.com", Name: "Bob"})
	require.NoError(t, err)

	exists, err := repo.Exists(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	edge, err := repo.Create(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, edge.FollowerID)
	assert.Equal(t, bob.ID, edge.FollowingID)

	exists, err = repo.Exists(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	// The edge is directed, the reverse does not exist
	exists, err = repo.Exists(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Delete(ctx, alice.ID, bob.ID))

	exists, err = repo.Exists(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFollowRepoPG_Create_Duplicate(t *testing.T) {
	db := setupTestDB(t)
	log := zaptest.NewLogger(t)
	users := NewUserRepoPG(db, log)
	repo := NewFollowRepoPG(db, log)
	ctx := context.Background()

	alice, err := users.Create(ctx, &user.User{Email: "alice@example.com", Name: "Alice"})
	require.NoError(t, err)
	bob, err := users.Create(ctx, &user.User{Email: "bob@example.com", Name: "Bob"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	_, err = repo.Create(ctx, alice.ID, bob.ID)
	require.Error(t, err)
	var existsErr *pkgerrors.AlreadyExistsError
	assert.ErrorAs(t, err, &existsErr)
}

func TestFollowRepoPG_Delete_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepoPG(db, zaptest.NewLogger(t))

	err := repo.Delete(context.Background(), "u1", "u2")
	require.Error(t, err)
	var notFound *pkgerrors.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
