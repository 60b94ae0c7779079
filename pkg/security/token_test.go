package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "social-network-service/pkg/errors"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue("u1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

func TestTokenService_VerifyGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	_, err := svc.Verify("not-a-token")
	assert.ErrorIs(t, err, pkgerrors.ErrUnauthorized)
}

func TestTokenService_VerifyWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue("u1")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, pkgerrors.ErrUnauthorized)
}

func TestTokenService_VerifyExpired(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute)

	token, err := svc.Issue("u1")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, pkgerrors.ErrUnauthorized)
}

func TestTokenService_VerifyEmptySubject(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue("")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, pkgerrors.ErrUnauthorized)
}
