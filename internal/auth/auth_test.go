package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinescope-service/internal/model"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, CheckPassword(hash, "wrong password"))
}

func TestIssueAndVerifyToken(t *testing.T) {
	manager := NewManager("test-secret")

	token, err := manager.IssueToken(model.User{ID: "user-1", DisplayName: "Ada"})
	require.NoError(t, err)

	claims, err := manager.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "Ada", claims.DisplayName)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a").IssueToken(model.User{ID: "user-1"})
	require.NoError(t, err)

	_, err = NewManager("secret-b").VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	_, err := NewManager("test-secret").VerifyToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
