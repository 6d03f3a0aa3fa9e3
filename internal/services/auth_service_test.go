// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truvalue/truvalue-backend/internal/config"
	"github.com/truvalue/truvalue-backend/internal/models"
)

// Registration stores the confirmation token on the user before the
// row is written, so nothing mutates the user once it is serialized
// into the response.
func TestIssueConfirmationTokenStoresOnUser(t *testing.T) {
	s := &AuthService{cfg: &config.Config{}}
	user := &models.User{Username: "alice", Email: "alice@example.com"}

	token, err := s.issueConfirmationToken(user)
	require.NoError(t, err)

	assert.NotEmpty(t, token)
	assert.Equal(t, token, user.ProfileData["email_confirmation_token"])
}

func TestIssueConfirmationTokenIsFreshPerCall(t *testing.T) {
	s := &AuthService{cfg: &config.Config{}}

	first, err := s.issueConfirmationToken(&models.User{})
	require.NoError(t, err)
	second, err := s.issueConfirmationToken(&models.User{})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
