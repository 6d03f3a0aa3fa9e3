// internal/models/user_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	var user User
	require.NoError(t, user.SetPassword("Str0ng!pass"))

	assert.NotEqual(t, "Str0ng!pass", user.PasswordHash)
	assert.NoError(t, user.CheckPassword("Str0ng!pass"))
	assert.Error(t, user.CheckPassword("wrong-password"))
}
