package utils

import (
	"testing"
	"time"

	"github.com/ougirez/coalportal/internal/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminToken_RoundTrip(t *testing.T) {
	t.Parallel()

	token, err := GenerateAdminToken("s3cret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseAdminToken("s3cret", token)
	require.NoError(t, err)
	assert.Equal(t, constants.RoleGovernment, claims.Role)
}

func TestAdminToken_Rejected(t *testing.T) {
	t.Parallel()

	token, err := GenerateAdminToken("s3cret", time.Hour)
	require.NoError(t, err)

	_, err = ParseAdminToken("other", token)
	require.ErrorIs(t, err, constants.ErrUnauthorized)

	expired, err := GenerateAdminToken("s3cret", -time.Minute)
	require.NoError(t, err)
	_, err = ParseAdminToken("s3cret", expired)
	require.ErrorIs(t, err, constants.ErrUnauthorized)

	_, err = ParseAdminToken("s3cret", "not-a-token")
	require.ErrorIs(t, err, constants.ErrUnauthorized)
}

func TestGenerateAdminToken_EmptySecret(t *testing.T) {
	t.Parallel()

	_, err := GenerateAdminToken("", time.Hour)
	require.Error(t, err)
}
