package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/gopher-accounts/internal/serviceerrs"
)

var testSecret = []byte("super-secret-key")

func TestAuthenticate_CheckToken(t *testing.T) {
	cookie, err := Authenticate(42, testSecret)
	require.NoError(t, err)
	assert.Equal(t, CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)

	claims, err := CheckToken(cookie.Value, testSecret)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.NotEmpty(t, claims.ID)
}

func TestCheckToken_errors(t *testing.T) {
	valid, err := buildJWTString(1, testSecret)
	require.NoError(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
		UserID: 1,
	}).SignedString(testSecret)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: 1}).
		SignedString(testSecret)
	require.NoError(t, err)

	tests := []struct {
		wantIs error
		name   string
		token  string
		secret []byte
	}{
		{nil, "wrong secret", valid, []byte("other-secret")},
		{serviceerrs.ErrTokenExpired, "expired", expired, testSecret},
		{nil, "no expiry", noExpiry, testSecret},
		{nil, "garbage", "not.a.token", testSecret},
		{nil, "empty", "", testSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := CheckToken(tt.token, tt.secret)
			require.Error(t, err)
			assert.Equal(t, Claims{}, claims)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
		})
	}
}
