package service

import (
	"testing"
	"time"

	autherror "github.com/OngTK/WeWork/internal/errors"
	"github.com/OngTK/WeWork/pkg/constant"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService(t *testing.T) {
	tests := []struct {
		name           string
		secret         string
		accessMinutes  int
		refreshMinutes int
	}{
		{
			name:           "valid parameters",
			secret:         "signing-secret",
			accessMinutes:  15,
			refreshMinutes: 10080,
		},
		{
			name:           "short expiries",
			secret:         "another-secret",
			accessMinutes:  1,
			refreshMinutes: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenService(tt.secret, tt.accessMinutes, tt.refreshMinutes)

			assert.NotNil(t, ts)
			assert.Equal(t, tt.secret, ts.Secret)
			assert.Equal(t, time.Duration(tt.accessMinutes)*time.Minute, ts.GetAccessTokenExpiry())
			assert.Equal(t, time.Duration(tt.refreshMinutes)*time.Minute, ts.GetRefreshTokenExpiry())
		})
	}
}

func TestTokenService_Generate(t *testing.T) {
	ts := NewTokenService("signing-secret", 15, 10080)

	tests := []struct {
		name     string
		generate func() (string, string, time.Duration, error)
		wantTyp  string
		wantTTL  time.Duration
	}{
		{
			name: "access token",
			generate: func() (string, string, time.Duration, error) {
				return ts.GenerateAccessToken(42, "alice")
			},
			wantTyp: constant.TokenTypeAccess,
			wantTTL: 15 * time.Minute,
		},
		{
			name: "refresh token",
			generate: func() (string, string, time.Duration, error) {
				return ts.GenerateRefreshToken(42, "alice")
			},
			wantTyp: constant.TokenTypeRefresh,
			wantTTL: 10080 * time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, jti, ttl, err := tt.generate()

			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.NotEmpty(t, jti)
			assert.Equal(t, tt.wantTTL, ttl)

			claims, err := ts.Verify(token)
			require.NoError(t, err)
			assert.Equal(t, int64(42), claims.EmpID)
			assert.Equal(t, "alice", claims.LoginID)
			assert.Equal(t, tt.wantTyp, claims.Typ)
			assert.Equal(t, jti, claims.JTI())
			assert.Greater(t, claims.RemainingTTL(), time.Duration(0))
		})
	}
}

func TestTokenService_Generate_UniqueJTI(t *testing.T) {
	ts := NewTokenService("signing-secret", 15, 10080)

	_, jti1, _, err := ts.GenerateAccessToken(1, "alice")
	require.NoError(t, err)
	_, jti2, _, err := ts.GenerateAccessToken(1, "alice")
	require.NoError(t, err)

	assert.NotEqual(t, jti1, jti2)
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	ts := NewTokenService("signing-secret", 15, 10080)
	other := NewTokenService("different-secret", 15, 10080)

	token, _, _, err := ts.GenerateAccessToken(1, "alice")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, autherror.ErrInvalidToken)
}

func TestTokenService_Verify_Expired(t *testing.T) {
	ts := NewTokenService("signing-secret", 15, 10080)

	now := time.Now()
	claims := JWTCustomClaims{
		EmpID:   1,
		LoginID: "alice",
		Typ:     constant.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "expired-jti",
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
	require.NoError(t, err)

	_, err = ts.Verify(token)
	assert.ErrorIs(t, err, autherror.ErrInvalidToken)
}

func TestTokenService_Verify_WrongSigningMethod(t *testing.T) {
	ts := NewTokenService("signing-secret", 15, 10080)

	// alg=none tokens must never pass.
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, JWTCustomClaims{
		EmpID:   1,
		LoginID: "alice",
		Typ:     constant.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "unsigned-jti",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ts.Verify(token)
	assert.ErrorIs(t, err, autherror.ErrInvalidToken)
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	ts := NewTokenService("signing-secret", 15, 10080)

	_, err := ts.Verify("not-a-jwt")
	assert.ErrorIs(t, err, autherror.ErrInvalidToken)
}
