package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/OngTK/WeWork/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	autherror "github.com/OngTK/WeWork/internal/errors"
	"github.com/OngTK/WeWork/pkg/constant"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenGenerator interface {
	GenerateAccessToken(empID int64, loginID string) (token string, jti string, ttl time.Duration, err error)
	GenerateRefreshToken(empID int64, loginID string) (token string, jti string, ttl time.Duration, err error)
	Verify(raw string) (*JWTCustomClaims, error)
	GetAccessTokenExpiry() time.Duration
	GetRefreshTokenExpiry() time.Duration
}

type TokenService struct {
	Secret             string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	EmpID   int64  `json:"empId"`
	LoginID string `json:"loginId"`
	Typ     string `json:"typ"`
}

// JTI returns the unique credential id embedded at issuance.
func (c *JWTCustomClaims) JTI() string {
	return c.ID
}

// RemainingTTL reports how long the token stays cryptographically valid.
// Zero or negative means it already expired.
func (c *JWTCustomClaims) RemainingTTL() time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	return time.Until(c.ExpiresAt.Time)
}

func NewTokenService(secret string, accessMinutes, refreshMinutes int) *TokenService {
	return &TokenService{
		Secret:             secret,
		AccessTokenExpiry:  time.Duration(accessMinutes) * time.Minute,
		RefreshTokenExpiry: time.Duration(refreshMinutes) * time.Minute,
	}
}

func (ts *TokenService) GenerateAccessToken(empID int64, loginID string) (string, string, time.Duration, error) {
	return ts.generate(empID, loginID, constant.TokenTypeAccess, ts.AccessTokenExpiry)
}

func (ts *TokenService) GenerateRefreshToken(empID int64, loginID string) (string, string, time.Duration, error) {
	return ts.generate(empID, loginID, constant.TokenTypeRefresh, ts.RefreshTokenExpiry)
}

func (ts *TokenService) generate(empID int64, loginID, typ string, expiry time.Duration) (string, string, time.Duration, error) {
	now := time.Now()
	jti := uuid.NewString()

	claims := JWTCustomClaims{
		EmpID:   empID,
		LoginID: loginID,
		Typ:     typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   fmt.Sprintf("%d", empID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
	if err != nil {
		return "", "", 0, err
	}

	return token, jti, expiry, nil
}

func (ts *TokenService) GetAccessTokenExpiry() time.Duration {
	return ts.AccessTokenExpiry
}

func (ts *TokenService) GetRefreshTokenExpiry() time.Duration {
	return ts.RefreshTokenExpiry
}

// Verify parses the given token string and validates signature, structure
// and expiry. It never touches the store; callers check the typ claim and
// store state themselves.
func (ts *TokenService) Verify(raw string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", autherror.ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, autherror.ErrInvalidToken
	}

	return claims, nil
}
