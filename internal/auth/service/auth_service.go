package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/OngTK/WeWork/config"
	"github.com/OngTK/WeWork/internal/auth/domain"
	"github.com/OngTK/WeWork/internal/auth/dto"
	autherror "github.com/OngTK/WeWork/internal/errors"
	"github.com/OngTK/WeWork/pkg/constant"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	repo   domain.EmployeeRepository
	store  domain.TokenStore
	tokens TokenGenerator
	cfg    *config.Config
	logger *slog.Logger
}

func NewAuthService(repo domain.EmployeeRepository, store domain.TokenStore, tokens TokenGenerator,
	cfg *config.Config, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthService{
		repo:   repo,
		store:  store,
		tokens: tokens,
		cfg:    cfg,
		logger: logger,
	}
}

// LoginResult bundles the JSON body with the refresh token the handler puts
// into the HttpOnly cookie.
type LoginResult struct {
	Body         dto.LoginResponse
	RefreshToken string
	RefreshTTL   time.Duration
}

func (s *AuthService) failWindow() time.Duration {
	return time.Duration(s.cfg.LoginFailWindowMin) * time.Minute
}

func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*LoginResult, error) {
	count, err := s.store.LoginFailCount(ctx, input.LoginID)
	if err != nil {
		return nil, err
	}
	if s.cfg.MaxLoginAttempts > 0 && count >= int64(s.cfg.MaxLoginAttempts) {
		s.logger.Warn("login throttled", "loginId", input.LoginID, "failures", count)
		return nil, autherror.ErrTooManyLoginAttempts
	}

	emp, err := s.repo.GetByLoginID(ctx, input.LoginID)
	if err != nil {
		return nil, err
	}

	if emp == nil || bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(input.Password)) != nil {
		if _, err := s.store.IncrLoginFail(ctx, input.LoginID, s.failWindow()); err != nil {
			return nil, err
		}
		return nil, autherror.ErrInvalidCredentials
	}

	if !emp.Active() {
		s.logger.Warn("login rejected for inactive employee", "empId", emp.EmpID)
		return nil, autherror.ErrEmployeeInactive
	}

	if err := s.store.ClearLoginFail(ctx, input.LoginID); err != nil {
		return nil, err
	}

	access, accessJTI, accessTTL, err := s.tokens.GenerateAccessToken(emp.EmpID, emp.LoginID)
	if err != nil {
		return nil, err
	}
	refresh, refreshJTI, refreshTTL, err := s.tokens.GenerateRefreshToken(emp.EmpID, emp.LoginID)
	if err != nil {
		return nil, err
	}

	// Track the current access jti so an admin can blacklist it without the
	// employee presenting the token.
	if err := s.store.TrackAccess(ctx, emp.EmpID, accessJTI, accessTTL); err != nil {
		return nil, err
	}
	if err := s.store.StoreRefresh(ctx, refreshJTI, emp.EmpID, refreshTTL); err != nil {
		return nil, err
	}

	s.logger.Info("login succeeded", "empId", emp.EmpID, "accessJti", accessJTI, "refreshJti", refreshJTI)

	return &LoginResult{
		Body: dto.LoginResponse{
			AccessToken: access,
			ExpiresIn:   int64(accessTTL.Seconds()),
			User: dto.UserSummary{
				EmpID:   emp.EmpID,
				LoginID: emp.LoginID,
				Name:    emp.Name,
				Roles:   emp.Roles(),
			},
		},
		RefreshToken: refresh,
		RefreshTTL:   refreshTTL,
	}, nil
}

// Logout is idempotent. Invalid, expired or wrongly-typed tokens are treated
// as already logged out; only store failures surface to the caller.
func (s *AuthService) Logout(ctx context.Context, refreshRaw, accessRaw string) error {
	if refreshRaw != "" {
		claims, err := s.tokens.Verify(refreshRaw)
		if err == nil && claims.Typ == constant.TokenTypeRefresh {
			if err := s.store.DeleteRefresh(ctx, claims.JTI()); err != nil {
				return err
			}
			s.logger.Info("logout", "empId", claims.EmpID, "refreshJti", claims.JTI())
		}
	}

	if accessRaw == "" {
		return nil
	}

	claims, err := s.tokens.Verify(accessRaw)
	if err != nil || claims.Typ != constant.TokenTypeAccess {
		return nil
	}

	remaining := claims.RemainingTTL()
	if remaining <= 0 {
		return nil
	}

	if err := s.store.Blacklist(ctx, claims.JTI(), remaining); err != nil {
		return err
	}
	s.logger.Info("access token blacklisted on logout", "empId", claims.EmpID, "accessJti", claims.JTI())

	return nil
}

// ReissueResult mirrors LoginResult for the rotation endpoint.
type ReissueResult struct {
	Body         dto.ReissueResponse
	RefreshToken string
	RefreshTTL   time.Duration
}

// Reissue rotates a refresh token. The forward index entry is consumed
// atomically, so a rotated-away jti can never succeed twice, no matter how
// the presentations interleave.
func (s *AuthService) Reissue(ctx context.Context, refreshRaw string) (*ReissueResult, error) {
	claims, err := s.tokens.Verify(refreshRaw)
	if err != nil {
		return nil, autherror.ErrInvalidRefresh
	}
	if claims.Typ != constant.TokenTypeRefresh {
		return nil, autherror.ErrInvalidRefresh
	}

	jti := claims.JTI()

	empID, found, err := s.store.TakeRefresh(ctx, jti)
	if err != nil {
		return nil, err
	}
	if !found {
		// Already rotated, logged out or force-revoked: reuse detection.
		s.logger.Warn("refresh reuse rejected", "empId", claims.EmpID, "refreshJti", jti)
		return nil, autherror.ErrInvalidRefresh
	}
	if empID != claims.EmpID {
		s.logger.Error("refresh jti owner mismatch", "claimEmpId", claims.EmpID, "storeEmpId", empID, "refreshJti", jti)
		return nil, autherror.ErrInvalidRefresh
	}

	access, accessJTI, accessTTL, err := s.tokens.GenerateAccessToken(claims.EmpID, claims.LoginID)
	if err != nil {
		return nil, err
	}
	refresh, refreshJTI, refreshTTL, err := s.tokens.GenerateRefreshToken(claims.EmpID, claims.LoginID)
	if err != nil {
		return nil, err
	}

	if err := s.store.StoreRefresh(ctx, refreshJTI, claims.EmpID, refreshTTL); err != nil {
		return nil, err
	}
	if err := s.store.TrackAccess(ctx, claims.EmpID, accessJTI, accessTTL); err != nil {
		return nil, err
	}

	s.logger.Info("token reissued", "empId", claims.EmpID, "oldRefreshJti", jti, "refreshJti", refreshJTI)

	return &ReissueResult{
		Body: dto.ReissueResponse{
			AccessToken: access,
			ExpiresIn:   int64(accessTTL.Seconds()),
		},
		RefreshToken: refresh,
		RefreshTTL:   refreshTTL,
	}, nil
}

// Authenticate is the per-request gatekeeper behind the auth middleware:
// verify, require typ=access, reject blacklisted jtis, then resolve the
// employee and its privileges. No store write happens on this path.
func (s *AuthService) Authenticate(ctx context.Context, accessRaw string) (*domain.Employee, *JWTCustomClaims, error) {
	claims, err := s.tokens.Verify(accessRaw)
	if err != nil {
		return nil, nil, autherror.ErrInvalidToken
	}
	if claims.Typ != constant.TokenTypeAccess {
		return nil, nil, autherror.ErrInvalidToken
	}

	revoked, err := s.store.IsBlacklisted(ctx, claims.JTI())
	if err != nil {
		return nil, nil, err
	}
	if revoked {
		s.logger.Info("blacklisted access token rejected", "empId", claims.EmpID, "accessJti", claims.JTI())
		return nil, nil, autherror.ErrTokenRevoked
	}

	emp, err := s.repo.GetByLoginID(ctx, claims.LoginID)
	if err != nil {
		return nil, nil, err
	}
	if emp == nil || !emp.Active() {
		return nil, nil, autherror.ErrInvalidToken
	}

	return emp, claims, nil
}
