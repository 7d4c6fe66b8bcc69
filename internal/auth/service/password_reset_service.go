package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/OngTK/WeWork/config"
	"github.com/OngTK/WeWork/internal/auth/domain"
	"github.com/OngTK/WeWork/internal/auth/dto"
	autherror "github.com/OngTK/WeWork/internal/errors"
	"golang.org/x/crypto/bcrypt"
)

type PasswordResetService struct {
	repo   domain.EmployeeRepository
	store  domain.TokenStore
	mailer domain.Mailer
	admin  *AdminService
	cfg    *config.Config
	logger *slog.Logger
}

func NewPasswordResetService(repo domain.EmployeeRepository, store domain.TokenStore, mailer domain.Mailer,
	admin *AdminService, cfg *config.Config, logger *slog.Logger) *PasswordResetService {
	if logger == nil {
		logger = slog.Default()
	}

	return &PasswordResetService{
		repo:   repo,
		store:  store,
		mailer: mailer,
		admin:  admin,
		cfg:    cfg,
		logger: logger,
	}
}

func (s *PasswordResetService) otpTTL() time.Duration {
	return time.Duration(s.cfg.OTPTTLMin) * time.Minute
}

func (s *PasswordResetService) resetTokenTTL() time.Duration {
	return time.Duration(s.cfg.ResetTokenTTLMin) * time.Minute
}

// generateOTP returns a 6-digit numeric code.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// generateResetSecret returns 32 random bytes, base64url without padding.
func generateResetSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// RequestReset issues a fresh OTP for the login id and mails it. A prior
// outstanding code is overwritten. The handler hides ErrEmployeeNotFound so
// the endpoint does not leak account existence.
func (s *PasswordResetService) RequestReset(ctx context.Context, loginID string) error {
	emp, err := s.repo.GetByLoginID(ctx, loginID)
	if err != nil {
		return err
	}
	if emp == nil {
		return autherror.ErrEmployeeNotFound
	}

	otp, err := generateOTP()
	if err != nil {
		return err
	}

	ttl := s.otpTTL()
	if err := s.store.StoreOTP(ctx, loginID, otp, ttl); err != nil {
		return err
	}

	body := fmt.Sprintf("Verification code: %s\nValid for %d minutes.", otp, int(ttl.Minutes()))
	if err := s.mailer.Send(ctx, emp.Email, "[WeWork] Password reset code", body); err != nil {
		return err
	}

	s.logger.Info("password reset requested", "empId", emp.EmpID)

	return nil
}

// VerifyOTP consumes the code exactly once: the record is deleted on the
// first correct submission and left intact on a mismatch, so the correct
// code still works until its TTL fires.
func (s *PasswordResetService) VerifyOTP(ctx context.Context, loginID, otp string) (*dto.OtpVerifyResponse, error) {
	stored, found, err := s.store.GetOTP(ctx, loginID)
	if err != nil {
		return nil, err
	}
	if !found || stored != otp {
		return nil, autherror.ErrUnauthorized
	}

	if err := s.store.DeleteOTP(ctx, loginID); err != nil {
		return nil, err
	}

	secret, err := generateResetSecret()
	if err != nil {
		return nil, err
	}

	ttl := s.resetTokenTTL()
	if err := s.store.StoreResetToken(ctx, loginID, secret, ttl); err != nil {
		return nil, err
	}

	s.logger.Info("password reset otp verified", "loginId", loginID)

	return &dto.OtpVerifyResponse{
		ResetToken: secret,
		ExpiresIn:  int64(ttl.Seconds()),
	}, nil
}

// ResetPassword consumes the reset secret, rejects password reuse, updates
// the hash, and kills the employee's whole session.
func (s *PasswordResetService) ResetPassword(ctx context.Context, input dto.ResetPasswordInput) error {
	stored, found, err := s.store.GetResetToken(ctx, input.LoginID)
	if err != nil {
		return err
	}
	if !found || stored != input.ResetToken {
		return autherror.ErrForbidden
	}

	emp, err := s.repo.GetByLoginID(ctx, input.LoginID)
	if err != nil {
		return err
	}
	if emp == nil {
		return autherror.ErrEmployeeNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(input.NewPassword)) == nil {
		return autherror.ErrPasswordReused
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, emp.EmpID, string(hash)); err != nil {
		return err
	}

	if err := s.store.DeleteResetToken(ctx, input.LoginID); err != nil {
		return err
	}
	if err := s.admin.ForceLogout(ctx, emp.EmpID); err != nil {
		return err
	}
	if err := s.store.ClearLoginFail(ctx, input.LoginID); err != nil {
		return err
	}

	s.logger.Info("password reset completed", "empId", emp.EmpID)

	return nil
}
