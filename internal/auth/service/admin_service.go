package service

import (
	"context"
	"log/slog"

	"github.com/OngTK/WeWork/internal/auth/domain"
	autherror "github.com/OngTK/WeWork/internal/errors"
	"github.com/OngTK/WeWork/pkg/constant"
)

type AdminService struct {
	repo   domain.EmployeeRepository
	store  domain.TokenStore
	logger *slog.Logger
}

func NewAdminService(repo domain.EmployeeRepository, store domain.TokenStore, logger *slog.Logger) *AdminService {
	if logger == nil {
		logger = slog.Default()
	}

	return &AdminService{repo: repo, store: store, logger: logger}
}

// ForceLogout terminates the employee's refresh session and blacklists its
// current access token. Absent entries mean the employee is already logged
// out; calling this twice is a no-op the second time.
func (s *AdminService) ForceLogout(ctx context.Context, empID int64) error {
	if err := s.store.DeleteRefreshByEmp(ctx, empID); err != nil {
		return err
	}

	jti, remaining, found, err := s.store.AccessJTIByEmp(ctx, empID)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	if remaining > 0 {
		if err := s.store.Blacklist(ctx, jti, remaining); err != nil {
			return err
		}
		s.logger.Info("access token blacklisted by admin", "empId", empID, "accessJti", jti)
	}

	return s.store.DeleteAccessByEmp(ctx, empID)
}

// LockAccount marks the employee INACTIVE and terminates its session.
func (s *AdminService) LockAccount(ctx context.Context, empID int64) error {
	emp, err := s.repo.GetByEmpID(ctx, empID)
	if err != nil {
		return err
	}
	if emp == nil {
		return autherror.ErrEmployeeNotFound
	}

	if err := s.repo.UpdateStatus(ctx, empID, constant.StatusInactive); err != nil {
		return err
	}

	s.logger.Info("account locked", "empId", empID)

	return s.ForceLogout(ctx, empID)
}
