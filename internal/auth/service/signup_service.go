package service

import (
	"context"
	"time"

	"github.com/OngTK/WeWork/internal/auth/domain"
	"github.com/OngTK/WeWork/internal/auth/dto"
	autherror "github.com/OngTK/WeWork/internal/errors"
	"github.com/OngTK/WeWork/pkg/constant"
	"golang.org/x/crypto/bcrypt"
)

type SignUpService struct {
	repo domain.EmployeeRepository
}

func NewSignUpService(repo domain.EmployeeRepository) *SignUpService {
	return &SignUpService{repo: repo}
}

func (s *SignUpService) SignUp(ctx context.Context, input dto.SignUpInput) (*dto.SignUpResponse, error) {
	existing, err := s.repo.GetByLoginID(ctx, input.LoginID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrLoginIDTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	emp := &domain.Employee{
		LoginID:      input.LoginID,
		PasswordHash: string(hash),
		Name:         input.Name,
		Email:        input.Email,
		Position:     input.Position,
		DeptID:       input.DeptID,
		Status:       constant.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, emp); err != nil {
		return nil, err
	}

	return &dto.SignUpResponse{
		EmpID:   emp.EmpID,
		LoginID: emp.LoginID,
		Name:    emp.Name,
	}, nil
}
