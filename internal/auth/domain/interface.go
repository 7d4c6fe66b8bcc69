package domain

//go:generate mockgen -destination=../../mocks/mock_domain.go -package=mocks github.com/OngTK/WeWork/internal/auth/domain EmployeeRepository,TokenStore,Mailer

import (
	"context"
	"time"
)

type EmployeeRepository interface {
	GetByLoginID(ctx context.Context, loginID string) (*Employee, error)
	GetByEmpID(ctx context.Context, empID int64) (*Employee, error)
	Create(ctx context.Context, employee *Employee) error
	UpdatePassword(ctx context.Context, empID int64, passwordHash string) error
	UpdateStatus(ctx context.Context, empID int64, status string) error
}

// TokenStore is the TTL key-value capability backing session state. Every
// method maps to a single per-key store operation; no multi-key transaction
// is assumed beyond TakeRefresh being an atomic read-and-delete.
type TokenStore interface {
	// StoreRefresh writes both directions of the refresh index:
	// refresh:{jti} -> empID and emp_refresh:{empID} -> jti.
	StoreRefresh(ctx context.Context, jti string, empID int64, ttl time.Duration) error
	// TakeRefresh atomically reads and deletes refresh:{jti}. A miss means
	// the token was already rotated, logged out, or expired.
	TakeRefresh(ctx context.Context, jti string) (int64, bool, error)
	DeleteRefresh(ctx context.Context, jti string) error
	RefreshJTIByEmp(ctx context.Context, empID int64) (string, bool, error)
	DeleteRefreshByEmp(ctx context.Context, empID int64) error

	TrackAccess(ctx context.Context, empID int64, jti string, ttl time.Duration) error
	// AccessJTIByEmp returns the tracked access jti and its remaining TTL.
	AccessJTIByEmp(ctx context.Context, empID int64) (string, time.Duration, bool, error)
	DeleteAccessByEmp(ctx context.Context, empID int64) error

	Blacklist(ctx context.Context, jti string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)

	// IncrLoginFail increments login_fail:{loginID}; the first failure in a
	// window sets the window TTL.
	IncrLoginFail(ctx context.Context, loginID string, window time.Duration) (int64, error)
	LoginFailCount(ctx context.Context, loginID string) (int64, error)
	ClearLoginFail(ctx context.Context, loginID string) error

	StoreOTP(ctx context.Context, loginID, otp string, ttl time.Duration) error
	GetOTP(ctx context.Context, loginID string) (string, bool, error)
	DeleteOTP(ctx context.Context, loginID string) error

	StoreResetToken(ctx context.Context, loginID, secret string, ttl time.Duration) error
	GetResetToken(ctx context.Context, loginID string) (string, bool, error)
	DeleteResetToken(ctx context.Context, loginID string) error
}

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
