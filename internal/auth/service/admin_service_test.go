package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/OngTK/WeWork/internal/auth/service"
	"github.com/OngTK/WeWork/internal/auth/store"
	autherror "github.com/OngTK/WeWork/internal/errors"
	"github.com/OngTK/WeWork/internal/mocks"
	"github.com/OngTK/WeWork/pkg/constant"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminService_ForceLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockEmployeeRepository(ctrl)
	memStore := store.NewMemoryStore()
	svc := service.NewAdminService(repo, memStore, nil)
	ctx := context.Background()

	require.NoError(t, memStore.StoreRefresh(ctx, "refresh-jti", 42, time.Hour))
	require.NoError(t, memStore.TrackAccess(ctx, 42, "access-jti", 15*time.Minute))

	require.NoError(t, svc.ForceLogout(ctx, 42))

	// Refresh session gone in both directions.
	_, found, err := memStore.TakeRefresh(ctx, "refresh-jti")
	require.NoError(t, err)
	assert.False(t, found)
	_, found, err = memStore.RefreshJTIByEmp(ctx, 42)
	require.NoError(t, err)
	assert.False(t, found)

	// Current access token blacklisted, tracking entry removed.
	revoked, err := memStore.IsBlacklisted(ctx, "access-jti")
	require.NoError(t, err)
	assert.True(t, revoked)
	_, _, found, err = memStore.AccessJTIByEmp(ctx, 42)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAdminService_ForceLogout_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockEmployeeRepository(ctrl)
	memStore := store.NewMemoryStore()
	svc := service.NewAdminService(repo, memStore, nil)
	ctx := context.Background()

	require.NoError(t, memStore.StoreRefresh(ctx, "refresh-jti", 42, time.Hour))
	require.NoError(t, memStore.TrackAccess(ctx, 42, "access-jti", 15*time.Minute))

	require.NoError(t, svc.ForceLogout(ctx, 42))
	// Second call finds nothing and still succeeds.
	require.NoError(t, svc.ForceLogout(ctx, 42))
}

func TestAdminService_ForceLogout_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockEmployeeRepository(ctrl)
	svc := service.NewAdminService(repo, store.NewMemoryStore(), nil)

	assert.NoError(t, svc.ForceLogout(context.Background(), 99))
}

func TestAdminService_LockAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockEmployeeRepository(ctrl)
	memStore := store.NewMemoryStore()
	svc := service.NewAdminService(repo, memStore, nil)
	ctx := context.Background()

	emp := testEmployee(t, "p1")

	require.NoError(t, memStore.StoreRefresh(ctx, "refresh-jti", 42, time.Hour))

	repo.EXPECT().GetByEmpID(gomock.Any(), int64(42)).Return(emp, nil)
	repo.EXPECT().UpdateStatus(gomock.Any(), int64(42), constant.StatusInactive).Return(nil)

	require.NoError(t, svc.LockAccount(ctx, 42))

	_, found, err := memStore.RefreshJTIByEmp(ctx, 42)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAdminService_LockAccount_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockEmployeeRepository(ctrl)
	svc := service.NewAdminService(repo, store.NewMemoryStore(), nil)

	repo.EXPECT().GetByEmpID(gomock.Any(), int64(77)).Return(nil, nil)

	err := svc.LockAccount(context.Background(), 77)
	assert.ErrorIs(t, err, autherror.ErrEmployeeNotFound)
}
