package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/OngTK/WeWork/internal/auth/domain"
	"github.com/redis/go-redis/v9"
)

// RedisStore implements domain.TokenStore on a Redis backend. Rotation
// safety relies on GETDEL: reading and deleting the forward refresh entry is
// a single server-side operation, so two concurrent reissues with the same
// jti can never both observe it.
type RedisStore struct {
	client *redis.Client
}

var _ domain.TokenStore = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) StoreRefresh(ctx context.Context, jti string, empID int64, ttl time.Duration) error {
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, refreshKey(jti), empID, ttl)
	pipe.Set(ctx, empRefreshKey(empID), jti, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store refresh: %w", err)
	}
	return nil
}

func (s *RedisStore) TakeRefresh(ctx context.Context, jti string) (int64, bool, error) {
	val, err := s.client.GetDel(ctx, refreshKey(jti)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("take refresh: %w", err)
	}

	empID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("take refresh: corrupt empId %q: %w", val, err)
	}

	return empID, true, nil
}

func (s *RedisStore) DeleteRefresh(ctx context.Context, jti string) error {
	return s.client.Del(ctx, refreshKey(jti)).Err()
}

func (s *RedisStore) RefreshJTIByEmp(ctx context.Context, empID int64) (string, bool, error) {
	jti, err := s.client.Get(ctx, empRefreshKey(empID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("refresh jti by emp: %w", err)
	}
	return jti, true, nil
}

func (s *RedisStore) DeleteRefreshByEmp(ctx context.Context, empID int64) error {
	jti, found, err := s.RefreshJTIByEmp(ctx, empID)
	if err != nil {
		return err
	}

	keys := []string{empRefreshKey(empID)}
	if found {
		keys = append(keys, refreshKey(jti))
	}

	return s.client.Del(ctx, keys...).Err()
}

func (s *RedisStore) TrackAccess(ctx context.Context, empID int64, jti string, ttl time.Duration) error {
	return s.client.Set(ctx, empAccessKey(empID), jti, ttl).Err()
}

func (s *RedisStore) AccessJTIByEmp(ctx context.Context, empID int64) (string, time.Duration, bool, error) {
	key := empAccessKey(empID)

	jti, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", 0, false, nil
	}
	if err != nil {
		return "", 0, false, fmt.Errorf("access jti by emp: %w", err)
	}

	remaining, err := s.client.TTL(ctx, key).Result()
	if err != nil {
		return "", 0, false, fmt.Errorf("access ttl by emp: %w", err)
	}
	if remaining < 0 {
		// Key vanished or carries no expiry; nothing meaningful to blacklist.
		return jti, 0, true, nil
	}

	return jti, remaining, true, nil
}

func (s *RedisStore) DeleteAccessByEmp(ctx context.Context, empID int64) error {
	return s.client.Del(ctx, empAccessKey(empID)).Err()
}

func (s *RedisStore) Blacklist(ctx context.Context, jti string, ttl time.Duration) error {
	return s.client.Set(ctx, blacklistKey(jti), "1", ttl).Err()
}

func (s *RedisStore) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, blacklistKey(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("blacklist check: %w", err)
	}
	return n > 0, nil
}

func (s *RedisStore) IncrLoginFail(ctx context.Context, loginID string, window time.Duration) (int64, error) {
	key := loginFailKey(loginID)

	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("incr login fail: %w", err)
	}

	// First failure opens the observation window. Concurrent first failures
	// may both run this; re-setting the TTL is harmless.
	if count == 1 {
		if err := s.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, fmt.Errorf("set login fail window: %w", err)
		}
	}

	return count, nil
}

func (s *RedisStore) LoginFailCount(ctx context.Context, loginID string) (int64, error) {
	count, err := s.client.Get(ctx, loginFailKey(loginID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("login fail count: %w", err)
	}
	return count, nil
}

func (s *RedisStore) ClearLoginFail(ctx context.Context, loginID string) error {
	return s.client.Del(ctx, loginFailKey(loginID)).Err()
}

func (s *RedisStore) StoreOTP(ctx context.Context, loginID, otp string, ttl time.Duration) error {
	return s.client.Set(ctx, pwResetKey(loginID), otp, ttl).Err()
}

func (s *RedisStore) GetOTP(ctx context.Context, loginID string) (string, bool, error) {
	otp, err := s.client.Get(ctx, pwResetKey(loginID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get otp: %w", err)
	}
	return otp, true, nil
}

func (s *RedisStore) DeleteOTP(ctx context.Context, loginID string) error {
	return s.client.Del(ctx, pwResetKey(loginID)).Err()
}

func (s *RedisStore) StoreResetToken(ctx context.Context, loginID, secret string, ttl time.Duration) error {
	return s.client.Set(ctx, pwResetTokenKey(loginID), secret, ttl).Err()
}

func (s *RedisStore) GetResetToken(ctx context.Context, loginID string) (string, bool, error) {
	secret, err := s.client.Get(ctx, pwResetTokenKey(loginID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get reset token: %w", err)
	}
	return secret, true, nil
}

func (s *RedisStore) DeleteResetToken(ctx context.Context, loginID string) error {
	return s.client.Del(ctx, pwResetTokenKey(loginID)).Err()
}
