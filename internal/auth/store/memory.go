package store

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/OngTK/WeWork/internal/auth/domain"
)

// MemoryStore is an in-process domain.TokenStore with per-key expiry. It
// backs local development and the service tests; semantics mirror the Redis
// backend, including TakeRefresh being atomic.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

var _ domain.TokenStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// get returns the live value for key, pruning it if expired. Caller holds mu.
func (s *MemoryStore) get(key string) (string, bool) {
	entry, ok := s.entries[key]
	if !ok {
		return "", false
	}
	if !s.now().Before(entry.expiresAt) {
		delete(s.entries, key)
		return "", false
	}
	return entry.value, true
}

func (s *MemoryStore) set(key, value string, ttl time.Duration) {
	s.entries[key] = memoryEntry{value: value, expiresAt: s.now().Add(ttl)}
}

func (s *MemoryStore) StoreRefresh(_ context.Context, jti string, empID int64, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.set(refreshKey(jti), strconv.FormatInt(empID, 10), ttl)
	s.set(empRefreshKey(empID), jti, ttl)

	return nil
}

func (s *MemoryStore) TakeRefresh(_ context.Context, jti string) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	val, ok := s.get(refreshKey(jti))
	if !ok {
		return 0, false, nil
	}
	delete(s.entries, refreshKey(jti))

	empID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, err
	}

	return empID, true, nil
}

func (s *MemoryStore) DeleteRefresh(_ context.Context, jti string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, refreshKey(jti))

	return nil
}

func (s *MemoryStore) RefreshJTIByEmp(_ context.Context, empID int64) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	jti, ok := s.get(empRefreshKey(empID))

	return jti, ok, nil
}

func (s *MemoryStore) DeleteRefreshByEmp(_ context.Context, empID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if jti, ok := s.get(empRefreshKey(empID)); ok {
		delete(s.entries, refreshKey(jti))
	}
	delete(s.entries, empRefreshKey(empID))

	return nil
}

func (s *MemoryStore) TrackAccess(_ context.Context, empID int64, jti string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.set(empAccessKey(empID), jti, ttl)

	return nil
}

func (s *MemoryStore) AccessJTIByEmp(_ context.Context, empID int64) (string, time.Duration, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	jti, ok := s.get(empAccessKey(empID))
	if !ok {
		return "", 0, false, nil
	}

	remaining := s.entries[empAccessKey(empID)].expiresAt.Sub(s.now())

	return jti, remaining, true, nil
}

func (s *MemoryStore) DeleteAccessByEmp(_ context.Context, empID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, empAccessKey(empID))

	return nil
}

func (s *MemoryStore) Blacklist(_ context.Context, jti string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.set(blacklistKey(jti), "1", ttl)

	return nil
}

func (s *MemoryStore) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.get(blacklistKey(jti))

	return ok, nil
}

func (s *MemoryStore) IncrLoginFail(_ context.Context, loginID string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := loginFailKey(loginID)

	count := int64(0)
	if val, ok := s.get(key); ok {
		count, _ = strconv.ParseInt(val, 10, 64)
		count++
		// Keep the original window expiry.
		s.entries[key] = memoryEntry{
			value:     strconv.FormatInt(count, 10),
			expiresAt: s.entries[key].expiresAt,
		}
		return count, nil
	}

	count = 1
	s.set(key, "1", window)

	return count, nil
}

func (s *MemoryStore) LoginFailCount(_ context.Context, loginID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	val, ok := s.get(loginFailKey(loginID))
	if !ok {
		return 0, nil
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (s *MemoryStore) ClearLoginFail(_ context.Context, loginID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, loginFailKey(loginID))

	return nil
}

func (s *MemoryStore) StoreOTP(_ context.Context, loginID, otp string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.set(pwResetKey(loginID), otp, ttl)

	return nil
}

func (s *MemoryStore) GetOTP(_ context.Context, loginID string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	otp, ok := s.get(pwResetKey(loginID))

	return otp, ok, nil
}

func (s *MemoryStore) DeleteOTP(_ context.Context, loginID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, pwResetKey(loginID))

	return nil
}

func (s *MemoryStore) StoreResetToken(_ context.Context, loginID, secret string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.set(pwResetTokenKey(loginID), secret, ttl)

	return nil
}

func (s *MemoryStore) GetResetToken(_ context.Context, loginID string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	secret, ok := s.get(pwResetTokenKey(loginID))

	return secret, ok, nil
}

func (s *MemoryStore) DeleteResetToken(_ context.Context, loginID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, pwResetTokenKey(loginID))

	return nil
}
