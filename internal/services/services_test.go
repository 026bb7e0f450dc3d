package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-manager/internal/models"
	"github.com/adanyl0v/go-task-manager/internal/password"
	"github.com/adanyl0v/go-task-manager/internal/storage"
	"github.com/adanyl0v/go-task-manager/internal/storage/memory"
)

var errStoreDown = errors.New("store is down")

func newTestHasher() password.Hasher {
	return password.NewArgon2idHasher(&argon2id.Params{
		Memory:      1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	})
}

func newTestAuthService(users UserStore) AuthService {
	return NewAuthService(zerolog.Nop(), users, newTestHasher())
}

// stepClock returns a clock advancing by one second on every call.
func stepClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	current := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(time.Second)
		return current
	}
}

func newTestTaskService(store *memory.Store) *taskServiceImpl {
	s := NewTaskService(zerolog.Nop(), store, store).(*taskServiceImpl)
	s.now = stepClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return s
}

func mustCreateUser(store *memory.Store, username, role string) int64 {
	id, err := store.CreateUser(context.Background(), &models.User{
		Username:     username,
		Role:         role,
		PasswordHash: "unused",
	})
	if err != nil {
		panic(err)
	}
	return id
}

// racingUserStore never finds a user by name, so uniqueness is only
// enforced by CreateUser.
type racingUserStore struct {
	*memory.Store
}

func (racingUserStore) GetUserByUsername(context.Context, string) (*models.User, error) {
	return nil, storage.ErrNotFound
}

type failingUserStore struct {
	*memory.Store
}

func (failingUserStore) GetUserByUsername(context.Context, string) (*models.User, error) {
	return nil, errStoreDown
}

func (failingUserStore) GetUserByID(context.Context, int64) (*models.User, error) {
	return nil, errStoreDown
}
