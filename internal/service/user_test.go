package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tanakrit-dev/userbase-be/internal/models"
	"github.com/tanakrit-dev/userbase-be/internal/models/dto"
	"github.com/tanakrit-dev/userbase-be/internal/security"
	"github.com/tanakrit-dev/userbase-be/internal/storage"
)

// memStore is an in-memory storage.UserStore for unit tests.
type memStore struct {
	mu    sync.Mutex
	seq   int64
	users map[int64]models.User
	err   error
}

var _ storage.UserStore = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{users: make(map[int64]models.User)}
}

func (m *memStore) ListUsers(ctx context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *memStore) GetUser(ctx context.Context, id int64) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return models.User{}, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return u, nil
}

func (m *memStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return models.User{}, m.err
	}
	m.seq++
	user.ID = m.seq
	m.users[user.ID] = user
	return user, nil
}

func (m *memStore) UpdateUser(ctx context.Context, user models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.users[user.ID]; !ok {
		return storage.ErrNotFound
	}
	m.users[user.ID] = user
	return nil
}

func (m *memStore) DeleteUser(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.users[id]; !ok {
		return storage.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *memStore) Now(ctx context.Context) (time.Time, error) {
	if m.err != nil {
		return time.Time{}, m.err
	}
	return time.Now(), nil
}

func newTestService(store *memStore) (*UserService, security.PasswordHasher) {
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	return NewUserService(store, hasher), hasher
}

func createRequest() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Firstname: "A",
		Fullname:  "B C",
		Lastname:  "C",
		Username:  "bc",
		Password:  "secret1",
		Status:    "active",
	}
}

func strptr(s string) *string { return &s }

func TestCreateRequiresPassword(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestService(store)

	for _, password := range []string{"", "   "} {
		req := createRequest()
		req.Password = password
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrPasswordRequired)
	}
	assert.Empty(t, store.users, "no row may be persisted on validation failure")
}

func TestCreateHashesPassword(t *testing.T) {
	store := newMemStore()
	svc, hasher := newTestService(store)

	created, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	assert.Positive(t, created.ID)
	assert.Equal(t, "bc", created.Username)
	assert.NotEqual(t, "secret1", created.PasswordHash)
	assert.True(t, hasher.Verify("secret1", created.PasswordHash))
}

func TestCreatePropagatesStoreFailure(t *testing.T) {
	store := newMemStore()
	store.err = errors.New("connection refused")
	svc, _ := newTestService(store)

	_, err := svc.Create(context.Background(), createRequest())
	assert.ErrorContains(t, err, "connection refused")
}

func TestUpdateRetainsHashWithoutPassword(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	cases := map[string]dto.UpdateUserRequest{
		"absent password": {Username: strptr("bc2")},
		"blank password":  {Username: strptr("bc2"), Password: strptr("   ")},
	}
	for name, req := range cases {
		updated, err := svc.Update(ctx, created.ID, req)
		require.NoError(t, err, name)
		assert.Equal(t, "bc2", updated.Username, name)
		assert.Equal(t, created.PasswordHash, updated.PasswordHash, name)
	}
}

func TestUpdateRehashesNewPassword(t *testing.T) {
	store := newMemStore()
	svc, hasher := newTestService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, dto.UpdateUserRequest{Password: strptr("secret2")})
	require.NoError(t, err)

	assert.NotEqual(t, created.PasswordHash, updated.PasswordHash)
	assert.True(t, hasher.Verify("secret2", updated.PasswordHash))
	assert.False(t, hasher.Verify("secret1", updated.PasswordHash))
}

func TestUpdateMergesOnlySuppliedFields(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, dto.UpdateUserRequest{
		Username: strptr("bc2"),
		Status:   strptr("inactive"),
	})
	require.NoError(t, err)

	assert.Equal(t, "bc2", updated.Username)
	assert.Equal(t, "inactive", updated.Status)
	assert.Equal(t, created.Firstname, updated.Firstname)
	assert.Equal(t, created.Fullname, updated.Fullname)
	assert.Equal(t, created.Lastname, updated.Lastname)

	stored, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
}

func TestOperationsOnMissingID(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestService(store)
	ctx := context.Background()

	_, err := svc.Get(ctx, 42)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = svc.Update(ctx, 42, dto.UpdateUserRequest{Username: strptr("ghost")})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, 42), storage.ErrNotFound)
}

func TestDeleteTwice(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), storage.ErrNotFound)

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestListEmptyIsNotAnError(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestService(store)

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}
