package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tanakrit-dev/userbase-be/internal/models"
	"github.com/tanakrit-dev/userbase-be/internal/models/dto"
	"github.com/tanakrit-dev/userbase-be/internal/security"
	"github.com/tanakrit-dev/userbase-be/internal/storage"
)

// ErrPasswordRequired indicates a create request arrived without a usable
// password. Always client-fixable.
var ErrPasswordRequired = errors.New("password is required")

// UserService orchestrates user-record reads and writes against the store,
// hashing passwords on create and conditionally on update. It holds no cache
// and no shared mutable state; every operation round-trips to the store.
type UserService struct {
	store  storage.UserStore
	hasher security.PasswordHasher
}

// NewUserService constructs the service.
func NewUserService(store storage.UserStore, hasher security.PasswordHasher) *UserService {
	return &UserService{store: store, hasher: hasher}
}

// List returns every user in store-default order. An empty result is not an
// error.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.store.ListUsers(ctx)
}

// Get returns the user with the given id, or storage.ErrNotFound.
func (s *UserService) Get(ctx context.Context, id int64) (models.User, error) {
	return s.store.GetUser(ctx, id)
}

// Create hashes the mandatory password, persists a new record, and returns
// it with the store-assigned id. The plaintext is discarded after hashing.
func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (models.User, error) {
	if strings.TrimSpace(req.Password) == "" {
		return models.User{}, ErrPasswordRequired
	}
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	user := models.User{
		Firstname:    req.Firstname,
		Fullname:     req.Fullname,
		Lastname:     req.Lastname,
		Username:     req.Username,
		PasswordHash: hash,
		Status:       req.Status,
	}
	return s.store.CreateUser(ctx, user)
}

// Update merges the supplied fields over the stored record and writes it
// back. Fields absent from req keep their stored values; the password hash
// is replaced only when a non-blank new password is supplied. The merge is a
// read-then-write with no concurrency token, so concurrent updates to the
// same id resolve last-write-wins. Returns storage.ErrNotFound when the id
// does not exist.
func (s *UserService) Update(ctx context.Context, id int64, req dto.UpdateUserRequest) (models.User, error) {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	if req.Firstname != nil {
		user.Firstname = *req.Firstname
	}
	if req.Fullname != nil {
		user.Fullname = *req.Fullname
	}
	if req.Lastname != nil {
		user.Lastname = *req.Lastname
	}
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Status != nil {
		user.Status = *req.Status
	}
	if req.Password != nil && strings.TrimSpace(*req.Password) != "" {
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return models.User{}, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := s.store.UpdateUser(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Delete hard-deletes the user with the given id. Returns
// storage.ErrNotFound when no row was removed.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.store.DeleteUser(ctx, id)
}
