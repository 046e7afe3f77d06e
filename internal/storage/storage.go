package storage

import (
	"context"
	"errors"
	"time"

	"github.com/tanakrit-dev/userbase-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// UserStore captures the persistence operations the service depends on.
// Implementations must use parameterized queries only.
type UserStore interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) error
	DeleteUser(ctx context.Context, id int64) error
	Now(ctx context.Context) (time.Time, error)
}
