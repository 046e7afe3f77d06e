package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tanakrit-dev/userbase-be/internal/models"
	"github.com/tanakrit-dev/userbase-be/internal/storage"
)

// Ensure Store satisfies the storage.UserStore interface at compile time.
var _ storage.UserStore = (*Store)(nil)

// Store provides Postgres-backed persistence for user records.
type Store struct {
	pool *pgxpool.Pool
}

// NewUserStore connects the pool and bootstraps the users table.
func NewUserStore(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.bootstrap(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) bootstrap(ctx context.Context) error {
	const stmt = `
		CREATE TABLE IF NOT EXISTS tbl_users (
			id BIGSERIAL PRIMARY KEY,
			firstname TEXT NOT NULL DEFAULT '',
			fullname TEXT NOT NULL DEFAULT '',
			lastname TEXT NOT NULL DEFAULT '',
			username TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT ''
		);`
	if _, err := s.pool.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("bootstrap schema: %w", err)
	}
	return nil
}

// Now round-trips the pool and returns the database clock. Used by /ping.
func (s *Store) Now(ctx context.Context) (time.Time, error) {
	var now time.Time
	if err := s.pool.QueryRow(ctx, `SELECT NOW()`).Scan(&now); err != nil {
		return time.Time{}, fmt.Errorf("select now: %w", err)
	}
	return now, nil
}

// ListUsers returns every user in store-default order.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	const query = `
	SELECT id, firstname, fullname, lastname, username, password_hash, status
	FROM tbl_users;
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Firstname, &u.Fullname, &u.Lastname, &u.Username, &u.PasswordHash, &u.Status); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// GetUser fetches a single user by id. Returns storage.ErrNotFound when no
// row matches.
func (s *Store) GetUser(ctx context.Context, id int64) (models.User, error) {
	const query = `
	SELECT id, firstname, fullname, lastname, username, password_hash, status
	FROM tbl_users
	WHERE id = $1;
	`
	row := s.pool.QueryRow(ctx, query, id)
	return scanUser(row)
}

// CreateUser inserts a new row and returns it with the assigned id.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const query = `
	INSERT INTO tbl_users (firstname, fullname, lastname, username, password_hash, status)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, firstname, fullname, lastname, username, password_hash, status;
	`
	row := s.pool.QueryRow(ctx, query, user.Firstname, user.Fullname, user.Lastname, user.Username, user.PasswordHash, user.Status)
	return scanUser(row)
}

// UpdateUser replaces every scalar column of the row matching user.ID.
// Returns storage.ErrNotFound when no row was affected.
func (s *Store) UpdateUser(ctx context.Context, user models.User) error {
	const query = `
	UPDATE tbl_users
	SET firstname = $1, fullname = $2, lastname = $3, username = $4, password_hash = $5, status = $6
	WHERE id = $7;
	`
	tag, err := s.pool.Exec(ctx, query, user.Firstname, user.Fullname, user.Lastname, user.Username, user.PasswordHash, user.Status, user.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteUser removes the row matching id. Returns storage.ErrNotFound when
// no row was affected.
func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM tbl_users WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.Firstname, &u.Fullname, &u.Lastname, &u.Username, &u.PasswordHash, &u.Status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, err
	}
	return u, nil
}
