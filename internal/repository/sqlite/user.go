package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/user"
	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
)

type userRepository struct {
	store *Store
}

func (s *Store) Users() user.UserRepository {
	return &userRepository{store: s}
}

func (r *userRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	if newUser.PasswordHash == "" {
		return user.User{}, user.ErrInvalidPasswordHash
	}
	if newUser.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return user.User{}, fmt.Errorf("generate user id: %w", err)
		}
		newUser.ID = id.String()
	}
	if newUser.CreatedAt.IsZero() {
		newUser.CreatedAt = time.Now()
	}

	_, err := r.store.querier(ctx).ExecContext(ctx, `
		INSERT INTO users (id, username, password_hash, created_at)
		VALUES (?, ?, ?, ?)
	`, newUser.ID, newUser.Username, newUser.PasswordHash, formatTimestamp(newUser.CreatedAt))
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return user.User{}, user.ErrUsernameExists
		}
		return user.User{}, fmt.Errorf("insert user: %w", err)
	}

	newUser.CreatedAt = newUser.CreatedAt.UTC()
	return newUser, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	return r.getOne(ctx, `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE id = ?
	`, id)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	return r.getOne(ctx, `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = ?
	`, username)
}

func (r *userRepository) getOne(ctx context.Context, query string, arg string) (user.User, error) {
	row := r.store.querier(ctx).QueryRowContext(ctx, query, arg)

	found, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("select user: %w", err)
	}
	return found, nil
}

func (r *userRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.store.querier(ctx).QueryContext(ctx, `
		SELECT id, username, password_hash, created_at
		FROM users
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// LockForUpdate only checks that the user exists. Writers are already
// serialized by the store's single connection.
func (r *userRepository) LockForUpdate(ctx context.Context, id string) error {
	var found string
	err := r.store.querier(ctx).QueryRowContext(ctx, `SELECT id FROM users WHERE id = ?`, id).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("lock user: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (user.User, error) {
	var (
		u         user.User
		createdAt string
	)
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &createdAt); err != nil {
		return user.User{}, err
	}

	var err error
	u.CreatedAt, err = parseTimestamp(createdAt)
	if err != nil {
		return user.User{}, fmt.Errorf("parse created_at: %w", err)
	}
	return u, nil
}
