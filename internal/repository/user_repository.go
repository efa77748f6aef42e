package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/devfolio/internal/model"
	"github.com/iliyamo/devfolio/internal/utils"
)

// slugMaxAttempts bounds the slug collision-retry loop during registration.
const slugMaxAttempts = 5

// UserRepo encapsulates all database queries related to users.
type UserRepo struct{ db *sql.DB }

// NewUserRepo constructs a UserRepo with the provided DB handle.  The
// handle is injected so tests can substitute a mock connection.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

const userColumns = "id, email, name, password_hash, slug, created_at"

// Create hashes the password, allocates a unique slug and inserts the user.
// Email and slug uniqueness are enforced by unique keys, so the insert
// itself is the atomic conditional write: a duplicate email surfaces as
// ErrEmailExists, a slug collision regenerates the random suffix and
// retries up to slugMaxAttempts before giving up with ErrSlugExhausted.
func (r *UserRepo) Create(ctx context.Context, email, name, password string, cost int) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return nil, err
	}
	u := &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	for attempt := 0; attempt < slugMaxAttempts; attempt++ {
		slug, err := utils.NewSlug(name)
		if err != nil {
			return nil, err
		}
		_, err = r.db.ExecContext(ctx,
			"INSERT INTO users (id, email, name, password_hash, slug, created_at) VALUES (?,?,?,?,?,?)",
			u.ID, u.Email, u.Name, u.PasswordHash, slug, u.CreatedAt)
		if err == nil {
			u.Slug = slug
			return u, nil
		}
		if duplicateKey(err, "uniq_users_email") {
			return nil, ErrEmailExists
		}
		if duplicateKey(err, "uniq_users_slug") {
			continue // fresh suffix on the next attempt
		}
		return nil, err
	}
	return nil, ErrSlugExhausted
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.getOne(ctx, "SELECT "+userColumns+" FROM users WHERE email = ? LIMIT 1", email)
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	return r.getOne(ctx, "SELECT "+userColumns+" FROM users WHERE id = ? LIMIT 1", id)
}

// GetBySlug fetches a user by their public slug.
func (r *UserRepo) GetBySlug(ctx context.Context, slug string) (*model.User, error) {
	return r.getOne(ctx, "SELECT "+userColumns+" FROM users WHERE slug = ? LIMIT 1", slug)
}

func (r *UserRepo) getOne(ctx context.Context, query string, arg any) (*model.User, error) {
	var u model.User
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Slug, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
