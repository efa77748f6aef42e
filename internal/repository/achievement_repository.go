// This file defines the repository for achievements.  The ownership rules
// match the project repository: all lookups and mutations are scoped by the
// (id, user_id) pair.  Achievements carry no updated_at column, so partial
// updates touch nothing but the supplied fields.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/devfolio/internal/model"
)

// AchievementRepo encapsulates all database queries related to achievements.
type AchievementRepo struct{ db *sql.DB }

// NewAchievementRepo constructs an AchievementRepo with the provided DB handle.
func NewAchievementRepo(db *sql.DB) *AchievementRepo { return &AchievementRepo{db: db} }

// AchievementPatch describes a partial update; nil fields are untouched.
type AchievementPatch struct {
	Title           *string
	Description     *string
	Date            *string
	CertificateLink *string
}

const achievementColumns = "id, user_id, title, description, date, certificate_link, created_at"

// Create inserts a new achievement for the owner already set on a.
func (r *AchievementRepo) Create(ctx context.Context, a *model.Achievement) error {
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO achievements (id, user_id, title, description, date, certificate_link, created_at) VALUES (?,?,?,?,?,?,?)",
		a.ID, a.UserID, a.Title, a.Description, a.Date, a.CertificateLink, a.CreatedAt)
	return err
}

// ListByOwner returns the owner's achievements newest-first, capped at
// listLimit.
func (r *AchievementRepo) ListByOwner(ctx context.Context, ownerID string) ([]*model.Achievement, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+achievementColumns+" FROM achievements WHERE user_id = ? ORDER BY created_at DESC LIMIT 100",
		ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Achievement, 0)
	for rows.Next() {
		a, err := scanAchievement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByIDAndOwner fetches an achievement by id but only if it belongs to
// the specified owner.
func (r *AchievementRepo) GetByIDAndOwner(ctx context.Context, id, ownerID string) (*model.Achievement, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+achievementColumns+" FROM achievements WHERE id = ? AND user_id = ? LIMIT 1",
		id, ownerID)
	a, err := scanAchievement(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAchievementNotFound
		}
		return nil, err
	}
	return a, nil
}

// Update merges the supplied fields into an existing achievement.  With no
// updated_at column an empty patch is a no-op beyond the ownership check.
func (r *AchievementRepo) Update(ctx context.Context, id, ownerID string, patch AchievementPatch) (*model.Achievement, error) {
	if _, err := r.GetByIDAndOwner(ctx, id, ownerID); err != nil {
		return nil, err
	}
	var set []string
	var args []any
	if patch.Title != nil {
		set = append(set, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		set = append(set, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Date != nil {
		set = append(set, "date = ?")
		args = append(args, *patch.Date)
	}
	if patch.CertificateLink != nil {
		set = append(set, "certificate_link = ?")
		args = append(args, *patch.CertificateLink)
	}
	if len(set) == 0 {
		return r.GetByIDAndOwner(ctx, id, ownerID)
	}
	args = append(args, id, ownerID)
	q := "UPDATE achievements SET " + strings.Join(set, ", ") + " WHERE id = ? AND user_id = ?"
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return nil, err
	}
	return r.GetByIDAndOwner(ctx, id, ownerID)
}

// DeleteByIDAndOwner removes exactly one achievement or reports
// ErrAchievementNotFound.
func (r *AchievementRepo) DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM achievements WHERE id = ? AND user_id = ?", id, ownerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrAchievementNotFound
	}
	return nil
}

func scanAchievement(s scanner) (*model.Achievement, error) {
	var a model.Achievement
	if err := s.Scan(&a.ID, &a.UserID, &a.Title, &a.Description, &a.Date,
		&a.CertificateLink, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}
