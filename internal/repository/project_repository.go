// This file defines the repository for projects.  A project belongs to
// exactly one user; every query and mutation is scoped by the (id, user_id)
// pair so a record owned by another user behaves exactly like a missing
// record.  The tech_stack column holds a JSON-encoded string array.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/devfolio/internal/model"
)

// listLimit caps list queries.  Pagination beyond this cap is unsupported.
const listLimit = 100

// ProjectRepo encapsulates all database queries related to projects.
type ProjectRepo struct{ db *sql.DB }

// NewProjectRepo constructs a ProjectRepo with the provided DB handle.
func NewProjectRepo(db *sql.DB) *ProjectRepo { return &ProjectRepo{db: db} }

// ProjectPatch describes a partial update.  Nil fields are left untouched;
// a pointer to an empty string is a valid overwrite.  TechStack follows the
// same rule with a nil slice meaning "not supplied".
type ProjectPatch struct {
	Title         *string
	Description   *string
	ReadmeContent *string
	TechStack     []string
	GithubLink    *string
	LiveDemoLink  *string
}

const projectColumns = "id, user_id, title, description, readme_content, tech_stack, github_link, live_demo_link, created_at, updated_at"

// Create inserts a new project for the owner already set on p.  The id and
// both timestamps are assigned here.
func (r *ProjectRepo) Create(ctx context.Context, p *model.Project) error {
	p.ID = uuid.NewString()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
	stack, err := json.Marshal(p.TechStack)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		"INSERT INTO projects (id, user_id, title, description, readme_content, tech_stack, github_link, live_demo_link, created_at, updated_at) VALUES (?,?,?,?,?,?,?,?,?,?)",
		p.ID, p.UserID, p.Title, p.Description, p.ReadmeContent, string(stack),
		p.GithubLink, p.LiveDemoLink, p.CreatedAt, p.UpdatedAt)
	return err
}

// ListByOwner returns the owner's projects newest-first, capped at listLimit.
func (r *ProjectRepo) ListByOwner(ctx context.Context, ownerID string) ([]*model.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+projectColumns+" FROM projects WHERE user_id = ? ORDER BY created_at DESC LIMIT 100",
		ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByIDAndOwner fetches a project by id but only if it belongs to the
// specified owner.  A project that exists under a different owner yields
// ErrProjectNotFound just like a missing id.
func (r *ProjectRepo) GetByIDAndOwner(ctx context.Context, id, ownerID string) (*model.Project, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+projectColumns+" FROM projects WHERE id = ? AND user_id = ? LIMIT 1",
		id, ownerID)
	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

// Update merges the supplied fields into an existing project and refreshes
// updated_at.  It returns the updated record, or ErrProjectNotFound when
// the (id, owner) pair does not match a row.
func (r *ProjectRepo) Update(ctx context.Context, id, ownerID string, patch ProjectPatch) (*model.Project, error) {
	if _, err := r.GetByIDAndOwner(ctx, id, ownerID); err != nil {
		return nil, err
	}
	set := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}
	if patch.Title != nil {
		set = append(set, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		set = append(set, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.ReadmeContent != nil {
		set = append(set, "readme_content = ?")
		args = append(args, *patch.ReadmeContent)
	}
	if patch.TechStack != nil {
		stack, err := json.Marshal(patch.TechStack)
		if err != nil {
			return nil, err
		}
		set = append(set, "tech_stack = ?")
		args = append(args, string(stack))
	}
	if patch.GithubLink != nil {
		set = append(set, "github_link = ?")
		args = append(args, *patch.GithubLink)
	}
	if patch.LiveDemoLink != nil {
		set = append(set, "live_demo_link = ?")
		args = append(args, *patch.LiveDemoLink)
	}
	args = append(args, id, ownerID)
	q := "UPDATE projects SET " + strings.Join(set, ", ") + " WHERE id = ? AND user_id = ?"
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return nil, err
	}
	return r.GetByIDAndOwner(ctx, id, ownerID)
}

// DeleteByIDAndOwner removes exactly one project.  Zero affected rows means
// the id is unknown or owned by someone else; both yield ErrProjectNotFound.
func (r *ProjectRepo) DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM projects WHERE id = ? AND user_id = ?", id, ownerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface{ Scan(dest ...any) error }

func scanProject(s scanner) (*model.Project, error) {
	var p model.Project
	var stack string
	if err := s.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.ReadmeContent,
		&stack, &p.GithubLink, &p.LiveDemoLink, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.TechStack = []string{}
	if stack != "" {
		if err := json.Unmarshal([]byte(stack), &p.TechStack); err != nil {
			return nil, err
		}
		if p.TechStack == nil { // column held JSON null
			p.TechStack = []string{}
		}
	}
	return &p, nil
}
