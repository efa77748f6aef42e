package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/iliyamo/devfolio/internal/model"
)

func newProjectRepoWithMock(t *testing.T) (*ProjectRepo, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewProjectRepo(db), mock, db
}

func projectRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "title", "description", "readme_content",
		"tech_stack", "github_link", "live_demo_link", "created_at", "updated_at",
	})
}

func TestProjectCreate_AssignsIDAndTimestamps(t *testing.T) {
	repo, mock, db := newProjectRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO projects`).WillReturnResult(sqlmock.NewResult(0, 1))

	p := &model.Project{UserID: "owner-1", Title: "DevFolio", Description: "portfolio API"}
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if p.ID == "" {
		t.Fatalf("id must be assigned")
	}
	if p.CreatedAt.IsZero() || !p.CreatedAt.Equal(p.UpdatedAt) {
		t.Fatalf("timestamps must be set and equal on create: %v / %v", p.CreatedAt, p.UpdatedAt)
	}
	if p.TechStack == nil {
		t.Fatalf("nil tech stack must be normalized to an empty slice")
	}
}

func TestProjectGetByIDAndOwner_WrongOwner(t *testing.T) {
	repo, mock, db := newProjectRepoWithMock(t)
	defer db.Close()

	// The (id, owner) pair matches nothing: the row exists under a
	// different owner, which must be indistinguishable from a missing id.
	mock.ExpectQuery(`SELECT .+ FROM projects WHERE id = \? AND user_id = \?`).
		WithArgs("p-1", "intruder").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByIDAndOwner(context.Background(), "p-1", "intruder")
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("want ErrProjectNotFound, got %v", err)
	}
}

func TestProjectList_DecodesTechStack(t *testing.T) {
	repo, mock, db := newProjectRepoWithMock(t)
	defer db.Close()

	rows := projectRows().
		AddRow("p-1", "owner-1", "API", "desc", "readme", `["go","mysql"]`, "", "", testTime(), testTime())
	mock.ExpectQuery(`SELECT .+ FROM projects WHERE user_id = \? ORDER BY created_at DESC LIMIT 100`).
		WithArgs("owner-1").
		WillReturnRows(rows)

	out, err := repo.ListByOwner(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("want 1 project, got %d", len(out))
	}
	if len(out[0].TechStack) != 2 || out[0].TechStack[0] != "go" {
		t.Fatalf("tech stack not decoded: %+v", out[0].TechStack)
	}
}

func TestProjectUpdate_PartialFields(t *testing.T) {
	repo, mock, db := newProjectRepoWithMock(t)
	defer db.Close()

	existing := projectRows().
		AddRow("p-1", "owner-1", "Old", "desc", "", `[]`, "", "", testTime(), testTime())
	mock.ExpectQuery(`SELECT .+ FROM projects WHERE id = \? AND user_id = \?`).
		WithArgs("p-1", "owner-1").
		WillReturnRows(existing)

	// Only the title is supplied, so the SET clause carries updated_at and
	// title and nothing else.
	mock.ExpectExec(`UPDATE projects SET updated_at = \?, title = \? WHERE id = \? AND user_id = \?`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated := projectRows().
		AddRow("p-1", "owner-1", "New", "desc", "", `[]`, "", "", testTime(), testTime().Add(1))
	mock.ExpectQuery(`SELECT .+ FROM projects WHERE id = \? AND user_id = \?`).
		WithArgs("p-1", "owner-1").
		WillReturnRows(updated)

	title := "New"
	got, err := repo.Update(context.Background(), "p-1", "owner-1", ProjectPatch{Title: &title})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Title != "New" {
		t.Fatalf("title not updated: %+v", got)
	}
	if !got.UpdatedAt.After(got.CreatedAt) {
		t.Fatalf("updated_at must advance")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestProjectUpdate_NotFound(t *testing.T) {
	repo, mock, db := newProjectRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM projects WHERE id = \? AND user_id = \?`).
		WithArgs("missing", "owner-1").
		WillReturnError(sql.ErrNoRows)

	title := "x"
	_, err := repo.Update(context.Background(), "missing", "owner-1", ProjectPatch{Title: &title})
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("want ErrProjectNotFound, got %v", err)
	}
}

func TestProjectDelete_NotFound(t *testing.T) {
	repo, mock, db := newProjectRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM projects WHERE id = \? AND user_id = \?`).
		WithArgs("p-1", "other").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteByIDAndOwner(context.Background(), "p-1", "other")
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("want ErrProjectNotFound, got %v", err)
	}
}

func TestProjectDelete_Success(t *testing.T) {
	repo, mock, db := newProjectRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM projects WHERE id = \? AND user_id = \?`).
		WithArgs("p-1", "owner-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteByIDAndOwner(context.Background(), "p-1", "owner-1"); err != nil {
		t.Fatalf("DeleteByIDAndOwner error: %v", err)
	}
}
