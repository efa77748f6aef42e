package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/devfolio/internal/repository"
)

// asUser fakes the auth middleware by stamping a fixed user id into the
// request context.
func asUser(id string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("user_id", id)
			return next(c)
		}
	}
}

func newProjectEnv(t *testing.T) (*echo.Echo, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	h := NewProjectHandler(repository.NewProjectRepo(db))

	e := echo.New()
	g := e.Group("/projects", asUser("owner-1"))
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.GetOne)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	return e, mock, db
}

func projectRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "title", "description", "readme_content",
		"tech_stack", "github_link", "live_demo_link", "created_at", "updated_at",
	})
}

func TestProjectCreate_RoundTrip(t *testing.T) {
	e, mock, db := newProjectEnv(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO projects`).WillReturnResult(sqlmock.NewResult(0, 1))

	rec := postJSON(e, "/projects",
		`{"title":"DevFolio","description":"portfolio API","tech_stack":["go","mysql"]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	var resp struct {
		ID        string   `json:"id"`
		UserID    string   `json:"user_id"`
		Title     string   `json:"title"`
		TechStack []string `json:"tech_stack"`
		CreatedAt string   `json:"created_at"`
		UpdatedAt string   `json:"updated_at"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.ID == "" || resp.UserID != "owner-1" {
		t.Fatalf("owner must come from the token context: %+v", resp)
	}
	if len(resp.TechStack) != 2 {
		t.Fatalf("tech stack lost: %+v", resp.TechStack)
	}
	if resp.CreatedAt != resp.UpdatedAt {
		t.Fatalf("timestamps must match on create: %s / %s", resp.CreatedAt, resp.UpdatedAt)
	}
}

func TestProjectCreate_MissingTitle(t *testing.T) {
	e, _, db := newProjectEnv(t)
	defer db.Close()

	rec := postJSON(e, "/projects", `{"description":"no title"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}
}

func TestProjectList_BareArray(t *testing.T) {
	e, mock, db := newProjectEnv(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM projects WHERE user_id = \?`).
		WithArgs("owner-1").
		WillReturnRows(projectRows())

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("empty list must serialize as a bare array: %s", rec.Body.String())
	}
}

func TestProjectGetOne_NotFound(t *testing.T) {
	e, mock, db := newProjectEnv(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM projects WHERE id = \? AND user_id = \?`).
		WithArgs("someone-elses", "owner-1").
		WillReturnError(sql.ErrNoRows)

	req := httptest.NewRequest(http.MethodGet, "/projects/someone-elses", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "project not found") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestProjectUpdate_Partial(t *testing.T) {
	e, mock, db := newProjectEnv(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM projects WHERE id = \? AND user_id = \?`).
		WithArgs("p-1", "owner-1").
		WillReturnRows(projectRows().
			AddRow("p-1", "owner-1", "Old", "desc", "", `[]`, "", "", testTime(), testTime()))
	mock.ExpectExec(`UPDATE projects SET updated_at = \?, title = \? WHERE id = \? AND user_id = \?`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT .+ FROM projects WHERE id = \? AND user_id = \?`).
		WithArgs("p-1", "owner-1").
		WillReturnRows(projectRows().
			AddRow("p-1", "owner-1", "New", "desc", "", `[]`, "", "", testTime(), testTime().Add(1)))

	req := httptest.NewRequest(http.MethodPut, "/projects/p-1", strings.NewReader(`{"title":"New"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"title":"New"`) {
		t.Fatalf("title not updated: %s", rec.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestProjectDelete_NoBody(t *testing.T) {
	e, mock, db := newProjectEnv(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM projects WHERE id = \? AND user_id = \?`).
		WithArgs("p-1", "owner-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := httptest.NewRequest(http.MethodDelete, "/projects/p-1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("want 204, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("delete must not return a body: %s", rec.Body.String())
	}
}
