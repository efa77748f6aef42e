// This file defines handlers for the public, unauthenticated profile API.
// Identity is resolved from the public slug, never from a token, and
// sensitive fields (email, owner ids, password hash) are filtered from
// every response.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/devfolio/internal/repository"
)

// PublicHandler aggregates the repositories needed for unauthenticated
// profile and export endpoints.
type PublicHandler struct {
	Users        *repository.UserRepo
	Projects     *repository.ProjectRepo
	Achievements *repository.AchievementRepo
}

func NewPublicHandler(u *repository.UserRepo, p *repository.ProjectRepo, a *repository.AchievementRepo) *PublicHandler {
	return &PublicHandler{Users: u, Projects: p, Achievements: a}
}

// profileResp is the public profile view.  The list pointers are nil when
// the sections selector excludes them, which omits the keys entirely; a
// selected section with no items serializes as an empty array.
type profileResp struct {
	Name         string                   `json:"name"`
	Slug         string                   `json:"slug"`
	Projects     *[]publicProjectView     `json:"projects,omitempty"`
	Achievements *[]publicAchievementView `json:"achievements,omitempty"`
}

// sectionsParam reads the sections selector.  Only the exact values "all",
// "projects" and "achievements" trigger inclusion; anything else includes
// neither list.  An absent parameter means "all".
func sectionsParam(c echo.Context) string {
	s := c.QueryParam("sections")
	if s == "" {
		return "all"
	}
	return s
}

// GetProfile handles GET /profile/:slug.
func (h *PublicHandler) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()
	u, err := h.Users.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	sections := sectionsParam(c)
	resp := profileResp{Name: u.Name, Slug: u.Slug}

	if sections == "all" || sections == "projects" {
		items, err := h.Projects.ListByOwner(ctx, u.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
		}
		views := make([]publicProjectView, 0, len(items))
		for _, p := range items {
			views = append(views, newPublicProjectView(p))
		}
		resp.Projects = &views
	}
	if sections == "all" || sections == "achievements" {
		items, err := h.Achievements.ListByOwner(ctx, u.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
		}
		views := make([]publicAchievementView, 0, len(items))
		for _, a := range items {
			views = append(views, newPublicAchievementView(a))
		}
		resp.Achievements = &views
	}

	return c.JSON(http.StatusOK, resp)
}
