// This file defines the machine-readable export endpoint.  It shares slug
// resolution and section semantics with the profile handler but reshapes
// every item into a fixed canonical field order and wraps the payload with
// export metadata, so automated agents get a stable schema.
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/devfolio/internal/queue"
	"github.com/iliyamo/devfolio/internal/repository"
	queue_publisher "github.com/iliyamo/devfolio/internal/service"
)

// exportSchemaVersion tags the export payload shape.
const exportSchemaVersion = "1.0"

type exportUser struct {
	Name       string `json:"name"`
	ProfileURL string `json:"profile_url"`
}

// exportProject lists fields in the canonical export order.
type exportProject struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	ReadmeContent string   `json:"readme_content"`
	TechStack     []string `json:"tech_stack"`
	GithubLink    string   `json:"github_link"`
	LiveDemoLink  string   `json:"live_demo_link"`
	CreatedAt     string   `json:"created_at"`
}

type exportAchievement struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Date            string `json:"date"`
	CertificateLink string `json:"certificate_link"`
}

// exportMetadata describes the export itself.  The count fields are
// pointers so they appear only for sections that were included.
type exportMetadata struct {
	ExportedAt        string `json:"exported_at"`
	SectionsIncluded  string `json:"sections_included"`
	Format            string `json:"format"`
	Version           string `json:"version"`
	TotalProjects     *int   `json:"total_projects,omitempty"`
	TotalAchievements *int   `json:"total_achievements,omitempty"`
}

type exportResp struct {
	User         exportUser           `json:"user"`
	Projects     *[]exportProject     `json:"projects,omitempty"`
	Achievements *[]exportAchievement `json:"achievements,omitempty"`
	Metadata     exportMetadata       `json:"metadata"`
}

// Export handles GET /export/:slug.  The format parameter is accepted and
// echoed into the metadata but does not change the payload shape; it is a
// forward-compatibility placeholder.
func (h *PublicHandler) Export(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.Param("slug")
	u, err := h.Users.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	sections := sectionsParam(c)
	format := c.QueryParam("format")
	if format == "" {
		format = "json"
	}

	resp := exportResp{
		User: exportUser{Name: u.Name, ProfileURL: "/profile/" + u.Slug},
		Metadata: exportMetadata{
			ExportedAt:       isoTime(time.Now()),
			SectionsIncluded: sections,
			Format:           format,
			Version:          exportSchemaVersion,
		},
	}

	if sections == "all" || sections == "projects" {
		items, err := h.Projects.ListByOwner(ctx, u.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
		}
		views := make([]exportProject, 0, len(items))
		for _, p := range items {
			views = append(views, exportProject{
				Title:         p.Title,
				Description:   p.Description,
				ReadmeContent: p.ReadmeContent,
				TechStack:     p.TechStack,
				GithubLink:    p.GithubLink,
				LiveDemoLink:  p.LiveDemoLink,
				CreatedAt:     isoTime(p.CreatedAt),
			})
		}
		resp.Projects = &views
		n := len(views)
		resp.Metadata.TotalProjects = &n
	}
	if sections == "all" || sections == "achievements" {
		items, err := h.Achievements.ListByOwner(ctx, u.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
		}
		views := make([]exportAchievement, 0, len(items))
		for _, a := range items {
			views = append(views, exportAchievement{
				Title:           a.Title,
				Description:     a.Description,
				Date:            a.Date,
				CertificateLink: a.CertificateLink,
			})
		}
		resp.Achievements = &views
		n := len(views)
		resp.Metadata.TotalAchievements = &n
	}

	// Best-effort audit event; failures are logged by the publisher and
	// never affect the response.
	ev := queue.ExportRequestedEvent{
		Slug:        u.Slug,
		Sections:    sections,
		Format:      format,
		RequestedAt: resp.Metadata.ExportedAt,
	}
	if resp.Metadata.TotalProjects != nil {
		ev.TotalProjects = *resp.Metadata.TotalProjects
	}
	if resp.Metadata.TotalAchievements != nil {
		ev.TotalAchievements = *resp.Metadata.TotalAchievements
	}
	go func() {
		_ = queue_publisher.PublishExportRequested(context.Background(), ev)
	}()

	return c.JSON(http.StatusOK, resp)
}
