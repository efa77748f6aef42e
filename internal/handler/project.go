package handler // handler package contains owner-scoped project handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/devfolio/internal/model"
	"github.com/iliyamo/devfolio/internal/repository"
)

// ProjectHandler bundles the project repository for the owner-scoped CRUD
// endpoints.  The owner is always taken from the authenticated context,
// never from the request payload.
type ProjectHandler struct {
	Projects *repository.ProjectRepo
}

func NewProjectHandler(p *repository.ProjectRepo) *ProjectHandler {
	return &ProjectHandler{Projects: p}
}

type createProjectReq struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	ReadmeContent string   `json:"readme_content"`
	TechStack     []string `json:"tech_stack"`
	GithubLink    string   `json:"github_link"`
	LiveDemoLink  string   `json:"live_demo_link"`
}

// updateProjectReq uses pointer fields so an omitted field can be told
// apart from a field explicitly cleared to the empty string.
type updateProjectReq struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	ReadmeContent *string  `json:"readme_content"`
	TechStack     []string `json:"tech_stack"`
	GithubLink    *string  `json:"github_link"`
	LiveDemoLink  *string  `json:"live_demo_link"`
}

// Create handles POST /projects.
func (h *ProjectHandler) Create(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createProjectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title and description required"})
	}
	p := &model.Project{
		UserID:        ownerID,
		Title:         req.Title,
		Description:   req.Description,
		ReadmeContent: req.ReadmeContent,
		TechStack:     req.TechStack,
		GithubLink:    req.GithubLink,
		LiveDemoLink:  req.LiveDemoLink,
	}
	if err := h.Projects.Create(c.Request().Context(), p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create project"})
	}
	return c.JSON(http.StatusCreated, newProjectView(p))
}

// List handles GET /projects and returns the owner's projects newest-first.
func (h *ProjectHandler) List(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items, err := h.Projects.ListByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	out := make([]projectView, 0, len(items))
	for _, p := range items {
		out = append(out, newProjectView(p))
	}
	return c.JSON(http.StatusOK, out)
}

// GetOne handles GET /projects/:id.  A project owned by a different user
// answers exactly like a missing id.
func (h *ProjectHandler) GetOne(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	p, err := h.Projects.GetByIDAndOwner(c.Request().Context(), c.Param("id"), ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "project not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, newProjectView(p))
}

// Update handles PUT /projects/:id with partial-update semantics: only the
// supplied fields overwrite existing values.
func (h *ProjectHandler) Update(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req updateProjectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	patch := repository.ProjectPatch{
		Title:         req.Title,
		Description:   req.Description,
		ReadmeContent: req.ReadmeContent,
		TechStack:     req.TechStack,
		GithubLink:    req.GithubLink,
		LiveDemoLink:  req.LiveDemoLink,
	}
	p, err := h.Projects.Update(c.Request().Context(), c.Param("id"), ownerID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "project not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, newProjectView(p))
}

// Delete handles DELETE /projects/:id and signals success with no body.
func (h *ProjectHandler) Delete(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if err := h.Projects.DeleteByIDAndOwner(c.Request().Context(), c.Param("id"), ownerID); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "project not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
