package handler // handler package contains owner-scoped achievement handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/devfolio/internal/model"
	"github.com/iliyamo/devfolio/internal/repository"
)

// AchievementHandler bundles the achievement repository for the
// owner-scoped CRUD endpoints.
type AchievementHandler struct {
	Achievements *repository.AchievementRepo
}

func NewAchievementHandler(a *repository.AchievementRepo) *AchievementHandler {
	return &AchievementHandler{Achievements: a}
}

type createAchievementReq struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Date            string `json:"date"`
	CertificateLink string `json:"certificate_link"`
}

type updateAchievementReq struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	Date            *string `json:"date"`
	CertificateLink *string `json:"certificate_link"`
}

// Create handles POST /achievements.
func (h *AchievementHandler) Create(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createAchievementReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title and description required"})
	}
	a := &model.Achievement{
		UserID:          ownerID,
		Title:           req.Title,
		Description:     req.Description,
		Date:            req.Date,
		CertificateLink: req.CertificateLink,
	}
	if err := h.Achievements.Create(c.Request().Context(), a); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create achievement"})
	}
	return c.JSON(http.StatusCreated, newAchievementView(a))
}

// List handles GET /achievements.
func (h *AchievementHandler) List(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items, err := h.Achievements.ListByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	out := make([]achievementView, 0, len(items))
	for _, a := range items {
		out = append(out, newAchievementView(a))
	}
	return c.JSON(http.StatusOK, out)
}

// GetOne handles GET /achievements/:id.
func (h *AchievementHandler) GetOne(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	a, err := h.Achievements.GetByIDAndOwner(c.Request().Context(), c.Param("id"), ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrAchievementNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "achievement not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, newAchievementView(a))
}

// Update handles PUT /achievements/:id.  Achievements have no updated_at
// column, so only the supplied fields change.
func (h *AchievementHandler) Update(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req updateAchievementReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	patch := repository.AchievementPatch{
		Title:           req.Title,
		Description:     req.Description,
		Date:            req.Date,
		CertificateLink: req.CertificateLink,
	}
	a, err := h.Achievements.Update(c.Request().Context(), c.Param("id"), ownerID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrAchievementNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "achievement not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, newAchievementView(a))
}

// Delete handles DELETE /achievements/:id.
func (h *AchievementHandler) Delete(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if err := h.Achievements.DeleteByIDAndOwner(c.Request().Context(), c.Param("id"), ownerID); err != nil {
		if errors.Is(err, repository.ErrAchievementNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "achievement not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
