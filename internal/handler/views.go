// This file defines the response views for every endpoint.  Each view has
// a fixed field set so the wire contract is checked at compile time instead
// of being assembled ad hoc per handler.  Timestamps are rendered as
// ISO-8601 strings in UTC.
package handler

import (
	"time"

	"github.com/iliyamo/devfolio/internal/model"
)

// isoTime renders a timestamp as an ISO-8601 UTC string.
func isoTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// userView is the public shape of a user record.  The password hash is not
// part of any view.
type userView struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	CreatedAt string `json:"created_at"`
}

func newUserView(u *model.User) userView {
	return userView{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Slug:      u.Slug,
		CreatedAt: isoTime(u.CreatedAt),
	}
}

// projectView is the owner-facing shape of a project.
type projectView struct {
	ID            string   `json:"id"`
	UserID        string   `json:"user_id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	ReadmeContent string   `json:"readme_content"`
	TechStack     []string `json:"tech_stack"`
	GithubLink    string   `json:"github_link"`
	LiveDemoLink  string   `json:"live_demo_link"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

func newProjectView(p *model.Project) projectView {
	return projectView{
		ID:            p.ID,
		UserID:        p.UserID,
		Title:         p.Title,
		Description:   p.Description,
		ReadmeContent: p.ReadmeContent,
		TechStack:     p.TechStack,
		GithubLink:    p.GithubLink,
		LiveDemoLink:  p.LiveDemoLink,
		CreatedAt:     isoTime(p.CreatedAt),
		UpdatedAt:     isoTime(p.UpdatedAt),
	}
}

// achievementView is the owner-facing shape of an achievement.
type achievementView struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Date            string `json:"date"`
	CertificateLink string `json:"certificate_link"`
	CreatedAt       string `json:"created_at"`
}

func newAchievementView(a *model.Achievement) achievementView {
	return achievementView{
		ID:              a.ID,
		UserID:          a.UserID,
		Title:           a.Title,
		Description:     a.Description,
		Date:            a.Date,
		CertificateLink: a.CertificateLink,
		CreatedAt:       isoTime(a.CreatedAt),
	}
}

// publicProjectView is a project as shown on the public profile: the owner
// id is stripped.
type publicProjectView struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	ReadmeContent string   `json:"readme_content"`
	TechStack     []string `json:"tech_stack"`
	GithubLink    string   `json:"github_link"`
	LiveDemoLink  string   `json:"live_demo_link"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

func newPublicProjectView(p *model.Project) publicProjectView {
	return publicProjectView{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		ReadmeContent: p.ReadmeContent,
		TechStack:     p.TechStack,
		GithubLink:    p.GithubLink,
		LiveDemoLink:  p.LiveDemoLink,
		CreatedAt:     isoTime(p.CreatedAt),
		UpdatedAt:     isoTime(p.UpdatedAt),
	}
}

// publicAchievementView is an achievement with the owner id stripped.
type publicAchievementView struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Date            string `json:"date"`
	CertificateLink string `json:"certificate_link"`
	CreatedAt       string `json:"created_at"`
}

func newPublicAchievementView(a *model.Achievement) publicAchievementView {
	return publicAchievementView{
		ID:              a.ID,
		Title:           a.Title,
		Description:     a.Description,
		Date:            a.Date,
		CertificateLink: a.CertificateLink,
		CreatedAt:       isoTime(a.CreatedAt),
	}
}
