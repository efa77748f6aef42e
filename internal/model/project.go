package model

import "time"

// Project represents a portfolio project owned by a single user, stored in
// the `projects` table.  TechStack is persisted as a JSON-encoded array in
// a text column; the repository layer handles the conversion.
//
// Every query and mutation on projects is scoped by the (id, user_id) pair
// so records owned by another user are indistinguishable from missing ones.
type Project struct {
	ID            string    // projects.id
	UserID        string    // projects.user_id
	Title         string    // projects.title
	Description   string    // projects.description
	ReadmeContent string    // projects.readme_content
	TechStack     []string  // projects.tech_stack (JSON array)
	GithubLink    string    // projects.github_link
	LiveDemoLink  string    // projects.live_demo_link
	CreatedAt     time.Time // projects.created_at
	UpdatedAt     time.Time // projects.updated_at
}
