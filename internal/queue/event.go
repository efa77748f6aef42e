// Package queue defines message payloads exchanged over the message broker.
package queue

// ExportRequestedEvent is published whenever the machine-readable export
// endpoint is served.  It carries enough information for downstream
// consumers to log or aggregate export activity without querying the
// primary database.
type ExportRequestedEvent struct {
	Slug              string `json:"slug"`
	Sections          string `json:"sections"`
	Format            string `json:"format"`
	TotalProjects     int    `json:"total_projects"`
	TotalAchievements int    `json:"total_achievements"`
	RequestedAt       string `json:"requested_at"`
}
