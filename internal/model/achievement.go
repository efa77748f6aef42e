package model

import "time"

// Achievement represents a single achievement entry in the `achievements`
// table.  Date is an opaque string supplied by the user and is not
// validated as a calendar date.  Unlike Project there is no updated_at
// column; partial updates do not touch any timestamp.
type Achievement struct {
	ID              string    // achievements.id
	UserID          string    // achievements.user_id
	Title           string    // achievements.title
	Description     string    // achievements.description
	Date            string    // achievements.date
	CertificateLink string    // achievements.certificate_link
	CreatedAt       time.Time // achievements.created_at
}
