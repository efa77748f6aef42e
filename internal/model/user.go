package model

import "time"

// User represents an account record as stored in the `users` table.  Each
// field corresponds to a column in the database.  The json tags are omitted
// because these structs are used internally by the repository layer;
// handlers define separate response views with a fixed field set.
//
// The Slug field is the unique, URL-safe public identifier under which the
// user's profile and export endpoints are reachable.  It is allocated once
// at registration and never changes.
//
// Fields:
//
//	ID           – opaque unique identifier (UUID).
//	Email        – unique email address, stored lower-cased.
//	Name         – display name shown on the public profile.
//	PasswordHash – bcrypt hash of the password; never leaves the server.
//	Slug         – globally unique public profile identifier.
//	CreatedAt    – UTC timestamp of registration.
type User struct {
	ID           string    // users.id
	Email        string    // users.email
	Name         string    // users.name
	PasswordHash string    // users.password_hash
	Slug         string    // users.slug
	CreatedAt    time.Time // users.created_at
}
