// Package repository contains data access logic separated from HTTP
// handlers.  This file defines sentinel error values shared across the
// repositories so that handlers can map failure scenarios onto HTTP
// statuses without inspecting driver errors.  Not-found errors cover both
// "no such id" and "id owned by someone else"; the two cases are
// deliberately indistinguishable.
package repository

import (
	"errors"
	"strings"
)

// ErrEmailExists is returned when a registration collides with an existing
// email address.  Handlers translate this into HTTP 400.
var ErrEmailExists = errors.New("email already exists")

// ErrUserNotFound is returned when no user matches the given id, email or
// slug.
var ErrUserNotFound = errors.New("user not found")

// ErrSlugExhausted is returned when slug allocation keeps colliding after
// the bounded number of attempts.  Handlers translate this into HTTP 500.
var ErrSlugExhausted = errors.New("slug allocation failed")

// ErrProjectNotFound is returned when no project matches the (id, owner)
// pair.
var ErrProjectNotFound = errors.New("project not found")

// ErrAchievementNotFound is returned when no achievement matches the
// (id, owner) pair.
var ErrAchievementNotFound = errors.New("achievement not found")

// duplicateKey reports whether err is a MySQL duplicate-entry error (1062)
// on the named unique key.
func duplicateKey(err error, key string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "1062") && strings.Contains(msg, key)
}
