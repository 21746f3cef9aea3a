package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Record is the capability contract for user-like values. Utilities that
// only care about identity and mail domain accept this interface instead of
// a concrete struct, so alternative record shapes can be introduced without
// touching the callers.
type Record interface {
	// Identity returns the unique identifier of the record.
	Identity() int64

	// Domain returns the mail domain derived from the record's email.
	Domain() string
}

// User represents a workshop roster entry.
// Two users are considered the same entity iff their ID fields match;
// all other fields are free to differ between duplicates.
type User struct {
	// ID is the unique identifier of the user.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the user's address. It is expected to contain exactly one
	// '@'; the validators package enforces that shape on untrusted input,
	// direct construction does not.
	Email string `json:"email"`

	// Active reports whether the user currently participates.
	// NewUser defaults it to true.
	Active bool `json:"active"`
}

// NewUser constructs an active User from its identity fields.
func NewUser(id int64, name, email string) User {
	return User{
		ID:     id,
		Name:   name,
		Email:  email,
		Active: true,
	}
}

// Identity implements Record.
func (u User) Identity() int64 {
	return u.ID
}

// Domain returns the part of Email after the last '@'.
// An address without '@' yields the whole string unchanged.
func (u User) Domain() string {
	at := strings.LastIndex(u.Email, "@")
	if at < 0 {
		return u.Email
	}
	return u.Email[at+1:]
}

// Equal reports whether both users share the same ID.
// Name, Email and Active are deliberately ignored.
func (u User) Equal(other User) bool {
	return u.ID == other.ID
}

// Fingerprint derives a stable hex digest from ID and Email.
// It is recomputed on every call, so mutating either field is immediately
// reflected in the next result. Not security-grade; a content proxy only.
func (u User) Fingerprint() string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d:%s", u.ID, u.Email)))
	return hex.EncodeToString(sum[:])
}

func (u User) String() string {
	return fmt.Sprintf("User(id=%d, name=%q, email=%q, active=%t)", u.ID, u.Name, u.Email, u.Active)
}
