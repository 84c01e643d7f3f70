package domain

import (
	"strings"
	"time"
)

// Identity is the backend-authoritative part of a user. The backend stores
// nothing beyond id and email.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ProfileOverlay holds the client-only profile fields layered onto an
// Identity at read time. The overlay never shadows id or email.
type ProfileOverlay struct {
	Name    string `json:"name,omitempty"`
	Company string `json:"company,omitempty"`
	Role    string `json:"role,omitempty"`
}

func (p ProfileOverlay) IsZero() bool {
	return p.Name == "" && p.Company == "" && p.Role == ""
}

// User is the merged view handed to the presentation layer.
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Company    string    `json:"company,omitempty"`
	Role       string    `json:"role,omitempty"`
	JoinedDate time.Time `json:"joined_date"`
}

func (u User) Overlay() ProfileOverlay {
	return ProfileOverlay{Name: u.Name, Company: u.Company, Role: u.Role}
}

// InferNameFromEmail derives a display name from the email local part when
// no overlay name exists yet.
func InferNameFromEmail(email string) string {
	part, _, _ := strings.Cut(email, "@")
	if part == "" {
		return "User"
	}
	return strings.ToUpper(part[:1]) + part[1:]
}
