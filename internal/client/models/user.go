package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// User is a registered account as the admin listing endpoint reports it.
// The collaborator strips credentials before responding; what arrives here
// is already safe to display.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// UnmarshalJSON validates the role at the deserialization boundary. Stored
// roles may carry a "ROLE_" prefix; it is stripped before parsing so the
// rest of the client only sees the normalized enum.
func (u *User) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	role, err := ParseRole(strings.TrimPrefix(strings.TrimSpace(raw.Role), "ROLE_"))
	if err != nil {
		return fmt.Errorf("user: %w", err)
	}
	*u = User{ID: raw.ID, Name: raw.Name, Email: raw.Email, Role: role}
	return nil
}

// MatchesEmail reports whether the user's email contains q,
// case-insensitively. An empty q matches everyone.
func (u *User) MatchesEmail(q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(u.Email), strings.ToLower(q))
}
