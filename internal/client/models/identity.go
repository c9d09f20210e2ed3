package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Role is the closed set of roles the service knows about. Parsing is
// case-insensitive so inconsistent casing in stored data can never cause a
// spurious denial; past the JSON boundary a Role is always normalized.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole normalizes s and maps it onto the Role enum.
func ParseRole(s string) (Role, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(RoleUser):
		return RoleUser, nil
	case string(RoleAdmin):
		return RoleAdmin, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Identity is the authenticated user as returned by the login endpoint,
// together with the bearer token the collaborator issued for it. It is owned
// by the session store: created on login or registration, cleared on logout.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Token string `json:"token,omitempty"`
}

// UnmarshalJSON validates the role at the deserialization boundary so the
// rest of the client only ever sees a normalized Role value.
func (i *Identity) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
		Token string `json:"token"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	role, err := ParseRole(raw.Role)
	if err != nil {
		return fmt.Errorf("identity: %w", err)
	}
	*i = Identity{ID: raw.ID, Name: raw.Name, Email: raw.Email, Role: role, Token: raw.Token}
	return nil
}

// IsAdmin reports whether the identity carries the ADMIN role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}
