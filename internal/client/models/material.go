package models

import (
	"fmt"
	"strings"
	"time"
)

// MaterialType classifies a document in the catalog.
type MaterialType string

const (
	TypePYQ        MaterialType = "PYQ"
	TypeAssignment MaterialType = "Assignment"
	TypeNotes      MaterialType = "Notes"
	TypeMST        MaterialType = "MST"
)

// ParseMaterialType maps free-text input onto a known material type,
// case-insensitively.
func ParseMaterialType(s string) (MaterialType, error) {
	for _, t := range []MaterialType{TypePYQ, TypeAssignment, TypeNotes, TypeMST} {
		if strings.EqualFold(strings.TrimSpace(s), string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown material type %q", s)
}

// Semester bounds of the eight-semester program.
const (
	MinSemester = 1
	MaxSemester = 8
)

// ValidSemester reports whether n is a semester the service knows about.
func ValidSemester(n int) bool {
	return n >= MinSemester && n <= MaxSemester
}

// Status is the lifecycle state of a material. There are exactly two states
// short of deletion, which is terminal.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
)

// Material is a submitted document as the collaborator reports it.
// Lifecycle state is derived from the Approved flag rather than stored.
type Material struct {
	ID           string       `json:"id"`
	FileName     string       `json:"fileName"`
	Subject      string       `json:"subject"`
	Semester     int          `json:"semester"`
	MaterialType MaterialType `json:"materialType"`
	Approved     bool         `json:"approved"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// Status derives the lifecycle state from the approval flag.
func (m *Material) Status() Status {
	if m.Approved {
		return StatusApproved
	}
	return StatusPending
}

// Filter selects a subset of the catalog. Zero values mean "no constraint":
// empty Status matches both states, Semester 0 matches every semester, and an
// empty Query matches everything.
type Filter struct {
	Status   Status
	Semester int
	Query    string
}

// Matches reports whether the material satisfies every set constraint.
// The text query matches case-insensitively against the file name OR the
// subject (substring semantics).
func (m *Material) Matches(f Filter) bool {
	if f.Status != "" && m.Status() != f.Status {
		return false
	}
	if f.Semester != 0 && m.Semester != f.Semester {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(m.FileName), q) &&
			!strings.Contains(strings.ToLower(m.Subject), q) {
			return false
		}
	}
	return true
}
