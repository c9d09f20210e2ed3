package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/client/models"
)

func identityWithRole(role models.Role) *models.Identity {
	return &models.Identity{ID: "u1", Name: "Test", Email: "t@example.com", Role: role}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name         string
		identity     *models.Identity
		allowed      []models.Role
		wantAllowed  bool
		wantRedirect string
	}{
		{
			name:         "absent identity redirects to login",
			identity:     nil,
			allowed:      nil,
			wantRedirect: LoginPath,
		},
		{
			name:         "absent identity redirects to login even with required roles",
			identity:     nil,
			allowed:      []models.Role{models.RoleAdmin},
			wantRedirect: LoginPath,
		},
		{
			name:        "any authenticated identity passes an empty role set",
			identity:    identityWithRole(models.RoleUser),
			allowed:     nil,
			wantAllowed: true,
		},
		{
			name:         "user is sent home from an admin destination, not to login",
			identity:     identityWithRole(models.RoleUser),
			allowed:      []models.Role{models.RoleAdmin},
			wantRedirect: HomePath,
		},
		{
			name:        "admin passes the admin gate",
			identity:    identityWithRole(models.RoleAdmin),
			allowed:     []models.Role{models.RoleAdmin},
			wantAllowed: true,
		},
		{
			name:        "role membership checked across the whole set",
			identity:    identityWithRole(models.RoleUser),
			allowed:     []models.Role{models.RoleUser, models.RoleAdmin},
			wantAllowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Authorize(tt.identity, tt.allowed...)
			assert.Equal(t, tt.wantAllowed, d.Allowed)
			assert.Equal(t, tt.wantRedirect, d.Redirect)
		})
	}
}

func TestAuthorize_RoleComparisonIsCaseInsensitive(t *testing.T) {
	// roles are normalized at the JSON boundary, but the gate itself must
	// still tolerate inconsistent casing in stored data
	ident := identityWithRole(models.Role("admin"))

	d := Authorize(ident, models.RoleAdmin)
	require.True(t, d.Allowed)
}

func TestAuthorize_IsPure(t *testing.T) {
	ident := identityWithRole(models.RoleUser)

	first := Authorize(ident, models.RoleAdmin)
	second := Authorize(ident, models.RoleAdmin)

	assert.Equal(t, first, second)
	assert.Equal(t, models.RoleUser, ident.Role)
}
