package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input   string
		want    Role
		wantErr bool
	}{
		{input: "ADMIN", want: RoleAdmin},
		{input: "admin", want: RoleAdmin},
		{input: " Admin ", want: RoleAdmin},
		{input: "USER", want: RoleUser},
		{input: "user", want: RoleUser},
		{input: "moderator", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRole(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIdentity_UnmarshalJSON_NormalizesRole(t *testing.T) {
	data := []byte(`{"id":"u1","name":"Alice","email":"a@b.com","role":"admin"}`)

	var ident Identity
	require.NoError(t, json.Unmarshal(data, &ident))

	assert.Equal(t, RoleAdmin, ident.Role)
	assert.Equal(t, "Alice", ident.Name)
	assert.True(t, ident.IsAdmin())
}

func TestIdentity_UnmarshalJSON_RejectsUnknownRole(t *testing.T) {
	data := []byte(`{"id":"u1","name":"Alice","email":"a@b.com","role":"root"}`)

	var ident Identity
	require.Error(t, json.Unmarshal(data, &ident))
}

func TestIdentity_JSONRoundTripKeepsToken(t *testing.T) {
	ident := Identity{ID: "u1", Name: "Alice", Email: "a@b.com", Role: RoleUser, Token: "tok"}

	data, err := json.Marshal(&ident)
	require.NoError(t, err)

	var got Identity
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, ident, got)
}

func TestIdentity_IsAdmin_NilReceiver(t *testing.T) {
	var ident *Identity
	assert.False(t, ident.IsAdmin())
}
