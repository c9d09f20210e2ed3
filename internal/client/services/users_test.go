package services

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/client/models"
)

func TestUserList_FetchesFromCollaborator(t *testing.T) {
	f := newFakeClient()
	f.users = []models.User{
		{ID: "u1", Name: "Alice", Email: "alice@example.org", Role: models.RoleUser},
		{ID: "u2", Name: "Bob", Email: "bob@example.org", Role: models.RoleAdmin},
	}
	s := NewUserService(f, discardLogger())

	us, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, us, 2)
	assert.Equal(t, "alice@example.org", us[0].Email)
}

func TestUserList_ErrorPropagates(t *testing.T) {
	f := newFakeClient()
	f.ListUsersErr = errors.New("boom")
	s := NewUserService(f, discardLogger())

	_, err := s.List(context.Background())
	require.Error(t, err)
}

func TestFilterUsersByEmail(t *testing.T) {
	us := []models.User{
		{ID: "u1", Email: "alice@example.org"},
		{ID: "u2", Email: "Bob@Example.org"},
		{ID: "u3", Email: "carol@other.net"},
	}

	assert.Len(t, FilterUsersByEmail(us, ""), 3)

	got := FilterUsersByEmail(us, "EXAMPLE")
	require.Len(t, got, 2)
	assert.Equal(t, "u1", got[0].ID)

	got = FilterUsersByEmail(us, "bob")
	require.Len(t, got, 1)
	assert.Equal(t, "u2", got[0].ID)

	assert.Empty(t, FilterUsersByEmail(us, "nobody"))
}

func TestPaginateUsers_TenPerPage(t *testing.T) {
	us := make([]models.User, 0, 13)
	for i := 1; i <= 13; i++ {
		us = append(us, models.User{ID: strconv.Itoa(i)})
	}

	page1 := Paginate(us, 10, 1)
	require.Len(t, page1, 10)
	assert.Equal(t, "1", page1[0].ID)

	page2 := Paginate(us, 10, 2)
	require.Len(t, page2, 3)
	assert.Equal(t, "11", page2[0].ID)

	assert.Empty(t, Paginate(us, 10, 3))
	assert.Equal(t, 2, TotalPages(len(us), 10))
}
