package services

import (
	"context"
	"fmt"

	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/client/client"
	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/client/models"
	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/logging"
)

// UserService exposes the registered-account listing for the admin view.
// Unlike the material catalog there is no mutation path, so no cache: every
// listing is a fresh fetch.
type UserService struct {
	client client.Client
	logger logging.Logger
}

func NewUserService(c client.Client, logger logging.Logger) *UserService {
	return &UserService{client: c, logger: logger}
}

// List fetches all registered accounts from the collaborator.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	us, err := s.client.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching users: %w", err)
	}
	s.logger.Debug(ctx, "users fetched", "count", len(us))
	return us, nil
}

// FilterUsersByEmail returns the users whose email contains q,
// case-insensitively. An empty q returns everyone.
func FilterUsersByEmail(us []models.User, q string) []models.User {
	result := make([]models.User, 0, len(us))
	for i := range us {
		if us[i].MatchesEmail(q) {
			result = append(result, us[i])
		}
	}
	return result
}
