package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/client/client"
	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/client/config"
	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/client/models"
	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/client/repositories/state"
	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/client/services"
	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/client/session"
	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/logging"
)

type App struct {
	config    *config.Config
	client    client.Client
	session   *session.Store
	register  *services.RegisterService
	materials *services.MaterialService
	users     *services.UserService
	reader    *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := session.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient := client.NewHTTPClient(c.BaseURL, c.RequestTimeout)

	logger := logging.NewDefault(os.Stderr)

	store := session.NewStore(state.NewSQLiteRepository(db))
	ms := services.NewMaterialService(apiClient, logger)
	rs := services.NewRegisterServiceWithCooldown(apiClient, c.ResendCooldown, time.Second)
	us := services.NewUserService(apiClient, logger)

	a := &App{
		config:    c,
		client:    apiClient,
		session:   store,
		register:  rs,
		materials: ms,
		users:     us,
		reader:    bufio.NewReader(os.Stdin),
	}

	if ident, err := store.Restore(ctx); err == nil && ident != nil {
		apiClient.SetToken(ident.Token)
		ms.SetAdminView(ident.IsAdmin())
		log.Printf("Restored session for %s", ident.Email)
	}

	return a, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()
	a.Root(ctx)
}

func (a *App) identity() *models.Identity {
	return a.session.Current()
}

func (a *App) getStatus() string {
	ident := a.session.Current()
	if ident == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", ident.Email, ident.Role)
}
