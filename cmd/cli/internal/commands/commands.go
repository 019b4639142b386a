package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/homeharbor/homeharbor-cli/internal/api"
	"github.com/homeharbor/homeharbor-cli/internal/routes"
	"github.com/homeharbor/homeharbor-cli/internal/session"
)

type Globals struct {
	Debug   bool
	Version string
}

// ClientFlags are shared by every command that talks to the API.
type ClientFlags struct {
	Server     string `help:"Marketplace server URL" default:"http://localhost:8000" env:"HOMEHARBOR_SERVER"`
	SessionDir string `help:"Custom session directory" env:"HOMEHARBOR_SESSION_DIR"`
}

// consoleNavigator surfaces navigation events from the session
// controller. In the web app these are router transitions; here the
// destination is printed so the user knows where the flow landed.
type consoleNavigator struct{}

func (consoleNavigator) Navigate(path string) {
	log.Debug().Str("path", path).Msg("navigate")
	fmt.Printf("→ %s\n", path)
}

// openSession builds the API client and session controller, then
// restores any persisted session before the command runs.
func openSession(ctx context.Context, flags ClientFlags) (*session.Controller, *api.Client, error) {
	store, err := session.NewStore(flags.SessionDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize session store: %w", err)
	}

	client := api.New(api.Config{ServerURL: flags.Server})
	ctrl := session.NewController(client, store, consoleNavigator{})
	ctrl.Restore(ctx)

	return ctrl, client, nil
}

// requireRoute runs the route guard for the page a command corresponds
// to, translating guard decisions into command errors.
func requireRoute(ctrl *session.Controller, path string) error {
	route, ok := routes.Match(path)
	if !ok {
		return fmt.Errorf("unknown route %q", path)
	}

	decision := routes.Evaluate(ctrl.Loading(), ctrl.User(), route)
	switch decision.Action {
	case routes.ActionRender:
		return nil
	case routes.ActionRedirect:
		if decision.Target == "/login" {
			return fmt.Errorf("not logged in\n\nRun 'homeharbor login' first")
		}
		return fmt.Errorf("your role does not allow access to %s", path)
	default:
		return fmt.Errorf("session is still loading")
	}
}
