package commands

import (
	"context"
	"fmt"

	"github.com/homeharbor/homeharbor-cli/internal/models"
)

// LoginCmd exchanges credentials for a session token.
type LoginCmd struct {
	ClientFlags
	Email    string `arg:"" help:"Account email"`
	Password string `help:"Account password" required:"" env:"HOMEHARBOR_PASSWORD"`
}

func (l *LoginCmd) Run(ctx context.Context, globals *Globals) error {
	ctrl, _, err := openSession(ctx, l.ClientFlags)
	if err != nil {
		return err
	}

	if err := ctrl.Login(ctx, l.Email, l.Password); err != nil {
		return err
	}

	user := ctrl.User()
	fmt.Printf("Welcome back, %s!\n", user.Username)
	return nil
}

// RegisterCmd creates a new account. The new account is not logged in;
// run login afterwards.
type RegisterCmd struct {
	ClientFlags
	Username string `arg:"" help:"Account username"`
	Email    string `help:"Account email" required:""`
	Password string `help:"Account password" required:"" env:"HOMEHARBOR_PASSWORD"`
	Role     string `help:"Account role (buyer, seller, partner)" default:"buyer"`
}

func (r *RegisterCmd) Run(ctx context.Context, globals *Globals) error {
	role, err := models.RoleFromLabel(r.Role)
	if err != nil {
		return err
	}

	ctrl, _, err := openSession(ctx, r.ClientFlags)
	if err != nil {
		return err
	}

	user, err := ctrl.Register(ctx, r.Username, r.Email, r.Password, role)
	if err != nil {
		return err
	}

	fmt.Printf("Account %q created. Log in to continue.\n", user.Username)
	return nil
}
