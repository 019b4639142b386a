package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/homeharbor/homeharbor-cli/internal/api"
	"github.com/homeharbor/homeharbor-cli/internal/models"
)

// UsersCmd administers user accounts. Admin only.
type UsersCmd struct {
	List   UsersListCmd   `cmd:"" help:"List accounts"`
	Show   UsersShowCmd   `cmd:"" help:"Show an account"`
	Update UsersUpdateCmd `cmd:"" help:"Update an account"`
	Delete UsersDeleteCmd `cmd:"" help:"Delete an account"`
}

// UsersListCmd lists all accounts.
type UsersListCmd struct {
	ClientFlags
}

func (u *UsersListCmd) Run(ctx context.Context, globals *Globals) error {
	ctrl, client, err := openSession(ctx, u.ClientFlags)
	if err != nil {
		return err
	}
	if err := requireRoute(ctrl, "/admin/users"); err != nil {
		return err
	}

	users, err := client.Users(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tROLE")
	for _, usr := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", usr.ID, usr.Username, usr.Email, usr.Role)
	}
	w.Flush()
	return nil
}

// UsersShowCmd shows a single account.
type UsersShowCmd struct {
	ClientFlags
	ID int64 `arg:"" help:"Account id"`
}

func (u *UsersShowCmd) Run(ctx context.Context, globals *Globals) error {
	ctrl, client, err := openSession(ctx, u.ClientFlags)
	if err != nil {
		return err
	}
	if err := requireRoute(ctrl, "/admin/users"); err != nil {
		return err
	}

	user, err := client.User(ctx, u.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch user %d: %w", u.ID, err)
	}

	fmt.Printf("ID:       %d\n", user.ID)
	fmt.Printf("Username: %s\n", user.Username)
	fmt.Printf("Email:    %s\n", user.Email)
	fmt.Printf("Role:     %s\n", user.Role)
	return nil
}

// UsersUpdateCmd applies a partial update to an account.
type UsersUpdateCmd struct {
	ClientFlags
	ID       int64   `arg:"" help:"Account id"`
	Username *string `help:"New username"`
	Email    *string `help:"New email"`
	Role     *string `help:"New role (buyer, seller, partner, admin)"`
}

func (u *UsersUpdateCmd) Run(ctx context.Context, globals *Globals) error {
	ctrl, client, err := openSession(ctx, u.ClientFlags)
	if err != nil {
		return err
	}
	if err := requireRoute(ctrl, "/admin/users"); err != nil {
		return err
	}

	patch := api.UserPatch{
		Username: u.Username,
		Email:    u.Email,
	}
	if u.Role != nil {
		role, err := models.RoleFromLabel(*u.Role)
		if err != nil {
			return err
		}
		patch.Role = &role
	}

	user, err := client.UpdateUser(ctx, u.ID, patch)
	if err != nil {
		return fmt.Errorf("failed to update user %d: %w", u.ID, err)
	}

	fmt.Printf("Updated user %d (%s)\n", user.ID, user.Username)
	return nil
}

// UsersDeleteCmd removes an account.
type UsersDeleteCmd struct {
	ClientFlags
	ID int64 `arg:"" help:"Account id"`
}

func (u *UsersDeleteCmd) Run(ctx context.Context, globals *Globals) error {
	ctrl, client, err := openSession(ctx, u.ClientFlags)
	if err != nil {
		return err
	}
	if err := requireRoute(ctrl, "/admin/users"); err != nil {
		return err
	}

	if err := client.DeleteUser(ctx, u.ID); err != nil {
		return fmt.Errorf("failed to delete user %d: %w", u.ID, err)
	}

	fmt.Printf("Deleted user %d\n", u.ID)
	return nil
}
