package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/homeharbor/homeharbor-cli/internal/session"
)

// LogoutCmd clears the local session. Logging out while anonymous is
// fine; the operation is local-only and never fails.
type LogoutCmd struct {
	ClientFlags
}

func (l *LogoutCmd) Run(ctx context.Context, globals *Globals) error {
	ctrl, _, err := openSession(ctx, l.ClientFlags)
	if err != nil {
		return err
	}

	ctrl.Logout()
	fmt.Println("Logged out.")
	return nil
}

// WhoamiCmd shows the currently logged-in user.
type WhoamiCmd struct {
	ClientFlags
}

func (w *WhoamiCmd) Run(ctx context.Context, globals *Globals) error {
	ctrl, _, err := openSession(ctx, w.ClientFlags)
	if err != nil {
		return err
	}

	user := ctrl.User()
	if user == nil {
		fmt.Println("Not logged in.")
		return nil
	}

	fmt.Printf("Username: %s\n", user.Username)
	fmt.Printf("Email:    %s\n", user.Email)
	fmt.Printf("Role:     %s\n", user.Role)
	return nil
}

// SessionCmd inspects the local session.
type SessionCmd struct {
	Status SessionStatusCmd `cmd:"" help:"Show stored token status"`
}

// SessionStatusCmd reports on the stored token pair without calling the
// server. Claims are decoded unverified; only the server can truly
// validate a token.
type SessionStatusCmd struct {
	ClientFlags
}

func (s *SessionStatusCmd) Run(ctx context.Context, globals *Globals) error {
	store, err := session.NewStore(s.SessionDir)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	access, err := store.Get(session.KeyAccessToken)
	if err != nil {
		return err
	}
	if access == "" {
		fmt.Println("No stored session.")
		return nil
	}

	refresh, err := store.Get(session.KeyRefreshToken)
	if err != nil {
		return err
	}

	fmt.Println("Access token: stored")
	if refresh != "" {
		fmt.Println("Refresh token: stored (unused, no silent renewal)")
	}

	info, err := session.InspectToken(access)
	if err != nil {
		if errors.Is(err, session.ErrMalformedToken) {
			fmt.Println("Token claims: not decodable")
			return nil
		}
		return err
	}

	if info.Subject != "" {
		fmt.Printf("Subject:      %s\n", info.Subject)
	}
	if !info.IssuedAt.IsZero() {
		fmt.Printf("Issued:       %s\n", info.IssuedAt.Format("2006-01-02 15:04:05"))
	}
	if !info.ExpiresAt.IsZero() {
		fmt.Printf("Expires:      %s\n", info.ExpiresAt.Format("2006-01-02 15:04:05"))
		if info.Expired() {
			fmt.Println("Status:       expired (will be purged on next restore)")
		} else {
			fmt.Println("Status:       valid")
		}
	}
	return nil
}
