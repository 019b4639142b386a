package session

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/homeharbor/homeharbor-cli/internal/api"
	"github.com/homeharbor/homeharbor-cli/internal/models"
)

// Post-login destinations keyed by role. Unrecognized roles land on the
// home page.
var roleDestinations = map[models.Role]string{
	models.RoleBuyer:           "/buyer",
	models.RoleSeller:          "/seller",
	models.RoleServiceProvider: "/partner",
	models.RoleAdmin:           "/admin",
}

// Navigator receives navigation events emitted by the controller. The
// controller performs pure state transitions; where the user lands next
// is the presentation layer's concern.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// AuthAPI is the slice of the API client the controller drives. The
// controller is the only component permitted to attach or detach the
// bearer header.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*api.TokenPair, error)
	Register(ctx context.Context, in api.RegisterInput) (*models.User, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	SetAuthHeader(token string)
	ClearAuthHeader()
}

// Controller owns the in-memory session: the authenticated user, if
// any, and the loading flag covering the initial restore. It is the
// sole writer of session state and the sole caller of the store.
type Controller struct {
	api   AuthAPI
	store *Store
	nav   Navigator

	user    *models.User
	loading bool
}

// NewController creates a session controller. The session starts
// anonymous with loading set until Restore completes.
func NewController(authAPI AuthAPI, store *Store, nav Navigator) *Controller {
	return &Controller{
		api:     authAPI,
		store:   store,
		nav:     nav,
		loading: true,
	}
}

// User returns the authenticated identity, or nil when anonymous.
func (c *Controller) User() *models.User {
	return c.user
}

// Loading reports whether the initial restore is still pending.
func (c *Controller) Loading() bool {
	return c.loading
}

// Authenticated reports whether a user is logged in.
func (c *Controller) Authenticated() bool {
	return c.user != nil
}

// Restore loads a persisted session, invoked exactly once at startup.
// A stored token is attached and validated against the API; a rejected
// token is treated as "no session", never as a fatal error, and both
// stored tokens plus the attached header are purged together. Loading
// always ends false, on every path.
func (c *Controller) Restore(ctx context.Context) {
	defer func() { c.loading = false }()

	token, err := c.store.Get(KeyAccessToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read session store")
		return
	}
	if token == "" {
		return
	}

	c.api.SetAuthHeader(token)

	user, err := c.api.CurrentUser(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("stored token rejected, clearing session")
		c.purge()
		return
	}

	c.user = user
	log.Debug().Str("username", user.Username).Str("role", string(user.Role)).Msg("session restored")
}

// Login exchanges credentials for a token, persists it, attaches the
// bearer header, fetches the identity and navigates to the role's
// dashboard. Token persistence happens before header attachment, which
// happens before the profile fetch; if any step fails the earlier steps
// are unwound and the session stays anonymous. The error is returned
// unchanged for the caller to display.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	pair, err := c.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := c.store.Set(KeyAccessToken, pair.Access); err != nil {
		c.purge()
		return err
	}
	if pair.Refresh != "" {
		if err := c.store.Set(KeyRefreshToken, pair.Refresh); err != nil {
			c.purge()
			return err
		}
	}

	c.api.SetAuthHeader(pair.Access)

	user, err := c.api.CurrentUser(ctx)
	if err != nil {
		c.purge()
		return err
	}

	c.user = user
	log.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("logged in")

	dest, ok := roleDestinations[user.Role]
	if !ok {
		dest = "/"
	}
	c.nav.Navigate(dest)

	return nil
}

// Logout resets the session to its anonymous state. It is local-only,
// unconditional and idempotent; no server call is made.
func (c *Controller) Logout() {
	c.user = nil
	c.purge()
	c.nav.Navigate("/login")
	log.Info().Msg("logged out")
}

// Register creates an account without authenticating it, then navigates
// to the login page. No token is stored and no session state changes.
func (c *Controller) Register(ctx context.Context, username, email, password string, role models.Role) (*models.User, error) {
	user, err := c.api.Register(ctx, api.RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
		Role:     role,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("account created")
	c.nav.Navigate("/login")

	return user, nil
}

// purge removes both stored tokens and detaches the bearer header.
// Store failures are logged, not surfaced; the in-memory session is
// authoritative once cleanup has been decided.
func (c *Controller) purge() {
	if err := c.store.Clear(KeyAccessToken); err != nil {
		log.Warn().Err(err).Msg("failed to clear access token")
	}
	if err := c.store.Clear(KeyRefreshToken); err != nil {
		log.Warn().Err(err).Msg("failed to clear refresh token")
	}
	c.api.ClearAuthHeader()
}
