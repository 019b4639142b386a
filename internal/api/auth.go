package api

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/homeharbor/homeharbor-cli/internal/models"
)

var validate = validator.New()

// TokenPair is the credential pair returned by the token endpoint. The
// refresh token is persisted but never exchanged; there is no silent
// renewal.
type TokenPair struct {
	Access  string       `json:"access"`
	Refresh string       `json:"refresh,omitempty"`
	User    *models.User `json:"user,omitempty"`
}

// RegisterInput is the payload for account creation.
type RegisterInput struct {
	Username string      `json:"username" validate:"required,min=3,max=150"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=8"`
	Role     models.Role `json:"role" validate:"required"`
}

// Login exchanges credentials for a token pair. Invalid credentials
// surface as an AuthError.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var pair TokenPair
	if err := c.Post(ctx, "/token/", body, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

// Register creates a new account and returns the created identity. No
// token is issued; the caller must log in afterwards. Duplicate
// username/email or policy violations surface as a ValidationError.
func (c *Client) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if !in.Role.Valid() {
		return nil, &ValidationError{Fields: map[string][]string{
			"role": {"must be one of buyer, seller, service_provider, admin"},
		}}
	}

	var user models.User
	if err := c.Post(ctx, "/users/", in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CurrentUser returns the identity for the currently attached bearer
// token. An invalid or expired token surfaces as an AuthError.
func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.Get(ctx, "/users/me/", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// validateInput runs struct validation and converts failures into the
// same field-error shape the server produces.
func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make(map[string][]string, len(errs))
	for _, fe := range errs {
		fields[fe.Field()] = append(fields[fe.Field()], "failed "+fe.Tag()+" validation")
	}
	return &ValidationError{Fields: fields}
}
