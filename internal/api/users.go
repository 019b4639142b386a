package api

import (
	"context"
	"fmt"

	"github.com/homeharbor/homeharbor-cli/internal/models"
)

// UserPatch is a partial account update applied by an admin; nil fields
// are left unchanged. Role changes are an admin-only server decision.
type UserPatch struct {
	Username *string      `json:"username,omitempty"`
	Email    *string      `json:"email,omitempty"`
	Role     *models.Role `json:"role,omitempty"`
}

// Users lists all accounts. Admin only, enforced server-side.
func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.Get(ctx, "/users/", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// User returns a single account by id.
func (c *Client) User(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := c.Get(ctx, fmt.Sprintf("/users/%d/", id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies a partial update to an account.
func (c *Client) UpdateUser(ctx context.Context, id int64, patch UserPatch) (*models.User, error) {
	if patch.Role != nil && !patch.Role.Valid() {
		return nil, &ValidationError{Fields: map[string][]string{
			"role": {"must be one of buyer, seller, service_provider, admin"},
		}}
	}

	var user models.User
	if err := c.Patch(ctx, fmt.Sprintf("/users/%d/", id), patch, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.Delete(ctx, fmt.Sprintf("/users/%d/", id))
}
