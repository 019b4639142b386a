package api

import (
	"context"
	"fmt"

	"github.com/homeharbor/homeharbor-cli/internal/models"
)

// ServiceOfferInput is the payload for creating a service offer. The
// provider is set server-side from the authenticated user.
type ServiceOfferInput struct {
	Property    int64  `json:"property" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// ServiceOfferPatch is a partial update; nil fields are left unchanged.
type ServiceOfferPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Approved    *bool   `json:"approved,omitempty"`
}

// ServiceOffers returns all service offers. Public endpoint, cached.
func (c *Client) ServiceOffers(ctx context.Context) ([]models.ServiceOffer, error) {
	var offers []models.ServiceOffer
	if err := c.GetCached(ctx, "/services/", &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// CreateServiceOffer creates a service offer against a listing.
func (c *Client) CreateServiceOffer(ctx context.Context, in ServiceOfferInput) (*models.ServiceOffer, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	var offer models.ServiceOffer
	if err := c.Post(ctx, "/services/", in, &offer); err != nil {
		return nil, err
	}
	return &offer, nil
}

// UpdateServiceOffer applies a partial update.
func (c *Client) UpdateServiceOffer(ctx context.Context, id int64, patch ServiceOfferPatch) (*models.ServiceOffer, error) {
	var offer models.ServiceOffer
	if err := c.Patch(ctx, fmt.Sprintf("/services/%d/", id), patch, &offer); err != nil {
		return nil, err
	}
	return &offer, nil
}

// DeleteServiceOffer removes a service offer.
func (c *Client) DeleteServiceOffer(ctx context.Context, id int64) error {
	return c.Delete(ctx, fmt.Sprintf("/services/%d/", id))
}
