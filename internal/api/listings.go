package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/homeharbor/homeharbor-cli/internal/models"
)

// ListingInput is the payload for creating a listing. The seller is set
// server-side from the authenticated user.
type ListingInput struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	Address      string `json:"address" validate:"required"`
	NumBedrooms  int    `json:"num_bedrooms" validate:"min=0"`
	NumBathrooms int    `json:"num_bathrooms" validate:"min=0"`
	Price        string `json:"price" validate:"required"`
}

// ListingPatch is a partial update; nil fields are left unchanged.
type ListingPatch struct {
	Title        *string `json:"title,omitempty"`
	Description  *string `json:"description,omitempty"`
	Address      *string `json:"address,omitempty"`
	NumBedrooms  *int    `json:"num_bedrooms,omitempty"`
	NumBathrooms *int    `json:"num_bathrooms,omitempty"`
	Price        *string `json:"price,omitempty"`
}

// Listings returns all property listings. This is a public endpoint and
// goes through the caching transport.
func (c *Client) Listings(ctx context.Context) ([]models.Listing, error) {
	var listings []models.Listing
	if err := c.GetCached(ctx, "/listings/", &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// Listing returns a single listing by id.
func (c *Client) Listing(ctx context.Context, id int64) (*models.Listing, error) {
	var listing models.Listing
	if err := c.GetCached(ctx, fmt.Sprintf("/listings/%d/", id), &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// CreateListing creates a listing. When imagePath is non-empty the
// request is sent as multipart/form-data with the image attached.
func (c *Client) CreateListing(ctx context.Context, in ListingInput, imagePath string) (*models.Listing, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	var listing models.Listing
	if imagePath != "" {
		fields := listingFields(in)
		if err := c.doMultipart(ctx, http.MethodPost, "/listings/", fields, "image", imagePath, &listing); err != nil {
			return nil, err
		}
		return &listing, nil
	}

	if err := c.Post(ctx, "/listings/", in, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// UpdateListing applies a partial update. When imagePath is non-empty
// the request is sent as multipart/form-data.
func (c *Client) UpdateListing(ctx context.Context, id int64, patch ListingPatch, imagePath string) (*models.Listing, error) {
	path := fmt.Sprintf("/listings/%d/", id)

	var listing models.Listing
	if imagePath != "" {
		fields := patchFields(patch)
		if err := c.doMultipart(ctx, http.MethodPatch, path, fields, "image", imagePath, &listing); err != nil {
			return nil, err
		}
		return &listing, nil
	}

	if err := c.Patch(ctx, path, patch, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// DeleteListing removes a listing.
func (c *Client) DeleteListing(ctx context.Context, id int64) error {
	return c.Delete(ctx, fmt.Sprintf("/listings/%d/", id))
}

func listingFields(in ListingInput) map[string]string {
	return map[string]string{
		"title":         in.Title,
		"description":   in.Description,
		"address":       in.Address,
		"num_bedrooms":  strconv.Itoa(in.NumBedrooms),
		"num_bathrooms": strconv.Itoa(in.NumBathrooms),
		"price":         in.Price,
	}
}

func patchFields(patch ListingPatch) map[string]string {
	fields := make(map[string]string)
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Address != nil {
		fields["address"] = *patch.Address
	}
	if patch.NumBedrooms != nil {
		fields["num_bedrooms"] = strconv.Itoa(*patch.NumBedrooms)
	}
	if patch.NumBathrooms != nil {
		fields["num_bathrooms"] = strconv.Itoa(*patch.NumBathrooms)
	}
	if patch.Price != nil {
		fields["price"] = *patch.Price
	}
	return fields
}
