package api

import (
	"context"
	"fmt"

	"github.com/homeharbor/homeharbor-cli/internal/models"
)

// BookingInput is the payload for creating a viewing booking. The buyer
// is set server-side from the authenticated user.
type BookingInput struct {
	Property      int64  `json:"property" validate:"required"`
	ScheduledDate string `json:"scheduled_date" validate:"required,datetime=2006-01-02"`
	ScheduledTime string `json:"scheduled_time" validate:"required"`
	Message       string `json:"message,omitempty"`
}

// BookingPatch is a partial update; nil fields are left unchanged.
type BookingPatch struct {
	ScheduledDate *string `json:"scheduled_date,omitempty"`
	ScheduledTime *string `json:"scheduled_time,omitempty"`
	Message       *string `json:"message,omitempty"`
}

// Bookings returns the caller's bookings. The server scopes the result
// to the authenticated user.
func (c *Client) Bookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.Get(ctx, "/bookings/", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CreateBooking books a viewing for a listing.
func (c *Client) CreateBooking(ctx context.Context, in BookingInput) (*models.Booking, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	var booking models.Booking
	if err := c.Post(ctx, "/bookings/", in, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateBooking applies a partial update to a booking.
func (c *Client) UpdateBooking(ctx context.Context, id int64, patch BookingPatch) (*models.Booking, error) {
	var booking models.Booking
	if err := c.Patch(ctx, fmt.Sprintf("/bookings/%d/", id), patch, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// DeleteBooking cancels a booking.
func (c *Client) DeleteBooking(ctx context.Context, id int64) error {
	return c.Delete(ctx, fmt.Sprintf("/bookings/%d/", id))
}
