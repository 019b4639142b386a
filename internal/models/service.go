package models

import "time"

// ServiceOffer is a partner service offered against a listing.
// Approval is managed server-side by the seller or an admin.
type ServiceOffer struct {
	ID              int64     `json:"id"`
	ServiceProvider User      `json:"service_provider"`
	Property        Listing   `json:"property"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Approved        bool      `json:"approved"`
	CreatedAt       time.Time `json:"created_at"`
}
