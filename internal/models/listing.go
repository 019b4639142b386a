package models

import "time"

// Listing is a property listing. The seller is set server-side from the
// authenticated user; price is a decimal serialized as a string.
type Listing struct {
	ID           int64     `json:"id"`
	Seller       User      `json:"seller"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Address      string    `json:"address"`
	Image        string    `json:"image"`
	NumBedrooms  int       `json:"num_bedrooms"`
	NumBathrooms int       `json:"num_bathrooms"`
	Price        string    `json:"price"`
	CreatedAt    time.Time `json:"created_at"`
}
