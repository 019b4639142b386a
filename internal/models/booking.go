package models

import "time"

// Booking is a property viewing appointment. The buyer is set
// server-side; dates and times keep the API's wire format.
type Booking struct {
	ID            int64     `json:"id"`
	Buyer         User      `json:"buyer"`
	Property      Listing   `json:"property"`
	ScheduledDate string    `json:"scheduled_date"`
	ScheduledTime string    `json:"scheduled_time"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `json:"created_at"`
}
