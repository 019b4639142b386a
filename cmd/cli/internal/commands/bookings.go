package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/homeharbor/homeharbor-cli/internal/api"
)

// BookingsCmd manages viewing bookings. The server scopes bookings to
// the caller, so sellers see bookings against their listings and buyers
// see their own.
type BookingsCmd struct {
	List   BookingsListCmd   `cmd:"" help:"List your bookings"`
	Add    BookingsAddCmd    `cmd:"" help:"Book a viewing (buyers only)"`
	Update BookingsUpdateCmd `cmd:"" help:"Reschedule a booking"`
	Delete BookingsDeleteCmd `cmd:"" help:"Cancel a booking"`
}

// BookingsListCmd lists the caller's bookings.
type BookingsListCmd struct {
	ClientFlags
}

func (b *BookingsListCmd) Run(ctx context.Context, globals *Globals) error {
	ctrl, client, err := openSession(ctx, b.ClientFlags)
	if err != nil {
		return err
	}
	if err := requireRoute(ctrl, "/buyer/requests"); err != nil {
		return err
	}

	bookings, err := client.Bookings(ctx)
	if err != nil {
		return fmt.Errorf("failed to list bookings: %w", err)
	}

	if len(bookings) == 0 {
		fmt.Println("No bookings found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROPERTY\tDATE\tTIME\tMESSAGE")
	for _, bk := range bookings {
		msg := bk.Message
		if len(msg) > 40 {
			msg = msg[:37] + "..."
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			bk.ID, bk.Property.Title, bk.ScheduledDate, bk.ScheduledTime, msg)
	}
	w.Flush()
	return nil
}

// BookingsAddCmd books a viewing for a listing.
type BookingsAddCmd struct {
	ClientFlags
	Property int64  `arg:"" help:"Listing id"`
	Date     string `help:"Viewing date (YYYY-MM-DD)" required:""`
	Time     string `help:"Viewing time (HH:MM)" required:""`
	Message  string `help:"Message to the seller"`
}

func (b *BookingsAddCmd) Run(ctx context.Context, globals *Globals) error {
	ctrl, client, err := openSession(ctx, b.ClientFlags)
	if err != nil {
		return err
	}
	if err := requireRoute(ctrl, "/buyer"); err != nil {
		return err
	}

	booking, err := client.CreateBooking(ctx, api.BookingInput{
		Property:      b.Property,
		ScheduledDate: b.Date,
		ScheduledTime: b.Time,
		Message:       b.Message,
	})
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	fmt.Printf("Booked viewing %d for %s at %s\n", booking.ID, booking.ScheduledDate, booking.ScheduledTime)
	return nil
}

// BookingsUpdateCmd reschedules a booking.
type BookingsUpdateCmd struct {
	ClientFlags
	ID      int64   `arg:"" help:"Booking id"`
	Date    *string `help:"New viewing date (YYYY-MM-DD)"`
	Time    *string `help:"New viewing time (HH:MM)"`
	Message *string `help:"New message"`
}

func (b *BookingsUpdateCmd) Run(ctx context.Context, globals *Globals) error {
	ctrl, client, err := openSession(ctx, b.ClientFlags)
	if err != nil {
		return err
	}
	if err := requireRoute(ctrl, "/buyer/requests"); err != nil {
		return err
	}

	booking, err := client.UpdateBooking(ctx, b.ID, api.BookingPatch{
		ScheduledDate: b.Date,
		ScheduledTime: b.Time,
		Message:       b.Message,
	})
	if err != nil {
		return fmt.Errorf("failed to update booking %d: %w", b.ID, err)
	}

	fmt.Printf("Updated booking %d: %s at %s\n", booking.ID, booking.ScheduledDate, booking.ScheduledTime)
	return nil
}

// BookingsDeleteCmd cancels a booking.
type BookingsDeleteCmd struct {
	ClientFlags
	ID int64 `arg:"" help:"Booking id"`
}

func (b *BookingsDeleteCmd) Run(ctx context.Context, globals *Globals) error {
	ctrl, client, err := openSession(ctx, b.ClientFlags)
	if err != nil {
		return err
	}
	if err := requireRoute(ctrl, "/buyer/requests"); err != nil {
		return err
	}

	if err := client.DeleteBooking(ctx, b.ID); err != nil {
		return fmt.Errorf("failed to cancel booking %d: %w", b.ID, err)
	}

	fmt.Printf("Cancelled booking %d\n", b.ID)
	return nil
}
