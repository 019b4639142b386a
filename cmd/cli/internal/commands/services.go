package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/homeharbor/homeharbor-cli/internal/api"
)

// ServicesCmd browses and manages partner service offers.
type ServicesCmd struct {
	List   ServicesListCmd   `cmd:"" help:"List service offers"`
	Add    ServicesAddCmd    `cmd:"" help:"Create a service offer (partners only)"`
	Update ServicesUpdateCmd `cmd:"" help:"Update a service offer (partners only)"`
	Delete ServicesDeleteCmd `cmd:"" help:"Delete a service offer (partners only)"`
}

// ServicesListCmd lists all service offers. Browsing is public.
type ServicesListCmd struct {
	ClientFlags
}

func (s *ServicesListCmd) Run(ctx context.Context, globals *Globals) error {
	_, client, err := openSession(ctx, s.ClientFlags)
	if err != nil {
		return err
	}

	offers, err := client.ServiceOffers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list services: %w", err)
	}

	if len(offers) == 0 {
		fmt.Println("No service offers found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tPROPERTY\tPROVIDER\tAPPROVED")
	for _, o := range offers {
		approved := ""
		if o.Approved {
			approved = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			o.ID, o.Title, o.Property.Title, o.ServiceProvider.Username, approved)
	}
	w.Flush()
	return nil
}

// ServicesAddCmd creates a service offer against a listing.
type ServicesAddCmd struct {
	ClientFlags
	Title    string `arg:"" help:"Offer title"`
	Property int64  `help:"Listing id the offer applies to" required:""`
	Desc     string `help:"Offer description"`
}

func (s *ServicesAddCmd) Run(ctx context.Context, globals *Globals) error {
	ctrl, client, err := openSession(ctx, s.ClientFlags)
	if err != nil {
		return err
	}
	if err := requireRoute(ctrl, "/partner/services/new"); err != nil {
		return err
	}

	offer, err := client.CreateServiceOffer(ctx, api.ServiceOfferInput{
		Property:    s.Property,
		Title:       s.Title,
		Description: s.Desc,
	})
	if err != nil {
		return fmt.Errorf("failed to create service offer: %w", err)
	}

	fmt.Printf("Created offer %d: %s\n", offer.ID, offer.Title)
	return nil
}

// ServicesUpdateCmd applies a partial update to a service offer.
type ServicesUpdateCmd struct {
	ClientFlags
	ID    int64   `arg:"" help:"Offer id"`
	Title *string `help:"New title"`
	Desc  *string `help:"New description"`
}

func (s *ServicesUpdateCmd) Run(ctx context.Context, globals *Globals) error {
	ctrl, client, err := openSession(ctx, s.ClientFlags)
	if err != nil {
		return err
	}
	if err := requireRoute(ctrl, fmt.Sprintf("/partner/service/%d/edit", s.ID)); err != nil {
		return err
	}

	offer, err := client.UpdateServiceOffer(ctx, s.ID, api.ServiceOfferPatch{
		Title:       s.Title,
		Description: s.Desc,
	})
	if err != nil {
		return fmt.Errorf("failed to update service offer %d: %w", s.ID, err)
	}

	fmt.Printf("Updated offer %d: %s\n", offer.ID, offer.Title)
	return nil
}

// ServicesDeleteCmd removes a service offer.
type ServicesDeleteCmd struct {
	ClientFlags
	ID int64 `arg:"" help:"Offer id"`
}

func (s *ServicesDeleteCmd) Run(ctx context.Context, globals *Globals) error {
	ctrl, client, err := openSession(ctx, s.ClientFlags)
	if err != nil {
		return err
	}
	if err := requireRoute(ctrl, "/partner/services"); err != nil {
		return err
	}

	if err := client.DeleteServiceOffer(ctx, s.ID); err != nil {
		return fmt.Errorf("failed to delete service offer %d: %w", s.ID, err)
	}

	fmt.Printf("Deleted offer %d\n", s.ID)
	return nil
}
