package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/homeharbor/homeharbor-cli/internal/api"
	"github.com/homeharbor/homeharbor-cli/internal/models"
)

// PropertiesCmd browses and manages property listings.
type PropertiesCmd struct {
	List   PropertiesListCmd   `cmd:"" help:"List property listings"`
	Show   PropertiesShowCmd   `cmd:"" help:"Show a single listing"`
	Add    PropertiesAddCmd    `cmd:"" help:"Create a listing (sellers only)"`
	Update PropertiesUpdateCmd `cmd:"" help:"Update a listing (sellers only)"`
	Delete PropertiesDeleteCmd `cmd:"" help:"Delete a listing (sellers only)"`
}

// PropertiesListCmd lists all listings. Browsing is public.
type PropertiesListCmd struct {
	ClientFlags
}

func (p *PropertiesListCmd) Run(ctx context.Context, globals *Globals) error {
	_, client, err := openSession(ctx, p.ClientFlags)
	if err != nil {
		return err
	}

	listings, err := client.Listings(ctx)
	if err != nil {
		return fmt.Errorf("failed to list properties: %w", err)
	}

	if len(listings) == 0 {
		fmt.Println("No properties found.")
		return nil
	}

	printListings(listings)
	return nil
}

// PropertiesShowCmd shows a single listing.
type PropertiesShowCmd struct {
	ClientFlags
	ID int64 `arg:"" help:"Listing id"`
}

func (p *PropertiesShowCmd) Run(ctx context.Context, globals *Globals) error {
	_, client, err := openSession(ctx, p.ClientFlags)
	if err != nil {
		return err
	}

	listing, err := client.Listing(ctx, p.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch property %d: %w", p.ID, err)
	}

	fmt.Printf("Title:       %s\n", listing.Title)
	fmt.Printf("Address:     %s\n", listing.Address)
	fmt.Printf("Price:       %s\n", listing.Price)
	fmt.Printf("Bedrooms:    %d\n", listing.NumBedrooms)
	fmt.Printf("Bathrooms:   %d\n", listing.NumBathrooms)
	fmt.Printf("Seller:      %s\n", listing.Seller.Username)
	fmt.Printf("Listed:      %s\n", listing.CreatedAt.Format("2006-01-02"))
	if listing.Image != "" {
		fmt.Printf("Image:       %s\n", listing.Image)
	}
	if listing.Description != "" {
		fmt.Println()
		fmt.Println(listing.Description)
	}
	return nil
}

// PropertiesAddCmd creates a listing, optionally uploading an image.
type PropertiesAddCmd struct {
	ClientFlags
	Title     string `arg:"" help:"Listing title"`
	Address   string `help:"Property address" required:""`
	Price     string `help:"Asking price" required:""`
	Bedrooms  int    `help:"Number of bedrooms" default:"0"`
	Bathrooms int    `help:"Number of bathrooms" default:"0"`
	Desc      string `help:"Listing description"`
	Image     string `help:"Path to an image file" type:"existingfile" optional:""`
}

func (p *PropertiesAddCmd) Run(ctx context.Context, globals *Globals) error {
	ctrl, client, err := openSession(ctx, p.ClientFlags)
	if err != nil {
		return err
	}
	if err := requireRoute(ctrl, "/seller/property/new"); err != nil {
		return err
	}

	listing, err := client.CreateListing(ctx, api.ListingInput{
		Title:        p.Title,
		Description:  p.Desc,
		Address:      p.Address,
		NumBedrooms:  p.Bedrooms,
		NumBathrooms: p.Bathrooms,
		Price:        p.Price,
	}, p.Image)
	if err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}

	fmt.Printf("Created listing %d: %s\n", listing.ID, listing.Title)
	return nil
}

// PropertiesUpdateCmd applies a partial update to a listing.
type PropertiesUpdateCmd struct {
	ClientFlags
	ID        int64   `arg:"" help:"Listing id"`
	Title     *string `help:"New title"`
	Address   *string `help:"New address"`
	Price     *string `help:"New price"`
	Bedrooms  *int    `help:"New bedroom count"`
	Bathrooms *int    `help:"New bathroom count"`
	Desc      *string `help:"New description"`
	Image     string  `help:"Path to a replacement image file" type:"existingfile" optional:""`
}

func (p *PropertiesUpdateCmd) Run(ctx context.Context, globals *Globals) error {
	ctrl, client, err := openSession(ctx, p.ClientFlags)
	if err != nil {
		return err
	}
	if err := requireRoute(ctrl, fmt.Sprintf("/seller/property/%d/edit", p.ID)); err != nil {
		return err
	}

	listing, err := client.UpdateListing(ctx, p.ID, api.ListingPatch{
		Title:        p.Title,
		Description:  p.Desc,
		Address:      p.Address,
		NumBedrooms:  p.Bedrooms,
		NumBathrooms: p.Bathrooms,
		Price:        p.Price,
	}, p.Image)
	if err != nil {
		return fmt.Errorf("failed to update property %d: %w", p.ID, err)
	}

	fmt.Printf("Updated listing %d: %s\n", listing.ID, listing.Title)
	return nil
}

// PropertiesDeleteCmd removes a listing.
type PropertiesDeleteCmd struct {
	ClientFlags
	ID int64 `arg:"" help:"Listing id"`
}

func (p *PropertiesDeleteCmd) Run(ctx context.Context, globals *Globals) error {
	ctrl, client, err := openSession(ctx, p.ClientFlags)
	if err != nil {
		return err
	}
	if err := requireRoute(ctrl, "/seller/properties"); err != nil {
		return err
	}

	if err := client.DeleteListing(ctx, p.ID); err != nil {
		return fmt.Errorf("failed to delete property %d: %w", p.ID, err)
	}

	fmt.Printf("Deleted listing %d\n", p.ID)
	return nil
}

func printListings(listings []models.Listing) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tADDRESS\tPRICE\tBEDS\tBATHS\tSELLER")

	for _, l := range listings {
		title := l.Title
		if len(title) > 30 {
			title = title[:27] + "..."
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%s\n",
			l.ID, title, l.Address, l.Price, l.NumBedrooms, l.NumBathrooms, l.Seller.Username)
	}

	w.Flush()
}
