package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_CreateListing(t *testing.T) {
	ctx := context.Background()

	t.Run("without image sends JSON", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/listings/", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":10,"title":"Sunny flat","price":"250000.00"}`))
		}))
		defer server.Close()

		client := New(Config{ServerURL: server.URL})
		listing, err := client.CreateListing(ctx, ListingInput{
			Title:   "Sunny flat",
			Address: "1 Harbour St",
			Price:   "250000.00",
		}, "")
		require.NoError(t, err)
		assert.Equal(t, int64(10), listing.ID)
	})

	t.Run("with image sends multipart form data", func(t *testing.T) {
		imagePath := filepath.Join(t.TempDir(), "front.jpg")
		require.NoError(t, os.WriteFile(imagePath, []byte("jpeg-bytes"), 0600))

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
			require.NoError(t, r.ParseMultipartForm(1<<20))

			assert.Equal(t, "Sunny flat", r.FormValue("title"))
			assert.Equal(t, "250000.00", r.FormValue("price"))
			assert.Equal(t, "2", r.FormValue("num_bedrooms"))

			file, header, err := r.FormFile("image")
			require.NoError(t, err)
			defer file.Close()
			assert.Equal(t, "front.jpg", header.Filename)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":11,"title":"Sunny flat","image":"/media/front.jpg"}`))
		}))
		defer server.Close()

		client := New(Config{ServerURL: server.URL})
		listing, err := client.CreateListing(ctx, ListingInput{
			Title:       "Sunny flat",
			Address:     "1 Harbour St",
			Price:       "250000.00",
			NumBedrooms: 2,
		}, imagePath)
		require.NoError(t, err)
		assert.Equal(t, "/media/front.jpg", listing.Image)
	})

	t.Run("missing required fields rejected client-side", func(t *testing.T) {
		client := New(Config{ServerURL: "http://unused.invalid"})
		_, err := client.CreateListing(ctx, ListingInput{Title: "No address"}, "")

		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
	})
}

func TestClient_UpdateListing(t *testing.T) {
	ctx := context.Background()

	t.Run("patch only carries set fields", func(t *testing.T) {
		var body string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "/api/listings/10/", r.URL.Path)
			data, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			body = string(data)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":10,"price":"240000.00"}`))
		}))
		defer server.Close()

		price := "240000.00"
		client := New(Config{ServerURL: server.URL})
		_, err := client.UpdateListing(ctx, 10, ListingPatch{Price: &price}, "")
		require.NoError(t, err)

		assert.JSONEq(t, `{"price":"240000.00"}`, body)
	})
}

func TestClient_ListingsCached(t *testing.T) {
	ctx := context.Background()

	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "max-age=60")
		w.Write([]byte(`[{"id":1,"title":"Sunny flat"}]`))
	}))
	defer server.Close()

	client := New(Config{ServerURL: server.URL})

	listings, err := client.Listings(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 1)

	// Second read is served from the caching transport
	_, err = client.Listings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
}
