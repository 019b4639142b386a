package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_AuthHeader(t *testing.T) {
	ctx := context.Background()

	var gotAuth string
	var gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(Config{ServerURL: server.URL})

	t.Run("no header before attach", func(t *testing.T) {
		var out map[string]any
		require.NoError(t, client.Get(ctx, "/users/me/", &out))
		assert.Empty(t, gotAuth)
		assert.NotEmpty(t, gotRequestID)
	})

	t.Run("bearer header after attach", func(t *testing.T) {
		client.SetAuthHeader("tok123")
		var out map[string]any
		require.NoError(t, client.Get(ctx, "/users/me/", &out))
		assert.Equal(t, "Bearer tok123", gotAuth)
	})

	t.Run("no header after clear", func(t *testing.T) {
		client.ClearAuthHeader()
		var out map[string]any
		require.NoError(t, client.Get(ctx, "/users/me/", &out))
		assert.Empty(t, gotAuth)
	})
}

func TestClient_ErrorTaxonomy(t *testing.T) {
	ctx := context.Background()

	t.Run("401 maps to AuthError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Invalid credentials"}`))
		}))
		defer server.Close()

		client := New(Config{ServerURL: server.URL})
		err := client.Get(ctx, "/users/me/", nil)

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, http.StatusUnauthorized, authErr.Status)
		assert.Equal(t, "Invalid credentials", authErr.Detail)
	})

	t.Run("400 with field map maps to ValidationError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"username":["A user with that username already exists."],"email":"Enter a valid email address."}`))
		}))
		defer server.Close()

		client := New(Config{ServerURL: server.URL})
		err := client.Post(ctx, "/users/", map[string]string{}, nil)

		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, []string{"A user with that username already exists."}, valErr.Fields["username"])
		assert.Equal(t, []string{"Enter a valid email address."}, valErr.Fields["email"])
		assert.Contains(t, valErr.Error(), "username")
	})

	t.Run("other non-2xx maps to HTTPError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`boom`))
		}))
		defer server.Close()

		client := New(Config{ServerURL: server.URL})
		err := client.Get(ctx, "/listings/", nil)

		var httpErr *HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, "boom", httpErr.Body)
	})

	t.Run("transport failure maps to NetworkError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := New(Config{ServerURL: server.URL})
		err := client.Get(ctx, "/listings/", nil)

		var netErr *NetworkError
		require.ErrorAs(t, err, &netErr)
	})
}

func TestParseFieldErrors(t *testing.T) {
	t.Run("mixed string and list values", func(t *testing.T) {
		fields := parseFieldErrors([]byte(`{"a":["x","y"],"b":"z"}`))
		assert.Equal(t, []string{"x", "y"}, fields["a"])
		assert.Equal(t, []string{"z"}, fields["b"])
	})

	t.Run("non-field payloads are rejected", func(t *testing.T) {
		assert.Nil(t, parseFieldErrors([]byte(`{"count":3}`)))
		assert.Nil(t, parseFieldErrors([]byte(`[]`)))
		assert.Nil(t, parseFieldErrors([]byte(``)))
	})
}
