package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeharbor/homeharbor-cli/internal/models"
)

func TestClient_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("posts credentials and parses the token pair", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/token/", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "john@example.com", body["email"])
			assert.Equal(t, "hunter22", body["password"])

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"access":"tok123","refresh":"ref456"}`))
		}))
		defer server.Close()

		client := New(Config{ServerURL: server.URL})
		pair, err := client.Login(ctx, "john@example.com", "hunter22")
		require.NoError(t, err)
		assert.Equal(t, "tok123", pair.Access)
		assert.Equal(t, "ref456", pair.Refresh)
	})

	t.Run("bad credentials surface as AuthError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"No active account found with the given credentials"}`))
		}))
		defer server.Close()

		client := New(Config{ServerURL: server.URL})
		_, err := client.Login(ctx, "john@example.com", "wrong")

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
	})
}

func TestClient_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the account", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/users/", r.URL.Path)

			var in RegisterInput
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.Equal(t, models.RoleServiceProvider, in.Role)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":2,"username":"plumberco","email":"ops@plumberco.example","role":"service_provider"}`))
		}))
		defer server.Close()

		client := New(Config{ServerURL: server.URL})
		user, err := client.Register(ctx, RegisterInput{
			Username: "plumberco",
			Email:    "ops@plumberco.example",
			Password: "s3cretpass",
			Role:     models.RoleServiceProvider,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), user.ID)
		assert.Equal(t, models.RoleServiceProvider, user.Role)
	})

	t.Run("invalid input is rejected before the request is sent", func(t *testing.T) {
		requests := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
		}))
		defer server.Close()

		client := New(Config{ServerURL: server.URL})
		_, err := client.Register(ctx, RegisterInput{
			Username: "jo",
			Email:    "not-an-email",
			Password: "short",
			Role:     models.RoleBuyer,
		})

		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Zero(t, requests)
	})

	t.Run("unknown role is rejected client-side", func(t *testing.T) {
		client := New(Config{ServerURL: "http://unused.invalid"})
		_, err := client.Register(ctx, RegisterInput{
			Username: "john",
			Email:    "john@example.com",
			Password: "s3cretpass",
			Role:     models.Role("auditor"),
		})

		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Contains(t, valErr.Fields, "role")
	})
}

func TestClient_CurrentUser(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/me/", r.URL.Path)
		assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":1,"username":"john","email":"john@example.com","role":"buyer"}`))
	}))
	defer server.Close()

	client := New(Config{ServerURL: server.URL})
	client.SetAuthHeader("tok123")

	user, err := client.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "john", user.Username)
	assert.Equal(t, models.RoleBuyer, user.Role)
}
