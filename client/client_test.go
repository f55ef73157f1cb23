package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmapp/dto"
)

func TestClientBootstrap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/session/bootstrap", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(dto.BootstrapResponse{
			User:       dto.UserResponse{ID: "u1", Email: "tech@x.com"},
			Workspaces: []dto.WorkspaceResponse{{ID: "ph-1", Name: "Central"}},
		})
	}))
	defer server.Close()

	resp, err := New(server.URL, "tok").Bootstrap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tech@x.com", resp.User.Email)
	require.Len(t, resp.Workspaces, 1)
}

func TestClientSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "Pending invitation already exists"})
	}))
	defer server.Close()

	_, err := New(server.URL, "tok").Invite(context.Background(), "ph-1", "tech@x.com", "pharmacist")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "Pending invitation already exists", apiErr.Message)
}

func TestClientListOrders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders", r.URL.Path)
		assert.Equal(t, "ph-1", r.URL.Query().Get("pharmacyId"))

		json.NewEncoder(w).Encode(map[string][]dto.OrderResponse{
			"orders": {{ID: "o1", Status: "Not Yet"}},
		})
	}))
	defer server.Close()

	orders, err := New(server.URL, "tok").ListOrders(context.Background(), "ph-1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Not Yet", orders[0].Status)
}
