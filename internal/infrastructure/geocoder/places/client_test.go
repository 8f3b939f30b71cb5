package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perdan/gamescope/internal/domain/ports"
	"github.com/perdan/gamescope/internal/infrastructure/config"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(config.PlacesConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
	})
	require.NoError(t, err)
	return client
}

func TestClient_Locate_PrefersEstablishment(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/findplacefromtext/json", r.URL.Path)
		assert.Equal(t, "Nintendo EAD", r.URL.Query().Get("input"))
		assert.Equal(t, "textquery", r.URL.Query().Get("inputtype"))

		w.Write([]byte(`{
			"status": "OK",
			"candidates": [
				{"name": "Some Street", "formatted_address": "A", "types": ["route"],
				 "geometry": {"location": {"lat": 1.0, "lng": 2.0}}},
				{"name": "Nintendo", "formatted_address": "Kyoto, Japan", "types": ["establishment", "point_of_interest"],
				 "geometry": {"location": {"lat": 34.9697, "lng": 135.756}}}
			]
		}`))
	}))

	loc, err := client.Locate(context.Background(), "Nintendo EAD")
	require.NoError(t, err)

	assert.Equal(t, "Nintendo EAD", loc.Developer)
	assert.Equal(t, "Nintendo", loc.PlaceName)
	assert.Equal(t, "Kyoto, Japan", loc.Address)
	assert.InDelta(t, 34.9697, loc.Latitude, 1e-9)
	assert.InDelta(t, 135.756, loc.Longitude, 1e-9)
}

func TestClient_Locate_FallsBackToFirstCandidate(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status": "OK",
			"candidates": [
				{"name": "First", "formatted_address": "A", "types": ["route"],
				 "geometry": {"location": {"lat": 10.0, "lng": 20.0}}},
				{"name": "Second", "formatted_address": "B", "types": ["route"],
				 "geometry": {"location": {"lat": 30.0, "lng": 40.0}}}
			]
		}`))
	}))

	loc, err := client.Locate(context.Background(), "Obscure Studio")
	require.NoError(t, err)
	assert.Equal(t, "First", loc.PlaceName)
}

func TestClient_Locate_NoResults(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "candidates": []}`))
	}))

	_, err := client.Locate(context.Background(), "Nowhere Games")
	assert.ErrorIs(t, err, ports.ErrNoPlaceFound)
}

func TestClient_Locate_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client, err := NewClient(config.PlacesConfig{BaseURL: url, APIKey: "test-key"})
	require.NoError(t, err)

	_, err = client.Locate(context.Background(), "anything")
	assert.ErrorIs(t, err, ports.ErrNoPlaceFound)
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(config.PlacesConfig{})
	require.Error(t, err)
}
