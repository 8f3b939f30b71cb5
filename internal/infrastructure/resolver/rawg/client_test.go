package rawg

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

const searchBody = `{"count": 1, "results": [{"slug": "the-witcher-3"}]}`

const detailBody = `{
	"name": "The Witcher 3: Wild Hunt",
	"released": "2015-05-18",
	"genres": [{"name": "RPG"}, {"name": "Action"}],
	"platforms": [{"platform": {"name": "PC"}}, {"platform": {"name": "PS4"}}],
	"publishers": [{"name": "CD PROJEKT RED"}],
	"developers": [{"name": "CD PROJEKT RED"}]
}`

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(config.RAWGConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
	})
	require.NoError(t, err)
	return client
}

func TestClient_Resolve(t *testing.T) {
	var searchQuery string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/games":
			searchQuery = r.URL.Query().Get("search")
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))
			assert.Equal(t, "1", r.URL.Query().Get("page_size"))
			w.Write([]byte(searchBody))
		case "/games/the-witcher-3":
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))
			w.Write([]byte(detailBody))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	game, err := client.Resolve(context.Background(), "witcher 3")
	require.NoError(t, err)

	assert.Equal(t, "witcher 3", searchQuery)
	assert.Equal(t, "The Witcher 3: Wild Hunt", game.Name)
	assert.Equal(t, 2015, game.Year())
	// Multi-valued fields use the catalog's pipe convention.
	assert.Equal(t, "RPG|Action", game.Genre)
	assert.Equal(t, "PC|PS4", game.Platform)
	assert.Equal(t, "CD PROJEKT RED", game.Publisher)
	assert.Equal(t, "CD PROJEKT RED", game.Developer)
}

func TestClient_Resolve_SearchMiss(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count": 0, "results": []}`))
	}))

	_, err := client.Resolve(context.Background(), "NonexistentTitle123")
	assert.ErrorIs(t, err, ports.ErrGameNotFound)
}

func TestClient_Resolve_DetailFailure(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/games" {
			w.Write([]byte(searchBody))
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))

	_, err := client.Resolve(context.Background(), "witcher 3")
	assert.ErrorIs(t, err, ports.ErrGameNotFound)
}

func TestClient_Resolve_MalformedPayload(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))

	_, err := client.Resolve(context.Background(), "witcher 3")
	assert.ErrorIs(t, err, ports.ErrGameNotFound)
}

func TestClient_Resolve_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client, err := NewClient(config.RAWGConfig{BaseURL: url, APIKey: "test-key"})
	require.NoError(t, err)

	_, err = client.Resolve(context.Background(), "anything")
	assert.ErrorIs(t, err, ports.ErrGameNotFound)
}

func TestClient_Resolve_UndatedDetail(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/games" {
			w.Write([]byte(searchBody))
			return
		}
		w.Write([]byte(`{"name": "Mystery Game", "released": ""}`))
	}))

	game, err := client.Resolve(context.Background(), "mystery")
	require.NoError(t, err)
	assert.False(t, game.HasReleaseDate())
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(config.RAWGConfig{})
	require.Error(t, err)
}
