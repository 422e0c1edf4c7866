package spotify

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andsko/chorus/model"
)

func TestNextPage(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/albums/a1/tracks":
			fmt.Fprintf(w, `{
				"total": 3, "limit": 2, "offset": 0,
				"next": "%s/albums/a1/tracks?offset=2&limit=2",
				"items": [{"id": "t1"}, {"id": "t2"}]
			}`, srv.URL)
		default:
			assert.Equal(t, "2", r.URL.Query().Get("offset"))
			w.Write([]byte(`{"total": 3, "limit": 2, "offset": 2, "items": [{"id": "t3"}]}`))
		}
	}))
	t.Cleanup(srv.Close)
	c := New(StaticToken("t"), WithBaseURL(srv.URL))

	first, err := c.AlbumTracks(context.Background(), "a1", WithLimit(2))
	require.NoError(t, err)
	require.Len(t, first.Items, 2)

	second, err := NextPage(context.Background(), c, *first)
	require.NoError(t, err)
	require.Len(t, second.Items, 1)
	assert.Equal(t, "t3", second.Items[0].ID)
	assert.Equal(t, 2, second.Offset)
}

func TestNextPageExhausted(t *testing.T) {
	c := New(StaticToken("t"))

	_, err := NextPage(context.Background(), c, model.Paging[model.SimpleTrack]{})
	assert.ErrorIs(t, err, ErrPageExhausted)
}

func TestPreviousPageExhausted(t *testing.T) {
	c := New(StaticToken("t"))

	_, err := PreviousPage(context.Background(), c, model.Paging[model.SimpleAlbum]{Offset: 0})
	assert.ErrorIs(t, err, ErrPageExhausted)
}

func TestNextPageUnwrapsEnvelope(t *testing.T) {
	// Browse page URLs return the paging wrapped in a keyed object,
	// sometimes alongside scalar fields like "message".
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/browse/new-releases":
			fmt.Fprintf(w, `{
				"message": "Fresh",
				"albums": {
					"total": 2, "limit": 1, "offset": 0,
					"next": "%s/browse/new-releases?offset=1&limit=1",
					"items": [{"id": "a1"}]
				}
			}`, srv.URL)
		default:
			w.Write([]byte(`{
				"message": "Fresh",
				"albums": {"total": 2, "limit": 1, "offset": 1, "items": [{"id": "a2"}]}
			}`))
		}
	}))
	t.Cleanup(srv.Close)
	c := New(StaticToken("t"), WithBaseURL(srv.URL))

	releases, err := c.NewReleases(context.Background(), WithLimit(1))
	require.NoError(t, err)

	next, err := NextPage(context.Background(), c, releases.Albums)
	require.NoError(t, err)
	require.Len(t, next.Items, 1)
	assert.Equal(t, "a2", next.Items[0].ID)
}

func TestUnwrapPaging(t *testing.T) {
	t.Run("direct", func(t *testing.T) {
		var p model.Paging[model.SimpleTrack]
		err := unwrapPaging([]byte(`{"total": 1, "items": [{"id": "t1"}]}`), &p)
		require.NoError(t, err)
		assert.Equal(t, "t1", p.Items[0].ID)
	})

	t.Run("wrapped", func(t *testing.T) {
		var p model.Paging[model.SimpleAlbum]
		err := unwrapPaging([]byte(`{"albums": {"total": 1, "items": [{"id": "a1"}]}}`), &p)
		require.NoError(t, err)
		assert.Equal(t, "a1", p.Items[0].ID)
	})

	t.Run("ambiguous", func(t *testing.T) {
		var p model.Paging[model.SimpleAlbum]
		err := unwrapPaging([]byte(`{
			"albums": {"items": []},
			"tracks": {"items": []}
		}`), &p)
		assert.Error(t, err)
	})

	t.Run("none", func(t *testing.T) {
		var p model.Paging[model.SimpleAlbum]
		err := unwrapPaging([]byte(`{"message": "hi"}`), &p)
		assert.Error(t, err)
	})
}
