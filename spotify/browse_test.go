package spotify

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeaturedPlaylists(t *testing.T) {
	var gotQuery url.Values
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/browse/featured-playlists", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Write([]byte(`{
			"message": "Editor's picks",
			"playlists": {
				"href": "h", "limit": 2, "offset": 0, "total": 10,
				"items": [
					{"id": "p1", "name": "Morning Mix", "tracks": {"total": 50}},
					{"id": "p2", "name": "Focus", "tracks": {"total": 80}}
				]
			}
		}`))
	})

	featured, err := c.FeaturedPlaylists(context.Background(),
		WithCountry("FI"), WithLocale("fi_FI"), WithLimit(2))
	require.NoError(t, err)

	assert.Equal(t, "Editor's picks", featured.Message)
	assert.Equal(t, "FI", gotQuery.Get("country"))
	assert.Equal(t, "fi_FI", gotQuery.Get("locale"))
	assert.Equal(t, "2", gotQuery.Get("limit"))
	require.Len(t, featured.Playlists.Items, 2)
	assert.Equal(t, "Morning Mix", featured.Playlists.Items[0].Name)
	assert.Equal(t, 50, featured.Playlists.Items[0].Tracks.Total)
}

func TestNewReleases(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/browse/new-releases", r.URL.Path)
		w.Write([]byte(`{
			"message": "New this week",
			"albums": {
				"total": 1,
				"items": [{"id": "a1", "name": "Album One", "release_date": "2026-08-21",
					"artists": [{"id": "ar1", "name": "Artist"}]}]
			}
		}`))
	})

	releases, err := c.NewReleases(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "New this week", releases.Message)
	require.Len(t, releases.Albums.Items, 1)
	assert.Equal(t, "Album One", releases.Albums.Items[0].Name)
	assert.Equal(t, "Artist", releases.Albums.Items[0].Artists[0].Name)
}

func TestCategories(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/browse/categories", r.URL.Path)
		w.Write([]byte(`{
			"categories": {
				"total": 2,
				"items": [
					{"id": "toplists", "name": "Top Lists"},
					{"id": "mood", "name": "Mood"}
				]
			}
		}`))
	})

	categories, err := c.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories.Items, 2)
	assert.Equal(t, "toplists", categories.Items[0].ID)
	assert.Equal(t, 2, categories.Total)
}

func TestCategory(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/browse/categories/mood", r.URL.Path)
		w.Write([]byte(`{"id": "mood", "name": "Mood", "icons": [{"url": "http://img"}]}`))
	})

	cat, err := c.Category(context.Background(), "mood")
	require.NoError(t, err)
	assert.Equal(t, "Mood", cat.Name)
	require.Len(t, cat.Icons, 1)
}

func TestCategoryPlaylists(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/browse/categories/mood/playlists", r.URL.Path)
		w.Write([]byte(`{"playlists": {"total": 1, "items": [{"id": "p1", "name": "Chill"}]}}`))
	})

	playlists, err := c.CategoryPlaylists(context.Background(), "mood")
	require.NoError(t, err)
	require.Len(t, playlists.Items, 1)
	assert.Equal(t, "Chill", playlists.Items[0].Name)
}

func TestRecommendations(t *testing.T) {
	var gotQuery url.Values
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recommendations", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Write([]byte(`{
			"seeds": [{"id": "ar1", "type": "artist", "initialPoolSize": 250}],
			"tracks": [{"id": "t1", "name": "Recommended"}]
		}`))
	})

	recs, err := c.Recommendations(context.Background(),
		Seeds{Artists: []string{"ar1", "ar2"}, Genres: []string{"ambient"}},
		TrackAttributes{"min_energy": 0.4, "target_tempo": 120},
		WithLimit(10), WithMarket("from_token"),
	)
	require.NoError(t, err)

	assert.Equal(t, "ar1,ar2", gotQuery.Get("seed_artists"))
	assert.Equal(t, "ambient", gotQuery.Get("seed_genres"))
	assert.Empty(t, gotQuery.Get("seed_tracks"))
	assert.Equal(t, "0.4", gotQuery.Get("min_energy"))
	assert.Equal(t, "120", gotQuery.Get("target_tempo"))
	assert.Equal(t, "from_token", gotQuery.Get("market"))

	require.Len(t, recs.Tracks, 1)
	assert.Equal(t, "Recommended", recs.Tracks[0].Name)
	require.Len(t, recs.Seeds, 1)
	assert.Equal(t, 250, recs.Seeds[0].InitialPoolSize)
}

func TestRecommendationsRequiresSeeds(t *testing.T) {
	c := New(StaticToken("t"))

	_, err := c.Recommendations(context.Background(), Seeds{}, nil)
	assert.Error(t, err)
}

func TestRecommendationsRejectsUnknownAttributes(t *testing.T) {
	c := New(StaticToken("t"))
	seeds := Seeds{Genres: []string{"ambient"}}

	tests := []string{"min_volume", "avg_energy", "energy", "target_", "max"}
	for _, attr := range tests {
		t.Run(attr, func(t *testing.T) {
			_, err := c.Recommendations(context.Background(), seeds, TrackAttributes{attr: 1})
			assert.Error(t, err)
		})
	}
}

func TestRecommendationsAcceptsUnderscoreAttributes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "50000", r.URL.Query().Get("max_duration_ms"))
		assert.Equal(t, "4", r.URL.Query().Get("target_time_signature"))
		w.Write([]byte(`{"seeds": [], "tracks": []}`))
	})

	_, err := c.Recommendations(context.Background(),
		Seeds{Tracks: []string{"t1"}},
		TrackAttributes{"max_duration_ms": 50000, "target_time_signature": 4},
	)
	require.NoError(t, err)
}

func TestRecommendationGenreSeeds(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recommendations/available-genre-seeds", r.URL.Path)
		w.Write([]byte(`{"genres": ["acoustic", "ambient", "blues"]}`))
	})

	genres, err := c.RecommendationGenreSeeds(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"acoustic", "ambient", "blues"}, genres)
}
