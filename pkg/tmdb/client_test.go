package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient("test-key", WithBaseURL(srv.URL))
}

func TestListMergesEndpointQuery(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"page":1,"results":[{"id":1,"title":"One"},{"id":2,"title":"Two"}]}`))
	})

	results, err := client.List(context.Background(), "/discover/movie?with_genres=35", url.Values{"page": {"2"}})
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, "/discover/movie", gotPath)
	assert.Equal(t, "35", gotQuery.Get("with_genres"))
	assert.Equal(t, "2", gotQuery.Get("page"))
	assert.Equal(t, "test-key", gotQuery.Get("api_key"))
}

func TestSearch(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/tv", r.URL.Path)
		assert.Equal(t, "breaking bad", r.URL.Query().Get("query"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		_, _ = w.Write([]byte(`{"results":[{"id":1396,"name":"Breaking Bad","genre_ids":[18]}]}`))
	})

	results, err := client.Search(context.Background(), "tv", "breaking bad")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Breaking Bad", results[0].Name)
	assert.Equal(t, []int{18}, results[0].GenreIds)

	_, err = client.Search(context.Background(), "person", "x")
	assert.Error(t, err)
}

func TestVideos(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/550/videos", r.URL.Path)
		_, _ = w.Write([]byte(`{"results":[{"key":"abc","type":"Featurette","site":"YouTube"},{"key":"def","type":"Trailer","site":"YouTube"}]}`))
	})

	videos, err := client.Videos(context.Background(), "movie", 550)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "Trailer", videos[1].Type)
}

func TestErrorStatuses(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusUnauthorized, "tmdb: invalid API key"},
		{http.StatusTooManyRequests, "tmdb: rate limited"},
		{http.StatusInternalServerError, "tmdb: HTTP 500"},
	}
	for _, tt := range tests {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		})
		_, err := client.List(context.Background(), "/movie/popular", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), tt.want)
	}
}

func TestMissingApiKey(t *testing.T) {
	client := NewClient("")
	_, err := client.List(context.Background(), "/movie/popular", nil)
	assert.ErrorIs(t, err, ErrMissingApiKey)
}
