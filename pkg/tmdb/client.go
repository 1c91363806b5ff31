// Package tmdb is a small client of The Movie Database v3 api.
//
// Only the read endpoints the catalog needs are wrapped: lists (trending, popular,
// discover...), search and videos. The api key is sent as the api_key query param.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"streamsphere/model"
	"streamsphere/pkg/metrics"
)

const DefaultBaseURL = "https://api.themoviedb.org/3"

var ErrMissingApiKey = errors.New("tmdb: TMDB_API_KEY is not set")

type IClient interface {
	List(ctx context.Context, endpoint string, query url.Values) ([]Result, error)
	Search(ctx context.Context, mediaType string, query string) ([]Result, error)
	Videos(ctx context.Context, mediaType string, id int) ([]Video, error)
}

// Result is an entry of a paged tmdb response. Movies carry title, shows carry name.
type Result struct {
	Id           int     `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	MediaType    string  `json:"media_type"`
	Adult        bool    `json:"adult"`
	GenreIds     []int   `json:"genre_ids"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
}

type Video struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}

type pagedResponse[T any] struct {
	Page    int `json:"page"`
	Results []T `json:"results"`
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

//------------------------------------------
//------------------------------------------

// List fetches an endpoint that may already carry its own query, e.g. "/discover/movie?with_genres=35".
func (c *Client) List(ctx context.Context, endpoint string, query url.Values) ([]Result, error) {
	var res pagedResponse[Result]
	err := c.get(ctx, "list", endpoint, query, &res)
	if err != nil {
		return nil, err
	}
	return res.Results, nil
}

func (c *Client) Search(ctx context.Context, mediaType string, query string) ([]Result, error) {
	if !model.IsValidMediaType(mediaType) {
		return nil, fmt.Errorf("tmdb: invalid media type %q", mediaType)
	}
	q := url.Values{}
	q.Set("query", query)
	q.Set("page", "1")

	var res pagedResponse[Result]
	err := c.get(ctx, "search", "/search/"+mediaType, q, &res)
	if err != nil {
		return nil, err
	}
	return res.Results, nil
}

func (c *Client) Videos(ctx context.Context, mediaType string, id int) ([]Video, error) {
	if mediaType != model.MediaTypeTv {
		mediaType = model.MediaTypeMovie
	}
	var res pagedResponse[Video]
	err := c.get(ctx, "videos", "/"+mediaType+"/"+strconv.Itoa(id)+"/videos", nil, &res)
	if err != nil {
		return nil, err
	}
	return res.Results, nil
}

//------------------------------------------
//------------------------------------------

func (c *Client) get(ctx context.Context, kind string, endpoint string, extra url.Values, dst interface{}) (err error) {
	defer func() {
		metrics.MetadataRequests.WithLabelValues(kind, metrics.Result(err)).Inc()
	}()

	if c.apiKey == "" {
		return ErrMissingApiKey
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("tmdb: parse endpoint %q: %w", endpoint, err)
	}
	q := u.Query()
	for k, vs := range extra {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+u.Path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("tmdb: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb: request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return errors.New("tmdb: invalid API key, check TMDB_API_KEY")
	case http.StatusTooManyRequests:
		return errors.New("tmdb: rate limited, slow down requests")
	default:
		return fmt.Errorf("tmdb: HTTP %d for %s", resp.StatusCode, u.Path)
	}

	if err = json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("tmdb: decode response: %w", err)
	}
	return nil
}
