package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sourcegraph/conc/iter"

	"streamsphere/configs"
	"streamsphere/model"
	errorHandler "streamsphere/pkg/error"
	"streamsphere/pkg/response"
	"streamsphere/pkg/tmdb"
)

type ICatalogService interface {
	GetPage(ctx context.Context, page string) (*model.CatalogPage, error)
	Discover(ctx context.Context, mediaType string, genreId int) ([]model.MediaItem, error)
	PlayMedia(ctx context.Context, session *model.Session, item model.MediaItem) (*model.PlayMediaRes, error)
}

type CatalogService struct {
	metadataClient tmdb.IClient
	historyService IHistoryService
}

var (
	ErrPageNotFound     = errors.New(response.PageNotFound)
	ErrTrailerNotFound  = errors.New(response.TrailerNotFound)
	ErrInvalidMediaType = errors.New(response.InvalidMediaType)
	ErrInvalidGenreId   = errors.New(response.InvalidGenreId)
)

// catalogRow is one named row of a page. An empty mediaType marks a mixed endpoint.
type catalogRow struct {
	key       string
	title     string
	endpoint  string
	mediaType string
}

const (
	CatalogPageHome   = "home"
	CatalogPageMovies = "movies"
	CatalogPageTv     = "tv"
)

var catalogPages = map[string][]catalogRow{
	CatalogPageHome: {
		{"trending", "Trending Now", "/trending/all/week", ""},
		{"newReleases", "New Releases", "/movie/now_playing", model.MediaTypeMovie},
		{"topRatedShows", "Top Rated TV Shows", "/tv/top_rated", model.MediaTypeTv},
		{"popularShows", "Popular Shows", "/tv/popular", model.MediaTypeTv},
		{"comedyMovies", "Comedy Movies", "/discover/movie?with_genres=35", model.MediaTypeMovie},
	},
	CatalogPageMovies: {
		{"popular", "Popular Movies", "/movie/popular", model.MediaTypeMovie},
		{"action", "Action Movies", "/discover/movie?with_genres=28", model.MediaTypeMovie},
		{"comedy", "Comedy Movies", "/discover/movie?with_genres=35", model.MediaTypeMovie},
		{"drama", "Drama Movies", "/discover/movie?with_genres=18", model.MediaTypeMovie},
		{"horror", "Horror Movies", "/discover/movie?with_genres=27", model.MediaTypeMovie},
	},
	CatalogPageTv: {
		{"popular", "Popular Series", "/tv/popular", model.MediaTypeTv},
		{"topRated", "Top Rated Series", "/tv/top_rated", model.MediaTypeTv},
		{"drama", "Drama Series", "/discover/tv?with_genres=18", model.MediaTypeTv},
		{"crime", "Crime Series", "/discover/tv?with_genres=80", model.MediaTypeTv},
		{"sciFi", "Sci-Fi & Fantasy", "/discover/tv?with_genres=10765", model.MediaTypeTv},
	},
}

func NewCatalogService(metadataClient tmdb.IClient, historyService IHistoryService) *CatalogService {
	return &CatalogService{
		metadataClient: metadataClient,
		historyService: historyService,
	}
}

//------------------------------------------
//------------------------------------------

// GetPage fetches every row of page concurrently. A row that fails is returned empty.
// The featured item is the first item of the first row.
func (m *CatalogService) GetPage(ctx context.Context, page string) (*model.CatalogPage, error) {
	rows, ok := catalogPages[page]
	if !ok {
		return nil, ErrPageNotFound
	}

	result := &model.CatalogPage{
		Page: page,
		Rows: iter.Map(rows, func(row *catalogRow) model.CatalogRow {
			return model.CatalogRow{
				Key:   row.key,
				Title: row.title,
				Items: m.fetchRow(ctx, row.endpoint, row.mediaType),
			}
		}),
	}
	if len(result.Rows) > 0 && len(result.Rows[0].Items) > 0 {
		featured := result.Rows[0].Items[0]
		result.Featured = &featured
	}
	return result, nil
}

func (m *CatalogService) Discover(ctx context.Context, mediaType string, genreId int) ([]model.MediaItem, error) {
	if !model.IsValidMediaType(mediaType) {
		return nil, ErrInvalidMediaType
	}
	if genreId <= 0 {
		return nil, ErrInvalidGenreId
	}
	endpoint := fmt.Sprintf("/discover/%s?with_genres=%d", mediaType, genreId)
	return m.fetchEndpoint(ctx, endpoint, mediaType)
}

// PlayMedia picks the first trailer or teaser of item and records the view for signed in users.
func (m *CatalogService) PlayMedia(ctx context.Context, session *model.Session, item model.MediaItem) (*model.PlayMediaRes, error) {
	if item.MediaType != model.MediaTypeTv {
		item.MediaType = model.MediaTypeMovie
	}
	videos, err := m.metadataClient.Videos(ctx, item.MediaType, item.Id)
	if err != nil {
		return nil, err
	}

	var trailer *tmdb.Video
	for i := range videos {
		if videos[i].Type == "Trailer" || videos[i].Type == "Teaser" {
			trailer = &videos[i]
			break
		}
	}
	if trailer == nil {
		return nil, ErrTrailerNotFound
	}

	if session.IsAuthenticated() {
		err = m.historyService.RecordView(ctx, session.UserId, item)
		if err != nil {
			errorMessage := fmt.Sprintf("Error updating viewing history: %v", err)
			errorHandler.SaveError(errorMessage, err)
		}
	}

	return &model.PlayMediaRes{
		Trailer: model.Trailer{
			Key:  trailer.Key,
			Name: trailer.Name,
			Site: trailer.Site,
			Type: trailer.Type,
			Url:  trailerUrl(trailer),
		},
		Media: item,
	}, nil
}

//------------------------------------------
//------------------------------------------

func (m *CatalogService) fetchRow(ctx context.Context, endpoint string, mediaType string) []model.MediaItem {
	items, err := m.fetchEndpoint(ctx, endpoint, mediaType)
	if err != nil {
		errorMessage := fmt.Sprintf("Error fetching catalog row %s: %v", endpoint, err)
		errorHandler.SaveError(errorMessage, err)
		return []model.MediaItem{}
	}
	return items
}

func (m *CatalogService) fetchEndpoint(ctx context.Context, endpoint string, mediaType string) ([]model.MediaItem, error) {
	if items, ok := getCatalogRowCache(ctx, endpoint); ok {
		return items, nil
	}
	results, err := m.metadataClient.List(ctx, endpoint, nil)
	if err != nil {
		return nil, err
	}
	items := tmdb.FormatMediaItems(results, mediaType)
	setCatalogRowCache(ctx, endpoint, items, configs.GetDbConfigs().GetCatalogCacheDuration())
	return items, nil
}

func trailerUrl(video *tmdb.Video) string {
	if video.Site == "YouTube" {
		return "https://www.youtube.com/watch?v=" + video.Key
	}
	return ""
}
