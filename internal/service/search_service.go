package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"streamsphere/configs"
	"streamsphere/model"
	errorHandler "streamsphere/pkg/error"
	"streamsphere/pkg/tmdb"
)

type ISearchService interface {
	Search(ctx context.Context, session *model.Session, query string) *model.SearchRes
}

type SearchService struct {
	metadataClient tmdb.IClient
	historyService IHistoryService
}

const (
	searchMinLength        = 3
	searchHistoryMinLength = 4
)

func NewSearchService(metadataClient tmdb.IClient, historyService IHistoryService) *SearchService {
	return &SearchService{
		metadataClient: metadataClient,
		historyService: historyService,
	}
}

//------------------------------------------
//------------------------------------------

// Search returns movie matches followed by tv matches. Queries shorter than three
// characters return nothing without calling the metadata api.
func (m *SearchService) Search(ctx context.Context, session *model.Session, query string) *model.SearchRes {
	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < searchMinLength {
		return &model.SearchRes{Query: query, Results: []model.MediaItem{}, Show: false}
	}

	limit := configs.GetDbConfigs().GetSearchResultLimit()
	movies := m.searchKind(ctx, model.MediaTypeMovie, query, limit)
	shows := m.searchKind(ctx, model.MediaTypeTv, query, limit)

	results := make([]model.MediaItem, 0, len(movies)+len(shows))
	results = append(results, movies...)
	results = append(results, shows...)

	if session.IsAuthenticated() && utf8.RuneCountInString(trimmed) >= searchHistoryMinLength {
		err := m.historyService.RecordSearch(ctx, session.UserId, query, len(results))
		if err != nil {
			errorMessage := fmt.Sprintf("Error updating search history: %v", err)
			errorHandler.SaveError(errorMessage, err)
		}
	}

	return &model.SearchRes{Query: query, Results: results, Show: true}
}

func (m *SearchService) searchKind(ctx context.Context, mediaType string, query string, limit int) []model.MediaItem {
	results, err := m.metadataClient.Search(ctx, mediaType, query)
	if err != nil {
		errorMessage := fmt.Sprintf("Error searching %s: %v", mediaType, err)
		errorHandler.SaveError(errorMessage, err)
		return nil
	}
	if len(results) > limit {
		results = results[:limit]
	}
	return tmdb.FormatMediaItems(results, mediaType)
}
