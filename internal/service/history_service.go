package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"streamsphere/configs"
	"streamsphere/internal/docstore"
	"streamsphere/internal/repository"
	"streamsphere/model"
	errorHandler "streamsphere/pkg/error"
)

type IHistoryService interface {
	RecordView(ctx context.Context, userId string, item model.MediaItem) error
	GetViewingHistory(ctx context.Context, userId string) []model.ViewingHistoryItem
	RecordSearch(ctx context.Context, userId string, query string, resultCount int) error
	GetSearchHistory(ctx context.Context, userId string) []model.SearchHistoryItem
}

type HistoryService struct {
	historyRepo repository.IHistoryRepository
	locks       *keyedMutex
	now         func() time.Time
}

func NewHistoryService(historyRepo repository.IHistoryRepository) *HistoryService {
	return &HistoryService{
		historyRepo: historyRepo,
		locks:       newKeyedMutex(),
		now:         time.Now,
	}
}

//------------------------------------------
//------------------------------------------

func (m *HistoryService) RecordView(ctx context.Context, userId string, item model.MediaItem) error {
	unlock := m.locks.Lock("view:" + userId)
	defer unlock()

	history, err := m.historyRepo.GetViewingHistory(ctx, userId)
	if err != nil {
		if !errors.Is(err, docstore.ErrNotFound) {
			return err
		}
		history = &model.ViewingHistory{}
	}

	entry := model.ViewingHistoryItem{
		Id:        item.Id,
		Title:     item.Title,
		MediaType: item.MediaType,
		Image:     item.Image,
		WatchedAt: m.now(),
	}
	history.Items = prependCapped(history.Items, entry, configs.GetDbConfigs().GetViewingHistoryLimit())
	return m.historyRepo.SaveViewingHistory(ctx, userId, history)
}

func (m *HistoryService) GetViewingHistory(ctx context.Context, userId string) []model.ViewingHistoryItem {
	history, err := m.historyRepo.GetViewingHistory(ctx, userId)
	if err != nil {
		if !errors.Is(err, docstore.ErrNotFound) {
			errorMessage := fmt.Sprintf("Error fetching viewing history: %v", err)
			errorHandler.SaveError(errorMessage, err)
		}
		return []model.ViewingHistoryItem{}
	}
	if history.Items == nil {
		return []model.ViewingHistoryItem{}
	}
	return history.Items
}

//------------------------------------------
//------------------------------------------

func (m *HistoryService) RecordSearch(ctx context.Context, userId string, query string, resultCount int) error {
	unlock := m.locks.Lock("search:" + userId)
	defer unlock()

	history, err := m.historyRepo.GetSearchHistory(ctx, userId)
	if err != nil {
		if !errors.Is(err, docstore.ErrNotFound) {
			return err
		}
		history = &model.SearchHistory{}
	}

	entry := model.SearchHistoryItem{
		Query:       query,
		Timestamp:   m.now(),
		ResultCount: resultCount,
	}
	history.Items = prependCapped(history.Items, entry, configs.GetDbConfigs().GetSearchHistoryLimit())
	return m.historyRepo.SaveSearchHistory(ctx, userId, history)
}

func (m *HistoryService) GetSearchHistory(ctx context.Context, userId string) []model.SearchHistoryItem {
	history, err := m.historyRepo.GetSearchHistory(ctx, userId)
	if err != nil {
		if !errors.Is(err, docstore.ErrNotFound) {
			errorMessage := fmt.Sprintf("Error fetching search history: %v", err)
			errorHandler.SaveError(errorMessage, err)
		}
		return []model.SearchHistoryItem{}
	}
	if history.Items == nil {
		return []model.SearchHistoryItem{}
	}
	return history.Items
}

//------------------------------------------
//------------------------------------------

func prependCapped[T any](items []T, item T, limit int) []T {
	result := make([]T, 0, len(items)+1)
	result = append(result, item)
	result = append(result, items...)
	if len(result) > limit {
		result = result[:limit]
	}
	return result
}
