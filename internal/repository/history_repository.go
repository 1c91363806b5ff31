package repository

import (
	"context"

	"streamsphere/internal/docstore"
	"streamsphere/model"
)

type IHistoryRepository interface {
	GetViewingHistory(ctx context.Context, userId string) (*model.ViewingHistory, error)
	SaveViewingHistory(ctx context.Context, userId string, history *model.ViewingHistory) error
	GetSearchHistory(ctx context.Context, userId string) (*model.SearchHistory, error)
	SaveSearchHistory(ctx context.Context, userId string, history *model.SearchHistory) error
}

type HistoryRepository struct {
	store docstore.Store
}

func NewHistoryRepository(store docstore.Store) *HistoryRepository {
	return &HistoryRepository{store: store}
}

//------------------------------------------
//------------------------------------------

func (r *HistoryRepository) GetViewingHistory(ctx context.Context, userId string) (*model.ViewingHistory, error) {
	var history model.ViewingHistory
	err := r.store.Get(ctx, docstore.CollectionViewingHistory, userId, &history)
	if err != nil {
		return nil, err
	}
	return &history, nil
}

func (r *HistoryRepository) SaveViewingHistory(ctx context.Context, userId string, history *model.ViewingHistory) error {
	return r.store.Set(ctx, docstore.CollectionViewingHistory, userId, history)
}

func (r *HistoryRepository) GetSearchHistory(ctx context.Context, userId string) (*model.SearchHistory, error) {
	var history model.SearchHistory
	err := r.store.Get(ctx, docstore.CollectionSearchHistory, userId, &history)
	if err != nil {
		return nil, err
	}
	return &history, nil
}

func (r *HistoryRepository) SaveSearchHistory(ctx context.Context, userId string, history *model.SearchHistory) error {
	return r.store.Set(ctx, docstore.CollectionSearchHistory, userId, history)
}
