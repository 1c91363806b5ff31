package repository

import (
	"context"

	"streamsphere/internal/docstore"
	"streamsphere/model"
)

type IRecommendationRepository interface {
	GetRecommendations(ctx context.Context, userId string) (*model.UserRecommendations, error)
	SaveRecommendations(ctx context.Context, userId string, recs *model.UserRecommendations) error
}

type RecommendationRepository struct {
	store docstore.Store
}

func NewRecommendationRepository(store docstore.Store) *RecommendationRepository {
	return &RecommendationRepository{store: store}
}

//------------------------------------------
//------------------------------------------

func (r *RecommendationRepository) GetRecommendations(ctx context.Context, userId string) (*model.UserRecommendations, error) {
	var recs model.UserRecommendations
	err := r.store.Get(ctx, docstore.CollectionUserRecommendations, userId, &recs)
	if err != nil {
		return nil, err
	}
	return &recs, nil
}

func (r *RecommendationRepository) SaveRecommendations(ctx context.Context, userId string, recs *model.UserRecommendations) error {
	return r.store.Set(ctx, docstore.CollectionUserRecommendations, userId, recs)
}
