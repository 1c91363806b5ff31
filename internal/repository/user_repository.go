package repository

import (
	"context"

	"streamsphere/internal/docstore"
	"streamsphere/model"
)

type IUserRepository interface {
	GetProfile(ctx context.Context, userId string) (*model.UserProfile, error)
	SaveProfile(ctx context.Context, userId string, profile *model.UserProfile) error
	UpdateProfileFields(ctx context.Context, userId string, fields map[string]interface{}) error
	FindUserIdsByUsername(ctx context.Context, username string) ([]string, error)
}

type UserRepository struct {
	store docstore.Store
}

func NewUserRepository(store docstore.Store) *UserRepository {
	return &UserRepository{store: store}
}

//------------------------------------------
//------------------------------------------

func (r *UserRepository) GetProfile(ctx context.Context, userId string) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := r.store.Get(ctx, docstore.CollectionUsers, userId, &profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *UserRepository) SaveProfile(ctx context.Context, userId string, profile *model.UserProfile) error {
	return r.store.Set(ctx, docstore.CollectionUsers, userId, profile)
}

func (r *UserRepository) UpdateProfileFields(ctx context.Context, userId string, fields map[string]interface{}) error {
	return r.store.Merge(ctx, docstore.CollectionUsers, userId, fields)
}

func (r *UserRepository) FindUserIdsByUsername(ctx context.Context, username string) ([]string, error) {
	return r.store.FindIDs(ctx, docstore.CollectionUsers, "username", username)
}
