package repository

import (
	"context"

	"streamsphere/internal/docstore"
	"streamsphere/model"
)

type IListRepository interface {
	GetList(ctx context.Context, userId string) (*model.UserList, error)
	SaveList(ctx context.Context, userId string, list *model.UserList) error
}

type ListRepository struct {
	store docstore.Store
}

func NewListRepository(store docstore.Store) *ListRepository {
	return &ListRepository{store: store}
}

//------------------------------------------
//------------------------------------------

func (r *ListRepository) GetList(ctx context.Context, userId string) (*model.UserList, error) {
	var list model.UserList
	err := r.store.Get(ctx, docstore.CollectionUserLists, userId, &list)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *ListRepository) SaveList(ctx context.Context, userId string, list *model.UserList) error {
	return r.store.Set(ctx, docstore.CollectionUserLists, userId, list)
}
