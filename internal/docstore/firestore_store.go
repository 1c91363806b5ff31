package docstore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) Get(ctx context.Context, collection string, id string, dst interface{}) error {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		return mapFirestoreError(err)
	}
	return snap.DataTo(dst)
}

func (s *FirestoreStore) Set(ctx context.Context, collection string, id string, doc interface{}) error {
	_, err := s.client.Collection(collection).Doc(id).Set(ctx, doc)
	return err
}

func (s *FirestoreStore) Merge(ctx context.Context, collection string, id string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	_, err := s.client.Collection(collection).Doc(id).Update(ctx, updates)
	return mapFirestoreError(err)
}

func (s *FirestoreStore) FindIDs(ctx context.Context, collection string, field string, value interface{}) ([]string, error) {
	snaps, err := s.client.Collection(collection).Where(field, "==", value).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(snaps))
	for _, snap := range snaps {
		ids = append(ids, snap.Ref.ID)
	}
	return ids, nil
}

func mapFirestoreError(err error) error {
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return err
}
