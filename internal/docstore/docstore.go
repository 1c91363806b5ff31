// Package docstore stores whole per-user documents keyed by collection and id.
// Backends: mongodb (default), firestore and an in-memory store.
package docstore

import (
	"context"
	"errors"
)

const (
	CollectionUsers               = "users"
	CollectionUserLists           = "userLists"
	CollectionUserRecommendations = "userRecommendations"
	CollectionViewingHistory      = "viewingHistory"
	CollectionSearchHistory       = "searchHistory"
)

var ErrNotFound = errors.New("docstore: document not found")

type Store interface {
	// Get decodes the document into dst, ErrNotFound when it does not exist.
	Get(ctx context.Context, collection string, id string, dst interface{}) error
	// Set creates or overwrites the document.
	Set(ctx context.Context, collection string, id string, doc interface{}) error
	// Merge updates top level fields of an existing document, ErrNotFound when it does not exist.
	Merge(ctx context.Context, collection string, id string, fields map[string]interface{}) error
	// FindIDs returns the ids of the documents whose field equals value.
	FindIDs(ctx context.Context, collection string, field string, value interface{}) ([]string, error)
}
