package docstore

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
)

// MemoryStore keeps bson encoded documents in process, decoding follows the same
// bson tags as the mongo backend.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]map[string]bson.Raw
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]map[string]bson.Raw)}
}

func (s *MemoryStore) Get(_ context.Context, collection string, id string, dst interface{}) error {
	s.mu.RLock()
	raw, ok := s.docs[collection][id]
	s.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	return bson.Unmarshal(raw, dst)
}

func (s *MemoryStore) Set(_ context.Context, collection string, id string, doc interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(collection, id, raw)
	return nil
}

func (s *MemoryStore) Merge(_ context.Context, collection string, id string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.docs[collection][id]
	if !ok {
		return ErrNotFound
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return err
	}
	for k, v := range fields {
		doc[k] = v
	}
	merged, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	s.put(collection, id, merged)
	return nil
}

func (s *MemoryStore) FindIDs(_ context.Context, collection string, field string, value interface{}) ([]string, error) {
	typ, want, err := bson.MarshalValue(value)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ids []string
	for id, raw := range s.docs[collection] {
		v, err := raw.LookupErr(field)
		if err != nil {
			continue
		}
		if v.Type == typ && string(v.Value) == string(want) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *MemoryStore) put(collection string, id string, raw bson.Raw) {
	if s.docs[collection] == nil {
		s.docs[collection] = make(map[string]bson.Raw)
	}
	s.docs[collection][id] = raw
}
