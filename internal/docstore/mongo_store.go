package docstore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore keeps every document under _id = id.
type MongoStore struct {
	mongodb *mongo.Database
}

func NewMongoStore(mongodb *mongo.Database) *MongoStore {
	return &MongoStore{mongodb: mongodb}
}

func (s *MongoStore) Get(ctx context.Context, collection string, id string, dst interface{}) error {
	err := s.mongodb.
		Collection(collection).
		FindOne(ctx, bson.D{{Key: "_id", Value: id}}).
		Decode(dst)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func (s *MongoStore) Set(ctx context.Context, collection string, id string, doc interface{}) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.mongodb.
		Collection(collection).
		ReplaceOne(ctx, bson.D{{Key: "_id", Value: id}}, doc, opts)
	return err
}

func (s *MongoStore) Merge(ctx context.Context, collection string, id string, fields map[string]interface{}) error {
	update := bson.D{{Key: "$set", Value: bson.M(fields)}}
	result, err := s.mongodb.
		Collection(collection).
		UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) FindIDs(ctx context.Context, collection string, field string, value interface{}) ([]string, error) {
	opts := options.Find().SetProjection(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.mongodb.
		Collection(collection).
		Find(ctx, bson.D{{Key: field, Value: value}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		Id string `bson:"_id"`
	}
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.Id)
	}
	return ids, nil
}
