package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"streamsphere/configs"
)

var ErrNoConfigsDb = errors.New("dynamic configs need the mongodb document store")

type IAdminRepository interface {
	FetchDbConfigs() error
}

type AdminRepository struct {
	mongodb *mongo.Database
}

func NewAdminRepository(mongodb *mongo.Database) *AdminRepository {
	return &AdminRepository{mongodb: mongodb}
}

//------------------------------------------
//------------------------------------------

func (r *AdminRepository) FetchDbConfigs() error {
	if r.mongodb == nil {
		return ErrNoConfigsDb
	}
	return configs.FetchMongoDbConfigs(r.mongodb)
}
