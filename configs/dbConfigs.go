package configs

import (
	"context"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"streamsphere/pkg/logging"
)

type DbConfigData struct {
	Id                     primitive.ObjectID `bson:"_id"`
	Title                  string             `bson:"title"`
	CorsAllowedOrigins     []string           `bson:"corsAllowedOrigins"`
	DisableRecommendations bool               `bson:"disableRecommendations"`
	RecommendationCount    int                `bson:"recommendationCount"`
	RecommendationTtlHours int                `bson:"recommendationTtlHours"`
	ViewingHistoryLimit    int                `bson:"viewingHistoryLimit"`
	SearchHistoryLimit     int                `bson:"searchHistoryLimit"`
	SearchResultLimit      int                `bson:"searchResultLimit"`
	CatalogCacheMinutes    int                `bson:"catalogCacheMinutes"`
	RefreshQueueCapacity   int                `bson:"refreshQueueCapacity"`
}

const (
	defaultRecommendationCount    = 8
	defaultRecommendationTtlHours = 24
	defaultViewingHistoryLimit    = 50
	defaultSearchHistoryLimit     = 20
	defaultSearchResultLimit      = 5
	defaultCatalogCacheMinutes    = 30
	defaultRefreshQueueCapacity   = 1000
)

var rwm sync.RWMutex
var dbConfigs DbConfigData

func GetDbConfigs() DbConfigData {
	rwm.RLock()
	defer rwm.RUnlock()
	return dbConfigs
}

// SetDbConfigs replaces the dynamic configs, used when no mongodb is available.
func SetDbConfigs(data DbConfigData) {
	rwm.Lock()
	defer rwm.Unlock()
	dbConfigs = data
}

func LoadDbConfigs(mongodb *mongo.Database) {
	tick := time.NewTicker(15 * time.Minute)
	defer tick.Stop()
	_ = FetchMongoDbConfigs(mongodb)
	for range tick.C {
		_ = FetchMongoDbConfigs(mongodb)
	}
}

func FetchMongoDbConfigs(mongodb *mongo.Database) error {
	var data DbConfigData
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := mongodb.
		Collection("configs").
		FindOne(ctx, bson.D{{Key: "title", Value: "server configs"}}).
		Decode(&data)
	if err != nil {
		if configs.PrintErrors {
			logging.Log.WithError(err).Error("could not get dbConfig from mongodb")
		}
		sentry.CaptureException(err)
		return err
	}
	SetDbConfigs(data)
	return nil
}

//------------------------------------------
//------------------------------------------

func (d DbConfigData) GetRecommendationCount() int {
	return positiveOr(d.RecommendationCount, defaultRecommendationCount)
}

func (d DbConfigData) GetRecommendationTtl() time.Duration {
	return time.Duration(positiveOr(d.RecommendationTtlHours, defaultRecommendationTtlHours)) * time.Hour
}

func (d DbConfigData) GetViewingHistoryLimit() int {
	return positiveOr(d.ViewingHistoryLimit, defaultViewingHistoryLimit)
}

func (d DbConfigData) GetSearchHistoryLimit() int {
	return positiveOr(d.SearchHistoryLimit, defaultSearchHistoryLimit)
}

func (d DbConfigData) GetSearchResultLimit() int {
	return positiveOr(d.SearchResultLimit, defaultSearchResultLimit)
}

func (d DbConfigData) GetCatalogCacheDuration() time.Duration {
	return time.Duration(positiveOr(d.CatalogCacheMinutes, defaultCatalogCacheMinutes)) * time.Minute
}

func (d DbConfigData) GetRefreshQueueCapacity() int {
	return positiveOr(d.RefreshQueueCapacity, defaultRefreshQueueCapacity)
}

func positiveOr(v int, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}
