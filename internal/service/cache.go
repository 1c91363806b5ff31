package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"streamsphere/db/redis"
	"streamsphere/model"
	errorHandler "streamsphere/pkg/error"
)

const (
	jwtDataCachePrefix        = "jwtKey:"
	myListCachePrefix         = "myList:"
	catalogCachePrefix        = "catalog:"
	recommendationCachePrefix = "recs:"
)

//------------------------------------------
//------------------------------------------

func IsJwtBlacklisted(ctx context.Context, token string) bool {
	result, err := redis.GetRedis(ctx, jwtDataCachePrefix+token)
	return err == nil && result != ""
}

func setJwtDataCache(ctx context.Context, token string, value string, duration time.Duration) error {
	err := redis.SetRedis(ctx, jwtDataCachePrefix+token, value, duration)
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on saving jwt: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
	return err
}

//------------------------------------------
//------------------------------------------

// getLocalList returns the list kept for a device or user, nil when nothing is stored.
func getLocalList(ctx context.Context, key string) ([]model.MediaItem, error) {
	result, err := redis.GetRedis(ctx, myListCachePrefix+key)
	if err != nil {
		if redis.IsNil(err) {
			return nil, nil
		}
		return nil, err
	}
	var items []model.MediaItem
	if err = json.Unmarshal([]byte(result), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func setLocalList(ctx context.Context, key string, items []model.MediaItem) error {
	jsonData, err := json.Marshal(items)
	if err != nil {
		return err
	}
	err = redis.SetRedis(ctx, myListCachePrefix+key, jsonData, 0)
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on saving myList: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
	return err
}

//------------------------------------------
//------------------------------------------

func getCatalogRowCache(ctx context.Context, endpoint string) ([]model.MediaItem, bool) {
	result, err := redis.GetRedis(ctx, catalogCachePrefix+endpoint)
	if err != nil || result == "" {
		return nil, false
	}
	var row model.CachedCatalogRow
	if err = json.Unmarshal([]byte(result), &row); err != nil {
		return nil, false
	}
	return row.Items, true
}

func setCatalogRowCache(ctx context.Context, endpoint string, items []model.MediaItem, duration time.Duration) {
	jsonData, err := json.Marshal(model.CachedCatalogRow{
		Endpoint: endpoint,
		Items:    items,
		CachedAt: time.Now(),
	})
	if err != nil {
		return
	}
	err = redis.SetRedis(ctx, catalogCachePrefix+endpoint, jsonData, duration)
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on saving catalog row: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
}

//------------------------------------------
//------------------------------------------

func getCachedRecommendations(ctx context.Context, key string) (*model.UserRecommendations, error) {
	result, err := redis.GetRedis(ctx, recommendationCachePrefix+key)
	if err != nil {
		if redis.IsNil(err) {
			return nil, nil
		}
		return nil, err
	}
	var recs model.UserRecommendations
	if err = json.Unmarshal([]byte(result), &recs); err != nil {
		return nil, err
	}
	return &recs, nil
}

func setCachedRecommendations(ctx context.Context, key string, recs *model.UserRecommendations, duration time.Duration) error {
	jsonData, err := json.Marshal(recs)
	if err != nil {
		return err
	}
	err = redis.SetRedis(ctx, recommendationCachePrefix+key, jsonData, duration)
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on saving recommendations: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
	return err
}
