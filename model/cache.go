package model

import "time"

type CachedCatalogRow struct {
	Endpoint string      `json:"endpoint"`
	Items    []MediaItem `json:"items"`
	CachedAt time.Time   `json:"cachedAt"`
}
