package redis

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"streamsphere/configs"
	"streamsphere/pkg/logging"
)

// IStore is the key-value surface the services use. Misses are reported as redis.Nil.
type IStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, duration time.Duration) error
}

var (
	storeMu sync.RWMutex
	store   IStore = NewMemoryStore()
)

func UseStore(s IStore) {
	storeMu.Lock()
	defer storeMu.Unlock()
	store = s
}

func getStore() IStore {
	storeMu.RLock()
	defer storeMu.RUnlock()
	return store
}

// ConnectRedis switches the package store to redis. Without REDIS_URL the in-memory store stays in use.
func ConnectRedis() {
	if configs.GetConfigs().RedisUrl == "" {
		logging.Log.Warn("REDIS_URL is not set, using in-memory store")
		return
	}
	time.Sleep(time.Duration(configs.GetConfigs().WaitForRedisConnectionSec) * time.Second)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     configs.GetConfigs().RedisUrl,
		Password: configs.GetConfigs().RedisPassword,
		DB:       0,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pong, err := redisClient.Ping(ctx).Result()
	if err != nil {
		logging.Log.WithError(err).Error("redis ping failed, using in-memory store")
		return
	}
	logging.Log.WithField("pong", pong).Info("connected to redis")
	UseStore(&Client{client: redisClient})
}

func GetRedis(ctx context.Context, key string) (string, error) {
	return getStore().Get(ctx, key)
}

func SetRedis(ctx context.Context, key string, value interface{}, duration time.Duration) error {
	return getStore().Set(ctx, key, value, duration)
}

func IsNil(err error) bool {
	return err == redis.Nil
}

//------------------------------------------
//------------------------------------------

type Client struct {
	client *redis.Client
}

func (c *Client) Get(ctx context.Context, key string) (string, error) {
	return c.client.Get(ctx, key).Result()
}

func (c *Client) Set(ctx context.Context, key string, value interface{}, duration time.Duration) error {
	return c.client.Set(ctx, key, value, duration).Err()
}

//------------------------------------------
//------------------------------------------

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryStore keeps values in process, for tests and local runs without redis.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]memoryEntry
	now  func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]memoryEntry),
		now:  time.Now,
	}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.data[key]
	if !ok {
		return "", redis.Nil
	}
	if !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt) {
		delete(m.data, key)
		return "", redis.Nil
	}
	return e.value, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value interface{}, duration time.Duration) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		s = fmt.Sprint(v)
	}
	e := memoryEntry{value: s}
	if duration > 0 {
		e.expiresAt = m.now().Add(duration)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = e
	return nil
}
