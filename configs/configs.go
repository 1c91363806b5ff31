package configs

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"streamsphere/pkg/logging"
)

type ConfigStruct struct {
	Port                      string
	GuestTokenSecret          string
	WaitForRedisConnectionSec int
	RedisUrl                  string
	RedisPassword             string
	DocumentStore             string
	MongodbDatabaseUrl        string
	MongodbDatabaseName       string
	FirebaseProjectId         string
	FirebaseCredentialsFile   string
	FirebaseWebApiKey         string
	TmdbApiKey                string
	TmdbBaseUrl               string
	GeminiApiKey              string
	GeminiModel               string
	RecommendationQueueFile   string
	RecommendationWorkers     int
	CorsAllowedOrigins        []string
	SentryDns                 string
	SentryRelease             string
	PrintErrors               bool
	LogLevel                  string
	DbUrl                     string
}

const (
	DocumentStoreMongo     = "mongodb"
	DocumentStoreFirestore = "firestore"
	DocumentStoreMemory    = "memory"
)

var configs = ConfigStruct{}

func GetConfigs() ConfigStruct {
	return configs
}

func LoadEnvVariables() {
	if err := godotenv.Load(); err != nil {
		logging.Log.WithError(err).Warn("could not load .env file")
	}

	configs.Port = getEnv("PORT", "3000")
	configs.DbUrl = os.Getenv("POSTGRES_DATABASE_URL")
	configs.GuestTokenSecret = os.Getenv("GUEST_TOKEN_SECRET")
	configs.RedisUrl = os.Getenv("REDIS_URL")
	configs.RedisPassword = os.Getenv("REDIS_PASSWORD")
	configs.DocumentStore = strings.ToLower(getEnv("DOCUMENT_STORE", DocumentStoreMongo))
	configs.MongodbDatabaseUrl = os.Getenv("MONGODB_DATABASE_URL")
	configs.MongodbDatabaseName = getEnv("MONGODB_DATABASE_NAME", "streamsphere")
	configs.FirebaseProjectId = os.Getenv("FIREBASE_PROJECT_ID")
	configs.FirebaseCredentialsFile = os.Getenv("FIREBASE_CREDENTIALS_FILE")
	configs.FirebaseWebApiKey = os.Getenv("FIREBASE_WEB_API_KEY")
	configs.TmdbApiKey = os.Getenv("TMDB_API_KEY")
	configs.TmdbBaseUrl = getEnv("TMDB_BASE_URL", "https://api.themoviedb.org/3")
	configs.GeminiApiKey = os.Getenv("GEMINI_API_KEY")
	configs.GeminiModel = getEnv("GEMINI_MODEL", "gemini-2.0-flash")
	configs.RecommendationQueueFile = getEnv("RECOMMENDATION_QUEUE_FILE", "./recommendation_queue.json")
	configs.RecommendationWorkers, _ = strconv.Atoi(getEnv("RECOMMENDATION_WORKERS", "2"))
	configs.WaitForRedisConnectionSec, _ = strconv.Atoi(os.Getenv("WAIT_REDIS_CONNECTION_SEC"))
	configs.CorsAllowedOrigins = strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), "---")
	for i := range configs.CorsAllowedOrigins {
		configs.CorsAllowedOrigins[i] = strings.TrimSpace(configs.CorsAllowedOrigins[i])
	}
	configs.SentryDns = os.Getenv("SENTRY_DNS")
	configs.SentryRelease = os.Getenv("SENTRY_RELEASE")
	configs.PrintErrors = os.Getenv("PRINT_ERRORS") == "true"
	configs.LogLevel = os.Getenv("LOG_LEVEL")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
