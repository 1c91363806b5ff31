package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"

	"streamsphere/api"
	"streamsphere/configs"
	"streamsphere/db"
	"streamsphere/db/firebase"
	"streamsphere/db/mongodb"
	"streamsphere/db/redis"
	"streamsphere/internal/docstore"
	"streamsphere/internal/handler"
	"streamsphere/internal/repository"
	"streamsphere/internal/service"
	"streamsphere/pkg/gemini"
	"streamsphere/pkg/logging"
	"streamsphere/pkg/tmdb"
)

// @title						StreamSphere
// @version					1.0
// @description				Catalog, my list, search, recommendations and account api of StreamSphere.
// @BasePath					/
// @schemes					http https
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and the firebase id token.
// @Accept						json
// @Produce					json
func main() {
	configs.LoadEnvVariables()
	logging.Init("streamsphere", configs.GetConfigs().LogLevel)

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              configs.GetConfigs().SentryDns,
		Release:          configs.GetConfigs().SentryRelease,
		TracesSampleRate: 1,
		EnableTracing:    true,
		AttachStacktrace: true,
	})
	if err != nil {
		logging.Log.WithError(err).Fatal("sentry.Init failed")
	}
	// Flush buffered events before the program terminates.
	defer sentry.Flush(2 * time.Second)

	go redis.ConnectRedis()

	ctx := context.Background()

	firebaseApp, err := firebase.NewApp(ctx)
	if err != nil {
		logging.Log.WithError(err).Fatal("could not initialize firebase app")
	}
	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		logging.Log.WithError(err).Fatal("could not initialize firebase auth")
	}
	identity, err := service.NewFirebaseIdentity(ctx, authClient, configs.GetConfigs().FirebaseWebApiKey)
	if err != nil {
		logging.Log.WithError(err).Fatal("could not initialize identity toolkit")
	}

	store, mongoDB := openDocumentStore(ctx, firebaseApp)
	if mongoDB != nil {
		defer mongoDB.Close()
		go configs.LoadDbConfigs(mongoDB.GetDB())
	} else {
		configs.SetDbConfigs(configs.DbConfigData{})
	}

	var planRepo repository.IPlanRepository
	if ledger := openPlanLedger(); ledger != nil {
		defer ledger.Close()
		planRepo = repository.NewPlanRepository(ledger.GetDB())
	}

	metadataClient := tmdb.NewClient(configs.GetConfigs().TmdbApiKey, tmdb.WithBaseURL(configs.GetConfigs().TmdbBaseUrl))
	aiClient, err := gemini.NewClient(ctx, configs.GetConfigs().GeminiApiKey, configs.GetConfigs().GeminiModel)
	if err != nil {
		logging.Log.WithError(err).Fatal("could not initialize gemini client")
	}

	userRepo := repository.NewUserRepository(store)
	historySvc := service.NewHistoryService(repository.NewHistoryRepository(store))
	userSvc := service.NewUserService(userRepo)
	authSvc := service.NewAuthService(identity, userRepo, userSvc, guestTokenSecret())
	planSvc := service.NewPlanService(userRepo, userSvc, planRepo)
	catalogSvc := service.NewCatalogService(metadataClient, historySvc)
	searchSvc := service.NewSearchService(metadataClient, historySvc)
	listSvc := service.NewListService(repository.NewListRepository(store))

	refreshQueue := service.NewRefreshQueue(
		configs.GetConfigs().RecommendationQueueFile,
		configs.GetConfigs().RecommendationWorkers,
		configs.GetDbConfigs().GetRefreshQueueCapacity(),
		30*time.Second,
		10,
	)
	recSvc := service.NewRecommendationService(
		repository.NewRecommendationRepository(store), listSvc, metadataClient, aiClient, refreshQueue)
	listSvc.SetRefreshScheduler(recSvc)
	recSvc.StartQueue()
	defer recSvc.Close()

	var adminRepo *repository.AdminRepository
	if mongoDB != nil {
		adminRepo = repository.NewAdminRepository(mongoDB.GetDB())
	} else {
		adminRepo = repository.NewAdminRepository(nil)
	}
	adminSvc := service.NewAdminService(adminRepo)

	api.InitRouter(&api.Handlers{
		Auth:           handler.NewAuthHandler(authSvc),
		Catalog:        handler.NewCatalogHandler(catalogSvc),
		Search:         handler.NewSearchHandler(searchSvc),
		List:           handler.NewListHandler(listSvc),
		Recommendation: handler.NewRecommendationHandler(recSvc),
		User:           handler.NewUserHandler(userSvc, historySvc),
		Plan:           handler.NewPlanHandler(planSvc),
		Admin:          handler.NewAdminHandler(adminSvc),
	}, authSvc)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logging.Log.Info("shutting down")
		_ = api.Shutdown()
	}()

	if err = api.Start("0.0.0.0:" + configs.GetConfigs().Port); err != nil {
		logging.Log.WithError(err).Error("server stopped")
	}
}

// openDocumentStore picks the backend named by DOCUMENT_STORE. The mongo database is
// returned too, it also holds the dynamic configs.
func openDocumentStore(ctx context.Context, firebaseApp *firebase.App) (docstore.Store, *mongodb.MongoDatabase) {
	switch configs.GetConfigs().DocumentStore {
	case configs.DocumentStoreFirestore:
		client, err := firebaseApp.Firestore(ctx)
		if err != nil {
			logging.Log.WithError(err).Fatal("could not initialize firestore")
		}
		return docstore.NewFirestoreStore(client), nil
	case configs.DocumentStoreMemory:
		logging.Log.Warn("using in-memory document store, data is lost on restart")
		return docstore.NewMemoryStore(), nil
	default:
		mongoDB, err := mongodb.NewDatabase()
		if err != nil {
			logging.Log.WithError(err).Fatal("could not initialize mongodb database connection")
		}
		if err = mongoDB.EnsureIndexes(ctx); err != nil {
			logging.Log.WithError(err).Warn("could not create mongodb indexes")
		}
		return docstore.NewMongoStore(mongoDB.GetDB()), mongoDB
	}
}

// openPlanLedger connects the optional postgres ledger, retrying while the server is starting up.
func openPlanLedger() *db.Database {
	if configs.GetConfigs().DbUrl == "" {
		return nil
	}
	for attempt := 1; ; attempt++ {
		ledger, err := db.NewDatabase()
		if err == nil {
			return ledger
		}
		if !db.IsConnectionNotAcceptingError(err) || attempt == 5 {
			logging.Log.WithError(err).Error("could not initialize plan ledger, activations are not recorded")
			return nil
		}
		logging.Log.WithFields(logrus.Fields{"attempt": attempt}).Warn("postgres is starting up, retrying")
		time.Sleep(3 * time.Second)
	}
}

// guestTokenSecret falls back to a random secret, guest tokens then do not survive a restart.
func guestTokenSecret() string {
	if secret := configs.GetConfigs().GuestTokenSecret; secret != "" {
		return secret
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		logging.Log.WithError(err).Fatal("could not generate guest token secret")
	}
	logging.Log.Warn("GUEST_TOKEN_SECRET is not set, using a random secret")
	return hex.EncodeToString(buf)
}
