package api

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/sirupsen/logrus"

	"streamsphere/api/middleware"
	"streamsphere/configs"
	_ "streamsphere/docs"
	"streamsphere/internal/handler"
	"streamsphere/internal/service"
	"streamsphere/pkg/logging"
	"streamsphere/pkg/metrics"
	"streamsphere/pkg/response"
)

type Handlers struct {
	Auth           *handler.AuthHandler
	Catalog        *handler.CatalogHandler
	Search         *handler.SearchHandler
	List           *handler.ListHandler
	Recommendation *handler.RecommendationHandler
	User           *handler.UserHandler
	Plan           *handler.PlanHandler
	Admin          *handler.AdminHandler
}

var router *fiber.App

func InitRouter(handlers *Handlers, authService service.IAuthService) {
	router = NewRouter(handlers, authService)
}

func NewRouter(handlers *Handlers, authService service.IAuthService) *fiber.App {
	var defaultErrorHandler = func(c *fiber.Ctx, err error) error {
		// Status code defaults to 500
		code := fiber.StatusInternalServerError

		// Retrieve the custom status code if it's a *fiber.Error
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		if !strings.Contains(err.Error(), "/favicon.ico") && code >= 500 {
			logging.Log.WithFields(logrus.Fields{"path": c.Path(), "error": err}).Error("request failed")
		}

		if code == fiber.StatusNotFound {
			return response.ResponseError(c, response.PageNotFound, code)
		}
		return response.ResponseError(c, "Internal Error", code)
	}

	app := fiber.New(fiber.Config{
		UnescapePath: true,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: defaultErrorHandler,
	})

	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return middleware.LocalhostRegex.MatchString(origin) ||
				slices.Index(configs.GetConfigs().CorsAllowedOrigins, origin) != -1
		},
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, " + middleware.GuestTokenHeader,
		AllowCredentials: true,
	}))
	app.Use(timeoutMiddleware(time.Second * 10))
	app.Use(recover.New())
	app.Use(compress.New())
	app.Use(metrics.Middleware)

	app.Use(fibersentry.New(fibersentry.Config{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	session := middleware.Session(authService)
	refreshLimiter := limiter.New(limiter.Config{
		Max:          5,
		Expiration:   time.Minute,
		KeyGenerator: middleware.SessionKey,
		LimitReached: func(c *fiber.Ctx) error {
			return response.ResponseError(c, response.RecommendationsBusy, fiber.StatusTooManyRequests)
		},
	})

	authRoutes := app.Group("v1/auth")
	{
		authRoutes.Post("/guest", handlers.Auth.GuestToken)
		authRoutes.Post("/signup", handlers.Auth.SignUp)
		authRoutes.Post("/signin", handlers.Auth.SignIn)
		authRoutes.Post("/signout", session, middleware.RequireUser, handlers.Auth.SignOut)
	}

	app.Get("/v1/catalog/:page", handlers.Catalog.GetPage)
	app.Get("/v1/discover/:mediaType/:genreId", handlers.Catalog.Discover)
	app.Post("/v1/media/play", session, handlers.Catalog.PlayMedia)

	searchRoutes := app.Group("v1/search", session)
	{
		searchRoutes.Get("/", handlers.Search.Search)
		searchRoutes.Get("/live", handlers.Search.LiveSearch)
	}

	listRoutes := app.Group("v1/mylist", session, middleware.RequireSession)
	{
		listRoutes.Get("/", handlers.List.GetMyList)
		listRoutes.Post("/", handlers.List.AddToMyList)
		listRoutes.Get("/status/:mediaType/:id", handlers.List.MyListStatus)
		listRoutes.Delete("/:mediaType/:id", handlers.List.RemoveFromMyList)
	}

	recommendationRoutes := app.Group("v1/recommendations", session, middleware.RequireSession)
	{
		recommendationRoutes.Get("/", handlers.Recommendation.GetRecommendations)
		recommendationRoutes.Post("/refresh", refreshLimiter, handlers.Recommendation.RefreshRecommendations)
	}

	userRoutes := app.Group("v1/user", session, middleware.RequireUser)
	{
		userRoutes.Get("/profile", handlers.User.GetProfile)
		userRoutes.Put("/profile", handlers.User.UpdateProfile)
		userRoutes.Get("/username/check", handlers.User.CheckUsername)
		userRoutes.Get("/history/viewing", handlers.User.GetViewingHistory)
		userRoutes.Get("/history/search", handlers.User.GetSearchHistory)
	}

	app.Get("/v1/plans", handlers.Plan.GetPlans)
	planRoutes := app.Group("v1/plans", session, middleware.RequireUser)
	{
		planRoutes.Post("/activate", handlers.Plan.ActivatePlan)
		planRoutes.Get("/activations", handlers.Plan.GetActivations)
	}

	app.Get("/v1/admin/fetch_configs", session, middleware.RequireAdmin, handlers.Admin.FetchDbConfigs)

	app.Get("/", HealthCheck)
	app.Get("/metrics", monitor.New())
	app.Get("/metrics/prometheus", metrics.Handler())

	app.Get("/swagger/*", swagger.HandlerDefault) // default

	return app
}

func Start(addr string) error {
	return router.Listen(addr)
}

func Shutdown() error {
	if router == nil {
		return nil
	}
	return router.Shutdown()
}

func timeoutMiddleware(timeout time.Duration) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {

		// wrap the request context with a timeout
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		c.SetUserContext(ctx)

		defer func() {
			// check if context timeout was reached
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				_ = c.SendStatus(fiber.StatusGatewayTimeout)
			}

			//cancel to clear resources after finished
			cancel()
		}()

		return c.Next()
	}
}

// HealthCheck godoc
//
//	@Summary		Show the status of server.
//	@Description	get the status of server.
//	@Tags			System
//	@Success		200	{object}	map[string]interface{}
//	@Router			/ [get]
func HealthCheck(c *fiber.Ctx) error {
	res := map[string]interface{}{
		"data": "Server is up and running",
	}

	if err := c.JSON(res); err != nil {
		return err
	}

	return nil
}
