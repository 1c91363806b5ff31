package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamsphere/configs"
	"streamsphere/db/redis"
	"streamsphere/internal/docstore"
	"streamsphere/internal/handler"
	"streamsphere/internal/repository"
	"streamsphere/internal/service"
	"streamsphere/model"
	"streamsphere/pkg/response"
	"streamsphere/pkg/tmdb"
)

type stubIdentity struct{}

func (stubIdentity) VerifyIDToken(_ context.Context, idToken string) (*service.IdentityToken, error) {
	switch idToken {
	case "user-token":
		return &service.IdentityToken{UserId: "uid-1", Email: "neo@example.com", ExpiresAt: 4102444800}, nil
	case "other-token":
		return &service.IdentityToken{UserId: "uid-2", Email: "smith@example.com", ExpiresAt: 4102444800}, nil
	case "admin-token":
		return &service.IdentityToken{UserId: "uid-admin", IsAdmin: true, ExpiresAt: 4102444800}, nil
	}
	return nil, errors.New("invalid token")
}

func (stubIdentity) CreateUser(_ context.Context, email string, _ string, _ string) (string, error) {
	return "uid-" + email, nil
}

func (stubIdentity) SignInWithPassword(_ context.Context, email string, _ string) (*service.PasswordSignIn, error) {
	return &service.PasswordSignIn{UserId: "uid-" + email, Email: email, IdToken: "id"}, nil
}

func (stubIdentity) RevokeRefreshTokens(context.Context, string) error {
	return nil
}

func (stubIdentity) DeleteUser(context.Context, string) error {
	return nil
}

type stubMetadata struct{}

func (stubMetadata) List(_ context.Context, endpoint string, _ url.Values) ([]tmdb.Result, error) {
	return []tmdb.Result{{Id: 1, Title: "Result of " + endpoint, MediaType: "movie"}}, nil
}

func (stubMetadata) Search(_ context.Context, mediaType string, query string) ([]tmdb.Result, error) {
	return []tmdb.Result{{Id: 7, Title: query, Name: query}}, nil
}

func (stubMetadata) Videos(context.Context, string, int) ([]tmdb.Video, error) {
	return []tmdb.Video{{Key: "abc", Type: "Trailer", Site: "YouTube"}}, nil
}

type stubAI struct{}

func (stubAI) Generate(context.Context, string) (string, error) {
	return `[{"id":"r1","title":"Heat","mediaType":"movie","year":1995,"reason":"crime"}]`, nil
}

//------------------------------------------
//------------------------------------------

type envelope struct {
	Code         int             `json:"code"`
	Data         json.RawMessage `json:"data"`
	ErrorMessage interface{}     `json:"errorMessage"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	redis.UseStore(redis.NewMemoryStore())
	configs.SetDbConfigs(configs.DbConfigData{})

	store := docstore.NewMemoryStore()
	userRepo := repository.NewUserRepository(store)
	historySvc := service.NewHistoryService(repository.NewHistoryRepository(store))
	userSvc := service.NewUserService(userRepo)
	authSvc := service.NewAuthService(stubIdentity{}, userRepo, userSvc, "test-secret")
	listSvc := service.NewListService(repository.NewListRepository(store))
	queue := service.NewRefreshQueue("", 1, 10, 0, 10)
	recSvc := service.NewRecommendationService(
		repository.NewRecommendationRepository(store), listSvc, stubMetadata{}, stubAI{}, queue)
	listSvc.SetRefreshScheduler(recSvc)
	t.Cleanup(recSvc.Close)

	return NewRouter(&Handlers{
		Auth:           handler.NewAuthHandler(authSvc),
		Catalog:        handler.NewCatalogHandler(service.NewCatalogService(stubMetadata{}, historySvc)),
		Search:         handler.NewSearchHandler(service.NewSearchService(stubMetadata{}, historySvc)),
		List:           handler.NewListHandler(listSvc),
		Recommendation: handler.NewRecommendationHandler(recSvc),
		User:           handler.NewUserHandler(userSvc, historySvc),
		Plan:           handler.NewPlanHandler(service.NewPlanService(userRepo, userSvc, nil)),
		Admin:          handler.NewAdminHandler(service.NewAdminService(repository.NewAdminRepository(nil))),
	}, authSvc)
}

func doRequest(t *testing.T, app *fiber.App, method string, target string, body interface{}, headers map[string]string) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonData)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func bearer(token string) map[string]string {
	return map[string]string{fiber.HeaderAuthorization: "Bearer " + token}
}

//------------------------------------------
//------------------------------------------

func TestHealthCheck(t *testing.T) {
	app := newTestApp(t)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGuestMyListFlow(t *testing.T) {
	app := newTestApp(t)

	status, env := doRequest(t, app, http.MethodPost, "/v1/auth/guest", nil, nil)
	require.Equal(t, fiber.StatusOK, status)
	var guest model.GuestTokenRes
	require.NoError(t, json.Unmarshal(env.Data, &guest))
	headers := map[string]string{"X-Guest-Token": guest.Token}

	item := model.MediaItem{Id: 11, Title: "Heat", MediaType: model.MediaTypeMovie}
	status, env = doRequest(t, app, http.MethodPost, "/v1/mylist", item, headers)
	require.Equal(t, fiber.StatusOK, status)
	var items []model.MediaItem
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)

	status, env = doRequest(t, app, http.MethodGet, "/v1/mylist/status/movie/11", nil, headers)
	require.Equal(t, fiber.StatusOK, status)
	var listStatus model.MyListStatusRes
	require.NoError(t, json.Unmarshal(env.Data, &listStatus))
	assert.True(t, listStatus.InMyList)

	status, env = doRequest(t, app, http.MethodDelete, "/v1/mylist/movie/11", nil, headers)
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &items))
	assert.Empty(t, items)

	status, _ = doRequest(t, app, http.MethodPost, "/v1/mylist", model.MediaItem{Id: 11, MediaType: "anime"}, headers)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestSessionRequired(t *testing.T) {
	app := newTestApp(t)

	status, env := doRequest(t, app, http.MethodGet, "/v1/mylist", nil, nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, response.SessionRequired, env.ErrorMessage)

	status, env = doRequest(t, app, http.MethodGet, "/v1/mylist", nil, map[string]string{"X-Guest-Token": "forged"})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, response.InvalidGuestToken, env.ErrorMessage)

	status, _ = doRequest(t, app, http.MethodGet, "/v1/mylist", nil, bearer("forged"))
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = doRequest(t, app, http.MethodGet, "/v1/mylist?guestToken=forged", nil, nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestCatalogRoutes(t *testing.T) {
	app := newTestApp(t)

	status, env := doRequest(t, app, http.MethodGet, "/v1/catalog/home", nil, nil)
	require.Equal(t, fiber.StatusOK, status)
	var page model.CatalogPage
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page.Rows, 5)
	require.NotNil(t, page.Featured)
	assert.Equal(t, "Result of /trending/all/week", page.Featured.Title)

	status, _ = doRequest(t, app, http.MethodGet, "/v1/catalog/kids", nil, nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = doRequest(t, app, http.MethodGet, "/v1/discover/anime/28", nil, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, env = doRequest(t, app, http.MethodPost, "/v1/media/play", model.MediaItem{Id: 1, Title: "Heat"}, bearer("user-token"))
	require.Equal(t, fiber.StatusOK, status)
	var play model.PlayMediaRes
	require.NoError(t, json.Unmarshal(env.Data, &play))
	assert.Equal(t, "https://www.youtube.com/watch?v=abc", play.Trailer.Url)

	status, env = doRequest(t, app, http.MethodGet, "/v1/user/history/viewing", nil, bearer("user-token"))
	require.Equal(t, fiber.StatusOK, status)
	var views []model.ViewingHistoryItem
	require.NoError(t, json.Unmarshal(env.Data, &views))
	require.Len(t, views, 1)
	assert.Equal(t, "Heat", views[0].Title)
}

func TestSearchRoute(t *testing.T) {
	app := newTestApp(t)

	status, env := doRequest(t, app, http.MethodGet, "/v1/search?q=ab", nil, nil)
	require.Equal(t, fiber.StatusOK, status)
	var res model.SearchRes
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.False(t, res.Show)
	assert.Empty(t, res.Results)

	status, env = doRequest(t, app, http.MethodGet, "/v1/search?q=matrix", nil, nil)
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.True(t, res.Show)
	require.Len(t, res.Results, 2)
	assert.Equal(t, model.MediaTypeMovie, res.Results[0].MediaType)
	assert.Equal(t, model.MediaTypeTv, res.Results[1].MediaType)

	status, _ = doRequest(t, app, http.MethodGet, "/v1/search/live", nil, nil)
	assert.Equal(t, fiber.StatusUpgradeRequired, status)
}

func TestLiveSearchDebouncesQueries(t *testing.T) {
	app := newTestApp(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = app.Listener(ln)
	}()
	t.Cleanup(func() {
		_ = app.Shutdown()
	})

	conn, resp, err := websocket.DefaultDialer.Dial("ws://"+ln.Addr().String()+"/v1/search/live", nil)
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	for _, q := range []string{"b", "br", "bre", "brea", "break"} {
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(q)))
		time.Sleep(50 * time.Millisecond)
	}

	var res model.SearchRes
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	require.NoError(t, conn.ReadJSON(&res))
	assert.Equal(t, "break", res.Query)
	assert.True(t, res.Show)
	assert.Len(t, res.Results, 2)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("ab")))
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	require.NoError(t, conn.ReadJSON(&res))
	assert.Equal(t, "ab", res.Query)
	assert.False(t, res.Show)
	assert.Empty(t, res.Results)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(800*time.Millisecond)))
	_, _, err = conn.ReadMessage()
	assert.Error(t, err, "no further replies expected")
}

func TestProfileRoutes(t *testing.T) {
	app := newTestApp(t)

	status, env := doRequest(t, app, http.MethodGet, "/v1/user/profile", nil, bearer("user-token"))
	require.Equal(t, fiber.StatusOK, status)
	var profile model.UserProfile
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, "user_uid-1", profile.Username)

	status, _ = doRequest(t, app, http.MethodPut, "/v1/user/profile", model.UpdateProfileReq{Username: "neo"}, bearer("user-token"))
	require.Equal(t, fiber.StatusOK, status)

	status, env = doRequest(t, app, http.MethodPut, "/v1/user/profile", model.UpdateProfileReq{Username: "neo"}, bearer("other-token"))
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, response.UsernameAlreadyExist, env.ErrorMessage)

	status, env = doRequest(t, app, http.MethodGet, "/v1/user/username/check?username=neo", nil, bearer("other-token"))
	require.Equal(t, fiber.StatusOK, status)
	var check model.UsernameCheckRes
	require.NoError(t, json.Unmarshal(env.Data, &check))
	assert.False(t, check.Available)

	status, env = doRequest(t, app, http.MethodGet, "/v1/user/username/check?username=ne", nil, bearer("other-token"))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, response.UsernameTooShort, env.ErrorMessage)

	status, _ = doRequest(t, app, http.MethodPut, "/v1/user/profile", model.UpdateProfileReq{Username: "ab"}, bearer("user-token"))
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestAuthAndPlanRoutes(t *testing.T) {
	app := newTestApp(t)

	signUp := model.SignUpReq{Email: "trinity@example.com", Password: "secret1", ConfirmPassword: "secret1"}
	status, _ := doRequest(t, app, http.MethodPost, "/v1/auth/signup", signUp, nil)
	require.Equal(t, fiber.StatusCreated, status)

	signUp.ConfirmPassword = "other"
	status, _ = doRequest(t, app, http.MethodPost, "/v1/auth/signup", signUp, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	signIn := model.SignInReq{Email: "trinity@example.com", Password: "secret1"}
	status, env := doRequest(t, app, http.MethodPost, "/v1/auth/signin", signIn, nil)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, response.PlanNotActive, env.ErrorMessage)

	status, _ = doRequest(t, app, http.MethodPost, "/v1/auth/signin", model.SignInReq{Email: "nobody@example.com", Password: "x"}, nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, env = doRequest(t, app, http.MethodGet, "/v1/plans", nil, nil)
	require.Equal(t, fiber.StatusOK, status)
	var plans []model.Plan
	require.NoError(t, json.Unmarshal(env.Data, &plans))
	assert.Len(t, plans, 4)

	status, _ = doRequest(t, app, http.MethodPost, "/v1/plans/activate", model.ActivatePlanReq{Plan: "Free"}, nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = doRequest(t, app, http.MethodPost, "/v1/plans/activate", model.ActivatePlanReq{Plan: "Premium"}, bearer("user-token"))
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, env = doRequest(t, app, http.MethodPost, "/v1/plans/activate", model.ActivatePlanReq{Plan: "Free"}, bearer("user-token"))
	require.Equal(t, fiber.StatusOK, status)
	var profile model.UserProfile
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.True(t, profile.Status)

	status, _ = doRequest(t, app, http.MethodGet, "/v1/plans/activations", nil, bearer("user-token"))
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = doRequest(t, app, http.MethodPost, "/v1/auth/signout", nil, bearer("user-token"))
	require.Equal(t, fiber.StatusOK, status)
	status, _ = doRequest(t, app, http.MethodGet, "/v1/user/profile", nil, bearer("user-token"))
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestAdminRoute(t *testing.T) {
	app := newTestApp(t)

	status, _ := doRequest(t, app, http.MethodGet, "/v1/admin/fetch_configs", nil, bearer("user-token"))
	assert.Equal(t, fiber.StatusForbidden, status)

	status, env := doRequest(t, app, http.MethodGet, "/v1/admin/fetch_configs", nil, bearer("admin-token"))
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, response.ConfigsDbNotFound, env.ErrorMessage)
}

func TestRecommendationRefreshIsRateLimited(t *testing.T) {
	app := newTestApp(t)
	headers := bearer("user-token")

	status, _ := doRequest(t, app, http.MethodPost, "/v1/mylist", model.MediaItem{Id: 1, Title: "Heat", MediaType: "movie"}, headers)
	require.Equal(t, fiber.StatusOK, status)

	status, env := doRequest(t, app, http.MethodPost, "/v1/recommendations/refresh", nil, headers)
	require.Equal(t, fiber.StatusOK, status)
	var items []model.RecommendationItem
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Heat", items[0].Title)

	for i := 0; i < 4; i++ {
		status, _ = doRequest(t, app, http.MethodPost, "/v1/recommendations/refresh", nil, headers)
		require.Equal(t, fiber.StatusOK, status)
	}
	status, env = doRequest(t, app, http.MethodPost, "/v1/recommendations/refresh", nil, headers)
	assert.Equal(t, fiber.StatusTooManyRequests, status)
	assert.Equal(t, response.RecommendationsBusy, env.ErrorMessage)
}
