package handler

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"streamsphere/api/middleware"
	"streamsphere/configs"
	"streamsphere/internal/service"
	"streamsphere/model"
	"streamsphere/pkg/debounce"
	"streamsphere/pkg/logging"
	"streamsphere/pkg/response"
)

type ISearchHandler interface {
	Search(c *fiber.Ctx) error
	LiveSearch(c *fiber.Ctx) error
}

type SearchHandler struct {
	searchService service.ISearchService
	upgrader      websocket.FastHTTPUpgrader
	debounceDelay time.Duration
	searchTimeout time.Duration
}

const liveSearchDebounce = 500 * time.Millisecond

func NewSearchHandler(searchService service.ISearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		upgrader: websocket.FastHTTPUpgrader{
			HandshakeTimeout: 10 * time.Second,
			CheckOrigin: func(ctx *fasthttp.RequestCtx) bool {
				origin := string(ctx.Request.Header.Peek(fiber.HeaderOrigin))
				return origin == "" ||
					middleware.LocalhostRegex.MatchString(origin) ||
					slices.Contains(configs.GetConfigs().CorsAllowedOrigins, origin)
			},
		},
		debounceDelay: liveSearchDebounce,
		searchTimeout: 10 * time.Second,
	}
}

//------------------------------------------
//------------------------------------------

// Search godoc
//
//	@Summary		Search
//	@Description	Search movies then tv shows, five of each. Queries of two characters or less return nothing.
//	@Tags			Search
//	@Param			q	query		string	true	"search query"
//	@Success		200	{object}	model.SearchRes
//	@Router			/v1/search [get]
func (m *SearchHandler) Search(c *fiber.Ctx) error {
	res := m.searchService.Search(c.UserContext(), middleware.GetSession(c), c.Query("q", ""))
	return response.ResponseOKWithData(c, res)
}

// LiveSearch godoc
//
//	@Summary		Live Search
//	@Description	Websocket, every text frame is the current query. Results are sent once the query
//	@Description	has been quiet for 500ms, a newer result always replaces an older one.
//	@Tags			Search
//	@Success		101
//	@Failure		426	{object}	response.ResponseErrorModel
//	@Router			/v1/search/live [get]
func (m *SearchHandler) LiveSearch(c *fiber.Ctx) error {
	if !websocket.FastHTTPIsWebSocketUpgrade(c.Context()) {
		return response.ResponseError(c, "Websocket upgrade required", fiber.StatusUpgradeRequired)
	}

	var session *model.Session
	if s := middleware.GetSession(c); s != nil {
		copied := *s
		session = &copied
	}

	return m.upgrader.Upgrade(c.Context(), func(conn *websocket.Conn) {
		m.serveLiveSearch(conn, session)
	})
}

func (m *SearchHandler) serveLiveSearch(conn *websocket.Conn, session *model.Session) {
	defer conn.Close()

	var (
		writeMux sync.Mutex
		seq      uint64
		written  uint64
	)

	debouncer := debounce.New(m.debounceDelay, func(q liveQuery) {
		ctx, cancel := context.WithTimeout(context.Background(), m.searchTimeout)
		defer cancel()
		res := m.searchService.Search(ctx, session, q.query)

		writeMux.Lock()
		defer writeMux.Unlock()
		if q.seq < written {
			return
		}
		written = q.seq
		if err := conn.WriteJSON(res); err != nil {
			logging.Log.WithFields(logrus.Fields{"error": err}).Debug("live search write failed")
		}
	})
	defer debouncer.Stop()

	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}
		seq++
		debouncer.Trigger(liveQuery{seq: seq, query: string(message)})
	}
}

type liveQuery struct {
	seq   uint64
	query string
}
