package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/iter"

	"streamsphere/configs"
	"streamsphere/internal/docstore"
	"streamsphere/internal/repository"
	"streamsphere/model"
	"streamsphere/pkg/debounce"
	errorHandler "streamsphere/pkg/error"
	"streamsphere/pkg/gemini"
	"streamsphere/pkg/logging"
	"streamsphere/pkg/metrics"
	"streamsphere/pkg/tmdb"
)

type IRecommendationService interface {
	GetRecommendations(ctx context.Context, session *model.Session) []model.RecommendationItem
	Generate(ctx context.Context, session *model.Session) ([]model.RecommendationItem, error)
	Refresh(ctx context.Context, session *model.Session) ([]model.RecommendationItem, error)
	ScheduleRefresh(session model.Session)
	StartQueue()
	Close()
}

// MyListReader is the part of the list service recommendations are built from.
type MyListReader interface {
	GetMyList(ctx context.Context, session *model.Session) []model.MediaItem
}

type RecommendationService struct {
	recRepo        repository.IRecommendationRepository
	listReader     MyListReader
	metadataClient tmdb.IClient
	aiClient       gemini.IClient
	queue          IRefreshQueue
	debouncer      *debounce.Keyed[model.Session]
	jobTimeout     time.Duration
	now            func() time.Time
}

const (
	refreshDebounceDelay = time.Second
	refreshJobTimeout    = 60 * time.Second
	refreshQueueSleep    = 500 * time.Millisecond
)

var ErrRecommendationsDisabled = errors.New("recommendations are disabled")

func NewRecommendationService(recRepo repository.IRecommendationRepository, listReader MyListReader,
	metadataClient tmdb.IClient, aiClient gemini.IClient, queue IRefreshQueue) *RecommendationService {
	service := &RecommendationService{
		recRepo:        recRepo,
		listReader:     listReader,
		metadataClient: metadataClient,
		aiClient:       aiClient,
		queue:          queue,
		jobTimeout:     refreshJobTimeout,
		now:            time.Now,
	}
	service.debouncer = debounce.NewKeyed(refreshDebounceDelay, service.enqueueRefresh)
	return service
}

//------------------------------------------
//------------------------------------------

// GetRecommendations serves stored recommendations while they are fresh. A stale
// copy is served as is while a queued refresh replaces it, and an owner with nothing
// stored gets them generated in the request. Failures degrade to an empty list.
func (m *RecommendationService) GetRecommendations(ctx context.Context, session *model.Session) []model.RecommendationItem {
	if configs.GetDbConfigs().DisableRecommendations {
		return []model.RecommendationItem{}
	}

	ttl := configs.GetDbConfigs().GetRecommendationTtl()
	if stored := m.getStored(ctx, session); stored != nil {
		if !stored.IsFresh(ttl, m.now()) {
			m.ScheduleRefresh(*session)
		}
		return nonNilRecommendations(stored.Items)
	}

	items, err := m.Refresh(ctx, session)
	if err != nil {
		return []model.RecommendationItem{}
	}
	return items
}

// Refresh generates recommendations and stores them for the session owner.
func (m *RecommendationService) Refresh(ctx context.Context, session *model.Session) ([]model.RecommendationItem, error) {
	items, err := m.Generate(ctx, session)
	metrics.RecommendationRuns.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		errorMessage := fmt.Sprintf("Error generating recommendations: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return nil, err
	}

	recs := &model.UserRecommendations{
		Items:       items,
		GeneratedAt: m.now(),
	}
	if session.IsAuthenticated() {
		err = m.recRepo.SaveRecommendations(ctx, session.UserId, recs)
		if err != nil {
			errorMessage := fmt.Sprintf("Error saving recommendations: %v", err)
			errorHandler.SaveError(errorMessage, err)
		}
	} else {
		_ = setCachedRecommendations(ctx, session.LocalKey(), recs, configs.GetDbConfigs().GetRecommendationTtl())
	}
	return items, nil
}

// Generate asks the model for titles similar to the session's list and enriches
// them with posters from the metadata api. An empty list yields no recommendations.
func (m *RecommendationService) Generate(ctx context.Context, session *model.Session) ([]model.RecommendationItem, error) {
	if configs.GetDbConfigs().DisableRecommendations {
		return nil, ErrRecommendationsDisabled
	}
	list := m.listReader.GetMyList(ctx, session)
	if len(list) == 0 {
		return []model.RecommendationItem{}, nil
	}

	prompt := BuildRecommendationPrompt(list, configs.GetDbConfigs().GetRecommendationCount())
	text, err := m.aiClient.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	suggestions, err := gemini.ParseJSONArray[recommendationSuggestion](text)
	if err != nil {
		return nil, err
	}

	items := make([]model.RecommendationItem, 0, len(suggestions))
	for _, s := range suggestions {
		items = append(items, s.toItem())
	}
	return m.enrich(ctx, items), nil
}

//------------------------------------------
//------------------------------------------

// ScheduleRefresh regenerates the owner's recommendations once their list has
// been quiet for a second.
func (m *RecommendationService) ScheduleRefresh(session model.Session) {
	if configs.GetDbConfigs().DisableRecommendations {
		return
	}
	m.debouncer.Trigger(ownerKey(&session), session)
}

func (m *RecommendationService) enqueueRefresh(ownerKey string, session model.Session) {
	_, err := m.queue.Enqueue(RefreshJob{
		OwnerKey:   ownerKey,
		Session:    session,
		EnqueuedAt: m.now(),
	})
	if err != nil {
		errorMessage := fmt.Sprintf("Error enqueueing recommendation refresh for %s: %v", ownerKey, err)
		errorHandler.SaveError(errorMessage, err)
	}
}

func (m *RecommendationService) StartQueue() {
	m.queue.Start(m.handleRefreshJob, refreshQueueSleep)
}

func (m *RecommendationService) handleRefreshJob(wid int, job RefreshJob) {
	ctx, cancel := context.WithTimeout(context.Background(), m.jobTimeout)
	defer cancel()

	items, err := m.Refresh(ctx, &job.Session)
	logging.Log.WithFields(logrus.Fields{
		"worker": wid,
		"owner":  job.OwnerKey,
		"count":  len(items),
	}).WithError(err).Debug("recommendation refresh done")
}

func (m *RecommendationService) Close() {
	m.debouncer.Stop()
	m.queue.Close()
}

//------------------------------------------
//------------------------------------------

func (m *RecommendationService) getStored(ctx context.Context, session *model.Session) *model.UserRecommendations {
	if session.IsAuthenticated() {
		recs, err := m.recRepo.GetRecommendations(ctx, session.UserId)
		if err != nil {
			if !errors.Is(err, docstore.ErrNotFound) {
				errorMessage := fmt.Sprintf("Error fetching recommendations: %v", err)
				errorHandler.SaveError(errorMessage, err)
			}
			return nil
		}
		return recs
	}
	recs, err := getCachedRecommendations(ctx, session.LocalKey())
	if err != nil {
		return nil
	}
	return recs
}

// enrich replaces placeholder images with the first metadata search match, items
// whose lookup fails are kept as they are.
func (m *RecommendationService) enrich(ctx context.Context, items []model.RecommendationItem) []model.RecommendationItem {
	return iter.Map(items, func(item *model.RecommendationItem) model.RecommendationItem {
		rec := *item
		kind := model.MediaTypeMovie
		if rec.MediaType == model.MediaTypeTv {
			kind = model.MediaTypeTv
		}
		results, err := m.metadataClient.Search(ctx, kind, rec.Title)
		if err != nil || len(results) == 0 {
			return rec
		}
		match := results[0]
		if match.PosterPath != "" {
			rec.Image = tmdb.PosterURL(match.PosterPath)
		}
		rec.BackdropPath = tmdb.BackdropURL(match.BackdropPath)
		return rec
	})
}

//------------------------------------------
//------------------------------------------

type recommendationSuggestion struct {
	Id        gemini.FlexString `json:"id"`
	Title     string            `json:"title"`
	MediaType string            `json:"mediaType"`
	Year      gemini.FlexString `json:"year"`
	Reason    string            `json:"reason"`
}

func (s recommendationSuggestion) toItem() model.RecommendationItem {
	id := string(s.Id)
	if id == "" {
		id = "rec-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	}
	genres := "Recommended Show"
	if s.MediaType == model.MediaTypeMovie {
		genres = "Recommended Movie"
	}
	return model.RecommendationItem{
		Id:        id,
		Title:     s.Title,
		MediaType: s.MediaType,
		Year:      string(s.Year),
		Reason:    s.Reason,
		Image:     tmdb.PlaceholderImage,
		Rating:    "U/A 13+",
		Duration:  string(s.Year),
		Genres:    genres,
		Overview:  s.Reason,
	}
}

func BuildRecommendationPrompt(list []model.MediaItem, count int) string {
	lines := make([]string, 0, len(list))
	for _, item := range list {
		kind := "TV Show"
		if item.MediaType == model.MediaTypeMovie {
			kind = "Movie"
		}
		lines = append(lines, fmt.Sprintf("%s (%s) - %s", item.Title, kind, item.Genres))
	}

	var b strings.Builder
	b.WriteString("Based on this list of movies and TV shows:\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString(fmt.Sprintf("\n\nPlease recommend %d similar content that the user might like.\n", count))
	b.WriteString("For each recommendation, provide the title, whether it's a movie or TV show, release year, ")
	b.WriteString("and a brief reason why the user might like it based on their list.\n")
	b.WriteString("Format the response as JSON with the structure:\n")
	b.WriteString(`[
  {
    "id": "rec-1",
    "title": "Title",
    "mediaType": "movie" or "tv",
    "year": "Year",
    "reason": "Why the user might like it"
  }
]`)
	b.WriteString("\nOnly provide the JSON array, nothing else.")
	return b.String()
}

func nonNilRecommendations(items []model.RecommendationItem) []model.RecommendationItem {
	if items == nil {
		return []model.RecommendationItem{}
	}
	return items
}
