package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"streamsphere/internal/docstore"
	"streamsphere/internal/repository"
	"streamsphere/model"
	errorHandler "streamsphere/pkg/error"
)

type IListService interface {
	GetMyList(ctx context.Context, session *model.Session) []model.MediaItem
	IsInMyList(ctx context.Context, session *model.Session, id int, mediaType string) bool
	AddToMyList(ctx context.Context, session *model.Session, item model.MediaItem) ([]model.MediaItem, error)
	RemoveFromMyList(ctx context.Context, session *model.Session, id int, mediaType string) ([]model.MediaItem, error)
}

// RefreshScheduler is notified after every list change.
type RefreshScheduler interface {
	ScheduleRefresh(session model.Session)
}

type ListService struct {
	listRepo  repository.IListRepository
	scheduler RefreshScheduler
	locks     *keyedMutex
	now       func() time.Time
}

func NewListService(listRepo repository.IListRepository) *ListService {
	return &ListService{
		listRepo: listRepo,
		locks:    newKeyedMutex(),
		now:      time.Now,
	}
}

func (m *ListService) SetRefreshScheduler(scheduler RefreshScheduler) {
	m.scheduler = scheduler
}

//------------------------------------------
//------------------------------------------

// GetMyList reads the document store for signed in users and the local store otherwise.
// A missing user document is seeded from the local list.
func (m *ListService) GetMyList(ctx context.Context, session *model.Session) []model.MediaItem {
	unlock := m.locks.Lock(ownerKey(session))
	defer unlock()
	return m.getMyList(ctx, session)
}

func (m *ListService) getMyList(ctx context.Context, session *model.Session) []model.MediaItem {
	local, err := getLocalList(ctx, session.LocalKey())
	if err != nil {
		errorMessage := fmt.Sprintf("Error reading local list: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
	if local == nil {
		local = []model.MediaItem{}
	}
	if !session.IsAuthenticated() {
		return local
	}

	list, err := m.listRepo.GetList(ctx, session.UserId)
	if err == nil && list.Items != nil {
		return list.Items
	}
	if err != nil && !errors.Is(err, docstore.ErrNotFound) {
		errorMessage := fmt.Sprintf("Error fetching list from document store: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return local
	}

	if len(local) > 0 {
		m.mirror(ctx, session, local)
	}
	return local
}

func (m *ListService) IsInMyList(ctx context.Context, session *model.Session, id int, mediaType string) bool {
	for _, item := range m.GetMyList(ctx, session) {
		if item.Is(id, mediaType) {
			return true
		}
	}
	return false
}

func (m *ListService) AddToMyList(ctx context.Context, session *model.Session, item model.MediaItem) ([]model.MediaItem, error) {
	unlock := m.locks.Lock(ownerKey(session))
	defer unlock()

	list := m.getMyList(ctx, session)
	for _, existing := range list {
		if existing.Is(item.Id, item.MediaType) {
			return list, nil
		}
	}

	updated := make([]model.MediaItem, 0, len(list)+1)
	updated = append(updated, list...)
	updated = append(updated, item)
	return updated, m.save(ctx, session, updated)
}

func (m *ListService) RemoveFromMyList(ctx context.Context, session *model.Session, id int, mediaType string) ([]model.MediaItem, error) {
	unlock := m.locks.Lock(ownerKey(session))
	defer unlock()

	list := m.getMyList(ctx, session)
	updated := make([]model.MediaItem, 0, len(list))
	for _, existing := range list {
		if !existing.Is(id, mediaType) {
			updated = append(updated, existing)
		}
	}
	if len(updated) == len(list) {
		return list, nil
	}
	return updated, m.save(ctx, session, updated)
}

//------------------------------------------
//------------------------------------------

func (m *ListService) save(ctx context.Context, session *model.Session, items []model.MediaItem) error {
	if err := setLocalList(ctx, session.LocalKey(), items); err != nil {
		return err
	}
	if session.IsAuthenticated() {
		m.mirror(ctx, session, items)
	}
	if m.scheduler != nil {
		m.scheduler.ScheduleRefresh(*session)
	}
	return nil
}

// mirror writes the list to the document store, failures are reported but not returned.
func (m *ListService) mirror(ctx context.Context, session *model.Session, items []model.MediaItem) {
	err := m.listRepo.SaveList(ctx, session.UserId, &model.UserList{
		Items:     items,
		UpdatedAt: m.now(),
	})
	if err != nil {
		errorMessage := fmt.Sprintf("Error saving list to document store: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
}

func ownerKey(session *model.Session) string {
	if session.IsAuthenticated() {
		return "user:" + session.UserId
	}
	return "device:" + session.LocalKey()
}
