package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamsphere/internal/docstore"
	"streamsphere/internal/repository"
	"streamsphere/model"
)

func movie(id int, title string) model.MediaItem {
	return model.MediaItem{Id: id, Title: title, MediaType: model.MediaTypeMovie, Genres: "Drama"}
}

func newTestListService(t *testing.T) (*ListService, *countingStore, *fakeScheduler) {
	t.Helper()
	resetState(t)
	store := newCountingStore()
	scheduler := &fakeScheduler{}
	svc := NewListService(repository.NewListRepository(store))
	svc.SetRefreshScheduler(scheduler)
	return svc, store, scheduler
}

func TestAddToMyListIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, store, scheduler := newTestListService(t)
	session := userSession("u1")

	list, err := svc.AddToMyList(ctx, session, movie(1, "Heat"))
	require.NoError(t, err)
	assert.Len(t, list, 1)
	writes := store.writeCount()
	assert.Equal(t, 1, scheduler.count())

	list, err = svc.AddToMyList(ctx, session, movie(1, "Heat"))
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, writes, store.writeCount())
	assert.Equal(t, 1, scheduler.count())

	assert.True(t, svc.IsInMyList(ctx, session, 1, model.MediaTypeMovie))
	assert.False(t, svc.IsInMyList(ctx, session, 1, model.MediaTypeTv))
}

func TestSameIdDifferentKindAreDistinct(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestListService(t)
	session := guestSession("device-1")

	_, err := svc.AddToMyList(ctx, session, movie(7, "Se7en"))
	require.NoError(t, err)
	list, err := svc.AddToMyList(ctx, session, model.MediaItem{Id: 7, Title: "Show", MediaType: model.MediaTypeTv})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestRemoveFromMyList(t *testing.T) {
	ctx := context.Background()
	svc, store, scheduler := newTestListService(t)
	session := userSession("u1")

	_, err := svc.AddToMyList(ctx, session, movie(1, "Heat"))
	require.NoError(t, err)
	_, err = svc.AddToMyList(ctx, session, movie(2, "Ronin"))
	require.NoError(t, err)

	writes := store.writeCount()
	list, err := svc.RemoveFromMyList(ctx, session, 99, model.MediaTypeMovie)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, writes, store.writeCount())
	assert.Equal(t, 2, scheduler.count())

	list, err = svc.RemoveFromMyList(ctx, session, 1, model.MediaTypeMovie)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ronin", list[0].Title)
	assert.Equal(t, 3, scheduler.count())

	assert.Equal(t, list, svc.GetMyList(ctx, session))
}

func TestGuestListStaysLocal(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestListService(t)
	session := guestSession("device-1")

	_, err := svc.AddToMyList(ctx, session, movie(1, "Heat"))
	require.NoError(t, err)
	assert.Equal(t, 0, store.writeCount())
	assert.Len(t, svc.GetMyList(ctx, session), 1)
	assert.Empty(t, svc.GetMyList(ctx, guestSession("device-2")))
}

func TestMissingUserDocumentIsSeededFromLocalList(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestListService(t)

	require.NoError(t, setLocalList(ctx, "device-1", []model.MediaItem{movie(1, "Heat")}))
	session := &model.Session{DeviceId: "device-1", UserId: "u1"}

	list := svc.GetMyList(ctx, session)
	assert.Len(t, list, 1)
	assert.Equal(t, 1, store.writeCount())

	stored, err := repository.NewListRepository(store).GetList(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, list, stored.Items)
}

func TestUserDocumentWithoutItemsIsSeededFromLocalList(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestListService(t)

	require.NoError(t, store.Store.Set(ctx, docstore.CollectionUserLists, "u1", map[string]interface{}{}))
	require.NoError(t, setLocalList(ctx, "device-1", []model.MediaItem{movie(1, "Heat")}))
	session := &model.Session{DeviceId: "device-1", UserId: "u1"}

	list := svc.GetMyList(ctx, session)
	require.Len(t, list, 1)
	assert.Equal(t, "Heat", list[0].Title)
	assert.Equal(t, 1, store.writeCount())

	stored, err := repository.NewListRepository(store).GetList(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, list, stored.Items)
}

func TestDocumentStoreErrorFallsBackToLocal(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestListService(t)
	session := &model.Session{DeviceId: "device-1", UserId: "u1"}

	_, err := svc.AddToMyList(ctx, session, movie(1, "Heat"))
	require.NoError(t, err)

	store.getErr = errBackend
	list := svc.GetMyList(ctx, session)
	require.Len(t, list, 1)
	assert.Equal(t, "Heat", list[0].Title)
}

func TestMirrorFailureIsNotReturned(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestListService(t)
	store.setErr = errBackend

	list, err := svc.AddToMyList(ctx, userSession("u1"), movie(1, "Heat"))
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
