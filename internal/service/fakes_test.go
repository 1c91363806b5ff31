package service

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"

	"streamsphere/configs"
	"streamsphere/db/redis"
	"streamsphere/internal/docstore"
	"streamsphere/model"
	"streamsphere/pkg/tmdb"
)

// resetState gives each test an empty key-value store and default dynamic configs.
func resetState(t *testing.T) {
	t.Helper()
	redis.UseStore(redis.NewMemoryStore())
	configs.SetDbConfigs(configs.DbConfigData{})
	t.Cleanup(func() {
		configs.SetDbConfigs(configs.DbConfigData{})
	})
}

func userSession(uid string) *model.Session {
	return &model.Session{UserId: uid, Email: uid + "@example.com"}
}

func guestSession(deviceId string) *model.Session {
	return &model.Session{DeviceId: deviceId}
}

//------------------------------------------
//------------------------------------------

type fakeMetadataClient struct {
	mu        sync.Mutex
	lists     map[string][]tmdb.Result
	listErrs  map[string]error
	search    map[string][]tmdb.Result
	searchErr map[string]error
	videos    []tmdb.Video
	videosErr error
	listCalls []string
	searches  []string
}

func newFakeMetadataClient() *fakeMetadataClient {
	return &fakeMetadataClient{
		lists:     map[string][]tmdb.Result{},
		listErrs:  map[string]error{},
		search:    map[string][]tmdb.Result{},
		searchErr: map[string]error{},
	}
}

func (f *fakeMetadataClient) List(_ context.Context, endpoint string, _ url.Values) ([]tmdb.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls = append(f.listCalls, endpoint)
	if err := f.listErrs[endpoint]; err != nil {
		return nil, err
	}
	return f.lists[endpoint], nil
}

func (f *fakeMetadataClient) Search(_ context.Context, mediaType string, query string) ([]tmdb.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := mediaType + ":" + query
	f.searches = append(f.searches, key)
	if err := f.searchErr[mediaType]; err != nil {
		return nil, err
	}
	return f.search[key], nil
}

func (f *fakeMetadataClient) Videos(_ context.Context, _ string, _ int) ([]tmdb.Video, error) {
	return f.videos, f.videosErr
}

func (f *fakeMetadataClient) searchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.searches)
}

func (f *fakeMetadataClient) listCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.listCalls)
}

//------------------------------------------
//------------------------------------------

type fakeAIClient struct {
	mu      sync.Mutex
	text    string
	err     error
	prompts []string
}

func (f *fakeAIClient) Generate(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

func (f *fakeAIClient) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

//------------------------------------------
//------------------------------------------

type fakeScheduler struct {
	mu       sync.Mutex
	sessions []model.Session
}

func (f *fakeScheduler) ScheduleRefresh(session model.Session) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions = append(f.sessions, session)
}

func (f *fakeScheduler) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sessions)
}

//------------------------------------------
//------------------------------------------

// countingStore wraps a document store and counts writes, failing reads when getErr is set.
type countingStore struct {
	docstore.Store
	mu     sync.Mutex
	writes int
	getErr error
	setErr error
}

func newCountingStore() *countingStore {
	return &countingStore{Store: docstore.NewMemoryStore()}
}

func (s *countingStore) Get(ctx context.Context, collection string, id string, dst interface{}) error {
	if s.getErr != nil {
		return s.getErr
	}
	return s.Store.Get(ctx, collection, id, dst)
}

func (s *countingStore) Set(ctx context.Context, collection string, id string, doc interface{}) error {
	s.mu.Lock()
	s.writes++
	s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	return s.Store.Set(ctx, collection, id, doc)
}

func (s *countingStore) Merge(ctx context.Context, collection string, id string, fields map[string]interface{}) error {
	s.mu.Lock()
	s.writes++
	s.mu.Unlock()
	return s.Store.Merge(ctx, collection, id, fields)
}

func (s *countingStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

var errBackend = errors.New("backend unavailable")

//------------------------------------------
//------------------------------------------

type fakeIdentity struct {
	users   map[string]string // email -> uid
	revoked []string
	deleted []string
	signIn  *PasswordSignIn
	signErr error
}

func (f *fakeIdentity) VerifyIDToken(_ context.Context, idToken string) (*IdentityToken, error) {
	if idToken == "valid-token" {
		return &IdentityToken{UserId: "uid-1", Email: "neo@example.com", ExpiresAt: 4102444800}, nil
	}
	if idToken == "admin-token" {
		return &IdentityToken{UserId: "uid-admin", Email: "admin@example.com", IsAdmin: true, ExpiresAt: 4102444800}, nil
	}
	return nil, errors.New("invalid token")
}

func (f *fakeIdentity) CreateUser(_ context.Context, email string, _ string, _ string) (string, error) {
	if f.users == nil {
		f.users = map[string]string{}
	}
	if _, ok := f.users[email]; ok {
		return "", ErrIdentityEmailExists
	}
	uid := "uid-" + email
	f.users[email] = uid
	return uid, nil
}

func (f *fakeIdentity) SignInWithPassword(_ context.Context, email string, _ string) (*PasswordSignIn, error) {
	if f.signErr != nil {
		return nil, f.signErr
	}
	if f.signIn != nil {
		return f.signIn, nil
	}
	return &PasswordSignIn{UserId: f.users[email], Email: email, IdToken: "id", RefreshToken: "refresh", ExpiresIn: 3600}, nil
}

func (f *fakeIdentity) RevokeRefreshTokens(_ context.Context, userId string) error {
	f.revoked = append(f.revoked, userId)
	return nil
}

func (f *fakeIdentity) DeleteUser(_ context.Context, userId string) error {
	f.deleted = append(f.deleted, userId)
	for email, uid := range f.users {
		if uid == userId {
			delete(f.users, email)
		}
	}
	return nil
}
