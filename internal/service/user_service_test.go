package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamsphere/internal/repository"
	"streamsphere/model"
)

func newTestUserService(t *testing.T) (*UserService, *countingStore) {
	t.Helper()
	resetState(t)
	store := newCountingStore()
	return NewUserService(repository.NewUserRepository(store)), store
}

func TestGetProfileCreatesDefault(t *testing.T) {
	svc, store := newTestUserService(t)
	ctx := context.Background()

	profile, err := svc.GetProfile(ctx, "abcdefgh", "neo@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user_abcde", profile.Username)
	assert.Equal(t, model.DefaultDisplayName, profile.DisplayName)
	assert.Equal(t, "en", profile.Preferences.Language)
	assert.Equal(t, "U/A 13+", profile.Preferences.MaturityRating)
	assert.False(t, profile.Status)
	assert.Equal(t, 1, store.writeCount())

	_, err = svc.GetProfile(ctx, "abcdefgh", "neo@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, store.writeCount())
}

func TestCheckUsernameAvailability(t *testing.T) {
	svc, store := newTestUserService(t)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "users", "u1", model.UserProfile{Username: "neo"}))

	assert.True(t, svc.CheckUsernameAvailability(ctx, "u2", "trinity"))
	assert.True(t, svc.CheckUsernameAvailability(ctx, "u1", "neo"))
	assert.False(t, svc.CheckUsernameAvailability(ctx, "u2", "neo"))

	require.NoError(t, store.Set(ctx, "users", "u3", model.UserProfile{Username: "neo"}))
	assert.False(t, svc.CheckUsernameAvailability(ctx, "u1", "neo"))
}

func TestUpdateProfileRejectsTakenUsername(t *testing.T) {
	svc, store := newTestUserService(t)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "users", "u1", model.UserProfile{Username: "neo", DisplayName: "Neo"}))
	require.NoError(t, store.Set(ctx, "users", "u2", model.UserProfile{Username: "smith", DisplayName: "Agent"}))
	writes := store.writeCount()

	_, err := svc.UpdateProfile(ctx, "u2", &model.UpdateProfileReq{Username: "neo", DisplayName: "Mr Smith"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.Equal(t, writes, store.writeCount())

	profile, err := svc.GetProfile(ctx, "u2", "")
	require.NoError(t, err)
	assert.Equal(t, "smith", profile.Username)
	assert.Equal(t, "Agent", profile.DisplayName)
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, "u1", &model.UpdateProfileReq{Username: "ab"})
	assert.ErrorIs(t, err, ErrUsernameTooShort)

	profile, err := svc.UpdateProfile(ctx, "u1", &model.UpdateProfileReq{
		Username:    "morpheus",
		DisplayName: "Morpheus",
		Preferences: &model.UserPreferences{Language: "fr", MaturityRating: "U/A 18+"},
	})
	require.NoError(t, err)
	assert.Equal(t, "morpheus", profile.Username)

	stored, err := svc.GetProfile(ctx, "u1", "")
	require.NoError(t, err)
	assert.Equal(t, "morpheus", stored.Username)
	assert.Equal(t, "Morpheus", stored.DisplayName)
	assert.Equal(t, "fr", stored.Preferences.Language)

	// keeping the own username is allowed
	_, err = svc.UpdateProfile(ctx, "u1", &model.UpdateProfileReq{Username: "morpheus", DisplayName: "M"})
	require.NoError(t, err)
}
